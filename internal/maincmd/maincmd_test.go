package maincmd_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/mna/mainer"
	"github.com/mna/rlox/internal/filetest"
	"github.com/mna/rlox/internal/maincmd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var noUpdate = false

// TestRunSourceGoldenFiles runs every testdata/*.rlox file through the full
// pipeline and compares standard output against its .want golden file, the
// same testdata/golden-file convention the teacher uses for its own
// scanner/parser/resolver tests.
func TestRunSourceGoldenFiles(t *testing.T) {
	fis := filetest.SourceFiles(t, "testdata", ".rlox")
	require.NotEmpty(t, fis)

	for _, fi := range fis {
		fi := fi
		t.Run(fi.Name(), func(t *testing.T) {
			src, err := readTestdata(fi.Name())
			require.NoError(t, err)

			var stdout, stderr bytes.Buffer
			stdio := mainer.Stdio{Stdout: &stdout, Stderr: &stderr}
			runErr := maincmd.RunSource(stdio, src, false)

			filetest.DiffOutput(t, fi, stdout.String(), "testdata", &noUpdate)
			if runErr != nil {
				filetest.DiffErrors(t, fi, stderr.String(), "testdata", &noUpdate)
			}
		})
	}
}

func TestRunSourceArityMismatchExits70(t *testing.T) {
	src, err := readTestdata("arity_mismatch.rlox")
	require.NoError(t, err)

	var stdout, stderr bytes.Buffer
	stdio := mainer.Stdio{Stdout: &stdout, Stderr: &stderr}
	runErr := maincmd.RunSource(stdio, src, false)
	require.Error(t, runErr)
	assert.Contains(t, stderr.String(), "Expected 2 arguments but got 1")
}

func readTestdata(name string) ([]byte, error) {
	return os.ReadFile(filepath.Join("testdata", name))
}
