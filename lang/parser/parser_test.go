package parser

import (
	"testing"

	"github.com/mna/rlox/lang/ast"
	"github.com/mna/rlox/lang/scanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseOK(t *testing.T, src string) []ast.Stmt {
	t.Helper()
	stmts, err := ParseSource([]byte(src))
	require.NoError(t, err)
	return stmts
}

func TestParseVarDecl(t *testing.T) {
	stmts := parseOK(t, `var x = 1 + 2;`)
	require.Len(t, stmts, 1)
	v, ok := stmts[0].(*ast.VarStmt)
	require.True(t, ok)
	assert.Equal(t, "x", v.Name.Lexeme)
	require.NotNil(t, v.Initializer)
}

func TestParseForDesugarsToWhile(t *testing.T) {
	stmts := parseOK(t, `for (var i = 0; i < 3; i = i + 1) print i;`)
	require.Len(t, stmts, 1)
	block, ok := stmts[0].(*ast.BlockStmt)
	require.True(t, ok)
	require.Len(t, block.Stmts, 2)
	_, isVar := block.Stmts[0].(*ast.VarStmt)
	assert.True(t, isVar)
	whileStmt, ok := block.Stmts[1].(*ast.WhileStmt)
	require.True(t, ok)
	require.NotNil(t, whileStmt.Cond)
	bodyBlock, ok := whileStmt.Body.(*ast.BlockStmt)
	require.True(t, ok)
	require.Len(t, bodyBlock.Stmts, 2) // original body + increment
}

func TestParseForWithoutClausesDefaultsCondTrue(t *testing.T) {
	stmts := parseOK(t, `for (;;) break;`)
	whileStmt, ok := stmts[0].(*ast.WhileStmt)
	require.True(t, ok)
	lit, ok := whileStmt.Cond.(*ast.LiteralExpr)
	require.True(t, ok)
	assert.Equal(t, true, lit.Value)
}

func TestParseClassWithMethodsAndProperty(t *testing.T) {
	stmts := parseOK(t, `class Foo {
		init(w) { this.w = w; }
		what() { return this.w; }
		label { return "foo"; }
		class make() { return Foo(1); }
	}`)
	require.Len(t, stmts, 1)
	c, ok := stmts[0].(*ast.ClassStmt)
	require.True(t, ok)
	assert.Equal(t, "Foo", c.Name.Lexeme)
	require.Len(t, c.Methods, 3)
	require.Len(t, c.ClassMethods, 1)

	var kinds []ast.FunctionKind
	for _, m := range c.Methods {
		kinds = append(kinds, m.Kind)
	}
	assert.Contains(t, kinds, ast.FunctionKindInitializer)
	assert.Contains(t, kinds, ast.FunctionKindMethod)
	assert.Contains(t, kinds, ast.FunctionKindProperty)
	assert.Equal(t, ast.FunctionKindClassMethod, c.ClassMethods[0].Kind)
}

func TestParseAssignmentTargets(t *testing.T) {
	stmts := parseOK(t, `a = 1; a.b = 2;`)
	require.Len(t, stmts, 2)
	_, ok := stmts[0].(*ast.ExpressionStmt).Expr.(*ast.AssignExpr)
	assert.True(t, ok)
	_, ok = stmts[1].(*ast.ExpressionStmt).Expr.(*ast.SetExpr)
	assert.True(t, ok)
}

func TestParseInvalidAssignmentTargetErrors(t *testing.T) {
	_, err := ParseSource([]byte(`1 = 2;`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid assignment target")
}

func TestParseTernary(t *testing.T) {
	stmts := parseOK(t, `var x = 1 < 2 ? "a" : "b";`)
	v := stmts[0].(*ast.VarStmt)
	_, ok := v.Initializer.(*ast.TernaryExpr)
	assert.True(t, ok)
}

func TestParseLambda(t *testing.T) {
	stmts := parseOK(t, `var f = fun (a, b) { return a + b; };`)
	v := stmts[0].(*ast.VarStmt)
	lam, ok := v.Initializer.(*ast.LambdaExpr)
	require.True(t, ok)
	assert.Len(t, lam.Params, 2)
}

func TestParseErrorRecoverySynchronizesAndCollectsMultiple(t *testing.T) {
	stmts, err := ParseSource([]byte(`var ; var y = 1 + ; var z = 3;`))
	require.Error(t, err)
	el, ok := err.(scanner.ErrorList)
	require.True(t, ok)
	assert.Len(t, el, 2)     // one error per malformed declaration
	require.Len(t, stmts, 1) // `var z = 3;` still parsed after recovery
}

func TestParseTooManyArgsReportsButContinues(t *testing.T) {
	var sb []byte
	sb = append(sb, []byte("f(")...)
	for i := 0; i < 300; i++ {
		if i > 0 {
			sb = append(sb, ',')
		}
		sb = append(sb, '1')
	}
	sb = append(sb, []byte(");")...)
	stmts, err := ParseSource(sb)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Can't have more than 255 arguments")
	require.Len(t, stmts, 1) // parse still produced a statement
}

func TestParseCallAndGetChaining(t *testing.T) {
	stmts := parseOK(t, `a.b.c(1, 2);`)
	expr := stmts[0].(*ast.ExpressionStmt).Expr
	call, ok := expr.(*ast.CallExpr)
	require.True(t, ok)
	assert.Len(t, call.Args, 2)
	get, ok := call.Callee.(*ast.GetExpr)
	require.True(t, ok)
	assert.Equal(t, "c", get.Name.Lexeme)
}
