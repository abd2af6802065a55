package interpreter

import "strconv"

// formatNumber renders a Lox number the way print and string
// concatenation expect: the shortest decimal representation that
// round-trips, with no forced trailing ".0" for whole numbers.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
