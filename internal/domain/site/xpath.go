package site

import (
	"fmt"
	"strings"
)

const (
	upperAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowerAlphabet = "abcdefghijklmnopqrstuvwxyz"
)

// Literal quotes s as an XPath 1.0 string literal. Strings holding both quote
// kinds are split into a concat() call.
func Literal(s string) string {
	if !strings.Contains(s, "'") {
		return "'" + s + "'"
	}
	if !strings.Contains(s, `"`) {
		return `"` + s + `"`
	}

	parts := strings.Split(s, "'")
	args := make([]string, 0, len(parts)*2)
	for i, p := range parts {
		if p != "" {
			args = append(args, "'"+p+"'")
		}
		if i < len(parts)-1 {
			args = append(args, `"'"`)
		}
	}
	return "concat(" + strings.Join(args, ", ") + ")"
}

// LowerContains builds a case-insensitive contains() predicate over expr.
// needle must already be lowercase.
func LowerContains(expr, needle string) string {
	return fmt.Sprintf("contains(translate(%s, '%s', '%s'), %s)", expr, upperAlphabet, lowerAlphabet, Literal(needle))
}
