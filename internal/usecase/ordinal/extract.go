package ordinal

import (
	"regexp"
	"strconv"
	"strings"
)

var wordTables = []map[string]int{
	{"first": 1, "second": 2, "third": 3, "fourth": 4, "fifth": 5},
	{"1st": 1, "2nd": 2, "3rd": 3, "4th": 4, "5th": 5},
	{"one": 1, "two": 2, "three": 3, "four": 4, "five": 5},
}

var (
	digits  = regexp.MustCompile(`\d+`)
	splitOn = regexp.MustCompile(`[^a-z0-9]+`)
)

// Extract finds the result number a phrase refers to.
// Ordinal words win over numerals, numerals over bare digits.
func Extract(text string) (int, bool) {
	tokens := tokenize(text)
	for _, table := range wordTables {
		for _, tok := range tokens {
			if n, ok := table[tok]; ok {
				return n, true
			}
		}
	}
	if m := digits.FindString(text); m != "" {
		n, err := strconv.Atoi(m)
		if err == nil && n > 0 {
			return n, true
		}
	}
	return 0, false
}

// Mentions reports whether the phrase talks about a numbered result at all.
func Mentions(text string) bool {
	tokens := tokenize(text)
	for _, tok := range tokens {
		if tok == "number" {
			return true
		}
		for _, table := range wordTables {
			if _, ok := table[tok]; ok {
				return true
			}
		}
	}
	return digits.MatchString(text)
}

func tokenize(text string) []string {
	return splitOn.Split(strings.ToLower(text), -1)
}
