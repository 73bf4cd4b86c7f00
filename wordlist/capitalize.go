package wordlist

import (
	"slices"
	"strings"
	"unicode"

	"github.com/coregx/regexpand/dedup"
)

// Variants returns the sorted, distinct casing variants of line:
//
//	the line unchanged           "hello wORLD"
//	all lower case               "hello world"
//	first word capitalized       "Hello wORLD"
//	every word capitalized       "Hello World"
//	all upper case               "HELLO WORLD"
//
// Words are separated by Unicode white space, which is preserved as is.
func Variants(line string) []string {
	out := []string{
		line,
		strings.ToLower(line),
		capitalizeWords(line, 1),
		capitalizeWords(line, -1),
		strings.ToUpper(line),
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// capitalizeWords upper-cases the first letter and lower-cases the rest of
// the first n words of s (all words if n < 0). Later words are unchanged.
func capitalizeWords(s string, n int) string {
	rs := []rune(s)
	inWord := false
	for i, r := range rs {
		if unicode.IsSpace(r) {
			inWord = false
			continue
		}
		if !inWord {
			inWord = true
			if n == 0 {
				break
			}
			n--
			rs[i] = unicode.ToUpper(r)
			continue
		}
		rs[i] = unicode.ToLower(r)
	}
	return string(rs)
}

// Capitalize replaces each line with its casing variants. Variant groups
// appear in word-list order; a variant already produced by an earlier line
// is dropped.
func Capitalize(words []string) []string {
	seen := dedup.NewSet(len(words) * 5)
	for _, w := range words {
		for _, v := range Variants(w) {
			seen.Add(v)
		}
	}
	return seen.Values()
}
