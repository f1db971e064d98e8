package utils

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TitleCase lowercases s and capitalises the first letter of every word.
// "new DELHI" -> "New Delhi"
func TitleCase(s string) string {
	// Caser 有状态，不能跨 goroutine 共享
	return cases.Title(language.English).String(strings.TrimSpace(s))
}

// UcWords capitalises the first letter of each space separated word, leaving the rest untouched
func UcWords(s string) string {
	upper := cases.Upper(language.English)
	words := strings.Split(s, " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		r := []rune(w)
		words[i] = upper.String(string(r[0])) + string(r[1:])
	}
	return strings.Join(words, " ")
}

// EqualFold reports whether a and b match case-insensitively after trimming
func EqualFold(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
