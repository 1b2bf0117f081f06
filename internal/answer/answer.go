// Package answer checks typed answers against the expected ones.
//
// Both sides are reduced to a canonical form before comparison: full-width
// characters are folded to their narrow forms, letters are case folded and
// every whitespace character is removed. The ranking drill additionally
// drops commas so lists may be typed comma or space separated.
package answer

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/width"

	"github.com/verte-zerg/flashcards/internal/model"
)

// Normalize returns the canonical form of s.
func Normalize(s string) string {
	s = cases.Lower(language.Und).String(width.Fold.String(s))
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// NormalizeList returns the canonical form of a typed list.
func NormalizeList(s string) string {
	return strings.ReplaceAll(Normalize(s), ",", "")
}

// CheckWord reports whether input matches expected.
func CheckWord(input, expected string) bool {
	return Normalize(input) == Normalize(expected)
}

// Ranked returns countries ordered by descending population. The input is not modified.
func Ranked(countries []model.Country) []model.Country {
	out := make([]model.Country, len(countries))
	copy(out, countries)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Population > out[j].Population
	})
	return out
}

// ExpectedRanking returns the canonical string a correct ranking must match.
func ExpectedRanking(countries []model.Country) string {
	var b strings.Builder
	for _, c := range Ranked(countries) {
		b.WriteString(NormalizeList(c.Name))
	}
	return b.String()
}

// CheckRanking reports whether input lists countries from most to least populous.
func CheckRanking(input string, countries []model.Country) bool {
	return NormalizeList(input) == ExpectedRanking(countries)
}

// RankingText renders the correct ranking for display.
func RankingText(countries []model.Country) string {
	ranked := Ranked(countries)
	names := make([]string, len(ranked))
	for i, c := range ranked {
		names[i] = c.Name
	}
	return strings.Join(names, ", ")
}
