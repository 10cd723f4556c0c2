package catalog

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	byState map[State]Entry
	sorted  []Entry
)

func init() {
	byState = make(map[State]Entry, len(entries))
	for _, e := range entries {
		byState[e.State] = e
	}
	sorted = make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return Normalize(sorted[i].Label) < Normalize(sorted[j].Label)
	})
}

// All returns every catalogue entry sorted alphabetically by label,
// ignoring case and diacritics.
func All() []Entry {
	out := make([]Entry, len(sorted))
	copy(out, sorted)
	return out
}

// Valid reports whether s is a recognised tooth state.
func Valid(s State) bool {
	_, ok := byState[s]
	return ok
}

// Lookup returns the entry for s.
func Lookup(s State) (Entry, bool) {
	e, ok := byState[s]
	return e, ok
}

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lowercases s and strips diacritics, so "Fístula" and "fistula"
// compare equal.
func Normalize(s string) string {
	out, _, err := transform.String(stripMarks, strings.ToLower(s))
	if err != nil {
		return strings.ToLower(s)
	}
	return out
}

// Search returns the entries matching query, alphabetically sorted. Every
// whitespace-separated token of the query must appear as a substring of the
// entry's normalized label or category. An empty query returns everything.
func Search(query string) []Entry {
	tokens := strings.Fields(Normalize(query))
	if len(tokens) == 0 {
		return All()
	}

	var out []Entry
	for _, e := range sorted {
		haystack := Normalize(e.Label + " " + e.Category)
		matched := true
		for _, tok := range tokens {
			if !strings.Contains(haystack, tok) {
				matched = false
				break
			}
		}
		if matched {
			out = append(out, e)
		}
	}
	return out
}
