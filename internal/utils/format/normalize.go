package format

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize reduces a name to its matching key: accents dropped, case folded
// and runs of whitespace collapsed.
func Normalize(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return cases.Fold().String(strings.Join(strings.Fields(out), " "))
}

// MatchesName reports whether text names the entity called name or any of
// its aliases.
func MatchesName(text, name string, aliases []string) bool {
	key := Normalize(text)
	if key == "" {
		return false
	}
	if Normalize(name) == key {
		return true
	}
	for _, alias := range aliases {
		if Normalize(alias) == key {
			return true
		}
	}
	return false
}

// CleanAliases trims aliases and drops blanks and duplicates, keeping the
// first spelling seen.
func CleanAliases(aliases []string) []string {
	out := make([]string, 0, len(aliases))
	seen := map[string]struct{}{}
	for _, alias := range aliases {
		alias = strings.TrimSpace(alias)
		key := Normalize(alias)
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, alias)
	}
	return out
}
