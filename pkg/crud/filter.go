package crud

import (
	"strings"

	"golang.org/x/text/cases"
)

// MatchesSearch reports whether any field contains q, ignoring case. An
// empty or blank q matches everything.
func MatchesSearch(q string, fields ...string) bool {
	q = strings.TrimSpace(q)
	if q == "" {
		return true
	}
	fold := cases.Fold()
	needle := fold.String(q)
	for _, f := range fields {
		if strings.Contains(fold.String(f), needle) {
			return true
		}
	}
	return false
}

// MatchesCategory treats "" and "all" as no filter.
func MatchesCategory(selected, value string) bool {
	selected = strings.TrimSpace(selected)
	if selected == "" || strings.EqualFold(selected, "all") {
		return true
	}
	return strings.EqualFold(selected, strings.TrimSpace(value))
}
