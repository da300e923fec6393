package crud

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Humanize turns a Go field name into a display label:
// HospitalClinic -> "Hospital clinic", GSTNumber -> "GST number".
func Humanize(field string) string {
	words := splitCamel(field)
	for i, w := range words {
		if i == 0 || isAcronym(w) {
			continue
		}
		words[i] = strings.ToLower(w)
	}
	return strings.Join(words, " ")
}

func splitCamel(s string) []string {
	runes := []rune(s)
	var words []string
	start := 0
	for i := 1; i < len(runes); i++ {
		prev, cur := runes[i-1], runes[i]
		boundary := unicode.IsLower(prev) && unicode.IsUpper(cur) ||
			unicode.IsUpper(prev) && unicode.IsUpper(cur) && i+1 < len(runes) && unicode.IsLower(runes[i+1]) ||
			unicode.IsLetter(prev) && unicode.IsDigit(cur)
		if boundary {
			words = append(words, string(runes[start:i]))
			start = i
		}
	}
	if start < len(runes) {
		words = append(words, string(runes[start:]))
	}
	return words
}

func isAcronym(w string) bool {
	if len(w) < 2 {
		return false
	}
	for _, r := range w {
		if !unicode.IsUpper(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// fieldLabel resolves a validation path such as "Villages[1].Name" into
// "Villages row 2 name". labels overrides by exact path or top-level field.
func fieldLabel(labels map[string]string, path string) string {
	if l, ok := labels[path]; ok {
		return l
	}
	top, rest, nested := strings.Cut(path, ".")
	name, idx, indexed := strings.Cut(top, "[")
	label, ok := labels[name]
	if !ok {
		label = Humanize(name)
	}
	if !indexed {
		return label
	}
	n, err := strconv.Atoi(strings.TrimSuffix(idx, "]"))
	if err != nil {
		return label
	}
	label = fmt.Sprintf("%s row %d", label, n+1)
	if nested {
		last := rest[strings.LastIndexByte(rest, '.')+1:]
		label += " " + strings.ToLower(Humanize(last))
	}
	return label
}
