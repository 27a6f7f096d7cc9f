package style

import (
	"strings"
	"unicode"
)

// SingleWeightFamilies names font families that ship in a single visual
// weight; a browser-computed font-weight of 600+ on one of these families
// is a rendering artifact, not a deliberate bold, so bold emission is
// suppressed for them.
var SingleWeightFamilies = map[string]bool{
	"impact": true,
}

// NormalizeFontFamily takes a CSS font-family list ("Impact, sans-serif")
// and returns the first entry, unquoted and trimmed.
func NormalizeFontFamily(family string) string {
	first := family
	if idx := strings.IndexByte(family, ','); idx >= 0 {
		first = family[:idx]
	}
	first = strings.TrimSpace(first)
	first = strings.Trim(first, `"'`)
	return strings.TrimSpace(first)
}

// IsSingleWeightFamily reports whether the given font-family list resolves
// to a family known to ship in a single weight.
func IsSingleWeightFamily(family string) bool {
	return SingleWeightFamilies[strings.ToLower(NormalizeFontFamily(family))]
}

// ApplyTextTransform applies a CSS text-transform value to a string during
// extraction, so downstream consumers see already-canonicalised text.
func ApplyTextTransform(text, transform string) string {
	switch transform {
	case "uppercase":
		return strings.ToUpper(text)
	case "lowercase":
		return strings.ToLower(text)
	case "capitalize":
		return capitalizeWords(text)
	default:
		return text
	}
}

func capitalizeWords(s string) string {
	words := strings.Split(s, " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
