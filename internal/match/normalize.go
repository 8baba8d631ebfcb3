package match

import (
	"strings"
	"unicode"
)

// strippedSuffixes are the reference and companion-flag suffixes, longest
// first.
var strippedSuffixes = []string{"isdefaulted", "idrefs", "idref", "id"}

// NormalizeIdent folds an identifier for fuzzy matching: lower case with
// the separators _, - and space removed. BuildingID, building_id and
// building-id all normalize to buildingid.
func NormalizeIdent(s string) string {
	var sb strings.Builder

	sb.Grow(len(s))

	for _, r := range s {
		if !isSeparator(r) {
			sb.WriteRune(unicode.ToLower(r))
		}
	}

	return sb.String()
}

// NormalizeIdentWithSuffixStrip normalizes s and drops one trailing
// reference or companion-flag suffix. An identifier that consists only of
// a suffix is left as is.
func NormalizeIdentWithSuffixStrip(s string) string {
	n := NormalizeIdent(s)

	for _, suffix := range strippedSuffixes {
		if rest, ok := strings.CutSuffix(n, suffix); ok && rest != "" {
			return rest
		}
	}

	return n
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}
