package match

import (
	"strings"
)

const (
	namespacePrefix  = "edm4hep::"
	collectionSuffix = "collection"
)

// NormalizeTypeName normalizes an entity-type name for comparison.
// The normalization pipeline:
// 1. Strip the "edm4hep::" namespace.
// 2. Case-fold to lower.
// 3. Strip separators (_, -, spaces).
// 4. Strip a trailing "collection".
func NormalizeTypeName(s string) string {
	s = strings.TrimPrefix(strings.TrimSpace(s), namespacePrefix)
	s = strings.ToLower(s)
	s = stripSeparators(s)

	if trimmed, ok := strings.CutSuffix(s, collectionSuffix); ok && trimmed != "" {
		s = trimmed
	}

	return s
}

// isSeparator returns true if the rune is a common separator.
func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' ' || r == ':'
}

// stripSeparators removes common separators from a string.
func stripSeparators(s string) string {
	var result strings.Builder

	result.Grow(len(s))

	for _, r := range s {
		if !isSeparator(r) {
			result.WriteRune(r)
		}
	}

	return result.String()
}
