package usecase

import "strings"

// NormalizeName canonicalizes a human-entered name for case-insensitive exact
// matching: trim, lowercase, underscores become spaces, internal whitespace
// collapsed. The same normalization is applied to both the caller's input and
// the stored name, so "Acme_Exports " matches "acme  exports".
func NormalizeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, "_", " ")
	return strings.Join(strings.Fields(name), " ")
}
