package api

import "github.com/codementor/codebert-server/internal/inference"

// resolveMaxLength applies the default truncation bound when the field is
// absent or null, and rejects non-positive values.
func resolveMaxLength(v *int) (int, bool) {
	if v == nil {
		return inference.DefaultMaxLength, true
	}
	if *v < 1 {
		return 0, false
	}
	return *v, true
}
