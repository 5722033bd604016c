// Package sanitize derives filesystem-safe name stems from conversation titles.
//
// Output filenames must be portable across filesystems, so stems are
// restricted to [A-Za-z0-9_-] and bounded in length.
package sanitize

import (
	"strings"
	"unicode"
)

// DefaultMaxLength is the maximum stem length when no explicit bound is given.
const DefaultMaxLength = 100

// Name sanitizes a title for use as a filename stem.
//
// Rules applied:
//   - Removes every character that is not ASCII alphanumeric, underscore,
//     hyphen, or whitespace
//   - Trims leading and trailing whitespace
//   - Replaces each remaining whitespace run with a single underscore
//   - Truncates to maxLength characters (DefaultMaxLength if maxLength <= 0)
//
// Name is deterministic and total: it never fails, and the empty string
// maps to the empty string.
func Name(title string, maxLength int) string {
	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}

	var kept strings.Builder
	kept.Grow(len(title))
	for _, r := range title {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			kept.WriteRune(r)
		case r == '_' || r == '-':
			kept.WriteRune(r)
		case unicode.IsSpace(r):
			kept.WriteRune(' ')
		}
	}

	// Fields both trims and collapses whitespace runs.
	stem := strings.Join(strings.Fields(kept.String()), "_")

	if len(stem) > maxLength {
		stem = stem[:maxLength]
	}
	return stem
}
