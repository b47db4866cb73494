// Package name turns user-supplied migration names into filesystem-safe
// fragments and parses the numeric prefixes of existing directory entries.
// All functions are pure; I/O belongs to the migration package.
package name

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
)

// ErrEmptyName is returned when a migration name sanitizes to nothing.
var ErrEmptyName = errors.New("migration name is empty after sanitization")

// Sanitize converts raw user text into a safe filename fragment.
// Whitespace runs become a single underscore, characters outside
// [A-Za-z0-9_] are dropped, underscore runs collapse to one, and
// leading/trailing underscores are stripped.
func Sanitize(raw string) (string, error) {
	var b strings.Builder
	b.Grow(len(raw))

	underscore := false
	for _, r := range strings.TrimSpace(raw) {
		var c byte
		switch {
		case unicode.IsSpace(r) || r == '_':
			c = '_'
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			c = byte(r)
		default:
			// Dropped characters don't break an underscore run.
			continue
		}

		if c == '_' {
			if underscore || b.Len() == 0 {
				continue
			}
			underscore = true
		} else {
			underscore = false
		}
		b.WriteByte(c)
	}

	out := strings.TrimSuffix(b.String(), "_")
	if out == "" {
		return "", ErrEmptyName
	}
	return out, nil
}

// ParseNumericPrefix extracts the leading numeric prefix from a directory
// entry name like "001_init.surql" or "002_add_posts". Leading zeros are
// ignored, so mixed-width prefixes compare numerically. Returns false for
// entries that don't carry a numeric prefix.
func ParseNumericPrefix(entry string) (uint64, bool) {
	i := 0
	for i < len(entry) && entry[i] >= '0' && entry[i] <= '9' {
		i++
	}
	if i == 0 || i >= len(entry) || entry[i] != '_' {
		return 0, false
	}
	n, err := strconv.ParseUint(entry[:i], 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
