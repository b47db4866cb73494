// Package migration allocates collision-free migration prefixes and writes
// migration artifacts to a target directory. Allocation is optimistic: a
// candidate prefix is computed from a snapshot scan of the directory, the
// entry is created exclusively, and a create failure caused by a concurrent
// invocation triggers a re-scan and retry. No locks are taken; the
// filesystem's exclusive-create semantics are the only synchronization.
package migration

import (
	"fmt"
	"strings"
	"time"
)

// Layout selects how a migration is materialized on disk.
type Layout int

const (
	// LayoutPaired creates a folder containing up.surql and down.surql.
	LayoutPaired Layout = iota
	// LayoutSingle creates one up-only .surql file.
	LayoutSingle
)

// Mode selects how prefixes are generated.
type Mode int

const (
	// ModeNumeric uses a zero-padded increasing integer prefix.
	ModeNumeric Mode = iota
	// ModeTemporal uses a UTC timestamp prefix (YYYYMMDDHHMMSS).
	ModeTemporal
)

// temporalFormat is the temporal prefix layout: YYYYMMDDHHMMSS in UTC.
const temporalFormat = "20060102150405"

// numericWidth is the minimum rendered width of a numeric prefix.
const numericWidth = 3

// TemporalPrefix formats now as a temporal migration prefix.
func TemporalPrefix(now time.Time) string {
	return now.UTC().Format(temporalFormat)
}

// NumericPrefix renders n zero-padded to three digits. Values past 999
// widen to the minimum number of digits that fits; existing entries are
// never re-padded, and the parser compares prefixes numerically so mixed
// widths coexist.
func NumericPrefix(n uint64) string {
	return fmt.Sprintf("%0*d", numericWidth, n)
}

// header renders the comment block written at the top of a new migration
// file. rawName is the name as the user typed it, pre-sanitization.
// direction is "up" or "down" for paired files, empty for single files.
func header(rawName string, ts time.Time, direction string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "-- migration: %s\n", rawName)
	fmt.Fprintf(&sb, "-- created: %s\n", ts.UTC().Format(time.RFC3339))
	if direction != "" {
		fmt.Fprintf(&sb, "-- direction: %s\n", direction)
	}
	sb.WriteString("\n")
	return sb.String()
}
