package migration

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/markb/smg/internal/name"
)

// maxAttempts bounds the allocate/create retry loop. Hitting it means the
// directory is under sustained concurrent writes or its state is corrupted.
const maxAttempts = 50

// entryWriter materializes one candidate prefix on disk. It returns
// ErrAlreadyExists when the candidate was claimed by someone else.
type entryWriter func(prefix string) (Result, error)

// nextNumeric scans dir and returns the next free numeric prefix value:
// one past the highest existing prefix, or 0 for a directory with no
// numeric entries. Gaps are not filled. Entries without a parseable
// numeric prefix are skipped, never fatal.
func nextNumeric(dir string) (uint64, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("cannot read migrations directory %s: %w", dir, err)
	}

	var next uint64
	for _, e := range entries {
		if n, ok := name.ParseNumericPrefix(e.Name()); ok && n+1 > next {
			next = n + 1
		}
	}
	return next, nil
}

// allocateNumeric runs the optimistic allocate / exclusive create loop for
// numeric mode. The initial candidate comes from a snapshot scan; every
// collision triggers a fresh scan, falling back to a plain increment when
// the re-scan hasn't caught up with the entry that beat us.
func allocateNumeric(dir string, write entryWriter, log *slog.Logger) (Result, error) {
	n, err := nextNumeric(dir)
	if err != nil {
		return Result{}, err
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		prefix := NumericPrefix(n)
		res, err := write(prefix)
		if err == nil {
			return res, nil
		}
		if !errors.Is(err, ErrAlreadyExists) {
			return Result{}, err
		}
		log.Debug("numeric prefix taken, re-scanning", "prefix", prefix, "attempt", attempt+1)

		m, err := nextNumeric(dir)
		if err != nil {
			return Result{}, err
		}
		if m > n {
			n = m
		} else {
			n++
		}
	}
	return Result{}, fmt.Errorf("%w: gave up after %d numeric attempts", ErrAllocationExhausted, maxAttempts)
}

// allocateTemporal runs the create loop for temporal mode. The timestamp is
// fixed for the whole invocation; same-second collisions are resolved by
// appending _1, _2, ... rather than waiting for the clock to advance.
func allocateTemporal(ts string, write entryWriter, log *slog.Logger) (Result, error) {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		prefix := ts
		if attempt > 0 {
			prefix = fmt.Sprintf("%s_%d", ts, attempt)
		}
		res, err := write(prefix)
		if err == nil {
			return res, nil
		}
		if !errors.Is(err, ErrAlreadyExists) {
			return Result{}, err
		}
		log.Debug("temporal prefix taken, suffixing", "prefix", prefix, "attempt", attempt+1)
	}
	return Result{}, fmt.Errorf("%w: gave up after %d temporal attempts", ErrAllocationExhausted, maxAttempts)
}
