package migration

import "errors"

var (
	// ErrAlreadyExists indicates the candidate entry was created by a
	// concurrent invocation between the scan and the exclusive create.
	// It is consumed by the allocation retry loop and never reaches the
	// caller directly.
	ErrAlreadyExists = errors.New("migration entry already exists")

	// ErrAllocationExhausted indicates the retry ceiling was hit without
	// finding a free prefix. This signals sustained contention on the
	// migrations directory or a corrupted directory state worth inspecting.
	ErrAllocationExhausted = errors.New("migration allocation retries exhausted")
)
