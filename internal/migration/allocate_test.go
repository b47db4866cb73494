package migration

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("-- test fixture\n"), 0644); err != nil {
		t.Fatalf("failed to create fixture %s: %v", path, err)
	}
}

func TestNextNumericEmpty(t *testing.T) {
	dir := t.TempDir()
	next, err := nextNumeric(dir)
	if err != nil {
		t.Fatalf("nextNumeric error: %v", err)
	}
	if next != 0 {
		t.Errorf("expected next 0 on empty dir, got %d", next)
	}
}

func TestNextNumericGapNotFilled(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "000_a.surql"))
	touch(t, filepath.Join(dir, "001_b.surql"))
	touch(t, filepath.Join(dir, "003_c.surql"))

	next, err := nextNumeric(dir)
	if err != nil {
		t.Fatalf("nextNumeric error: %v", err)
	}
	if next != 4 {
		t.Errorf("expected next 4 (max+1, not gap-fill), got %d", next)
	}
}

func TestNextNumericCountsPairedFolders(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "000_a.surql"))
	if err := os.Mkdir(filepath.Join(dir, "005_paired"), 0755); err != nil {
		t.Fatal(err)
	}

	next, err := nextNumeric(dir)
	if err != nil {
		t.Fatalf("nextNumeric error: %v", err)
	}
	if next != 6 {
		t.Errorf("expected next 6, got %d", next)
	}
}

func TestNextNumericSkipsMalformed(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "README.md"))
	touch(t, filepath.Join(dir, "abc_1.surql"))
	touch(t, filepath.Join(dir, "12nounderscore.surql"))
	touch(t, filepath.Join(dir, "002_ok.surql"))

	next, err := nextNumeric(dir)
	if err != nil {
		t.Fatalf("nextNumeric error: %v", err)
	}
	if next != 3 {
		t.Errorf("expected malformed entries skipped and next 3, got %d", next)
	}
}

func TestNextNumericUnreadableDir(t *testing.T) {
	_, err := nextNumeric(filepath.Join(t.TempDir(), "does-not-exist"))
	if err == nil {
		t.Fatal("expected error for unreadable directory")
	}
}

func TestAllocateNumericExhausted(t *testing.T) {
	dir := t.TempDir()
	write := func(prefix string) (Result, error) {
		return Result{}, ErrAlreadyExists
	}

	_, err := allocateNumeric(dir, write, slog.Default())
	if !errors.Is(err, ErrAllocationExhausted) {
		t.Fatalf("expected ErrAllocationExhausted, got %v", err)
	}
}

func TestAllocateNumericRetriesPastRace(t *testing.T) {
	dir := t.TempDir()

	// The first attempt loses the race: a competing invocation claims the
	// candidate just before our exclusive create runs.
	raced := false
	write := func(prefix string) (Result, error) {
		if !raced {
			raced = true
			touch(t, filepath.Join(dir, prefix+"_stolen.surql"))
			return Result{}, ErrAlreadyExists
		}
		path := filepath.Join(dir, prefix+"_mine.surql")
		if err := writeFileExclusive(path, "-- mine\n"); err != nil {
			return Result{}, err
		}
		return Result{Prefix: prefix, Path: path, Files: []string{path}}, nil
	}

	res, err := allocateNumeric(dir, write, slog.Default())
	if err != nil {
		t.Fatalf("allocateNumeric error: %v", err)
	}
	if res.Prefix != "001" {
		t.Errorf("expected retry to land on 001, got %q", res.Prefix)
	}
	if _, err := os.Stat(filepath.Join(dir, "000_stolen.surql")); err != nil {
		t.Errorf("competitor entry missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "001_mine.surql")); err != nil {
		t.Errorf("retried entry missing: %v", err)
	}
}

func TestAllocateTemporalFatalErrorNotRetried(t *testing.T) {
	boom := errors.New("disk full")
	calls := 0
	write := func(prefix string) (Result, error) {
		calls++
		return Result{}, boom
	}

	_, err := allocateTemporal("20260823143022", write, slog.Default())
	if !errors.Is(err, boom) {
		t.Fatalf("expected write error to propagate, got %v", err)
	}
	if calls != 1 {
		t.Errorf("fatal error retried %d times, want 1 attempt", calls)
	}
}
