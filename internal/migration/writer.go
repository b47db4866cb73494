package migration

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/markb/smg/internal/name"
)

// Options configure a single migration creation.
type Options struct {
	// Name is the raw migration name as the user typed it. It is
	// sanitized before use; the original text goes into the file header.
	Name string

	// Dir is the migrations directory, created if absent.
	Dir string

	Mode   Mode
	Layout Layout

	// Logger receives debug output from the allocate/retry loop.
	// Nil means slog.Default().
	Logger *slog.Logger

	// Now supplies the clock for temporal prefixes and header timestamps.
	// Nil means time.Now.
	Now func() time.Time
}

// Result describes the artifact(s) created for one migration.
type Result struct {
	// Prefix is the allocated prefix string, e.g. "004" or
	// "20260823120000_1".
	Prefix string

	// Path is the created entry: the .surql file for single layout, the
	// folder for paired layout.
	Path string

	// Files lists every file written. Single layout has one element;
	// paired layout has up.surql then down.surql.
	Files []string
}

// Create sanitizes the name, allocates a free prefix, and writes the
// migration artifact(s). Sanitization and allocation errors abort before
// anything touches disk; a write failure after the slot is claimed leaves
// the slot unused, which is harmless.
func Create(opts Options) (Result, error) {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	sanitized, err := name.Sanitize(opts.Name)
	if err != nil {
		return Result{}, err
	}
	log.Debug("sanitized migration name", "raw", opts.Name, "sanitized", sanitized)

	if err := os.MkdirAll(opts.Dir, 0755); err != nil {
		return Result{}, fmt.Errorf("failed to create migrations directory %s: %w", opts.Dir, err)
	}

	write := func(prefix string) (Result, error) {
		return writeEntry(opts.Dir, prefix, sanitized, opts.Name, opts.Layout, now(), log)
	}

	if opts.Mode == ModeTemporal {
		return allocateTemporal(TemporalPrefix(now()), write, log)
	}
	return allocateNumeric(opts.Dir, write, log)
}

// writeEntry materializes one candidate under the exclusive-create
// discipline: the single file (or the paired folder) is the one point of
// mutation, and fs.ErrExist from it is the authoritative collision signal.
func writeEntry(dir, prefix, sanitized, rawName string, layout Layout, ts time.Time, log *slog.Logger) (Result, error) {
	base := prefix + "_" + sanitized

	if layout == LayoutSingle {
		path := filepath.Join(dir, base+".surql")
		if err := writeFileExclusive(path, header(rawName, ts, "")); err != nil {
			return Result{}, err
		}
		log.Debug("wrote migration file", "path", path)
		return Result{Prefix: prefix, Path: path, Files: []string{path}}, nil
	}

	folder := filepath.Join(dir, base)
	if err := os.Mkdir(folder, 0755); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return Result{}, ErrAlreadyExists
		}
		return Result{}, fmt.Errorf("failed to create migration folder %s: %w", folder, err)
	}

	up := filepath.Join(folder, "up.surql")
	down := filepath.Join(folder, "down.surql")
	if err := writeFileExclusive(up, header(rawName, ts, "up")); err != nil {
		return Result{}, err
	}
	if err := writeFileExclusive(down, header(rawName, ts, "down")); err != nil {
		return Result{}, err
	}
	log.Debug("wrote paired migration", "folder", folder)
	return Result{Prefix: prefix, Path: folder, Files: []string{up, down}}, nil
}

// writeFileExclusive creates path with O_EXCL and writes content. An
// existing file maps to ErrAlreadyExists; every other failure is fatal and
// not retried.
func writeFileExclusive(path, content string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("failed to create migration file %s: %w", path, err)
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return fmt.Errorf("failed to write migration file %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write migration file %s: %w", path, err)
	}
	return nil
}
