package migration

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ResolveDir determines the migrations directory for this invocation.
// An explicit override wins and is created if missing. Otherwise, a
// working directory itself named "migrations" is used directly, so the
// tool behaves when invoked from inside one; failing that, ./migrations
// is used and created when absent.
func ResolveDir(override string) (string, error) {
	if override != "" {
		if err := os.MkdirAll(override, 0755); err != nil {
			return "", fmt.Errorf("failed to create migrations directory %s: %w", override, err)
		}
		return override, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to determine working directory: %w", err)
	}
	if strings.EqualFold(filepath.Base(cwd), "migrations") {
		return cwd, nil
	}

	candidate := filepath.Join(cwd, "migrations")
	if err := os.MkdirAll(candidate, 0755); err != nil {
		return "", fmt.Errorf("failed to create migrations directory %s: %w", candidate, err)
	}
	return candidate, nil
}
