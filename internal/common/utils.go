package common

import (
	"crypto/sha256"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// NewLogger builds the JSON logger every command shares. Quiet mode keeps
// only errors so stdout output stays machine-consumable.
func NewLogger(quiet bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if quiet {
		logLevel = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}

// ContentHash computes SHA256 hash of content and returns hex string.
func ContentHash(data []byte) string {
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%x", hash)
}

// CollectInputs expands and validates input arguments into a flat file list.
// Each argument is a file path or a glob pattern; directories contribute
// their immediate files. Returns (valid paths, invalid arguments).
func CollectInputs(args []string) ([]string, []string) {
	var inputs []string
	var invalid []string
	seen := map[string]struct{}{}

	add := func(path string) {
		if _, dup := seen[path]; dup {
			return
		}
		seen[path] = struct{}{}
		inputs = append(inputs, path)
	}

	for _, arg := range args {
		arg = strings.TrimSpace(arg)
		if arg == "" {
			continue
		}

		info, err := os.Stat(arg)
		if err == nil {
			if !info.IsDir() {
				add(arg)
				continue
			}
			entries, err := os.ReadDir(arg)
			if err != nil {
				invalid = append(invalid, arg)
				continue
			}
			found := false
			for _, entry := range entries {
				if !entry.IsDir() {
					add(filepath.Join(arg, entry.Name()))
					found = true
				}
			}
			if !found {
				invalid = append(invalid, arg)
			}
			continue
		}

		// Not a plain path; try it as a glob pattern.
		matches, globErr := filepath.Glob(arg)
		if globErr != nil || len(matches) == 0 {
			invalid = append(invalid, arg)
			continue
		}
		for _, match := range matches {
			if info, err := os.Stat(match); err == nil && !info.IsDir() {
				add(match)
			}
		}
	}

	return inputs, invalid
}
