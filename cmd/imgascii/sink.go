package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ErrOutputWrite marks a destination file that could not be created or
// written.
var ErrOutputWrite = errors.New("output write failed")

// emit prints the art and, when path is set, persists the same text. The
// console copy is written first so a failed save never suppresses it.
func emit(stdout io.Writer, art string, path string) error {
	fmt.Fprintln(stdout, art)
	if path == "" {
		return nil
	}
	return save(art, path)
}

func save(art, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: %v", ErrOutputWrite, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrOutputWrite, err)
	}
	if _, err := f.WriteString(art); err != nil {
		f.Close()
		return fmt.Errorf("%w: %s: %v", ErrOutputWrite, path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrOutputWrite, path, err)
	}
	return nil
}
