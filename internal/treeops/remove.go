package treeops

import (
	"errors"
	"fmt"
	"path/filepath"
)

// RemoveAll removes path and, for a directory, everything beneath it. Every
// entry of a directory is attempted even when a sibling could not be
// removed; the directory itself is only removed once all of its children
// are gone. A plain file is unlinked directly.
func (t *Handler) RemoveAll(path string) error {
	info, err := t.OSOps.Stat(path)
	if err != nil {
		return fmt.Errorf("(treeops) failed to stat: %w", err)
	}

	if !info.IsDir() {
		if err := t.UnixOps.Unlink(path); err != nil {
			return fmt.Errorf("(treeops) failed to unlink: %w", err)
		}

		return nil
	}

	entries, err := t.OSOps.ReadDir(path)
	if err != nil {
		return fmt.Errorf("(treeops) failed to readdir: %w", err)
	}

	var errs []error

	for _, entry := range entries {
		if err := t.RemoveAll(filepath.Join(path, entry.Name())); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	if err := t.UnixOps.Rmdir(path); err != nil {
		return fmt.Errorf("(treeops) failed to rmdir: %w", err)
	}

	return nil
}
