package treeops

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"jailfs/internal/pathing"
)

// CopyAll copies src to dst, recursing into directories. A destination
// ending in the separator takes the source's basename ("copy into this
// directory" semantics). An existing destination fails with
// [ErrDestinationExists] unless overwrite is set.
//
// For a directory source, every entry is attempted even when an earlier
// sibling failed; the per-entry failures are aggregated into the returned
// error. Entries copied before a failing one are left in place.
func (t *Handler) CopyAll(src string, dst string, overwrite bool) error {
	if strings.HasSuffix(dst, pathing.Separator) {
		dst = filepath.Join(dst, filepath.Base(src))
	}

	if _, err := t.OSOps.Stat(dst); err == nil && !overwrite {
		return fmt.Errorf("(treeops) %w: %s", ErrDestinationExists, dst)
	}

	srcInfo, err := t.OSOps.Stat(src)
	if err != nil {
		return fmt.Errorf("(treeops) failed to stat source: %w", err)
	}

	if !srcInfo.IsDir() {
		if err := t.copyFile(src, dst, srcInfo.Mode().Perm(), overwrite); err != nil {
			return fmt.Errorf("(treeops) failed to copy file: %w", err)
		}

		return nil
	}

	// An already existing destination directory is merged into; anything
	// else has to be creatable or the whole subtree is aborted.
	if dstInfo, err := t.OSOps.Stat(dst); err == nil {
		if !dstInfo.IsDir() {
			return fmt.Errorf("(treeops) %w: %s", ErrDestinationExists, dst)
		}
	} else if errors.Is(err, fs.ErrNotExist) {
		if err := t.UnixOps.Mkdir(dst, uint32(srcInfo.Mode().Perm())); err != nil {
			return fmt.Errorf("(treeops) failed to create directory %s: %w", dst, err)
		}
	} else {
		return fmt.Errorf("(treeops) failed to stat destination: %w", err)
	}

	entries, err := t.OSOps.ReadDir(src)
	if err != nil {
		return fmt.Errorf("(treeops) failed to readdir: %w", err)
	}

	var errs []error

	for _, entry := range entries {
		entrySrc := filepath.Join(src, entry.Name())
		entryDst := filepath.Join(dst, entry.Name())

		if err := t.CopyAll(entrySrc, entryDst, overwrite); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
