package jail

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"jailfs/internal/pathing"
	"jailfs/internal/treeops"
)

// rewriteDestination implements the "copy into this directory" shorthand: a
// destination literal ending in the separator takes the source's basename.
// The rewrite happens before any existence check.
func rewriteDestination(src string, dst string) string {
	if strings.HasSuffix(dst, pathing.Separator) {
		dst += path.Base(src)
	}

	return dst
}

// Copy copies a file or directory tree inside the jail. An existing
// destination fails with [treeops.ErrDestinationExists] before any I/O is
// performed, unless overwrite is set. Recursive copies continue past
// per-entry failures and report their aggregate.
func (j *Jail) Copy(src string, dst string, overwrite bool) error {
	srcSystem, err := j.SystemPath(src)
	if err != nil {
		return err
	}

	dstSystem, err := j.SystemPath(rewriteDestination(src, dst))
	if err != nil {
		return err
	}

	if !overwrite {
		if _, err := j.osHandler.Stat(string(dstSystem)); err == nil {
			return fmt.Errorf("(jail) %w: %s", treeops.ErrDestinationExists, dst)
		}
	}

	if err := j.treeHandler.CopyAll(string(srcSystem), string(dstSystem), overwrite); err != nil {
		return fmt.Errorf("(jail) %w", err)
	}

	return nil
}

// Move renames a file or directory tree inside the jail with a single
// atomic rename. There is no cross-device fallback to copy and delete; a
// failing rename is a hard failure. Destination semantics match [Jail.Copy].
func (j *Jail) Move(src string, dst string, overwrite bool) error {
	srcSystem, err := j.SystemPath(src)
	if err != nil {
		return err
	}

	dstSystem, err := j.SystemPath(rewriteDestination(src, dst))
	if err != nil {
		return err
	}

	if !overwrite {
		if _, err := j.osHandler.Stat(string(dstSystem)); err == nil {
			return fmt.Errorf("(jail) %w: %s", treeops.ErrDestinationExists, dst)
		}
	}

	if err := j.osHandler.Rename(string(srcSystem), string(dstSystem)); err != nil {
		return fmt.Errorf("(jail) failed to rename: %w", err)
	}

	return nil
}

// Mkdir creates a directory with mode 0777 reduced by the jail's permission
// mask. With recursive set, missing intermediate directories are created
// root-downward, each with the same masked mode.
func (j *Jail) Mkdir(local string, recursive bool) error {
	system, err := j.SystemPath(local)
	if err != nil {
		return err
	}

	mode := basePermissions &^ j.mask

	if !recursive {
		if err := j.unixHandler.Mkdir(string(system), mode); err != nil {
			return fmt.Errorf("(jail) failed to mkdir: %w", err)
		}

		return nil
	}

	root := strings.TrimSuffix(string(j.root), pathing.Separator)
	current := root

	for _, segment := range strings.Split(strings.TrimPrefix(string(system), root), pathing.Separator) {
		if segment == "" {
			continue
		}
		current += pathing.Separator + segment

		if _, err := j.osHandler.Stat(current); errors.Is(err, fs.ErrNotExist) {
			if err := j.unixHandler.Mkdir(current, mode); err != nil {
				return fmt.Errorf("(jail) failed to mkdir %s: %w", current, err)
			}
		} else if err != nil {
			return fmt.Errorf("(jail) failed to stat while ensuring dir structure: %w", err)
		}
	}

	return nil
}

// RemoveDirectory removes a directory. Without recursive the directory has
// to be empty; with recursive its whole subtree is removed best-effort,
// aggregating per-entry failures.
func (j *Jail) RemoveDirectory(local string, recursive bool) error {
	system, err := j.SystemPath(local)
	if err != nil {
		return err
	}

	info, err := j.osHandler.Stat(string(system))
	if err != nil {
		return fmt.Errorf("(jail) failed to stat: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("(jail) %w: %s", ErrNotADirectory, local)
	}

	if recursive {
		if err := j.treeHandler.RemoveAll(string(system)); err != nil {
			return fmt.Errorf("(jail) %w", err)
		}

		return nil
	}

	if err := j.unixHandler.Rmdir(string(system)); err != nil {
		return fmt.Errorf("(jail) failed to rmdir: %w", err)
	}

	return nil
}

// Remove unlinks a single file, or with recursive set removes the target
// and everything beneath it regardless of kind.
func (j *Jail) Remove(local string, recursive bool) error {
	system, err := j.SystemPath(local)
	if err != nil {
		return err
	}

	if recursive {
		if err := j.treeHandler.RemoveAll(string(system)); err != nil {
			return fmt.Errorf("(jail) %w", err)
		}

		return nil
	}

	info, err := j.osHandler.Stat(string(system))
	if err != nil {
		return fmt.Errorf("(jail) failed to stat: %w", err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("(jail) %w: %s", ErrNotAFile, local)
	}

	if err := j.unixHandler.Unlink(string(system)); err != nil {
		return fmt.Errorf("(jail) failed to unlink: %w", err)
	}

	return nil
}
