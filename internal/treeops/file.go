package treeops

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/zeebo/blake3"
)

// copyFile copies a single file through an intermediate temporary file that
// is renamed into place once the transfer has been verified. The source and
// destination streams are hashed on the fly and have to match before the
// rename happens; a failed transfer leaves no temporary file behind.
func (t *Handler) copyFile(src string, dst string, perm os.FileMode, overwrite bool) error {
	var transferComplete bool

	srcFile, err := t.OSOps.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source file: %w", err)
	}
	defer srcFile.Close()

	tmpPath := dst + ".jailfs"
	defer func() {
		if !transferComplete {
			t.UnixOps.Unlink(tmpPath) //nolint:errcheck
		}
	}()

	dstFile, err := t.OSOps.OpenFile(tmpPath, os.O_CREATE|os.O_WRONLY|os.O_EXCL, perm)
	if err != nil {
		return fmt.Errorf("failed to open destination file %s: %w", tmpPath, err)
	}
	defer dstFile.Close()

	srcHasher := blake3.New()
	dstHasher := blake3.New()

	teeReader := io.TeeReader(srcFile, srcHasher)
	multiWriter := io.MultiWriter(dstFile, dstHasher)

	if _, err := io.Copy(multiWriter, teeReader); err != nil {
		return fmt.Errorf("failed to copy file: %w", err)
	}

	if err := dstFile.Sync(); err != nil {
		return fmt.Errorf("failed to sync destination fs: %w", err)
	}

	srcChecksum := hex.EncodeToString(srcHasher.Sum(nil))
	dstChecksum := hex.EncodeToString(dstHasher.Sum(nil))

	if srcChecksum != dstChecksum {
		return fmt.Errorf("%w: %s (src) != %s (dst)", ErrHashMismatch, srcChecksum, dstChecksum)
	}

	if !overwrite {
		if _, err := t.OSOps.Stat(dst); err == nil {
			return ErrRenameExists
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to check rename destination existence: %w", err)
		}
	}

	if err := t.OSOps.Rename(tmpPath, dst); err != nil {
		return fmt.Errorf("failed to rename temporary file to destination file: %w", err)
	}

	transferComplete = true

	return nil
}
