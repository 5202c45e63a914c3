package jail

import (
	"fmt"
)

// IsFile reports whether the local path names an existing regular file.
// Paths that cannot be confined report false rather than an error.
func (j *Jail) IsFile(local string) bool {
	system, err := j.SystemPath(local)
	if err != nil {
		return false
	}

	info, err := j.osHandler.Stat(string(system))

	return err == nil && info.Mode().IsRegular()
}

// IsDirectory reports whether the local path names an existing directory.
// Paths that cannot be confined report false rather than an error.
func (j *Jail) IsDirectory(local string) bool {
	system, err := j.SystemPath(local)
	if err != nil {
		return false
	}

	info, err := j.osHandler.Stat(string(system))

	return err == nil && info.IsDir()
}

// ChangeDirectory moves the jail's logical current directory. The target
// has to both confine and name an existing directory; on any failure the
// current directory is left unchanged.
func (j *Jail) ChangeDirectory(local string) error {
	resolved, err := j.ResolveLocal(local)
	if err != nil {
		return err
	}

	system := j.systemFor(resolved)

	info, err := j.osHandler.Stat(string(system))
	if err != nil {
		return fmt.Errorf("(jail) failed to stat: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("(jail) %w: %s", ErrNotADirectory, local)
	}

	j.cwd = resolved

	return nil
}
