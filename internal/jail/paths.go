package jail

import (
	"fmt"
	"strings"

	"jailfs/internal/pathing"
)

// ResolveLocal normalizes a local path against the jail's current
// directory. Relative inputs resolve against the current directory, not the
// root.
func (j *Jail) ResolveLocal(local string) (pathing.LocalPath, error) {
	resolved, err := pathing.Normalize(local, string(j.cwd))
	if err != nil {
		return "", fmt.Errorf("(jail) %w", err)
	}

	return pathing.LocalPath(resolved), nil
}

// SystemPath maps a local path to the real filesystem path beneath the
// root. An empty remainder maps to the root itself. This is the only way
// paths reach the filesystem primitives.
func (j *Jail) SystemPath(local string) (pathing.SystemPath, error) {
	resolved, err := j.ResolveLocal(local)
	if err != nil {
		return "", err
	}

	return j.systemFor(resolved), nil
}

// systemFor concatenates the root with an already resolved local path,
// stripping the trailing separator.
func (j *Jail) systemFor(resolved pathing.LocalPath) pathing.SystemPath {
	root := strings.TrimSuffix(string(j.root), pathing.Separator)

	system := strings.TrimSuffix(root+string(resolved), pathing.Separator)
	if system == "" {
		system = string(j.root)
	}

	return pathing.SystemPath(system)
}

// LocalPath maps a raw filesystem path back into the jail's namespace. The
// input is normalized against the process working directory, since it is a
// genuine filesystem path independent of the jail's logical location. Paths
// outside the root fail with [ErrNotUnderRoot]; the containment check is
// segment-aware, so a sibling directory sharing the root as a string prefix
// does not pass.
//
// LocalPath is the exact inverse of [Jail.SystemPath]: for every resolvable
// local path p, LocalPath(SystemPath(p)) equals ResolveLocal(p).
func (j *Jail) LocalPath(system string) (pathing.LocalPath, error) {
	wd, err := j.osHandler.Getwd()
	if err != nil {
		return "", fmt.Errorf("(jail) failed to get working directory: %w", err)
	}

	normalized, err := pathing.Normalize(system, wd)
	if err != nil {
		return "", fmt.Errorf("(jail) %w", err)
	}

	root := strings.TrimSuffix(string(j.root), pathing.Separator)

	switch {
	case normalized == string(j.root):
		return pathing.LocalPath(pathing.Separator), nil

	case strings.HasPrefix(normalized, root+pathing.Separator):
		return pathing.LocalPath(strings.TrimPrefix(normalized, root)), nil

	default:
		return "", fmt.Errorf("(jail) %w: %s", ErrNotUnderRoot, system)
	}
}
