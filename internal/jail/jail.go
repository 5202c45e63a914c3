// Package jail implements a confined view of a filesystem subtree. A root
// directory is established once per [Jail]; every path a caller names is
// interpreted relative to that root and can never resolve to a location
// outside it. Confinement is purely lexical, so paths that do not exist yet
// (copy and mkdir destinations) are confined all the same.
package jail

import (
	"fmt"
	"os"
	"strings"

	"jailfs/internal/pathing"
)

type osProvider interface {
	Getwd() (string, error)
	ReadDir(name string) ([]os.DirEntry, error)
	Rename(oldpath, newpath string) error
	Stat(name string) (os.FileInfo, error)
}

type unixProvider interface {
	Mkdir(path string, mode uint32) error
	Rmdir(path string) error
	Unlink(path string) error
}

type treeProvider interface {
	CopyAll(src string, dst string, overwrite bool) error
	Glob(pattern string, dir string) ([]string, error)
	RemoveAll(path string) error
}

// basePermissions is the fixed base mode for directory creation, reduced by
// the jail's permission mask.
const basePermissions uint32 = 0o777

// Jail is the principal confinement instance. The root never changes after
// construction; the current directory and permission mask are freely
// mutable within their constraints. A Jail is meant to be owned by a single
// logical task and is not internally synchronized.
type Jail struct {
	root pathing.SystemPath
	cwd  pathing.LocalPath
	mask uint32

	osHandler   osProvider
	unixHandler unixProvider
	treeHandler treeProvider
}

// New returns a pointer to a new [Jail] confined to the given root, which
// has to be an absolute path naming an existing directory. The current
// directory starts at the root and the permission mask starts empty.
func New(root string, osHandler osProvider, unixHandler unixProvider, treeHandler treeProvider) (*Jail, error) {
	if !strings.HasPrefix(root, pathing.Separator) {
		return nil, fmt.Errorf("(jail) %w: %s", ErrRootIsRelative, root)
	}

	normalRoot, err := pathing.Normalize(root, pathing.Separator)
	if err != nil {
		return nil, fmt.Errorf("(jail) %w", err)
	}

	info, err := osHandler.Stat(normalRoot)
	if err != nil {
		return nil, fmt.Errorf("(jail) failed to stat root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("(jail) %w: %s", ErrNotADirectory, root)
	}

	return &Jail{
		root:        pathing.SystemPath(normalRoot),
		cwd:         pathing.LocalPath(pathing.Separator),
		osHandler:   osHandler,
		unixHandler: unixHandler,
		treeHandler: treeHandler,
	}, nil
}

// Root returns the jail's confinement root.
func (j *Jail) Root() pathing.SystemPath {
	return j.root
}

// CurrentDirectory returns the jail's logical current directory, relative
// to the root.
func (j *Jail) CurrentDirectory() pathing.LocalPath {
	return j.cwd
}

// PermissionMask returns the jail's umask-style permission mask.
func (j *Jail) PermissionMask() uint32 {
	return j.mask
}

// SetPermissionMask sets the jail's permission mask, affecting only
// subsequent [Jail.Mkdir] calls.
func (j *Jail) SetPermissionMask(mask uint32) {
	j.mask = mask
}
