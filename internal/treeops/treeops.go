// Package treeops implements the recursive tree primitives: copy, removal
// and glob over raw filesystem paths. The primitives are deliberately
// best-effort: per-entry failures are aggregated across the full traversal
// rather than short-circuiting, and partial effects are never rolled back.
package treeops

import (
	"os"
)

type osProvider interface {
	Open(name string) (*os.File, error)
	OpenFile(name string, flag int, perm os.FileMode) (*os.File, error)
	ReadDir(name string) ([]os.DirEntry, error)
	Rename(oldpath, newpath string) error
	Stat(name string) (os.FileInfo, error)
}

type unixProvider interface {
	Mkdir(path string, mode uint32) error
	Rmdir(path string) error
	Unlink(path string) error
}

// Handler is the principal implementation of the tree primitives. It is
// stateless and safe to share across goroutines operating on disjoint
// subtrees.
type Handler struct {
	OSOps   osProvider
	UnixOps unixProvider
}

// NewHandler returns a pointer to a new tree operations [Handler].
func NewHandler(osOps osProvider, unixOps unixProvider) *Handler {
	return &Handler{
		OSOps:   osOps,
		UnixOps: unixOps,
	}
}
