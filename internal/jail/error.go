package jail

import "errors"

var (
	// ErrRootIsRelative is an error that occurs when a confinement root is
	// attempted to be established from a relative path.
	ErrRootIsRelative = errors.New("root path is relative")

	// ErrNotUnderRoot is an error that occurs when a raw filesystem path
	// does not fall under the confinement root on backward mapping.
	ErrNotUnderRoot = errors.New("path is not under the root")

	// ErrNotADirectory is an error that occurs when an operation expecting
	// a directory is given a path naming something else.
	ErrNotADirectory = errors.New("not a directory")

	// ErrNotAFile is an error that occurs when an operation expecting a
	// plain file is given a path naming something else.
	ErrNotAFile = errors.New("not a file")

	// ErrDefaultRootAlreadySet is an error that occurs when the one-time
	// process-wide default root was already configured.
	ErrDefaultRootAlreadySet = errors.New("default root already set")
)
