package treeops

import "errors"

var (
	// ErrDestinationExists is an error that occurs when a copy or move
	// destination already exists and overwriting was not requested.
	ErrDestinationExists = errors.New("destination already exists")

	// ErrHashMismatch is an error that occurs on a source/destination hash
	// mismatch after a file copy, usually indicating transfer or hardware
	// issues on the underlying storage.
	ErrHashMismatch = errors.New("hash mismatch")

	// ErrRenameExists is an error that occurs when the intermediate file is
	// to be renamed to its final filename, but that final filename has
	// appeared on the destination in the meantime.
	ErrRenameExists = errors.New("rename destination already exists")
)
