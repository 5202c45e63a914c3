package pathing

import "errors"

var (
	// ErrClimbedAboveRoot is an error that occurs when a ".." segment
	// would resolve a path above the point where resolution began.
	ErrClimbedAboveRoot = errors.New("path climbs above the root")
)
