// Package pathing implements the lexical path normalization at the heart of
// the jail: arbitrary path strings are reduced to canonical segments by
// string manipulation alone, so that paths can be confined before they ever
// exist on disk.
package pathing

import (
	"fmt"
	"strings"
)

// Separator is the path separator of the jail's namespace.
const Separator = "/"

// LocalPath is a path in the caller-facing namespace, expressed relative to
// a jail's root directory. It is a distinct type so that an unconfined
// string cannot be handed to a filesystem primitive by accident.
type LocalPath string

func (p LocalPath) String() string {
	return string(p)
}

// SystemPath is a fully resolved, absolute filesystem path. Only paths of
// this type ever reach the actual filesystem primitives.
type SystemPath string

func (p SystemPath) String() string {
	return string(p)
}

// Normalize reduces a path to its canonical form without consulting the
// filesystem. A path not beginning with [Separator] is first prefixed with
// relativeTo. Empty and "." segments are dropped, ".." pops the previously
// accepted segment. Popping past the point where resolution began fails
// with [ErrClimbedAboveRoot]; this is the confinement check.
//
// The function is idempotent: normalizing an already-normalized path
// relative to [Separator] returns it unchanged.
func Normalize(path string, relativeTo string) (string, error) {
	if !strings.HasPrefix(path, Separator) {
		path = relativeTo + Separator + path
	}

	segments := strings.Split(path, Separator)
	stack := make([]string, 0, len(segments))

	for _, segment := range segments {
		switch segment {
		case "", ".":
			continue

		case "..":
			if len(stack) == 0 {
				return "", fmt.Errorf("(pathing) %w: %s", ErrClimbedAboveRoot, path)
			}
			stack = stack[:len(stack)-1]

		default:
			stack = append(stack, segment)
		}
	}

	result := strings.Join(stack, Separator)

	if strings.HasPrefix(path, Separator) {
		result = Separator + result
	}

	return result, nil
}
