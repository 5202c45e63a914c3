package treeops

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// Glob matches pattern against the entries directly under dir, then
// descends one level at a time: every subdirectory's matches are spliced in
// right after dir's own matches, so results are grouped depth-first with a
// directory's direct matches preceding those of its descendants. Sibling
// order is the enumeration order of the underlying provider.
//
// Unreadable subdirectories do not abort the traversal; their failures are
// aggregated alongside the matches collected so far.
func (t *Handler) Glob(pattern string, dir string) ([]string, error) {
	entries, err := t.OSOps.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("(treeops) failed to readdir: %w", err)
	}

	var matches []string

	for _, entry := range entries {
		ok, err := doublestar.Match(pattern, entry.Name())
		if err != nil {
			return nil, fmt.Errorf("(treeops) bad pattern: %w", err)
		}
		if ok {
			matches = append(matches, filepath.Join(dir, entry.Name()))
		}
	}

	var errs []error

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		subMatches, err := t.Glob(pattern, filepath.Join(dir, entry.Name()))
		if err != nil {
			errs = append(errs, err)
		}
		matches = append(matches, subMatches...)
	}

	return matches, errors.Join(errs...)
}
