package jail

import (
	"fmt"
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"jailfs/internal/pathing"
)

// List returns the local paths matching a single-level glob pattern. The
// pattern's directory portion is resolved like any other local path; only
// its basename is matched against the directory's entries. A pattern ending
// in the separator means everything directly under that directory.
func (j *Jail) List(pattern string) ([]pathing.LocalPath, error) {
	if strings.HasSuffix(pattern, pathing.Separator) {
		pattern += "*"
	}

	system, err := j.SystemPath(path.Dir(pattern))
	if err != nil {
		return nil, err
	}

	entries, err := j.osHandler.ReadDir(string(system))
	if err != nil {
		return nil, fmt.Errorf("(jail) failed to readdir: %w", err)
	}

	namePattern := path.Base(pattern)
	locals := make([]pathing.LocalPath, 0, len(entries))

	for _, entry := range entries {
		ok, err := doublestar.Match(namePattern, entry.Name())
		if err != nil {
			return nil, fmt.Errorf("(jail) bad pattern: %w", err)
		}
		if !ok {
			continue
		}

		local, err := j.LocalPath(string(system) + pathing.Separator + entry.Name())
		if err != nil {
			return nil, err
		}
		locals = append(locals, local)
	}

	return locals, nil
}

// Find recursively matches a glob pattern beneath a start directory,
// mapping every result back into the jail's namespace. Results are grouped
// depth-first, a directory's direct matches preceding those of its
// descendants.
func (j *Jail) Find(pattern string, startDir string) ([]pathing.LocalPath, error) {
	system, err := j.SystemPath(startDir)
	if err != nil {
		return nil, err
	}

	matches, err := j.treeHandler.Glob(pattern, string(system))
	if err != nil {
		return nil, fmt.Errorf("(jail) %w", err)
	}

	locals := make([]pathing.LocalPath, 0, len(matches))

	for _, match := range matches {
		local, err := j.LocalPath(match)
		if err != nil {
			return nil, err
		}
		locals = append(locals, local)
	}

	return locals, nil
}
