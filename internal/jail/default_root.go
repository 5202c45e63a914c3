package jail

import (
	"fmt"
	"sync"

	"jailfs/internal/pathing"
)

// DefaultRoot is the process-wide root directory used when a caller does
// not name one. It implicitly equals the filesystem root until set, and can
// be set exactly once; later attempts fail and leave the value intact.
//
// The registry is an explicit value rather than a hidden static, so tests
// can construct a fresh one per run. It is the only internally synchronized
// piece of the package, being shared process-wide by definition.
type DefaultRoot struct {
	mu    sync.Mutex
	value string
	set   bool

	osHandler osProvider
}

// NewDefaultRoot returns a pointer to a new, unset [DefaultRoot].
func NewDefaultRoot(osHandler osProvider) *DefaultRoot {
	return &DefaultRoot{
		value:     pathing.Separator,
		osHandler: osHandler,
	}
}

// Get returns the configured default root, or the filesystem root if none
// was ever set.
func (d *DefaultRoot) Get() string {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.value
}

// Set establishes the default root exactly once. A relative argument is
// resolved against the process working directory; the result has to name an
// existing directory. A second call fails with [ErrDefaultRootAlreadySet].
func (d *DefaultRoot) Set(root string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.set {
		return fmt.Errorf("(jail) %w", ErrDefaultRootAlreadySet)
	}

	wd, err := d.osHandler.Getwd()
	if err != nil {
		return fmt.Errorf("(jail) failed to get working directory: %w", err)
	}

	normalized, err := pathing.Normalize(root, wd)
	if err != nil {
		return fmt.Errorf("(jail) %w", err)
	}

	info, err := d.osHandler.Stat(normalized)
	if err != nil {
		return fmt.Errorf("(jail) failed to stat: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("(jail) %w: %s", ErrNotADirectory, root)
	}

	d.value = normalized
	d.set = true

	return nil
}
