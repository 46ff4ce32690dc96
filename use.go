package hydr8

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/0xalexb/hydr8/path"
)

// ErrNoPath is returned when a View is created without an explicit path.
var ErrNoPath = errors.New("explicit path required, e.g. Use(\"db\")")

// ErrKeyNotFound is returned by View.Get for a key absent from the
// resolved sub-tree.
var ErrKeyNotFound = errors.New("key not found")

// View is a lazy, read-only mapping view over the sub-tree at a fixed
// config path. Construction never touches the config store; every access
// re-reads the current tree, so a View always reflects the latest Init
// or Override.
type View struct {
	path path.Path
	err  error
}

// Use returns a View over the sub-tree at p. The path is parsed eagerly
// but not resolved until the first access, so Use may be called before
// Init. An empty path is a usage error surfaced on access.
func Use(p string) *View {
	if p == "" {
		return &View{err: ErrNoPath}
	}

	parsed, err := path.Parse(p)

	return &View{path: parsed, err: err}
}

func (v *View) resolve() (map[string]any, error) {
	if v.err != nil {
		return nil, v.err
	}

	cfg, err := Get()
	if err != nil {
		return nil, err
	}

	return subtree(cfg, v.path)
}

// Get returns the value stored under key in the resolved sub-tree.
func (v *View) Get(key string) (any, error) {
	m, err := v.resolve()
	if err != nil {
		return nil, err
	}

	val, ok := m[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q at config path %q", ErrKeyNotFound, key, v.path)
	}

	return val, nil
}

// Has reports whether key exists in the resolved sub-tree.
func (v *View) Has(key string) (bool, error) {
	m, err := v.resolve()
	if err != nil {
		return false, err
	}

	_, ok := m[key]

	return ok, nil
}

// Keys returns the sub-tree's keys in sorted order.
func (v *View) Keys() ([]string, error) {
	m, err := v.resolve()
	if err != nil {
		return nil, err
	}

	return slices.Sorted(maps.Keys(m)), nil
}

// Len returns the number of keys in the resolved sub-tree.
func (v *View) Len() (int, error) {
	m, err := v.resolve()
	if err != nil {
		return 0, err
	}

	return len(m), nil
}

// Map returns a shallow copy of the resolved sub-tree.
func (v *View) Map() (map[string]any, error) {
	m, err := v.resolve()
	if err != nil {
		return nil, err
	}

	return maps.Clone(m), nil
}

// Unmarshal decodes the resolved sub-tree into target, which must be a
// pointer. Field matching follows the same rules as Bind parameters.
func (v *View) Unmarshal(target any) error {
	m, err := v.resolve()
	if err != nil {
		return err
	}

	return decode(m, target)
}
