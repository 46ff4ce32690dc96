package hydr8

import (
	"errors"
	"sync"
)

// ErrUninitialized is returned when the config tree is read before Init
// has been called and no Override scope is active.
var ErrUninitialized = errors.New("config not initialized, call Init first")

// Tree is a nested configuration tree: mapping keys over nested
// map[string]any and []any values, as produced by decoding YAML or JSON.
// The library only ever reads a Tree, it never mutates one.
type Tree map[string]any

//nolint:gochecknoglobals // the process-wide config slot is the point of the package.
var store struct {
	mu          sync.RWMutex
	tree        Tree
	initialized bool
}

// Init stores tree as the process-wide config, replacing any previous
// tree unconditionally. The tree's shape is not validated.
func Init(tree Tree) {
	store.mu.Lock()
	defer store.mu.Unlock()

	store.tree = tree
	store.initialized = true
}

// Get returns the current process-wide config tree.
func Get() (Tree, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	if !store.initialized {
		return nil, ErrUninitialized
	}

	return store.tree, nil
}

// Override installs tree as the active config and returns a restore
// function that reinstates the prior state, initialized or not. Pair it
// with defer so restoration runs on every exit path:
//
//	restore := hydr8.Override(tmpTree)
//	defer restore()
//
// Overrides nest; restoring in LIFO order is the caller's responsibility
// and falls out naturally from defer. Calling restore more than once is
// a no-op after the first call.
//
// The slot is a single process-wide cell. Confine overlapping override
// scopes to one goroutine at a time; concurrent readers are safe.
func Override(tree Tree) (restore func()) {
	store.mu.Lock()
	prevTree, prevInit := store.tree, store.initialized
	store.tree, store.initialized = tree, true
	store.mu.Unlock()

	var once sync.Once

	return func() {
		once.Do(func() {
			store.mu.Lock()
			store.tree, store.initialized = prevTree, prevInit
			store.mu.Unlock()
		})
	}
}
