package hydr8

import (
	"errors"
	"testing"
)

// resetStore returns the process-wide slot to its pristine state.
// Tests touching the slot must not run in parallel.
func resetStore() {
	store.mu.Lock()
	defer store.mu.Unlock()

	store.tree = nil
	store.initialized = false
}

func TestInitAndGet(t *testing.T) {
	resetStore()

	tree := Tree{"db": map[string]any{"host": "localhost"}}
	Init(tree)

	got, err := Get()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got["db"] == nil {
		t.Fatal("expected db key to be present")
	}
}

func TestGetBeforeInitReturnsError(t *testing.T) {
	resetStore()

	_, err := Get()
	if !errors.Is(err, ErrUninitialized) {
		t.Fatalf("expected ErrUninitialized, got %v", err)
	}
}

func TestInitReplacesUnconditionally(t *testing.T) {
	resetStore()

	Init(Tree{"a": 1})
	Init(Tree{"b": 2})

	got, err := Get()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := got["a"]; ok {
		t.Error("expected first tree to be replaced")
	}

	if got["b"] != 2 {
		t.Errorf("expected b to be 2, got %v", got["b"])
	}
}

func TestOverrideRestores(t *testing.T) {
	resetStore()

	Init(Tree{"db": map[string]any{"host": "localhost"}})

	restore := Override(Tree{"db": map[string]any{"host": "override-host"}})

	got, err := Get()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if host := got["db"].(map[string]any)["host"]; host != "override-host" {
		t.Errorf("expected override-host, got %v", host)
	}

	restore()

	got, err = Get()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if host := got["db"].(map[string]any)["host"]; host != "localhost" {
		t.Errorf("expected localhost after restore, got %v", host)
	}
}

func TestOverrideNested(t *testing.T) {
	resetStore()

	Init(Tree{"a": 1})

	restoreB := Override(Tree{"b": 2})
	restoreC := Override(Tree{"c": 3})

	got, _ := Get()
	if got["c"] != 3 {
		t.Errorf("expected innermost override, got %v", got)
	}

	restoreC()

	got, _ = Get()
	if got["b"] != 2 {
		t.Errorf("expected outer override after inner restore, got %v", got)
	}

	restoreB()

	got, _ = Get()
	if got["a"] != 1 {
		t.Errorf("expected original tree after both restores, got %v", got)
	}
}

func TestOverrideRestoresUninitialized(t *testing.T) {
	resetStore()

	restore := Override(Tree{"tmp": true})

	if _, err := Get(); err != nil {
		t.Fatalf("unexpected error during override: %v", err)
	}

	restore()

	_, err := Get()
	if !errors.Is(err, ErrUninitialized) {
		t.Fatalf("expected ErrUninitialized after restore, got %v", err)
	}
}

func TestOverrideRestoreIsIdempotent(t *testing.T) {
	resetStore()

	Init(Tree{"a": 1})

	restoreOuter := Override(Tree{"b": 2})
	restoreInner := Override(Tree{"c": 3})

	restoreInner()
	restoreInner() // second call must not restore past its own scope

	got, _ := Get()
	if got["b"] != 2 {
		t.Errorf("expected outer override to survive double restore, got %v", got)
	}

	restoreOuter()
}

func TestOverrideRestoresOnPanic(t *testing.T) {
	resetStore()

	Init(Tree{"a": 1})

	func() {
		defer func() { _ = recover() }()

		restore := Override(Tree{"b": 2})
		defer restore()

		panic("boom")
	}()

	got, err := Get()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got["a"] != 1 {
		t.Errorf("expected original tree after panic exit, got %v", got)
	}
}
