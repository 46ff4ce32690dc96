package hydr8

import (
	"fmt"

	"github.com/0xalexb/hydr8/path"
)

// NotAMappingError is returned when a config path resolves to a leaf
// value where a mapping was required.
type NotAMappingError struct {
	Path string
}

// Error implements the error interface.
func (e NotAMappingError) Error() string {
	return fmt.Sprintf("config path %q resolved to a leaf value, not a mapping", e.Path)
}

// lookup walks p through node. ok is false when any segment is absent or
// the node at hand has the wrong shape for the segment.
func lookup(node any, p path.Path) (any, bool) {
	for _, seg := range p {
		switch s := seg.(type) {
		case path.Key:
			m, ok := asMapping(node)
			if !ok {
				return nil, false
			}

			node, ok = m[string(s)]
			if !ok {
				return nil, false
			}
		case path.Index:
			xs, ok := node.([]any)
			if !ok || int(s) >= len(xs) {
				return nil, false
			}

			node = xs[int(s)]
		}
	}

	return node, true
}

func asMapping(node any) (map[string]any, bool) {
	switch m := node.(type) {
	case Tree:
		return m, true
	case map[string]any:
		return m, true
	}

	return nil, false
}

// subtree resolves p against tree. Missing branches yield an empty
// sub-tree rather than an error; a leaf value at p is an error.
func subtree(tree Tree, p path.Path) (map[string]any, error) {
	node, ok := lookup(tree, p)
	if !ok {
		return map[string]any{}, nil
	}

	m, ok := asMapping(node)
	if !ok {
		return nil, NotAMappingError{Path: p.String()}
	}

	return m, nil
}
