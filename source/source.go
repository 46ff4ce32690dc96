package source

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/0xalexb/hydr8"

	"github.com/goccy/go-yaml"
)

// ErrPathIsDirectory is returned when the path given to File points to a
// directory instead of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// ErrUnsupportedFormat is returned when File cannot tell the format from
// the file extension.
var ErrUnsupportedFormat = errors.New("unsupported config file format")

// YAML decodes a YAML document from r into a config tree.
func YAML(r io.Reader) (hydr8.Tree, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading data error: %w", err)
	}

	var m map[string]any

	err = yaml.Unmarshal(data, &m)
	if err != nil {
		return nil, fmt.Errorf("parsing yaml error: %w", err)
	}

	return hydr8.Tree(m), nil
}

// JSON decodes a JSON document from r into a config tree.
func JSON(r io.Reader) (hydr8.Tree, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading data error: %w", err)
	}

	var m map[string]any

	err = json.Unmarshal(data, &m)
	if err != nil {
		return nil, fmt.Errorf("parsing json error: %w", err)
	}

	return hydr8.Tree(m), nil
}

// File reads a config tree from the file at fpath, picking the decoder
// by extension: .yaml/.yml or .json.
func File(fpath string) (hydr8.Tree, error) {
	cleanPath := filepath.Clean(fpath)

	stat, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("stat file %q: %w", cleanPath, err)
	}

	if stat.IsDir() {
		return nil, fmt.Errorf("path %q: %w", cleanPath, ErrPathIsDirectory)
	}

	f, err := os.Open(cleanPath) // #nosec G304 -- path is cleaned and validated
	if err != nil {
		return nil, fmt.Errorf("opening file %q: %w", cleanPath, err)
	}

	defer func() { _ = f.Close() }()

	switch strings.ToLower(filepath.Ext(cleanPath)) {
	case ".yaml", ".yml":
		return YAML(f)
	case ".json":
		return JSON(f)
	default:
		return nil, fmt.Errorf("file %q: %w", cleanPath, ErrUnsupportedFormat)
	}
}

// Env builds a config tree from environment variables carrying the given
// prefix. The prefix is stripped, the rest is lower-cased and split on
// underscores into nested keys: MYAPP_DB_HOST=x becomes {db: {host: x}}.
// Values are kept as strings.
func Env(prefix string) hydr8.Tree {
	tree := make(map[string]any)

	for _, pair := range os.Environ() {
		k, v, ok := strings.Cut(pair, "=")
		if !ok || !strings.HasPrefix(k, prefix) {
			continue
		}

		name := strings.TrimPrefix(k, prefix)
		if name == "" {
			continue
		}

		setLeaf(tree, strings.Split(strings.ToLower(name), "_"), v)
	}

	return hydr8.Tree(tree)
}

func setLeaf(tree map[string]any, segs []string, v string) {
	for len(segs) > 1 {
		next, ok := tree[segs[0]].(map[string]any)
		if !ok {
			next = make(map[string]any)
			tree[segs[0]] = next
		}

		tree = next
		segs = segs[1:]
	}

	tree[segs[0]] = v
}

// Merge combines trees left to right; later trees override earlier ones.
// Mappings merge recursively, any other value is replaced wholesale. The
// inputs are never mutated.
func Merge(trees ...hydr8.Tree) hydr8.Tree {
	out := make(map[string]any)

	for _, t := range trees {
		mergeMap(out, t)
	}

	return hydr8.Tree(out)
}

func mergeMap(dst, src map[string]any) {
	for k, v := range src {
		sv, srcIsMap := asMap(v)
		if !srcIsMap {
			dst[k] = v

			continue
		}

		dv, dstIsMap := asMap(dst[k])
		if !dstIsMap {
			dv = make(map[string]any, len(sv))
			dst[k] = dv
		}

		mergeMap(dv, sv)
	}
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case hydr8.Tree:
		return m, true
	}

	return nil, false
}
