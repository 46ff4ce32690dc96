package hydr8

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/0xalexb/hydr8/path"

	"github.com/go-viper/mapstructure/v2"
)

// TagName is the struct tag inspected on parameter structs. The tag
// value is "name" optionally followed by ",required" or ",remain";
// a name of "-" excludes the field.
const TagName = "hydr8"

// Args carries caller-supplied named arguments for a bound function.
// Argument names are matched case-insensitively against parameter names.
type Args map[string]any

// MissingParameterError is returned when a required parameter is neither
// supplied by the caller nor present in the resolved sub-tree.
type MissingParameterError struct {
	Param string
	Path  string
}

// Error implements the error interface.
func (e MissingParameterError) Error() string {
	return fmt.Sprintf("required parameter %q not supplied and not found at config path %q", e.Param, e.Path)
}

// Bind wraps fn so that parameters the caller leaves unset are filled in
// from the ambient config tree at call time.
//
// P must be a struct; its exported fields are the declared parameters.
// Caller-supplied arguments always win over config values, per parameter.
// When every declared parameter is supplied the config store is not
// touched at all, so fully-applied calls work before Init. A field tagged
// `hydr8:",remain"` collects sub-tree keys that match no parameter;
// without one such keys are ignored.
//
// The parameter metadata is captured once, here; each call resolves the
// config path lazily. Bind panics if P is not a struct or if AsDict names
// a parameter P does not declare, both programming errors.
func Bind[P, R any](fn func(P) (R, error), opts ...Option) func(Args) (R, error) {
	b := newBinding(reflect.TypeFor[P](), opts...)

	if b.settings.path == "" {
		b.loc, b.locErr = path.Locate(fn)
	} else {
		b.parsed, b.parseErr = path.Parse(b.settings.path)
	}

	return func(args Args) (R, error) {
		var zero R

		merged, err := b.merge(args)
		if err != nil {
			return zero, err
		}

		var p P

		err = decode(merged, &p)
		if err != nil {
			return zero, err
		}

		return fn(p)
	}
}

// param describes one declared parameter of a bound function.
type param struct {
	name     string
	required bool
}

// binding is the immutable per-function metadata captured at Bind time.
type binding struct {
	settings settings
	params   []param
	declared map[string]bool
	remain   bool

	loc    path.Location
	locErr error

	parsed   path.Path
	parseErr error
}

func newBinding(t reflect.Type, opts ...Option) *binding {
	var s settings

	for _, apply := range opts {
		apply(&s)
	}

	if t.Kind() != reflect.Struct {
		panic(fmt.Sprintf("hydr8: Bind parameter type must be a struct, got %s", t.Kind()))
	}

	b := &binding{
		settings: s,
		declared: make(map[string]bool),
	}

	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}

		name, tagOpts := parseTag(f.Tag.Get(TagName))
		if name == "-" {
			continue
		}

		if tagOpts.remain {
			b.remain = true

			continue
		}

		if name == "" {
			name = f.Name
		}

		name = strings.ToLower(name)
		b.params = append(b.params, param{name: name, required: tagOpts.required})
		b.declared[name] = true
	}

	if s.dictParam != "" && !b.declared[strings.ToLower(s.dictParam)] {
		panic(fmt.Sprintf("hydr8: AsDict parameter %q is not declared by %s", s.dictParam, t))
	}

	return b
}

type tagOptions struct {
	required bool
	remain   bool
}

func parseTag(tag string) (string, tagOptions) {
	parts := strings.Split(tag, ",")

	var o tagOptions

	for _, part := range parts[1:] {
		switch part {
		case "required":
			o.required = true
		case "remain":
			o.remain = true
		}
	}

	return parts[0], o
}

// merge produces the final argument map for one call: caller args,
// plus config-injected values for parameters the caller left unset.
func (b *binding) merge(args Args) (map[string]any, error) {
	supplied := make(map[string]bool, len(args))
	merged := make(map[string]any, len(args))

	for k, v := range args {
		lk := strings.ToLower(k)
		supplied[lk] = true
		merged[lk] = v
	}

	// Nothing left for the config to provide: skip resolution entirely,
	// the store may not even be initialized.
	if b.satisfied(supplied) {
		return merged, nil
	}

	cfg, err := Get()
	if err != nil {
		return nil, err
	}

	p, err := b.resolvePath(cfg)
	if err != nil {
		return nil, err
	}

	sub, err := subtree(cfg, p)
	if err != nil {
		return nil, err
	}

	if b.settings.dictParam != "" {
		dict := strings.ToLower(b.settings.dictParam)
		if !supplied[dict] {
			merged[dict] = sub
		}
	} else {
		for k, v := range sub {
			lk := strings.ToLower(k)
			if supplied[lk] {
				continue
			}

			if b.declared[lk] || b.remain {
				merged[lk] = v
			}
		}
	}

	for _, prm := range b.params {
		if !prm.required {
			continue
		}

		if _, ok := merged[prm.name]; !ok {
			return nil, MissingParameterError{Param: prm.name, Path: p.String()}
		}
	}

	return merged, nil
}

// satisfied reports whether the caller alone covers every declared
// parameter, or the AsDict parameter when that mode is active.
func (b *binding) satisfied(supplied map[string]bool) bool {
	if b.settings.dictParam != "" {
		return supplied[strings.ToLower(b.settings.dictParam)]
	}

	for _, prm := range b.params {
		if !supplied[prm.name] {
			return false
		}
	}

	return true
}

func (b *binding) resolvePath(cfg Tree) (path.Path, error) {
	if b.settings.path != "" {
		return b.parsed, b.parseErr
	}

	if b.locErr != nil {
		return nil, b.locErr
	}

	return autoPath(b.loc, cfg, b.settings.scope), nil
}

// autoPath derives a config path from a function's declaration location.
// Leading package-path segments that are not top-level keys in cfg are
// assumed to be host/org/project prefixes and stripped, so resolution
// behaves the same however deeply the module nests under its import
// prefix. At least one segment is always kept.
func autoPath(loc path.Location, cfg Tree, scope Scope) path.Path {
	segs := loc.Module

	for len(segs) > 1 {
		if _, ok := cfg[segs[0]]; ok {
			break
		}

		segs = segs[1:]
	}

	p := make(path.Path, 0, len(segs)+len(loc.Qual))

	for _, s := range segs {
		p = append(p, path.Key(s))
	}

	if scope == ScopeFunction {
		for _, s := range loc.Qual {
			p = append(p, path.Key(s))
		}
	}

	return p
}

// decode maps src onto target via mapstructure, with the usual coercion
// hooks for durations and encoding.TextUnmarshaler implementations.
func decode(src map[string]any, target any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: TagName,
		Result:  target,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.TextUnmarshallerHookFunc(),
		),
	})
	if err != nil {
		return err
	}

	return dec.Decode(src)
}
