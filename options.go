package hydr8

// Scope controls how much of a function's declaration location
// contributes to an auto-resolved config path.
type Scope int

const (
	// ScopeModule resolves to the declaring package's path; every
	// function in the package shares one sub-tree.
	ScopeModule Scope = iota
	// ScopeFunction appends the function's qualified name, giving each
	// function and method its own sub-tree.
	ScopeFunction
)

// settings holds the per-binding configuration collected from options.
type settings struct {
	path      string
	dictParam string
	scope     Scope
}

// Option defines a function type for configuring a binding.
type Option func(*settings)

// WithPath sets an explicit config path, e.g. "db.replicas[0]". Without
// it the path is derived from the bound function's declaration location.
func WithPath(p string) Option {
	return func(s *settings) {
		s.path = p
	}
}

// AsDict directs the entire resolved sub-tree into the named parameter
// instead of matching sub-tree keys to parameters individually.
func AsDict(param string) Option {
	return func(s *settings) {
		s.dictParam = param
	}
}

// WithScope sets the auto-resolve scope. The default is ScopeModule.
func WithScope(scope Scope) Option {
	return func(s *settings) {
		s.scope = scope
	}
}
