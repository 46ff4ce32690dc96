// Package hydr8 binds values from an ambient hierarchical configuration
// tree to function parameters, so call sites stop threading config
// through every layer by hand.
//
// The package has three cooperating parts:
//   - a process-wide config slot (Init, Get, Override)
//   - a path resolver (explicit "db.replicas[0]" strings, or paths
//     derived from a function's declaration location; see hydr8/path)
//   - a binder (Bind wraps a function, Use opens a lazy mapping view)
//
// # Binding
//
// Bind wraps a function whose single parameter is a struct; the struct's
// exported fields are the function's parameters. At call time, fields
// the caller did not supply are filled from the sub-tree at the binding's
// config path:
//
//	type connectParams struct {
//	    Host string `hydr8:"host,required"`
//	    Port int
//	}
//
//	connect := hydr8.Bind(func(p connectParams) (*DB, error) {
//	    return dial(p.Host, p.Port)
//	}, hydr8.WithPath("db"))
//
//	db, err := connect(hydr8.Args{"host": "replica-1"}) // port from config
//
// Caller-supplied arguments always take precedence over config values.
// When the caller supplies every declared parameter the config store is
// never consulted, so such calls work before Init.
//
// # Auto-resolved paths
//
// Without WithPath, the config path is derived from where the bound
// function was declared. Leading import-path segments that are not
// top-level keys of the current tree are stripped, so a function in
// github.com/acme/app/data/loaders resolves to "data.loaders" when the
// tree has a top-level "data" key. WithScope(ScopeFunction) appends the
// function's own name, giving each function its own sub-tree.
//
// # Direct access
//
// Use opens a lazy read-only view over a sub-tree. Lookup is deferred to
// each access, so a View can be built before Init and always reflects
// the latest Init or Override:
//
//	db := hydr8.Use("db")
//	host, err := db.Get("host")
//
// # Scoped overrides
//
// Override swaps the active tree for the dynamic extent of a scope and
// restores the previous state, initialized or not, through the returned
// restore function:
//
//	restore := hydr8.Override(hydr8.Tree{"db": map[string]any{"host": "test"}})
//	defer restore()
//
// Trees are built by the caller, typically with the hydr8/source package,
// or installed at application start with the hydr8fx module.
package hydr8
