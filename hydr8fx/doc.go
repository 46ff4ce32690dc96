// Package hydr8fx installs the process-wide hydr8 config tree from an Fx
// application. The module loads a tree when the dependency graph is
// built, provides it to DI as hydr8.Tree, and calls hydr8.Init so bound
// functions and views resolve against it for the lifetime of the app.
//
//	app := fx.New(
//	    hydr8fx.Module(hydr8fx.WithFile("config.yaml")),
//	    fx.Invoke(run),
//	)
package hydr8fx
