// Package source builds config trees for the root hydr8 package from
// common places: YAML or JSON documents, files, and environment
// variables.
//
// Sources compose with Merge, later trees overriding earlier ones:
//
//	base, err := source.File("config.yaml")
//	if err != nil {
//	    return err
//	}
//
//	hydr8.Init(source.Merge(base, source.Env("MYAPP_")))
//
// Environment values stay strings; the binder's decode hooks coerce them
// into durations and other text-unmarshalable types on injection.
package source
