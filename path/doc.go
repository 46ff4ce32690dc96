// Package path parses and derives config paths: ordered sequences of
// mapping-key and sequence-index segments pointing into a nested
// configuration tree.
//
// # Path Grammar
//
// A path string is a dot-separated list of segments, where a segment may
// carry a single trailing index suffix:
//
//	"db"              -> [db]
//	"db.postgres"     -> [db, postgres]
//	"db.replicas[0]"  -> [db, replicas, 0]
//
// # Auto-Derivation
//
// Locate inspects a function value through the runtime and reports where
// it was declared: the segments of its package import path and of its
// qualified name inside that package (including the receiver type for
// methods). The root hydr8 package turns a Location into a concrete
// config path against the current tree.
package path
