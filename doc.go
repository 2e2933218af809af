// File: nest/doc.go

// Package nest provides path-addressable access to existing nested data
// structures built from maps and slices, such as parsed JSON, YAML, or
// TOML documents.
//
// Values are read, written, and removed via a path notation (default:
// dot-separated), including wildcard pattern iteration, without ever
// copying the wrapped structure: a Nest is a view, and mutations through
// it are visible to every other holder of the same structure.
//
// Features:
//   - Get/Set/Has/Delete primitives over string paths or pre-split segments
//   - Silent failure mode (absent paths yield nil/no-op) or strict mode
//     with structured, code-tagged errors
//   - Lazy wildcard iteration, filtering, and first-match search
//   - Sequence append via a reserved symbol ('+' by default)
//   - Typed getters with automatic conversion (String, Int64, Bool, Float64)
//   - Struct decoding of sub-trees via mapstructure
//   - TOML/JSON/YAML document loading and atomic saving
//   - Configurable separator, wildcard, and append symbols
//
// Quick Start:
//
//	doc := map[string]any{
//	    "users": []any{
//	        map[string]any{"name": "Peter", "age": 45},
//	        map[string]any{"name": "John", "age": 13},
//	    },
//	}
//
//	n, err := nest.New(doc)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	name, _ := n.Get("users.1.name")       // "John"
//	_ = n.Set("users.0.age", 46)
//	_ = n.Set("users.+", map[string]any{"name": "Luke"})
//
//	for m, err := range n.IterPattern("users.*.name") {
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(m.Path, "=", m.Value)
//	}
//
// Failure Modes:
//
// By default a Nest fails silently: Get returns nil for unresolvable
// paths and Set is a no-op. Strict mode (Options.SilentFail = false)
// surfaces typed errors instead; classify them with IsTraversalError,
// IsNotFound, IsRangeError, and friends. Has and Delete always return
// booleans and never an error, in either mode.
//
// Concurrency:
//
// A Nest performs no locking and no copying. Concurrent mutation of the
// shared structure must be serialized by the caller.
package nest
