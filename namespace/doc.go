// Package namespace resolves parameterized storage-namespace templates.
//
// A namespace is an ordered tuple of path segments used to scope stored
// memories, e.g. ("memories", "{user_id}"). Segments of the form {name} are
// filled in at call time from a runtime configuration:
//
//	ns := namespace.New("memories", "{user_id}")
//	cfg := runcfg.New().Set("user_id", "u-123")
//	resolved, _ := ns.Resolve(cfg) // ["memories", "u-123"]
//
// Unresolved variables pass through verbatim, so partially-resolved
// namespaces remain recognizable. Passing a nil config falls back to the
// ambient configuration managed by package runcfg.
package namespace
