// Package runcfg provides the runtime configuration context consumed by
// namespace resolution.
//
// A Config carries a flat "configurable" mapping of substitution values.
// Callers normally pass a Config explicitly; when they don't, resolution
// falls back to a process-wide ambient Config with an explicit lifecycle:
//
//	runcfg.SetAmbient(runcfg.New().Set("user_id", "u-123"))
//	defer runcfg.ClearAmbient()
//
// Ambient returns ErrNoContext when nothing is installed — there is no
// hidden default.
//
// # Files
//
// Load reads YAML or TOML files whose top-level "configurable" table becomes
// Config.Configurable:
//
//	configurable:
//	  user_id: u-123
//	  org: acme
//
// Watcher keeps the ambient configuration in sync with a file on disk for
// long-running hosts.
package runcfg
