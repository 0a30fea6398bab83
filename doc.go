// Package promptkit provides text utilities for LLM prompt optimization.
//
// promptkit is a small toolkit designed to be imported à la carte. Each
// subpackage can be used independently:
//
//   - varmask: Protect {name} placeholders while a prompt is rewritten
//   - optschema: Structured-output contract for prompt optimizers
//   - session: Render conversation transcripts with feedback annotations
//   - namespace: Resolve parameterized storage-namespace templates
//   - runcfg: Runtime configuration context with an explicit ambient lifecycle
//
// # Quick Start
//
// Healing an optimizer's rewrite so placeholders survive:
//
//	import "github.com/randalmurphal/promptkit/varmask"
//	h := varmask.FromTemplate(originalPrompt, true)
//	healed, err := h.Pipe(rewrittenPrompt)
//
// Building and enforcing the optimizer contract:
//
//	import "github.com/randalmurphal/promptkit/optschema"
//	s, _ := optschema.New(originalPrompt)
//	out, err := s.Validate(modelReply)
//
// Formatting sessions for an optimization prompt:
//
//	import "github.com/randalmurphal/promptkit/session"
//	text := session.Format([]session.Session{session.Of(msgs)})
//
// # Design Philosophy
//
// promptkit follows these principles:
//
//   - Pure, synchronous string transformations with no hidden state
//   - Each package usable independently
//   - Explicit context passing, with an opt-in ambient fallback
//   - Errors carry everything needed to retry (all missing variables, not
//     just the first)
package promptkit
