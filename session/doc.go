// Package session renders conversation transcripts for prompt optimization.
//
// A Session is a list of Messages plus optional reviewer feedback. Format
// turns one or more sessions into a single labeled text block suitable for
// inclusion in an optimizer prompt: consecutive same-role messages are
// merged, each message is rendered with a speaker header, and every session
// is wrapped in <session_{id}> tags carrying a fresh random identifier.
//
//	text := session.Format([]session.Session{
//	    session.Of(msgs1),
//	    session.WithFeedback(msgs2, "too verbose"),
//	})
//
// Identifiers are random per call. Tests that need stable output can set
// Formatter.NewID.
package session
