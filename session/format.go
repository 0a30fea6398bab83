package session

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Session pairs a conversation with optional reviewer feedback.
type Session struct {
	Messages []Message
	Feedback string
}

// Of wraps a bare message list in a Session with no feedback.
func Of(msgs []Message) Session {
	return Session{Messages: msgs}
}

// WithFeedback pairs a message list with feedback text.
func WithFeedback(msgs []Message, feedback string) Session {
	return Session{Messages: msgs, Feedback: feedback}
}

// Formatter renders sessions into a single annotated text block. The zero
// value is ready to use; NewID may be overridden to make session
// identifiers deterministic in tests.
type Formatter struct {
	// NewID generates a fresh session identifier per session per call.
	// Defaults to a random 32-character hex token.
	NewID func() string
}

// newID returns a collision-resistant session identifier.
func (f *Formatter) newID() string {
	if f != nil && f.NewID != nil {
		return f.NewID()
	}
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// Format renders sessions in input order. Each session gets a fresh
// identifier and is wrapped in <session_{id}>...</session_{id}> tags around
// its transcript; non-empty feedback is appended inside the wrapper as a
// tagged <FEEDBACK> block. Session blocks are joined by a blank line.
// Empty input yields an empty string.
func (f *Formatter) Format(sessions []Session) string {
	if len(sessions) == 0 {
		return ""
	}

	blocks := make([]string, 0, len(sessions))
	for _, s := range sessions {
		id := f.newID()

		feedback := ""
		if s.Feedback != "" {
			feedback = fmt.Sprintf(
				"\n\nFeedback for session %s:\n<FEEDBACK>\n%s\n</FEEDBACK>",
				id, s.Feedback,
			)
		}

		blocks = append(blocks, fmt.Sprintf(
			"<session_%s>\n%s%s\n</session_%s>",
			id, Conversation(s.Messages), feedback, id,
		))
	}

	return strings.Join(blocks, "\n\n")
}

// FormatMessages renders a single bare session.
func (f *Formatter) FormatMessages(msgs []Message) string {
	if len(msgs) == 0 {
		return ""
	}
	return f.Format([]Session{Of(msgs)})
}

// Format renders sessions with the default Formatter.
func Format(sessions []Session) string {
	var f Formatter
	return f.Format(sessions)
}

// FormatMessages renders one bare session with the default Formatter.
func FormatMessages(msgs []Message) string {
	var f Formatter
	return f.FormatMessages(msgs)
}

// FormatWithFeedback renders one session-plus-feedback pair with the default
// Formatter.
func FormatWithFeedback(msgs []Message, feedback string) string {
	var f Formatter
	return f.Format([]Session{WithFeedback(msgs, feedback)})
}
