package session

import (
	"strings"
)

// Role identifies the speaker of a message.
type Role string

// Speaker roles. Labels follow the common chat-transcript convention so
// rendered transcripts read naturally alongside other tooling.
const (
	RoleSystem Role = "system"
	RoleHuman  Role = "human"
	RoleAI     Role = "ai"
	RoleTool   Role = "tool"
)

// Message is a single conversational turn.
type Message struct {
	Role    Role
	Content string
}

// roleTitles maps roles to their transcript header titles.
var roleTitles = map[Role]string{
	RoleSystem: "System Message",
	RoleHuman:  "Human Message",
	RoleAI:     "Ai Message",
	RoleTool:   "Tool Message",
}

// headerWidth is the total width of a rendered message header line.
const headerWidth = 80

// PrettyRepr renders the message as a labeled block: a full-width header
// line naming the speaker, a blank line, then the content.
func (m Message) PrettyRepr() string {
	title := roleTitles[m.Role]
	if title == "" {
		title = capitalize(string(m.Role)) + " Message"
	}

	padded := " " + title + " "
	fill := headerWidth - len(padded)
	if fill < 2 {
		fill = 2
	}
	left := fill / 2
	right := fill - left

	var b strings.Builder
	b.WriteString(strings.Repeat("=", left))
	b.WriteString(padded)
	b.WriteString(strings.Repeat("=", right))
	b.WriteString("\n\n")
	b.WriteString(m.Content)
	return b.String()
}

// capitalize upper-cases the first byte of an ASCII role name.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-'a'+'A') + s[1:]
	}
	return s
}

// MergeRuns combines consecutive messages from the same role into one
// message, joining their content with a newline. This keeps one logical turn
// from fragmenting into several adjacent transcript entries. Input order is
// preserved; the input slice is not modified.
func MergeRuns(msgs []Message) []Message {
	if len(msgs) == 0 {
		return nil
	}

	merged := make([]Message, 0, len(msgs))
	for _, m := range msgs {
		last := len(merged) - 1
		if last >= 0 && merged[last].Role == m.Role {
			merged[last].Content = merged[last].Content + "\n" + m.Content
			continue
		}
		merged = append(merged, m)
	}

	return merged
}

// Conversation renders messages as a transcript: runs merged, each message
// pretty-printed, blocks joined by blank lines.
func Conversation(msgs []Message) string {
	merged := MergeRuns(msgs)
	parts := make([]string, len(merged))
	for i, m := range merged {
		parts[i] = m.PrettyRepr()
	}
	return strings.Join(parts, "\n\n")
}
