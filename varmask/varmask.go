package varmask

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// varPattern matches a {name} placeholder. The capture is lazy and does not
// cross newlines, so "{a} {b}" yields two variables rather than one.
var varPattern = regexp.MustCompile(`\{(.+?)\}`)

// stripOptimizePattern matches a <TO_OPTIMIZE ...> opening tag (attributes
// allowed, newlines allowed inside the tag) or a </TO_OPTIMIZE> closing tag.
var stripOptimizePattern = regexp.MustCompile(`(?s)<TO_OPTIMIZE.*?>|</TO_OPTIMIZE>`)

// Vars extracts placeholder names from a template string.
// Returns a deduplicated list in first-seen order.
func Vars(templateStr string) []string {
	seen := make(map[string]bool)
	var result []string

	for _, match := range varPattern.FindAllStringSubmatch(templateStr, -1) {
		name := match[1]
		if !seen[name] {
			seen[name] = true
			result = append(result, name)
		}
	}

	return result
}

// Healer protects {name} placeholders in text that is rewritten by a process
// whose own brace handling would otherwise corrupt them. It temporarily
// replaces each known placeholder with an opaque token, escapes any remaining
// single braces, and restores the placeholders afterwards.
//
// Tokens are freshly generated per Healer and never collide with each other
// or with realistic text content.
type Healer struct {
	vars        []string
	allRequired bool

	maskTokens   map[string]string // "{name}" -> token
	unmaskTokens map[string]string // token -> "{name}"
	maskPattern  *regexp.Regexp
	unmaskRegexp *regexp.Regexp
}

// New builds a Healer for the given variable names. Names are placeholder
// names without braces. When allRequired is true, Pipe and AssertAllRequired
// fail unless every {name} appears verbatim in the input.
func New(vars []string, allRequired bool) *Healer {
	// Dedupe and sort longest-first so that alternation matching is
	// deterministic regardless of input order.
	seen := make(map[string]bool, len(vars))
	names := make([]string, 0, len(vars))
	for _, v := range vars {
		if !seen[v] {
			seen[v] = true
			names = append(names, v)
		}
	}
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) > len(names[j])
		}
		return names[i] < names[j]
	})

	h := &Healer{
		vars:         names,
		allRequired:  allRequired,
		maskTokens:   make(map[string]string, len(names)),
		unmaskTokens: make(map[string]string, len(names)),
	}

	if len(names) == 0 {
		return h
	}

	maskAlts := make([]string, 0, len(names))
	unmaskAlts := make([]string, 0, len(names))
	for _, name := range names {
		placeholder := "{" + name + "}"
		token := strings.ReplaceAll(uuid.NewString(), "-", "")
		h.maskTokens[placeholder] = token
		h.unmaskTokens[token] = placeholder
		maskAlts = append(maskAlts, regexp.QuoteMeta(placeholder))
		unmaskAlts = append(unmaskAlts, regexp.QuoteMeta(token))
	}

	h.maskPattern = regexp.MustCompile(strings.Join(maskAlts, "|"))
	h.unmaskRegexp = regexp.MustCompile(strings.Join(unmaskAlts, "|"))

	return h
}

// FromTemplate builds a Healer from the placeholders found in templateStr.
func FromTemplate(templateStr string, allRequired bool) *Healer {
	return New(Vars(templateStr), allRequired)
}

// Vars returns the variable names the healer protects, longest-first.
func (h *Healer) Vars() []string {
	out := make([]string, len(h.vars))
	copy(out, h.vars)
	return out
}

// Escape doubles every unpaired single brace so downstream template engines
// treat it as a literal.
//
// Grammar: the input is scanned left to right into maximal runs of identical
// braces. A run of exactly one brace is emitted doubled; a run of two or more
// is emitted verbatim. So "{" becomes "{{", "{{" stays "{{", and "{{{" stays
// "{{{" (every brace in the run already has a brace neighbor).
func Escape(input string) string {
	var b strings.Builder
	b.Grow(len(input) + len(input)/4)

	for i := 0; i < len(input); {
		c := input[i]
		if c != '{' && c != '}' {
			b.WriteByte(c)
			i++
			continue
		}
		j := i
		for j < len(input) && input[j] == c {
			j++
		}
		run := input[i:j]
		if len(run) == 1 {
			b.WriteByte(c)
			b.WriteByte(c)
		} else {
			b.WriteString(run)
		}
		i = j
	}

	return b.String()
}

// Escape doubles unpaired single braces. See the package-level Escape.
func (h *Healer) Escape(input string) string {
	return Escape(input)
}

// Mask replaces every known {name} placeholder with its opaque token.
// Unrecognized text is left untouched.
func (h *Healer) Mask(input string) string {
	if h.maskPattern == nil {
		return input
	}
	return h.maskPattern.ReplaceAllStringFunc(input, func(m string) string {
		return h.maskTokens[m]
	})
}

// Unmask is the inverse of Mask, restoring {name} placeholders.
func (h *Healer) Unmask(input string) string {
	if h.unmaskRegexp == nil {
		return input
	}
	return h.unmaskRegexp.ReplaceAllStringFunc(input, func(m string) string {
		return h.unmaskTokens[m]
	})
}

// AssertAllRequired verifies that every protected {name} appears verbatim in
// the input. It is a no-op unless the healer was built with allRequired.
// On failure the returned error is a *MissingVariableError naming every
// absent variable, not just the first.
func (h *Healer) AssertAllRequired(input string) error {
	if !h.allRequired {
		return nil
	}

	var missing []string
	for _, name := range h.vars {
		if !strings.Contains(input, "{"+name+"}") {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return &MissingVariableError{Vars: missing}
	}

	return nil
}

// Pipe runs the full healing pipeline over a candidate rewrite:
//
//  1. verify required variables are present
//  2. mask known placeholders to opaque tokens
//  3. escape remaining single braces
//  4. strip <TO_OPTIMIZE ...> and </TO_OPTIMIZE> tags
//  5. unmask tokens back to {name} form
//
// The ordering is load-bearing: masking before escaping keeps placeholder
// braces single, tag stripping after escaping cannot re-expose raw braces,
// and unmasking last yields clean {name} placeholders in the output.
//
// With an empty variable set the pipeline reduces to Escape alone; use
// StripOptimizeTags directly if tag removal is still wanted.
func (h *Healer) Pipe(input string) (string, error) {
	if len(h.vars) == 0 {
		return Escape(input), nil
	}

	if err := h.AssertAllRequired(input); err != nil {
		return "", err
	}

	result := h.Mask(input)
	result = Escape(result)
	result = stripOptimizePattern.ReplaceAllString(result, "")
	result = h.Unmask(result)

	return result, nil
}

// StripOptimizeTags removes <TO_OPTIMIZE ...> and </TO_OPTIMIZE> markers
// without touching the content between them.
func StripOptimizeTags(input string) string {
	return stripOptimizePattern.ReplaceAllString(input, "")
}

// Placeholder wraps a variable name in braces.
func Placeholder(name string) string {
	return fmt.Sprintf("{%s}", name)
}
