package namespace

import (
	"fmt"
	"regexp"

	"github.com/randalmurphal/promptkit/runcfg"
)

// placeholderPattern matches a segment that is exactly one {identifier}.
var placeholderPattern = regexp.MustCompile(`^\{([A-Za-z_][A-Za-z0-9_]*)\}$`)

// Template is an ordered sequence of namespace segments. Segments written as
// {identifier} are positional variables resolved against a runtime
// configuration; everything else is a literal.
//
// A Template is immutable after construction and safe for concurrent use.
type Template struct {
	segments []string
	vars     map[int]string // segment index -> variable name
}

// New builds a Template from ordered segments.
//
//	ns := namespace.New("memories", "{user_id}", "preferences")
func New(segments ...string) *Template {
	t := &Template{
		segments: make([]string, len(segments)),
		vars:     make(map[int]string),
	}
	copy(t.segments, segments)

	for i, seg := range segments {
		if m := placeholderPattern.FindStringSubmatch(seg); m != nil {
			t.vars[i] = m[1]
		}
	}

	return t
}

// Segments returns a copy of the raw template segments.
func (t *Template) Segments() []string {
	out := make([]string, len(t.segments))
	copy(out, t.segments)
	return out
}

// Vars returns the variable names in segment order.
func (t *Template) Vars() []string {
	var names []string
	for i := range t.segments {
		if name, ok := t.vars[i]; ok {
			names = append(names, name)
		}
	}
	return names
}

// Resolve substitutes each variable segment with its value from the
// configurable section of cfg, stringified with fmt.Sprint. A variable
// absent from the configuration passes through as its literal {name} form.
// Literal segments are never touched, and the result always has the same
// length and order as the template.
//
// When cfg is nil the ambient configuration is consulted; if none is
// installed, Resolve fails with runcfg.ErrNoContext. A template with no
// variables resolves without any configuration at all.
func (t *Template) Resolve(cfg *runcfg.Config) ([]string, error) {
	if len(t.vars) == 0 {
		return t.Segments(), nil
	}

	if cfg == nil {
		var err error
		cfg, err = runcfg.Ambient()
		if err != nil {
			return nil, err
		}
	}

	out := make([]string, len(t.segments))
	for i, seg := range t.segments {
		name, isVar := t.vars[i]
		if !isVar {
			out[i] = seg
			continue
		}
		if v, ok := cfg.Value(name); ok {
			out[i] = fmt.Sprint(v)
		} else {
			out[i] = seg
		}
	}

	return out, nil
}
