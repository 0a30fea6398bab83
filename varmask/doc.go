// Package varmask protects {name} placeholders in prompts that are rewritten
// by automated processes.
//
// A prompt optimizer that rewrites text tends to double braces so they render
// as literals, which corrupts f-string style {name} placeholders — or it drops
// them entirely. varmask solves both: placeholders are temporarily masked to
// opaque tokens, the surrounding text is escaped, and the tokens are restored,
// so the final output carries clean single-braced placeholders while stray
// braces come out doubled.
//
// # Quick Start
//
//	h := varmask.FromTemplate("Translate {text} to {lang}", true)
//	healed, err := h.Pipe(optimizerOutput)
//	if err != nil {
//	    var missing *varmask.MissingVariableError
//	    if errors.As(err, &missing) {
//	        // missing.Vars lists every dropped placeholder
//	    }
//	}
//
// # Pipeline
//
// Pipe applies, in order: required-variable check, mask, escape,
// <TO_OPTIMIZE> tag stripping, unmask. See Healer.Pipe for why the order
// matters.
//
// # Escaping
//
// Escape doubles only unpaired single braces: "{" becomes "{{" while "{{"
// and longer runs are left alone. Escape and Vars are usable standalone
// without building a Healer.
package varmask
