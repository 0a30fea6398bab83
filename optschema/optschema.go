package optschema

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/xeipuuv/gojsonschema"

	"github.com/randalmurphal/promptkit/varmask"
)

// draft7 pins the generated schema to a draft the instance validator
// understands.
const draft7 = "http://json-schema.org/draft-07/schema#"

// ErrInvalidOutput is returned when a candidate output fails structural
// validation against the contract.
var ErrInvalidOutput = errors.New("optimizer output does not match schema")

// Output is the structured contract a prompt optimizer must produce.
type Output struct {
	// Analysis is the optimizer's reasoning about the current results.
	Analysis string `json:"analysis"`

	// ImprovedPrompt is the rewritten prompt, healed so that required
	// {name} placeholders survive verbatim and stray braces are escaped.
	ImprovedPrompt string `json:"improved_prompt"`
}

// Schema is the structured-output contract for optimizing one prompt. It
// couples a generated JSON Schema (sent to the producer) with a
// pre-validation healing pipeline derived from the original prompt's
// placeholders.
type Schema struct {
	requiredVars []string
	healer       *varmask.Healer

	generated *jsonschema.Schema
	validator *gojsonschema.Schema
}

// New builds the contract for an original prompt. The prompt is scanned for
// {name} placeholders; every one found becomes a required variable that the
// improved prompt must retain verbatim.
func New(originalPrompt string) (*Schema, error) {
	vars := varmask.Vars(originalPrompt)

	s := &Schema{
		requiredVars: vars,
		healer:       varmask.New(vars, true),
	}

	s.generated = reflectOutputSchema(improvedPromptDescription(vars))

	raw, err := json.Marshal(s.generated)
	if err != nil {
		return nil, fmt.Errorf("marshal generated schema: %w", err)
	}
	s.validator, err = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return nil, fmt.Errorf("compile output schema: %w", err)
	}

	return s, nil
}

// MustNew is New for static prompts known to be valid.
func MustNew(originalPrompt string) *Schema {
	s, err := New(originalPrompt)
	if err != nil {
		panic(err)
	}
	return s
}

// RequiredVars returns the placeholder names the improved prompt must keep.
func (s *Schema) RequiredVars() []string {
	out := make([]string, len(s.requiredVars))
	copy(out, s.requiredVars)
	return out
}

// JSONSchema returns the generated contract schema. Callers embed it in a
// structured-output request to the producing model.
func (s *Schema) JSONSchema() *jsonschema.Schema {
	return s.generated
}

// MarshalSchema returns the contract schema as JSON.
func (s *Schema) MarshalSchema() ([]byte, error) {
	return json.MarshalIndent(s.generated, "", "  ")
}

// Validate checks a raw JSON candidate against the contract.
//
// The healing pipeline runs over improved_prompt before structural
// validation: required variables are asserted (a dropped placeholder
// surfaces as *varmask.MissingVariableError), known placeholders are
// protected, stray braces escaped, and <TO_OPTIMIZE> markers stripped. The
// healed document is then validated against the generated schema and
// decoded.
func (s *Schema) Validate(raw []byte) (*Output, error) {
	var data map[string]any
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("decode optimizer output: %w", err)
	}
	return s.ValidateMap(data)
}

// ValidateMap is Validate for callers that already hold decoded data.
// The input map is not modified.
func (s *Schema) ValidateMap(data map[string]any) (*Output, error) {
	healed := make(map[string]any, len(data))
	for k, v := range data {
		healed[k] = v
	}

	// Pre-validation hook: heal the improved prompt before any structural
	// checks. A missing or mistyped field is left for schema validation to
	// report.
	if ip, ok := healed["improved_prompt"].(string); ok {
		fixed, err := s.healer.Pipe(ip)
		if err != nil {
			return nil, err
		}
		healed["improved_prompt"] = fixed
	}

	result, err := s.validator.Validate(gojsonschema.NewGoLoader(healed))
	if err != nil {
		return nil, fmt.Errorf("validate optimizer output: %w", err)
	}
	if !result.Valid() {
		details := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			details = append(details, e.String())
		}
		return nil, fmt.Errorf("%w: %s", ErrInvalidOutput, strings.Join(details, "; "))
	}

	encoded, err := json.Marshal(healed)
	if err != nil {
		return nil, fmt.Errorf("re-encode healed output: %w", err)
	}
	var out Output
	if err := json.Unmarshal(encoded, &out); err != nil {
		return nil, fmt.Errorf("decode healed output: %w", err)
	}

	return &out, nil
}

// reflectOutputSchema generates the Output schema with the dynamic
// improved_prompt description injected.
func reflectOutputSchema(promptDescription string) *jsonschema.Schema {
	r := &jsonschema.Reflector{
		DoNotReference:            true,
		Anonymous:                 true,
		AllowAdditionalProperties: true,
	}
	schema := r.Reflect(&Output{})
	schema.Version = draft7

	if prop, ok := schema.Properties.Get("analysis"); ok {
		prop.Description = "First, analyze the current results and plan improvements to reconcile them."
	}
	if prop, ok := schema.Properties.Get("improved_prompt"); ok {
		prop.Description = promptDescription
	}

	return schema
}

// improvedPromptDescription builds the producer-facing instructions for the
// improved_prompt field, enumerating the variables that must survive.
func improvedPromptDescription(vars []string) string {
	base := "Finally, generate the full updated prompt to address the identified issues. " +
		"Rewrite the section marked by <TO_OPTIMIZE> and </TO_OPTIMIZE> tags, in f-string format. " +
		"Do not include <TO_OPTIMIZE> in your response."

	if len(vars) == 0 {
		return base +
			" The prompt section being optimized contains no input f-string variables." +
			" Any brackets {{ foo }} you emit will be escaped and not used."
	}

	placeholders := make([]string, len(vars))
	for i, v := range vars {
		placeholders[i] = varmask.Placeholder(v)
	}
	return base +
		" The prompt section being optimized contains the following f-string variables to be templated in: " +
		strings.Join(placeholders, ", ") + "." +
		" You must retain all of these variables in your improved prompt. No other input variables are allowed."
}
