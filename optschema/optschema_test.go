package optschema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/promptkit/varmask"
)

func TestNew_RequiredVars(t *testing.T) {
	s, err := New("Summarize {document} for {audience}")
	require.NoError(t, err)

	assert.Equal(t, []string{"document", "audience"}, s.RequiredVars())
}

func TestNew_NoVars(t *testing.T) {
	s, err := New("You are a helpful assistant.")
	require.NoError(t, err)

	assert.Empty(t, s.RequiredVars())
}

func TestSchema_JSONSchema_Fields(t *testing.T) {
	s := MustNew("Translate {text}")

	raw, err := s.MarshalSchema()
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	props, ok := decoded["properties"].(map[string]any)
	require.True(t, ok, "schema has no properties: %s", raw)
	assert.Contains(t, props, "analysis")
	assert.Contains(t, props, "improved_prompt")

	required, ok := decoded["required"].([]any)
	require.True(t, ok)
	assert.ElementsMatch(t, []any{"analysis", "improved_prompt"}, required)
}

func TestSchema_Description_EnumeratesVars(t *testing.T) {
	s := MustNew("Translate {text} into {lang}")

	raw, err := s.MarshalSchema()
	require.NoError(t, err)

	text := string(raw)
	assert.Contains(t, text, "{text}")
	assert.Contains(t, text, "{lang}")
	assert.Contains(t, text, "retain all of these variables")
	assert.Contains(t, text, "TO_OPTIMIZE")
}

func TestSchema_Description_NoVars(t *testing.T) {
	s := MustNew("plain prompt")

	raw, err := s.MarshalSchema()
	require.NoError(t, err)

	assert.Contains(t, string(raw), "contains no input f-string variables")
	assert.Contains(t, string(raw), "will be escaped")
}

func TestSchema_Validate_HappyPath(t *testing.T) {
	s := MustNew("Summarize {document}")

	out, err := s.Validate([]byte(`{
		"analysis": "the prompt is vague",
		"improved_prompt": "<TO_OPTIMIZE>Carefully summarize {document} in three bullets.</TO_OPTIMIZE>"
	}`))
	require.NoError(t, err)

	assert.Equal(t, "the prompt is vague", out.Analysis)
	assert.Equal(t, "Carefully summarize {document} in three bullets.", out.ImprovedPrompt)
}

func TestSchema_Validate_MissingVariable(t *testing.T) {
	s := MustNew("Summarize {document}")

	_, err := s.Validate([]byte(`{
		"analysis": "looks fine",
		"improved_prompt": "Summarize the input in three bullets."
	}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, varmask.ErrMissingVariable)

	var missing *varmask.MissingVariableError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"document"}, missing.Vars)
}

func TestSchema_Validate_StrayBracesEscaped(t *testing.T) {
	s := MustNew("Summarize {document}")

	out, err := s.Validate([]byte(`{
		"analysis": "ok",
		"improved_prompt": "Summarize {document} as {json} output"
	}`))
	require.NoError(t, err)

	assert.Equal(t, "Summarize {document} as {{json}} output", out.ImprovedPrompt)
}

func TestSchema_Validate_MissingField(t *testing.T) {
	s := MustNew("Summarize {document}")

	_, err := s.Validate([]byte(`{"analysis": "only analysis"}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidOutput)
	assert.Contains(t, err.Error(), "improved_prompt")
}

func TestSchema_Validate_WrongType(t *testing.T) {
	s := MustNew("Summarize {document}")

	_, err := s.Validate([]byte(`{"analysis": "a", "improved_prompt": 7}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestSchema_Validate_HookRunsBeforeStructuralChecks(t *testing.T) {
	s := MustNew("Summarize {document}")

	// Both defects present: the healing hook's missing-variable error wins
	// over the structural type error on analysis.
	_, err := s.Validate([]byte(`{"analysis": 1, "improved_prompt": "no placeholder"}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, varmask.ErrMissingVariable)
}

func TestSchema_Validate_BadJSON(t *testing.T) {
	s := MustNew("prompt")

	_, err := s.Validate([]byte(`{not json`))
	assert.Error(t, err)
}

func TestSchema_ValidateMap_DoesNotMutateInput(t *testing.T) {
	s := MustNew("Keep {x}")

	data := map[string]any{
		"analysis":        "a",
		"improved_prompt": "stray {brace} with {x}",
	}
	_, err := s.ValidateMap(data)
	require.NoError(t, err)

	assert.Equal(t, "stray {brace} with {x}", data["improved_prompt"])
}

func TestSchema_Validate_NoVarsEscapesEverything(t *testing.T) {
	s := MustNew("no variables here")

	out, err := s.Validate([]byte(`{
		"analysis": "a",
		"improved_prompt": "emit {literal} braces"
	}`))
	require.NoError(t, err)

	assert.Equal(t, "emit {{literal}} braces", out.ImprovedPrompt)
}
