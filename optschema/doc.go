// Package optschema defines the structured-output contract for automated
// prompt optimization.
//
// An optimizer is asked to return two fields: an analysis of the current
// results and the improved prompt, with the editable span wrapped in
// <TO_OPTIMIZE> markers. New scans the original prompt for {name}
// placeholders and produces a Schema that both (a) generates the JSON Schema
// to send with the request, with field descriptions enumerating exactly
// which variables must be retained, and (b) validates the optimizer's reply.
//
//	s, _ := optschema.New("Summarize {document} for {audience}")
//	contract, _ := s.MarshalSchema()       // attach to the LLM request
//	out, err := s.Validate(modelReply)     // heal + validate the reply
//
// Validation runs the varmask healing pipeline over improved_prompt before
// structural checks, so a reply that dropped a required placeholder fails
// with *varmask.MissingVariableError while stray braces are escaped rather
// than rejected.
package optschema
