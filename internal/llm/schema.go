package llm

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/ecom-insights/listing-attributes/constants"
)

// BuildAttributesJSONSchema returns a JSON-Schema (draft 2020-12 subset) for
// the ten-attribute response as a generic map. Every key is required and
// either a string or explicitly null; unknown keys are tolerated (they are
// dropped during sanitization rather than rejected here).
func BuildAttributesJSONSchema() map[string]any {
	props := make(map[string]any, 10)
	for _, attr := range constants.Attributes() {
		props[string(attr)] = nullableString()
	}
	// The two counted attributes and the level counts carry digit strings;
	// power carries "<digits>W". Kept as patterns so a numeric model answer
	// fails fast instead of leaking a malformed cell.
	props[string(constants.AttrPower)] = nullablePattern(`^\d+\s*[Ww]$`)
	props[string(constants.AttrSpeedLevels)] = nullablePattern(`^\d+$`)
	props[string(constants.AttrTempLevels)] = nullablePattern(`^\d+$`)
	props[string(constants.AttrAccessoryCount)] = nullablePattern(`^\d+$`)

	return map[string]any{
		"type":       "object",
		"properties": props,
		"required":   constants.AsStringSlice(),
	}
}

func nullableString() map[string]any {
	return map[string]any{"type": []any{"string", "null"}, "minLength": 1}
}

func nullablePattern(pattern string) map[string]any {
	return map[string]any{
		"anyOf": []any{
			map[string]any{"type": "string", "pattern": pattern},
			map[string]any{"type": "null"},
		},
	}
}

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
