package llm

import (
	"strings"
)

// BuildSystemPrompt composes the fixed instruction template: extract the ten
// attributes, answer with a strict JSON object, leave anything uncertain
// explicitly null.
func BuildSystemPrompt() string {
	parts := []string{
		"You are a product data analyst. Extract key attributes from the product listing below.",
		"Return ONLY a JSON object with exactly these ten keys:",
		`"color" (one primary color, e.g. black, white, gold, silver),`,
		`"storage_case" (yes if a storage box/case/pouch is included),`,
		`"power" (rated power between 500 and 2000 watts, with unit, e.g. "1200W"),`,
		`"speed_levels" (number of airflow speed settings, digits only, e.g. "2"),`,
		`"temp_levels" (number of temperature settings, digits only, e.g. "3"),`,
		`"constant_temp" (yes if constant-temperature control is advertised),`,
		`"negative_ions" (yes if a negative-ion function is advertised),`,
		`"high_concentration_ions" (yes only if a high ion concentration is claimed),`,
		`"motor_class" (exactly "high-speed" or "low-speed"),`,
		`"accessory_count" (number of included attachments, digits only, e.g. "4").`,
		"Only fill in attributes you are certain about; every uncertain attribute MUST be null.",
		"Do not add any explanation or extra keys. Output the JSON object only.",
	}
	return strings.Join(parts, " ")
}

// BuildUserPrompt packages the record's labeled fields, preserving their
// labels so the model can weight title vs. parameter text.
func BuildUserPrompt(fields []Field) string {
	var b strings.Builder
	b.WriteString("Product listing:\n\n")
	for _, f := range fields {
		v := strings.TrimSpace(f.Value)
		if v == "" {
			continue
		}
		b.WriteString(f.Name)
		b.WriteString(": ")
		b.WriteString(v)
		b.WriteString("\n\n")
	}
	return b.String()
}
