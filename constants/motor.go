package constants

import "strings"

// MotorClass is the binary drive-mechanism tier of a product.
type MotorClass string

const (
	MotorHighSpeed MotorClass = "high-speed"
	MotorLowSpeed  MotorClass = "low-speed"
)

// CanonicalizeMotorClass maps free-form motor labels (including the labels
// used in the source exports and typical LLM phrasings) onto a MotorClass.
func CanonicalizeMotorClass(input string) (MotorClass, bool) {
	if input == "" {
		return "", false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))

	synonyms := map[string]MotorClass{
		"high-speed":       MotorHighSpeed,
		"high speed":       MotorHighSpeed,
		"high-speed motor": MotorHighSpeed,
		"high speed motor": MotorHighSpeed,
		"高速马达":             MotorHighSpeed,
		"高速电机":             MotorHighSpeed,
		"low-speed":        MotorLowSpeed,
		"low speed":        MotorLowSpeed,
		"low-speed motor":  MotorLowSpeed,
		"low speed motor":  MotorLowSpeed,
		"低速马达":             MotorLowSpeed,
		"低速电机":             MotorLowSpeed,
	}

	if mc, ok := synonyms[normalized]; ok {
		return mc, true
	}
	return "", false
}
