// Package extract implements the rule-based attribute recognizers. Each
// recognizer maps free listing text to either a value inside its declared
// domain or absence; none of them can fail.
package extract

import "strings"

// Extract runs every recognizer over the concatenated free text of one
// record. Empty or whitespace-only input yields an empty set. The result is
// deterministic: the same text always produces the same set.
func Extract(text string) AttributeSet {
	var out AttributeSet
	if strings.TrimSpace(text) == "" {
		return out
	}
	lower := strings.ToLower(text)

	if v, ok := extractColor(lower); ok {
		out.Color = ptr(v)
	}
	if v, ok := extractStorageCase(lower); ok {
		out.StorageCase = ptr(v)
	}
	if v, ok := extractPower(lower); ok {
		out.Power = ptr(v)
	}
	if v, ok := extractSpeedLevels(lower); ok {
		out.SpeedLevels = ptr(v)
	}
	if v, ok := extractTempLevels(lower); ok {
		out.TempLevels = ptr(v)
	}
	if v, ok := extractConstantTemp(lower); ok {
		out.ConstantTemp = ptr(v)
	}
	if v, ok := extractNegativeIons(lower); ok {
		out.NegativeIons = ptr(v)
		// High concentration is only meaningful once the ion function itself
		// is established.
		if hv, hok := extractHighConcentrationIons(lower); hok {
			out.HighConcentrationIons = ptr(hv)
		}
	}
	if v, ok := extractMotorClass(lower); ok {
		out.MotorClass = ptr(v)
	}
	if v, ok := extractAccessoryCount(lower); ok {
		out.AccessoryCount = ptr(v)
	}
	return out
}

// anyTerm reports whether any of the terms occurs in the lowercased text.
func anyTerm(lower string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(lower, t) {
			return true
		}
	}
	return false
}
