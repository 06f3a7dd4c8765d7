package llm

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/ecom-insights/listing-attributes/constants"
)

// ExtractJSONObject finds the leftmost outermost balanced {...} substring in
// a model response that is not pure JSON (prose wrappers, markdown fences).
// Bracket balancing respects string literals and escapes.
func ExtractJSONObject(s string) ([]byte, bool) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return nil, false
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return []byte(s[start : i+1]), true
			}
		}
	}
	return nil, false
}

// SanitizeAttributeDoc normalizes a parsed model response into the canonical
// ten-key shape: unknown keys are dropped, missing keys become explicit
// nulls, null-ish strings ("", "null", "不确定") become nulls, numeric values
// are reformatted as digit strings, and presence/motor labels are
// canonicalized. Returns the cleaned document and the list of touched keys.
func SanitizeAttributeDoc(doc []byte) ([]byte, []string, error) {
	var m map[string]any
	if err := json.Unmarshal(doc, &m); err != nil {
		return nil, nil, err
	}

	var touched []string
	out := make(map[string]any, 10)
	for _, attr := range constants.Attributes() {
		key := string(attr)
		v, ok := m[key]
		if !ok {
			out[key] = nil
			touched = append(touched, key)
			continue
		}
		s, changed := normalizeValue(attr, v)
		if changed {
			touched = append(touched, key)
		}
		if s == nil {
			out[key] = nil
		} else {
			out[key] = *s
		}
	}

	b, err := json.Marshal(out)
	if err != nil {
		return nil, nil, err
	}
	return b, touched, nil
}

func normalizeValue(attr constants.Attribute, v any) (*string, bool) {
	var s string
	switch t := v.(type) {
	case nil:
		return nil, false
	case string:
		s = strings.TrimSpace(t)
	case float64:
		// Models occasionally answer counts as numbers.
		s = strings.TrimSuffix(fmt.Sprintf("%v", t), ".0")
	default:
		return nil, true
	}

	if s == "" || strings.EqualFold(s, "null") || s == "不确定" || s == "未知" {
		return nil, true
	}

	switch attr {
	case constants.AttrMotorClass:
		if mc, ok := constants.CanonicalizeMotorClass(s); ok {
			canon := string(mc)
			return &canon, canon != s
		}
		return nil, true
	case constants.AttrStorageCase, constants.AttrConstantTemp,
		constants.AttrNegativeIons, constants.AttrHighConcIons:
		return normalizePresence(s)
	case constants.AttrPower:
		return normalizePower(s)
	case constants.AttrSpeedLevels, constants.AttrTempLevels:
		return normalizeCount(s, 1, 10)
	case constants.AttrAccessoryCount:
		return normalizeCount(s, 0, 99)
	}
	return &s, false
}

// normalizePower accepts "1200W", "1200 watts" or a bare number and rewrites
// it as "<N>W"; anything outside [500,2000] is missing data.
func normalizePower(s string) (*string, bool) {
	digits := strings.TrimFunc(s, func(r rune) bool { return r < '0' || r > '9' })
	watts, err := strconv.Atoi(digits)
	if err != nil || watts < 500 || watts > 2000 {
		return nil, true
	}
	v := fmt.Sprintf("%dW", watts)
	return &v, v != s
}

// normalizeCount keeps pure digit strings inside [min,max] and discards the
// rest; the counted attributes never carry units or prose.
func normalizeCount(s string, min, max int) (*string, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || n < min || n > max {
		return nil, true
	}
	v := strconv.Itoa(n)
	return &v, v != s
}

// normalizePresence maps yes-like labels to the presence marker and no-like
// labels to absence (the output contract has no explicit negative).
func normalizePresence(s string) (*string, bool) {
	switch strings.ToLower(s) {
	case constants.Present:
		v := constants.Present
		return &v, false
	case "是", "y", "true", "present":
		v := constants.Present
		return &v, true
	case "否", "no", "n", "false", "absent", "none":
		return nil, true
	}
	// Unrecognized label: treat as missing data rather than letting an
	// out-of-domain value escape.
	return nil, true
}
