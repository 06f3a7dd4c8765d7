package extract

import (
	"regexp"
	"strings"

	"github.com/ecom-insights/listing-attributes/constants"
)

// colorTerms maps each canonical color to its multilingual surface forms
// (English, German, Chinese). Scans walk constants.Colors(), so the palette
// order is the tie-break order.
var colorTerms = map[constants.Color][]string{
	constants.Black:  {"black", "schwarz", "黑色", "黑"},
	constants.White:  {"white", "weiß", "weiss", "白色", "白"},
	constants.Pink:   {"pink", "rosa", "粉色", "粉红", "粉红色", "rose"},
	constants.Red:    {"red", "rot", "红色", "红", "wine"},
	constants.Blue:   {"blue", "blau", "蓝色", "蓝", "navy"},
	constants.Green:  {"green", "grün", "grun", "绿色", "绿", "mint", "turquoise", "teal"},
	constants.Purple: {"purple", "lila", "violett", "紫色", "紫", "violet"},
	constants.Gold:   {"gold", "golden", "金色", "金", "champagne"},
	constants.Silver: {"silver", "silber", "银色", "银", "chrome", "platinum"},
	constants.Grey:   {"grey", "gray", "grau", "灰色", "灰", "titan"},
	constants.Brown:  {"brown", "braun", "棕色", "棕", "咖啡色"},
}

// Labeled key:value color declarations, checked before scanning the whole
// text. "Colour Name: Blue Gold", "Farbe: Schwarz" and friends.
var labeledColorPatterns = []*regexp.Regexp{
	regexp.MustCompile(`colou?r\s*(?:name)?:\s*([a-z\s]+)`),
	regexp.MustCompile(`colou?r:\s*([a-z\s]+)`),
	regexp.MustCompile(`farbe:\s*([a-z\s]+)`),
}

// extractColor returns the canonical color(s) found in the text, joined with
// the multi-value delimiter. A labeled color field wins over a whole-text
// scan; within each scan, table order decides ties.
func extractColor(lower string) (string, bool) {
	var found []constants.Color

	for _, pat := range labeledColorPatterns {
		m := pat.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		labelText := strings.TrimSpace(m[1])
		for _, label := range constants.Colors() {
			for _, term := range colorTerms[label] {
				if strings.Contains(labelText, term) {
					found = append(found, label)
				}
			}
		}
	}

	// Nothing declared explicitly: scan the whole text.
	if len(found) == 0 {
		for _, label := range constants.Colors() {
			for _, term := range colorTerms[label] {
				if strings.Contains(lower, term) {
					found = append(found, label)
					break
				}
			}
		}
	}

	if len(found) == 0 {
		return "", false
	}

	// Deduplicate preserving first-seen order.
	seen := make(map[constants.Color]struct{}, len(found))
	parts := make([]string, 0, len(found))
	for _, c := range found {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		parts = append(parts, string(c))
	}
	return strings.Join(parts, constants.ColorDelimiter), true
}
