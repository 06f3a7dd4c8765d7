package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// "<N>-in-1" style counts include the base unit, so one is subtracted.
var inOnePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)[\s-]*in[\s-]*1`),
	regexp.MustCompile(`(\d+)[\s-]*(?:attachments?|aufsätze|accessories)`),
}

var accessoryCountPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)[\s-]*(?:accessories|attachments|aufsätze|zubehör)`),
	regexp.MustCompile(`(\d+)[\s-]*(?:个配件|个附件|种配件|种附件|配件|附件)`),
}

// Generic accessory vocabulary; every distinct term present counts once.
var accessoryTerms = []string{
	"brush", "bürste", "刷", "刷子",
	"nozzle", "düse", "风嘴", "风口",
	"diffuser", "diffusor", "扩散器",
	"concentrator", "konzentrator", "集风口",
	"comb", "kamm", "梳", "梳子",
	"curl", "locke", "卷发器", "卷发头",
	"straightener", "glätter", "直发器", "直发头",
	"volumizer", "volumen", "蓬松器",
	"attachment", "aufsatz", "附件",
	"accessory", "zubehör", "配件",
}

// Accessory categories; terms in one category count once no matter how many
// of them appear.
var accessoryCategories = []struct {
	name  string
	terms []string
}{
	{"curler", []string{"curl attachment", "curling attachment", "curler", "lockenaufsatz", "lockenstab"}},
	{"straightener", []string{"straightening brush", "straightener", "glättungsbürste", "glätteisen"}},
	{"comb", []string{"comb", "brush", "kamm", "bürste"}},
	{"concentrator", []string{"concentrator", "nozzle", "konzentrator", "düse"}},
	{"diffuser", []string{"diffuser", "diffusor"}},
	{"volumizer", []string{"volumizing brush", "volume brush", "volumenbürste"}},
}

func extractAccessoryCount(lower string) (string, bool) {
	for _, pat := range inOnePatterns {
		m := pat.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		count, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if count > 1 && count <= 12 {
			return strconv.Itoa(count - 1), true
		}
	}

	for _, pat := range accessoryCountPatterns {
		if m := pat.FindStringSubmatch(lower); m != nil {
			return m[1], true
		}
	}

	// Distinct categories beat raw term hits when any category matches.
	categoryCount := 0
	for _, cat := range accessoryCategories {
		for _, term := range cat.terms {
			if strings.Contains(lower, term) {
				categoryCount++
				break
			}
		}
	}
	if categoryCount > 0 {
		return strconv.Itoa(categoryCount), true
	}

	termCount := 0
	for _, term := range accessoryTerms {
		if strings.Contains(lower, term) {
			termCount++
		}
	}
	if termCount > 0 {
		return strconv.Itoa(termCount), true
	}
	return "", false
}
