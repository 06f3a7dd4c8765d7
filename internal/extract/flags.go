package extract

import (
	"regexp"
	"strconv"

	"github.com/ecom-insights/listing-attributes/constants"
)

var storageCaseTerms = []string{
	"storage box", "aufbewahrungsbox", "box", "case", "etui", "koffer",
	"收纳", "收纳盒", "收纳包", "收纳袋", "旅行箱", "便携盒", "travel bag",
	"pouch", "storage case", "carrying case", "reiseetui", "tasche",
}

var constantTempTerms = []string{
	"constant temperature", "konstante temperatur", "temperature control", "temperaturkontrolle",
	"even heat", "gleichmäßige hitze", "temperature protection", "überhitzungsschutz",
	"intelligent temperature", "intelligente temperatur", "ntc intelligent temperature",
	"heat control", "wärmeregelung", "thermostat", "thermostatic",
	"temperature monitor", "temperaturüberwachung", "constant heat", "konstante wärme",
	"恒温", "温控", "温度控制", "温度保护", "智能温控",
}

var negativeIonTerms = []string{
	"negative ion", "negativ-ionen", "ionic", "ionisch", "ion", "ionen",
	"ionization", "ionisierung", "ion technology", "ionentechnologie",
	"负离子", "离子", "负氧离子", "离子技术",
}

var highIonTerms = []string{
	"high concentration", "high-density", "hohe konzentration", "hochdichte",
	"millions of ions", "millionen ionen", "powerful ions", "starke ionen",
	"billions of negative ions", "billions of ions", "million ions",
	"high concentration ion", "hohe ionenkonzentration",
	"高浓度", "高密度", "高含量", "大量", "数百万", "强力", "亿级",
}

// Explicit ion-count claims, in millions. Anything above one million counts
// as high concentration.
var ionCountPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)(?:\s*million|\s*mio)(?:\s*negative)?\s*ions`),
	regexp.MustCompile(`(\d+)(?:\s*millionen)(?:\s*negativ)?\s*ionen`),
	regexp.MustCompile(`ions:\s*(\d+)\s*million`),
}

func extractStorageCase(lower string) (string, bool) {
	if anyTerm(lower, storageCaseTerms) {
		return constants.Present, true
	}
	return "", false
}

func extractConstantTemp(lower string) (string, bool) {
	if anyTerm(lower, constantTempTerms) {
		return constants.Present, true
	}
	return "", false
}

func extractNegativeIons(lower string) (string, bool) {
	if anyTerm(lower, negativeIonTerms) {
		return constants.Present, true
	}
	return "", false
}

// extractHighConcentrationIons assumes the caller already established the
// negative-ion function; it never fires on its own.
func extractHighConcentrationIons(lower string) (string, bool) {
	if anyTerm(lower, highIonTerms) {
		return constants.Present, true
	}
	for _, pat := range ionCountPatterns {
		m := pat.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		if count, err := strconv.Atoi(m[1]); err == nil && count > 1 {
			return constants.Present, true
		}
	}
	return "", false
}
