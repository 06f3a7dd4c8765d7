package extract

import (
	"regexp"
	"strconv"

	"github.com/ecom-insights/listing-attributes/constants"
)

const (
	highSpeedRPM = 100000
	lowSpeedRPM  = 50000
)

// Explicit RPM figures, five or six digits.
var rpmPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d{5,6})[\s-]*(?:rpm|r/min|umdrehungen|u/min)`),
	regexp.MustCompile(`(\d{5,6})[\s-]*(?:转每分钟|转速|转)`),
}

// Keyword tables. High-speed is checked first; a text matching both tables
// resolves to high-speed.
var highSpeedMotorTerms = []string{
	"high speed motor", "high-speed motor", "hochgeschwindigkeitsmotor",
	"高速马达", "高速电机", "high-speed brushless motor",
	"brushless motor", "bürstenloser motor",
}

var lowSpeedMotorTerms = []string{
	"low speed motor", "niedriggeschwindigkeitsmotor", "低速马达", "低速电机",
}

// Last-resort context: a number near the word "motor".
var motorContextPattern = regexp.MustCompile(`motor[\s\w]*(\d{4,6})`)

func extractMotorClass(lower string) (string, bool) {
	for _, pat := range rpmPatterns {
		m := pat.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		rpm, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if rpm >= highSpeedRPM {
			return string(constants.MotorHighSpeed), true
		}
		if rpm >= lowSpeedRPM {
			return string(constants.MotorLowSpeed), true
		}
	}

	if anyTerm(lower, highSpeedMotorTerms) {
		return string(constants.MotorHighSpeed), true
	}
	if anyTerm(lower, lowSpeedMotorTerms) {
		return string(constants.MotorLowSpeed), true
	}

	if m := motorContextPattern.FindStringSubmatch(lower); m != nil {
		if rpm, err := strconv.Atoi(m[1]); err == nil {
			if rpm >= highSpeedRPM {
				return string(constants.MotorHighSpeed), true
			}
			if rpm >= lowSpeedRPM {
				return string(constants.MotorLowSpeed), true
			}
		}
	}
	return "", false
}
