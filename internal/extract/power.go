package extract

import (
	"fmt"
	"regexp"
	"strconv"
)

const (
	powerMinWatts = 500
	powerMaxWatts = 2000
)

// Power pattern families, tried once each in priority order. The first match
// inside [500,2000] wins; an out-of-range match discards the whole family and
// scanning moves to the next one.
var (
	wattPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(\d+)[\s-]*(?:w|watt)(?:s|age)?(?:\b|:)`), // 1200W, 1200 watts, wattage: 1200
		regexp.MustCompile(`watt(?:s|age)?[\s-]*:?\s*(\d+)`),          // watts: 1200
	}
	// kW declarations with a decimal point get converted to watts.
	kilowattPattern = regexp.MustCompile(`(\d+)[.,](\d+)\s*kw`)

	labeledWattPatterns = []*regexp.Regexp{
		regexp.MustCompile(`leistung:?\s*(\d+)\s*w`), // Leistung: 1200 W
		regexp.MustCompile(`power:?\s*(\d+)\s*w`),    // Power: 1200 W
	}
)

func extractPower(lower string) (string, bool) {
	for _, pat := range wattPatterns {
		if v, ok := wattsInRange(pat, lower); ok {
			return v, true
		}
	}

	if m := kilowattPattern.FindStringSubmatch(lower); m != nil {
		if kw, err := strconv.ParseFloat(m[1]+"."+m[2], 64); err == nil {
			watts := int(kw * 1000)
			if watts >= powerMinWatts && watts <= powerMaxWatts {
				return fmt.Sprintf("%dW", watts), true
			}
		}
	}

	for _, pat := range labeledWattPatterns {
		if v, ok := wattsInRange(pat, lower); ok {
			return v, true
		}
	}
	return "", false
}

func wattsInRange(pat *regexp.Regexp, lower string) (string, bool) {
	m := pat.FindStringSubmatch(lower)
	if m == nil {
		return "", false
	}
	watts, err := strconv.Atoi(m[1])
	if err != nil {
		return "", false
	}
	if watts < powerMinWatts || watts > powerMaxWatts {
		return "", false
	}
	return fmt.Sprintf("%dW", watts), true
}
