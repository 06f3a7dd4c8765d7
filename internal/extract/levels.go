package extract

import (
	"regexp"
	"strconv"
)

const (
	levelsMin = 1
	levelsMax = 10

	// Heuristic defaults when the text advertises adjustability without an
	// explicit count.
	defaultSpeedLevels = "2"
	defaultTempLevels  = "3"
)

// Explicit "<N> speed ..." phrasings, English/German/Chinese, each with the
// count as capture group 1.
var speedLevelPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)[\s-]*(?:geschwindigkeitsstufen|geschwindigkeiten|geschwindigkeit)`),
	regexp.MustCompile(`(\d+)[\s-]*(?:speed levels|speed settings|speeds|speed)`),
	regexp.MustCompile(`(\d+)[\s-]*(?:风速档位|档风速|风速|档位|档)`),
	regexp.MustCompile(`air(?:flow)?\s*levels?\s*:?\s*(\d+)`),
	regexp.MustCompile(`(\d+)\s*(?:levels? of|different)\s*(?:air(?:flow)?|speed)`),
	regexp.MustCompile(`geschwindigkeits(?:stufen)?:?\s*(\d+)`),
	regexp.MustCompile(`speed\s*(?:settings?|levels?)?:?\s*(\d+)`),
}

var adjustableSpeedTerms = []string{
	"multiple speeds", "various speeds", "adjustable speed",
	"speed control", "verschiedene geschwindigkeiten",
	"mehrere geschwindigkeiten",
}

var highLowSpeedPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:high|low)\s*speed`),
	regexp.MustCompile(`(?:hoch|niedrig)\s*geschwindigkeit`),
}

func extractSpeedLevels(lower string) (string, bool) {
	for _, pat := range speedLevelPatterns {
		if v, ok := levelInRange(pat, lower); ok {
			return v, true
		}
	}
	if anyTerm(lower, adjustableSpeedTerms) {
		return defaultSpeedLevels, true
	}
	// High/low options imply at least two settings.
	for _, pat := range highLowSpeedPatterns {
		if pat.MatchString(lower) {
			return defaultSpeedLevels, true
		}
	}
	return "", false
}

var tempLevelPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)[\s-]*(?:temperaturstufen|temperaturen|temperatur)`),
	regexp.MustCompile(`(\d+)[\s-]*(?:temperature levels|temperature settings|temperatures|temperature|heat settings)`),
	regexp.MustCompile(`(\d+)[\s-]*(?:温度档位|档温度|温度设置|温度)`),
	regexp.MustCompile(`temperature[\s-]*(?:levels?|settings?|control)?\s*:?\s*(\d+)`),
	regexp.MustCompile(`(\d+)\s*(?:levels? of|different)\s*(?:temperature|heat)`),
	regexp.MustCompile(`temperature.*?(\d+).*?settings`),
	regexp.MustCompile(`temperaturstufen:?\s*(\d+)`),
	regexp.MustCompile(`heat\s*settings?:?\s*(\d+)`),
}

// Explicit temperature values such as "50°C, 80°C, 105°C".
var tempValuePattern = regexp.MustCompile(`(\d+)\s*[°℃]c?`)

var adjustableTempTerms = []string{
	"multiple temperature", "various temperature", "adjustable temperature",
	"temperature control", "verschiedene temperatur",
	"mehrere temperatur",
}

// Distinct airflow-kind mentions; two or more imply that many heat settings.
// The air/luft suffix is required so a bare "warm" or "kalt" does not count.
var airflowKindPatterns = []*regexp.Regexp{
	regexp.MustCompile(`hot\s*air|heiß\s*luft`),
	regexp.MustCompile(`cold\s*air|kalt\s*luft`),
	regexp.MustCompile(`warm\s*air|warm\s*luft`),
	regexp.MustCompile(`cool\s*air|kühl\s*luft`),
}

func extractTempLevels(lower string) (string, bool) {
	for _, pat := range tempLevelPatterns {
		if v, ok := levelInRange(pat, lower); ok {
			return v, true
		}
	}

	// Count distinct explicit temperature values.
	if matches := tempValuePattern.FindAllStringSubmatch(lower, -1); len(matches) >= 2 {
		distinct := make(map[string]struct{}, len(matches))
		for _, m := range matches {
			distinct[m[1]] = struct{}{}
		}
		if n := len(distinct); n >= levelsMin && n <= levelsMax {
			return strconv.Itoa(n), true
		}
		// More distinct values than any product has settings: treat as the
		// common three-level layout.
		return defaultTempLevels, true
	}

	if anyTerm(lower, adjustableTempTerms) {
		return defaultTempLevels, true
	}

	count := 0
	for _, pat := range airflowKindPatterns {
		if pat.MatchString(lower) {
			count++
		}
	}
	if count > 1 {
		return strconv.Itoa(count), true
	}
	return "", false
}

func levelInRange(pat *regexp.Regexp, lower string) (string, bool) {
	m := pat.FindStringSubmatch(lower)
	if m == nil {
		return "", false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n < levelsMin || n > levelsMax {
		return "", false
	}
	return strconv.Itoa(n), true
}
