// Package report summarizes how many listings yielded each attribute.
package report

import (
	"log/slog"

	"github.com/ecom-insights/listing-attributes/constants"
	"github.com/ecom-insights/listing-attributes/internal/extract"
)

// AttributeCoverage counts how many records carried a value for one
// attribute out of the records processed.
type AttributeCoverage struct {
	Attribute constants.Attribute
	Extracted int
	Total     int
}

func (c AttributeCoverage) Fraction() float64 {
	if c.Total == 0 {
		return 0
	}
	return float64(c.Extracted) / float64(c.Total)
}

// Compute tallies coverage per attribute in the canonical attribute order.
// total is the number of records submitted, which can exceed len(results)
// when a run finished partially; the denominator must not shrink with it.
func Compute(results map[int]extract.AttributeSet, total int) []AttributeCoverage {
	if total < len(results) {
		total = len(results)
	}
	out := make([]AttributeCoverage, 0, len(constants.Attributes()))
	for _, attr := range constants.Attributes() {
		c := AttributeCoverage{Attribute: attr, Total: total}
		for _, set := range results {
			if _, ok := set.Get(attr); ok {
				c.Extracted++
			}
		}
		out = append(out, c)
	}
	return out
}

// Log emits one summary line per attribute.
func Log(logger *slog.Logger, coverage []AttributeCoverage) {
	for _, c := range coverage {
		logger.Info("report.coverage",
			"attribute", string(c.Attribute),
			"extracted", c.Extracted,
			"total", c.Total,
			"fraction", c.Fraction(),
		)
	}
}
