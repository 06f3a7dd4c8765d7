package llm

import (
	"strings"

	"github.com/ecom-insights/listing-attributes/constants"
	"github.com/ecom-insights/listing-attributes/internal/extract"
)

// DefaultPriceThreshold is the price above which a unit with no motor
// evidence is assumed to carry the faster motor.
const DefaultPriceThreshold = 150

// Overrides are the deterministic rules applied after every extraction call,
// successful or degraded.
type Overrides struct {
	PriceThreshold float64
}

// DefaultOverrides returns the service defaults.
func DefaultOverrides() Overrides {
	return Overrides{PriceThreshold: DefaultPriceThreshold}
}

// Apply mutates the set in place:
//   - price above the threshold with an absent motor class implies a
//     high-speed motor (a domain approximation, kept as specified);
//   - a multi-valued color list is cut down to its first element, one
//     canonical color per record.
func (o Overrides) Apply(set *extract.AttributeSet, price *float64) {
	threshold := o.PriceThreshold
	if threshold <= 0 {
		threshold = DefaultPriceThreshold
	}

	if price != nil && *price > threshold && set.MotorClass == nil {
		v := string(constants.MotorHighSpeed)
		set.MotorClass = &v
	}

	if set.Color != nil {
		if first, _, found := strings.Cut(*set.Color, constants.ColorDelimiter); found {
			first = strings.TrimSpace(first)
			if first == "" {
				set.Color = nil
			} else {
				set.Color = &first
			}
		}
	}
}
