package extract

import (
	"github.com/ecom-insights/listing-attributes/constants"
)

// AttributeSet is the fixed ten-attribute output of one extraction. A nil
// field means the attribute was not found; a non-nil field always holds a
// value inside the attribute's declared domain.
type AttributeSet struct {
	Color                 *string `json:"color"`
	StorageCase           *string `json:"storage_case"`
	Power                 *string `json:"power"`
	SpeedLevels           *string `json:"speed_levels"`
	TempLevels            *string `json:"temp_levels"`
	ConstantTemp          *string `json:"constant_temp"`
	NegativeIons          *string `json:"negative_ions"`
	HighConcentrationIons *string `json:"high_concentration_ions"`
	MotorClass            *string `json:"motor_class"`
	AccessoryCount        *string `json:"accessory_count"`
}

// Get returns the value for an attribute key and whether it is set.
func (s AttributeSet) Get(attr constants.Attribute) (string, bool) {
	var p *string
	switch attr {
	case constants.AttrColor:
		p = s.Color
	case constants.AttrStorageCase:
		p = s.StorageCase
	case constants.AttrPower:
		p = s.Power
	case constants.AttrSpeedLevels:
		p = s.SpeedLevels
	case constants.AttrTempLevels:
		p = s.TempLevels
	case constants.AttrConstantTemp:
		p = s.ConstantTemp
	case constants.AttrNegativeIons:
		p = s.NegativeIons
	case constants.AttrHighConcIons:
		p = s.HighConcentrationIons
	case constants.AttrMotorClass:
		p = s.MotorClass
	case constants.AttrAccessoryCount:
		p = s.AccessoryCount
	}
	if p == nil {
		return "", false
	}
	return *p, true
}

// Values returns the set attributes as a map, omitting absent ones.
func (s AttributeSet) Values() map[constants.Attribute]string {
	out := make(map[constants.Attribute]string)
	for _, attr := range constants.Attributes() {
		if v, ok := s.Get(attr); ok {
			out[attr] = v
		}
	}
	return out
}

// IsEmpty reports whether no attribute was extracted.
func (s AttributeSet) IsEmpty() bool {
	return len(s.Values()) == 0
}

func ptr(v string) *string { return &v }
