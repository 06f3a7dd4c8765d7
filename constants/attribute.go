package constants

// Attribute is the canonical key for one of the ten extracted product attributes.
type Attribute string

const (
	AttrColor          Attribute = "color"
	AttrStorageCase    Attribute = "storage_case"
	AttrPower          Attribute = "power"
	AttrSpeedLevels    Attribute = "speed_levels"
	AttrTempLevels     Attribute = "temp_levels"
	AttrConstantTemp   Attribute = "constant_temp"
	AttrNegativeIons   Attribute = "negative_ions"
	AttrHighConcIons   Attribute = "high_concentration_ions"
	AttrMotorClass     Attribute = "motor_class"
	AttrAccessoryCount Attribute = "accessory_count"
)

var allAttributes = []Attribute{
	AttrColor,
	AttrStorageCase,
	AttrPower,
	AttrSpeedLevels,
	AttrTempLevels,
	AttrConstantTemp,
	AttrNegativeIons,
	AttrHighConcIons,
	AttrMotorClass,
	AttrAccessoryCount,
}

// Attributes returns the ten attribute keys in their canonical order.
func Attributes() []Attribute {
	out := make([]Attribute, len(allAttributes))
	copy(out, allAttributes)
	return out
}

// AsStringSlice returns the attribute keys as plain strings, in canonical order.
func AsStringSlice() []string {
	result := make([]string, len(allAttributes))
	for i, a := range allAttributes {
		result[i] = string(a)
	}
	return result
}

// ColumnTitles maps each attribute to the spreadsheet column header it is
// written under.
var ColumnTitles = map[Attribute]string{
	AttrColor:          "Color",
	AttrStorageCase:    "Storage Case",
	AttrPower:          "Power",
	AttrSpeedLevels:    "Speed Levels",
	AttrTempLevels:     "Temperature Levels",
	AttrConstantTemp:   "Constant Temperature",
	AttrNegativeIons:   "Negative Ions",
	AttrHighConcIons:   "High-Concentration Ions",
	AttrMotorClass:     "Motor Class",
	AttrAccessoryCount: "Accessory Count",
}

// Present is the stored value for the boolean-as-categorical attributes
// (storage case, constant temperature, negative ions, high-concentration
// ions). Absence of evidence is represented as missing data, never as an
// explicit negative.
const Present = "yes"

// ColorDelimiter separates multiple color matches in a single cell. The
// ideographic comma is kept because the source exports use it.
const ColorDelimiter = "、"
