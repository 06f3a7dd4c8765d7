package constants

// Color is a canonical color label from the fixed palette.
type Color string

const (
	Black  Color = "black"
	White  Color = "white"
	Pink   Color = "pink"
	Red    Color = "red"
	Blue   Color = "blue"
	Green  Color = "green"
	Purple Color = "purple"
	Gold   Color = "gold"
	Silver Color = "silver"
	Grey   Color = "grey"
	Brown  Color = "brown"
)

var allColors = []Color{
	Black, White, Pink, Red, Blue, Green, Purple, Gold, Silver, Grey, Brown,
}

// Colors returns the palette in its fixed priority order. The order decides
// ties when a text matches several color terms.
func Colors() []Color {
	out := make([]Color, len(allColors))
	copy(out, allColors)
	return out
}
