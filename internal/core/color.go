package core

// Color is a foreground color for a screen cell.
// The platform maps each value to a terminal style.
type Color uint8

// Colors used by the games.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightCyan
	ColorBrightWhite
	ColorGray

	// NumColors is the size of the palette.
	NumColors = int(iota)
)

// palette holds the ANSI 256-color code of each Color.
// ColorDefault has none and keeps the terminal's foreground.
var palette = [NumColors]string{
	ColorRed:          "1",
	ColorGreen:        "2",
	ColorYellow:       "3",
	ColorCyan:         "6",
	ColorWhite:        "7",
	ColorBrightRed:    "9",
	ColorBrightGreen:  "10",
	ColorBrightYellow: "11",
	ColorBrightCyan:   "14",
	ColorBrightWhite:  "15",
	ColorGray:         "245",
}

// ANSI returns the terminal color code, or "" for the default foreground
// and for values outside the palette.
func (c Color) ANSI() string {
	if int(c) >= NumColors {
		return ""
	}
	return palette[c]
}
