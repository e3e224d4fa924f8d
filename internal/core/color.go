package core

// Color is a cell's foreground color. The zero value is the terminal's
// default; the rest map to ANSI 256-color codes.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorMagenta
	ColorCyan
	ColorGray
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightCyan
	ColorBrightWhite

	numColors
)

// NumColors is the number of defined colors, for lookup tables.
const NumColors = int(numColors)

var ansiCodes = [numColors]string{
	ColorRed:          "1",
	ColorGreen:        "2",
	ColorYellow:       "3",
	ColorMagenta:      "5",
	ColorCyan:         "6",
	ColorGray:         "245",
	ColorBrightRed:    "9",
	ColorBrightGreen:  "10",
	ColorBrightYellow: "11",
	ColorBrightCyan:   "14",
	ColorBrightWhite:  "15",
}

// ANSI returns the 256-color code, or "" for the default and unknown colors.
func (c Color) ANSI() string {
	if c >= numColors {
		return ""
	}
	return ansiCodes[c]
}
