package theme

import (
	"strconv"
	"strings"
	"unicode"
)

// Color is a six-digit RGB hex value such as "0078D4".
type Color string

// Palette shared by every deck and handout.
const (
	White       Color = "FFFFFF"
	NearWhite   Color = "F5F5F5"
	DarkBG      Color = "1B1B2F"
	AccentBlue  Color = "0078D4"
	AccentTeal  Color = "00B294"
	AccentPurp  Color = "6B69D6"
	LightBlue   Color = "DEECF9"
	LightGray   Color = "E8E8E8"
	MidGray     Color = "606060"
	DarkText    Color = "242424"
	Orange      Color = "FF8C00"
	Green       Color = "107C10"
	RedAccent   Color = "D13438"
	FooterText  Color = "AAAAAA"
	SubtleText  Color = "BBBBBB"
	FaintText   Color = "888888"
	LightTeal   Color = "E0F7F3"
	LightPurple Color = "ECEBFA"
	LightOrange Color = "FFF4E5"
)

// Accents cycles through the three card colors used across decks.
var Accents = []Color{AccentBlue, AccentTeal, AccentPurp}

// Tints pairs each accent with its light background.
var Tints = map[Color]Color{
	AccentBlue: LightBlue,
	AccentTeal: LightTeal,
	AccentPurp: LightPurple,
	Orange:     LightOrange,
	Green:      LightTeal,
	RedAccent:  LightOrange,
}

// Accent returns the i-th accent, wrapping around.
func Accent(i int) Color {
	return Accents[i%len(Accents)]
}

// Tint returns the light background for an accent, or NearWhite.
func Tint(c Color) Color {
	if t, ok := Tints[c]; ok {
		return t
	}
	return NearWhite
}

// ARGB returns the color with an opaque alpha prefix, as GoPPT expects.
func (c Color) ARGB() string {
	return "FF" + string(c)
}

// RGB splits the color into its components. Malformed values yield black.
func (c Color) RGB() (r, g, b int) {
	v, err := strconv.ParseUint(string(c), 16, 32)
	if err != nil || len(c) != 6 {
		return 0, 0, 0
	}
	return int(v >> 16 & 0xFF), int(v >> 8 & 0xFF), int(v & 0xFF)
}

// Fonts.
const (
	FontBody     = "Segoe UI"
	FontSemibold = "Segoe UI Semibold"
	FontLight    = "Segoe UI Light"
	FontDoc      = "Calibri"
)

// Slide geometry in inches. GoPPT's default canvas is 16:9 at 10 x 5.625.
const (
	EMUPerInch  = 914400
	SlideWidth  = 10.0
	SlideHeight = 5.625
	MarginX     = 0.6
	ContentTop  = 1.0
	ContentW    = SlideWidth - 2*MarginX
	FooterH     = 0.34
	FooterTop   = SlideHeight - FooterH
	TopBarH     = 0.06
)

// EMU converts inches to English Metric Units.
func EMU(inches float64) int64 {
	return int64(inches * EMUPerInch)
}

var plainReplacer = strings.NewReplacer(
	"→", "->",
	"←", "<-",
	"↔", "<->",
	"▸", "-",
	"•", "-",
	"≤", "<=",
	"≥", ">=",
	"✅", "[x]",
	"❌", "[ ]",
	"’", "'",
	"‘", "'",
	"“", "\"",
	"”", "\"",
	"–", "-",
	"—", "-",
)

// Plain folds text to characters the core PDF fonts can draw: common
// symbols are spelled out, icons and other non Latin-1 runes are dropped,
// and the leftover whitespace is trimmed.
func Plain(s string) string {
	s = plainReplacer.Replace(s)
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '\n' || r == '\t':
			b.WriteRune(r)
		case r > 0xFF, unicode.IsControl(r):
			// dropped
		default:
			b.WriteRune(r)
		}
	}
	lines := strings.Split(b.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.Join(strings.Fields(line), " ")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
