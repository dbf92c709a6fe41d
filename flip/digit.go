// Package flip holds the split-flap state machines: one Cell per digit position and the blinking Colon
// Nothing here draws; renderers read Frame and Color and turn them into pixels
package flip

import "strconv"

// Digit is a single decimal digit or Blank
type Digit int8

// Blank is the absent digit, only valid in the hour-tens position
const Blank Digit = -1

// DigitOf returns n as a Digit; n must be in 0-9
func DigitOf(n int) Digit {
	return Digit(n)
}

// Valid reports whether d is 0-9 or Blank
func (d Digit) Valid() bool {
	return d == Blank || (d >= 0 && d <= 9)
}

// IsBlank reports whether d is the absent digit
func (d Digit) IsBlank() bool {
	return d == Blank
}

// Rune returns the glyph for d, space for Blank
func (d Digit) Rune() rune {
	if d < 0 || d > 9 {
		return ' '
	}
	return rune('0' + d)
}

// String returns the decimal text, empty for Blank
func (d Digit) String() string {
	if d == Blank {
		return ""
	}
	return strconv.Itoa(int(d))
}
