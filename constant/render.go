package constant

// Card geometry in logical units
// One terminal cell is one pixel wide and two pixels tall, logical units are scaled to pixels by the layout
const (
	CardWidth  = 96
	CardHeight = 128
	CardRadius = 20

	// CardDivider is the height of the seam between the two halves
	CardDivider = 1

	// DigitGap is the horizontal space between items in the digit row
	DigitGap = 12

	// ColonWidth is the slot reserved for the colon between hours and minutes
	ColonWidth = 28

	// DigitFontSize is the glyph em size relative to CardHeight
	DigitFontSize = 76.0 / CardHeight

	// ColonFontSize is the colon em size relative to CardHeight
	ColonFontSize = 64.0 / CardHeight

	// ColonLift raises the colon above the card's optical center
	ColonLift = 8
)

// Row widths in logical units
const (
	DigitRowWidth = 4*CardWidth + ColonWidth + 4*DigitGap
)

// Screen layout in terminal cells
const (
	// PadRows is the blank margin above the date and below the digit row
	PadRows = 1

	// PadCols is the horizontal margin kept clear on both sides
	PadCols = 2

	// HeaderRows is the date line, a spacer and the AM/PM line
	HeaderRows = 3

	// MaxPixelScale caps pixels per logical unit on very large terminals
	MaxPixelScale = 0.75

	// MinPixelScale is the smallest scale at which cards are still legible
	// Below it the layout falls back to compact text
	MinPixelScale = 0.14

	// LetterSpacing is the blank columns inserted between meridiem letters
	LetterSpacing = 1
)
