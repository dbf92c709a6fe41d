package render

// Dark palette for the clock face
var (
	RgbSurface = Hex(0x000000)

	// Backdrop gradient, top to bottom
	RgbBackdropTop    = Hex(0x131313)
	RgbBackdropBottom = Hex(0x020202)

	// Card faces
	RgbCard       = Hex(0x1B1B1F)
	RgbCardTop    = Hex(0x2A2A30) // Upper half highlight
	RgbCardBottom = Hex(0x121216) // Lower half shadow
	RgbDigit      = RGBWhite

	// Text
	RgbDateLabel = Hex(0xA6A6A6)
	RgbMeridiem  = Hex(0xFCFCFC)

	// Colon blink targets; dim is white at DimColonAlpha over the backdrop
	RgbColonBright = Hex(0xFCFCFC)
	RgbColonDim    = Blend(Blend(RgbBackdropTop, RgbBackdropBottom, 0.5), RGBWhite, DimColonAlpha)

	RgbDebug = Hex(0x5A8A5A)
)

// Overlay alphas
const (
	// DividerAlpha is the black seam between card halves
	DividerAlpha = 0x33 / 255.0

	// DimColonAlpha is the white opacity of the colon's off state
	DimColonAlpha = 0x33 / 255.0
)
