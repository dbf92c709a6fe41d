package constant

import "time"

// Loop timing
const (
	// FrameUpdateInterval is the default render frame interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// DefaultFPS is the frame rate used when none is configured
	DefaultFPS = 60

	// MinFPS and MaxFPS bound the configurable frame rate
	MinFPS = 1
	MaxFPS = 240

	// EventQueueSize is the buffered capacity of the terminal event channel
	EventQueueSize = 256
)

// Animation timing
const (
	// FlipDuration is the length of one card flip
	FlipDuration = 600 * time.Millisecond

	// ColonFadeDuration is the colon's color transition on every blink
	ColonFadeDuration = 350 * time.Millisecond

	// FlipShadeMax is the darkening alpha on a rotating panel at the midpoint of a flip
	FlipShadeMax = 0.55
)

// Date label
const (
	// DefaultDateLayout renders "<weekday>, <month> <day>"
	DefaultDateLayout = "Monday, January 2"
)
