package clock

import "github.com/lixenwraith/flip-clock/flip"

// Meridiem is the AM/PM half of a 12-hour day
type Meridiem string

const (
	AM Meridiem = "AM"
	PM Meridiem = "PM"
)

// Face holds every value the screen shows for one sample
type Face struct {
	Hour12       int
	Meridiem     Meridiem
	HourTens     flip.Digit
	HourOnes     flip.Digit
	MinuteTens   flip.Digit
	MinuteOnes   flip.Digit
	DateLabel    string
	ColonVisible bool
}

// Decompose derives 12-hour display fields from a sample
// Pure: identical samples always yield identical faces
func Decompose(s Sample) Face {
	hour12 := Hour12(s.Hour24)

	meridiem := AM
	if s.Hour24 >= 12 {
		meridiem = PM
	}

	hourTens := flip.Blank
	if hour12 >= 10 {
		hourTens = flip.DigitOf(hour12 / 10)
	}

	return Face{
		Hour12:       hour12,
		Meridiem:     meridiem,
		HourTens:     hourTens,
		HourOnes:     flip.DigitOf(hour12 % 10),
		MinuteTens:   flip.DigitOf(s.Minute / 10),
		MinuteOnes:   flip.DigitOf(s.Minute % 10),
		DateLabel:    s.DateLabel,
		ColonVisible: flip.ColonVisible(s.Second),
	}
}

// Hour12 maps 0-23 onto 1-12 with midnight and noon as 12
func Hour12(hour24 int) int {
	return ((hour24 + 11) % 12) + 1
}

// Digits returns hour-tens, hour-ones, minute-tens and minute-ones in display order
func (f Face) Digits() [4]flip.Digit {
	return [4]flip.Digit{f.HourTens, f.HourOnes, f.MinuteTens, f.MinuteOnes}
}

// Text renders the time as plain text, e.g. " 9:05" or "10:05"
func (f Face) Text() string {
	d := f.Digits()
	colon := ':'
	if !f.ColonVisible {
		colon = ' '
	}
	return string([]rune{d[0].Rune(), d[1].Rune(), colon, d[2].Rune(), d[3].Rune()})
}
