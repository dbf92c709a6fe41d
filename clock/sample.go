// Package clock samples the wall clock on second boundaries and decomposes each sample into display fields
package clock

import "time"

// Sample is an immutable snapshot of the wall clock taken once per second
type Sample struct {
	Hour24    int
	Minute    int
	Second    int
	DateLabel string
	Time      time.Time
}

// SampleAt builds a Sample from t, labelling the date with formatter
func SampleAt(t time.Time, formatter DateFormatter) Sample {
	label := ""
	if formatter != nil {
		label = formatter.FormatDate(t)
	}
	return Sample{
		Hour24:    t.Hour(),
		Minute:    t.Minute(),
		Second:    t.Second(),
		DateLabel: label,
		Time:      t,
	}
}
