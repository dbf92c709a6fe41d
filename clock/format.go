package clock

import (
	"time"

	"github.com/lixenwraith/flip-clock/constant"
)

// DateFormatter turns a date into the label shown above the digits
// Locale-specific naming lives behind this interface
type DateFormatter interface {
	FormatDate(t time.Time) string
}

// LayoutFormatter formats with a Go reference layout
type LayoutFormatter struct {
	Layout string
}

// DefaultFormatter renders "<full weekday>, <full month> <day>"
var DefaultFormatter = LayoutFormatter{Layout: constant.DefaultDateLayout}

// FormatDate implements DateFormatter
func (f LayoutFormatter) FormatDate(t time.Time) string {
	layout := f.Layout
	if layout == "" {
		layout = constant.DefaultDateLayout
	}
	return t.Format(layout)
}

// FormatterFunc adapts a function to DateFormatter
type FormatterFunc func(t time.Time) string

// FormatDate implements DateFormatter
func (f FormatterFunc) FormatDate(t time.Time) string {
	return f(t)
}
