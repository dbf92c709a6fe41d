package clock

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
)

// Source emits one Sample per second, aligned to second boundaries
// Each wait is recomputed from the current millisecond instead of a fixed period, so drift never accumulates
type Source struct {
	clock     clockwork.Clock
	formatter DateFormatter
}

// NewSource creates a source reading clk; nil arguments fall back to the real clock and DefaultFormatter
func NewSource(clk clockwork.Clock, formatter DateFormatter) *Source {
	if clk == nil {
		clk = clockwork.NewRealClock()
	}
	if formatter == nil {
		formatter = DefaultFormatter
	}
	return &Source{
		clock:     clk,
		formatter: formatter,
	}
}

// Sample reads the clock once
func (s *Source) Sample() Sample {
	return SampleAt(s.clock.Now(), s.formatter)
}

// NextDelay returns the wait from t to the next whole second: 1000 - (millisecond mod 1000) ms
func NextDelay(t time.Time) time.Duration {
	ms := (t.Nanosecond() / int(time.Millisecond)) % 1000
	return time.Duration(1000-ms) * time.Millisecond
}

// Run emits a sample immediately and then on every second boundary until ctx is cancelled
// Cancelling ctx stops the pending timer, there is no other way to end the run
func (s *Source) Run(ctx context.Context, out chan<- Sample) {
	var timer clockwork.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		sample := s.Sample()
		select {
		case out <- sample:
		case <-ctx.Done():
			return
		}

		// Re-read after the send, a slow consumer must not push the schedule past the boundary
		delay := NextDelay(s.clock.Now())
		if timer == nil {
			timer = s.clock.NewTimer(delay)
		} else {
			timer.Reset(delay)
		}

		select {
		case <-timer.Chan():
		case <-ctx.Done():
			return
		}
	}
}
