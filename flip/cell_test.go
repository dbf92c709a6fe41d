package flip

import (
	"testing"
	"time"

	"github.com/lixenwraith/flip-clock/animation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 3, 14, 9, 59, 59, 0, time.Local)

func newLinearCell(d Digit) *Cell {
	return NewCell(d, 600*time.Millisecond, animation.Linear)
}

func TestCellStartsIdle(t *testing.T) {
	c := NewCell(5, 600*time.Millisecond, animation.FlipCurve)

	assert.Equal(t, PhaseIdle, c.Phase())
	assert.Equal(t, CellState{Current: 5, Previous: 5, Progress: 1}, c.State())
	assert.Equal(t, Frame{Static: 5}, c.Frame())
}

func TestCellSameValueIsNoop(t *testing.T) {
	c := newLinearCell(3)

	assert.False(t, c.Set(3, t0))
	assert.False(t, c.Set(3, t0.Add(time.Second)))
	assert.Equal(t, PhaseIdle, c.Phase())
	assert.Equal(t, 1.0, c.State().Progress)
	assert.Equal(t, Digit(3), c.State().Previous)
}

func TestCellSameValueMidFlipDoesNotRestart(t *testing.T) {
	c := newLinearCell(3)
	require.True(t, c.Set(4, t0))
	c.Advance(t0.Add(300 * time.Millisecond))

	assert.False(t, c.Set(4, t0.Add(300*time.Millisecond)))
	assert.InDelta(t, 0.5, c.State().Progress, 1e-9)
}

func TestCellFlipRunsToIdle(t *testing.T) {
	c := newLinearCell(9)
	require.True(t, c.Set(0, t0))

	assert.Equal(t, PhaseFlipping, c.Phase())
	assert.Equal(t, CellState{Current: 0, Previous: 9, Progress: 0}, c.State())

	c.Advance(t0.Add(599 * time.Millisecond))
	assert.Equal(t, PhaseFlipping, c.Phase())

	c.Advance(t0.Add(600 * time.Millisecond))
	assert.Equal(t, PhaseIdle, c.Phase())
	assert.Equal(t, Frame{Static: 0}, c.Frame())
}

func TestCellInterruptRestartsFromMidFlipValue(t *testing.T) {
	c := newLinearCell(1)
	require.True(t, c.Set(2, t0)) // A
	c.Advance(t0.Add(200 * time.Millisecond))

	interrupt := t0.Add(200 * time.Millisecond)
	require.True(t, c.Set(3, interrupt)) // B before A lands

	s := c.State()
	assert.Equal(t, Digit(2), s.Previous, "previous is the value held at interruption")
	assert.Equal(t, Digit(3), s.Current)
	assert.Equal(t, 0.0, s.Progress)

	// Only one flip: once it lands there is nothing left queued
	c.Advance(interrupt.Add(600 * time.Millisecond))
	assert.Equal(t, PhaseIdle, c.Phase())
	assert.Equal(t, Frame{Static: 3}, c.Frame())
}

func TestCellBlankTransitions(t *testing.T) {
	c := newLinearCell(Blank)
	require.True(t, c.Set(1, t0))

	s := c.State()
	assert.Equal(t, Blank, s.Previous)
	assert.Equal(t, Digit(1), s.Current)

	f := c.Frame()
	require.NotNil(t, f.Panel)
	assert.Equal(t, Blank, f.Static)
	assert.Equal(t, Blank, f.Panel.Digit)
}

func TestFrameForPolicy(t *testing.T) {
	tests := []struct {
		name     string
		progress float64
		want     Frame
	}{
		{
			name:     "start",
			progress: 0,
			want: Frame{Static: 4, Panel: &Panel{
				Half: HalfTop, Digit: 4, Angle: 0, Pivot: EdgeBottom, Shade: 0,
			}},
		},
		{
			name:     "lifting",
			progress: 0.25,
			want: Frame{Static: 4, Panel: &Panel{
				Half: HalfTop, Digit: 4, Angle: -45, Pivot: EdgeBottom, Shade: 0.275,
			}},
		},
		{
			name:     "midpoint swaps to new digit",
			progress: 0.5,
			want: Frame{Static: 5, Panel: &Panel{
				Half: HalfBottom, Digit: 5, Angle: 90, Pivot: EdgeTop, Shade: 0.55,
			}},
		},
		{
			name:     "landing",
			progress: 0.75,
			want: Frame{Static: 5, Panel: &Panel{
				Half: HalfBottom, Digit: 5, Angle: 45, Pivot: EdgeTop, Shade: 0.275,
			}},
		},
		{
			name:     "settled",
			progress: 1,
			want:     Frame{Static: 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FrameFor(CellState{Current: 5, Previous: 4, Progress: tt.progress})
			assert.Equal(t, tt.want.Static, got.Static)
			if tt.want.Panel == nil {
				assert.Nil(t, got.Panel)
				return
			}
			require.NotNil(t, got.Panel)
			assert.Equal(t, tt.want.Panel.Half, got.Panel.Half)
			assert.Equal(t, tt.want.Panel.Digit, got.Panel.Digit)
			assert.Equal(t, tt.want.Panel.Pivot, got.Panel.Pivot)
			assert.InDelta(t, tt.want.Panel.Angle, got.Panel.Angle, 1e-9)
			assert.InDelta(t, tt.want.Panel.Shade, got.Panel.Shade, 1e-9)
		})
	}
}

func TestFrameAnglesStayInRange(t *testing.T) {
	for i := 0; i < 100; i++ {
		p := float64(i) / 100
		f := FrameFor(CellState{Current: 1, Previous: 0, Progress: p})
		require.NotNil(t, f.Panel)
		if p < 0.5 {
			assert.LessOrEqual(t, f.Panel.Angle, 0.0)
			assert.Greater(t, f.Panel.Angle, -90.0)
		} else {
			assert.GreaterOrEqual(t, f.Panel.Angle, 0.0)
			assert.LessOrEqual(t, f.Panel.Angle, 90.0)
		}
		assert.LessOrEqual(t, f.Panel.Shade, 0.55+1e-9)
	}
}

func TestDigit(t *testing.T) {
	assert.True(t, Blank.Valid())
	assert.True(t, Blank.IsBlank())
	assert.True(t, DigitOf(0).Valid())
	assert.True(t, DigitOf(9).Valid())
	assert.False(t, Digit(10).Valid())
	assert.False(t, Digit(-2).Valid())

	assert.Equal(t, "", Blank.String())
	assert.Equal(t, "7", DigitOf(7).String())
	assert.Equal(t, ' ', Blank.Rune())
	assert.Equal(t, '7', DigitOf(7).Rune())
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "idle", PhaseIdle.String())
	assert.Equal(t, "flipping", PhaseFlipping.String())
}
