package engine

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/jonboulle/clockwork"
	"github.com/lixenwraith/flip-clock/clock"
	"github.com/lixenwraith/flip-clock/constant"
	"github.com/lixenwraith/flip-clock/flip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var start = time.Date(2026, 10, 19, 9, 59, 59, 250*int(time.Millisecond), time.Local)

type recordingPlayer struct {
	mu    sync.Mutex
	calls []int
}

func (p *recordingPlayer) PlayClick(flips int) {
	p.mu.Lock()
	p.calls = append(p.calls, flips)
	p.mu.Unlock()
}

func (p *recordingPlayer) snapshot() []int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]int(nil), p.calls...)
}

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(80, 24)
	t.Cleanup(s.Fini)
	return s
}

func sampleAt(h, m, s int) clock.Sample {
	return clock.SampleAt(time.Date(2026, 10, 19, h, m, s, 0, time.Local), clock.DefaultFormatter)
}

func TestHandleEventQuitKeys(t *testing.T) {
	l := NewLoop(newSimScreen(t), Options{}, nil)

	tests := []struct {
		name string
		ev   tcell.Event
		quit bool
	}{
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), true},
		{"Q", tcell.NewEventKey(tcell.KeyRune, 'Q', tcell.ModNone), true},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), true},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), true},
		{"other rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), false},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.quit, l.handleEvent(tt.ev))
		})
	}
}

func TestHandleEventResize(t *testing.T) {
	l := NewLoop(newSimScreen(t), Options{}, nil)

	assert.False(t, l.handleEvent(tcell.NewEventResize(100, 30)))
	w, h := l.orchestrator.Buffer().Bounds()
	assert.Equal(t, 100, w)
	assert.Equal(t, 30, h)
	assert.True(t, l.dirty)
}

func TestApplySampleClicksOnFlip(t *testing.T) {
	p := &recordingPlayer{}
	l := NewLoop(newSimScreen(t), Options{}, p)

	// First face seeds the cards without a flip
	assert.Equal(t, 0, l.applySample(sampleAt(9, 59, 59), start))
	assert.Empty(t, p.snapshot())

	// Rollover flips every card in one tick
	assert.Equal(t, 4, l.applySample(sampleAt(10, 0, 0), start.Add(time.Second)))
	assert.Equal(t, []int{4}, p.snapshot())

	// Seconds alone only toggle the colon
	assert.Equal(t, 0, l.applySample(sampleAt(10, 0, 1), start.Add(2*time.Second)))
	assert.Equal(t, []int{4}, p.snapshot())
}

func TestApplySampleWithoutPlayer(t *testing.T) {
	l := NewLoop(newSimScreen(t), Options{}, nil)
	l.applySample(sampleAt(9, 59, 59), start)
	assert.NotPanics(t, func() { l.applySample(sampleAt(10, 0, 0), start) })
}

func TestRenderFrameOnlyWhenNeeded(t *testing.T) {
	l := NewLoop(newSimScreen(t), Options{}, nil)

	assert.False(t, l.renderFrame(start), "nothing to draw before the first sample")

	l.applySample(sampleAt(9, 59, 59), start)
	assert.True(t, l.renderFrame(start))
	assert.False(t, l.renderFrame(start.Add(16*time.Millisecond)), "idle face is not redrawn")

	flipAt := start.Add(time.Second)
	l.applySample(sampleAt(10, 0, 0), flipAt)
	assert.True(t, l.renderFrame(flipAt))
	assert.True(t, l.renderFrame(flipAt.Add(constant.FlipDuration/2)))

	// The frame that completes the flip is still drawn, the next one is not
	assert.True(t, l.renderFrame(flipAt.Add(constant.FlipDuration)))
	for i := 0; i < 4; i++ {
		assert.Equal(t, flip.PhaseIdle, l.Composer().Cell(i).Phase())
	}
	assert.False(t, l.renderFrame(flipAt.Add(constant.FlipDuration+16*time.Millisecond)))
	assert.Equal(t, uint64(4), l.frame)
}

func TestRunDrivesTheFace(t *testing.T) {
	sim := newSimScreen(t)
	fc := clockwork.NewFakeClockAt(start)
	p := &recordingPlayer{}
	l := NewLoop(sim, Options{Clock: fc, FrameInterval: 16 * time.Millisecond}, p)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() {
		l.Run(ctx)
		close(done)
	}()

	// Frame ticker and the source's second timer
	waitCtx, waitCancel := context.WithTimeout(ctx, 2*time.Second)
	defer waitCancel()
	require.NoError(t, fc.BlockUntilContext(waitCtx, 2))

	fc.Advance(750 * time.Millisecond)
	require.Eventually(t, func() bool {
		return len(p.snapshot()) == 1
	}, 2*time.Second, 5*time.Millisecond)
	assert.Equal(t, []int{4}, p.snapshot())

	// "Monday, October 19" is centered on the date row
	require.Eventually(t, func() bool {
		fc.Advance(16 * time.Millisecond)
		r, _, _, _ := sim.GetContent(31, constant.PadRows)
		return r == 'M'
	}, 2*time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRunQuitsOnKey(t *testing.T) {
	sim := newSimScreen(t)
	l := NewLoop(sim, Options{Clock: clockwork.NewFakeClockAt(start)}, nil)

	done := make(chan struct{})
	go func() {
		l.Run(context.Background())
		close(done)
	}()

	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return on q")
	}
}
