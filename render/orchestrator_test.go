package render

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRenderer struct {
	name    string
	log     *[]string
	visible bool
}

func (r *recordingRenderer) Render(ctx RenderContext, buf *Buffer) {
	*r.log = append(*r.log, r.name)
}

func (r *recordingRenderer) IsVisible() bool {
	return r.visible
}

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func TestOrchestratorPriorityOrder(t *testing.T) {
	var log []string
	o := NewRenderOrchestrator(newSimScreen(t, 4, 2), 4, 2)

	o.Register(&recordingRenderer{name: "overlay", log: &log, visible: true}, PriorityOverlay)
	o.Register(&recordingRenderer{name: "bg", log: &log, visible: true}, PriorityBackground)
	o.Register(&recordingRenderer{name: "cards-a", log: &log, visible: true}, PriorityCards)
	o.Register(&recordingRenderer{name: "cards-b", log: &log, visible: true}, PriorityCards)
	o.Register(&recordingRenderer{name: "hidden", log: &log, visible: false}, PriorityDebug)

	o.RenderFrame(NewRenderContext(time.Now(), 1, 4, 2))

	assert.Equal(t, []string{"bg", "cards-a", "cards-b", "overlay"}, log)
}

func TestOrchestratorResize(t *testing.T) {
	s := newSimScreen(t, 4, 2)
	o := NewRenderOrchestrator(s, 4, 2)

	s.SetSize(9, 5)
	o.Resize(9, 5)

	w, h := o.Buffer().Bounds()
	assert.Equal(t, 9, w)
	assert.Equal(t, 5, h)
	assert.NotPanics(t, func() {
		o.RenderFrame(NewRenderContext(time.Now(), 2, 9, 5))
	})
}
