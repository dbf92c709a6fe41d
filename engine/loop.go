// Package engine runs the clock: it feeds per-second samples into the composer and renders frames while anything animates
package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/jonboulle/clockwork"
	"github.com/lixenwraith/flip-clock/asset"
	"github.com/lixenwraith/flip-clock/audio"
	"github.com/lixenwraith/flip-clock/clock"
	"github.com/lixenwraith/flip-clock/constant"
	"github.com/lixenwraith/flip-clock/core"
	"github.com/lixenwraith/flip-clock/render"
	"github.com/lixenwraith/flip-clock/render/renderers"
	"github.com/lixenwraith/flip-clock/screen"
)

// Options configures a Loop; zero values take defaults
type Options struct {
	Clock         clockwork.Clock
	Formatter     clock.DateFormatter
	FrameInterval time.Duration
	Composer      screen.Options
	Debug         bool
}

// Loop owns the screen-side state and is driven from a single goroutine
// The clock source and the event poller run in their own goroutines and only talk to it through channels
type Loop struct {
	screen       tcell.Screen
	clock        clockwork.Clock
	source       *clock.Source
	composer     *screen.Composer
	orchestrator *render.RenderOrchestrator
	player       audio.Player
	interval     time.Duration

	width, height int
	frame         uint64
	dirty         bool
	wasAnimating  bool
}

// NewLoop wires the render pipeline onto an initialized screen; player may be nil
func NewLoop(scr tcell.Screen, opts Options, player audio.Player) *Loop {
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = constant.FrameUpdateInterval
	}
	if opts.Composer.FlipDuration <= 0 {
		opts.Composer = screen.DefaultOptions()
	}

	width, height := scr.Size()
	composer := screen.NewComposer(opts.Composer)
	atlas := asset.NewAtlas()

	orchestrator := render.NewRenderOrchestrator(scr, width, height)

	// Create and register renderers in priority order
	type rendererDef struct {
		renderer render.SystemRenderer
		priority render.RenderPriority
	}
	rendererList := []rendererDef{
		{renderers.NewBackgroundRenderer(), render.PriorityBackground},
		{renderers.NewHeaderRenderer(composer), render.PriorityHeader},
		{renderers.NewCardsRenderer(composer, atlas), render.PriorityCards},
		{renderers.NewColonRenderer(composer, atlas), render.PriorityColon},
		{renderers.NewStatusBarRenderer(composer, opts.Debug), render.PriorityDebug},
	}
	for _, def := range rendererList {
		orchestrator.Register(def.renderer, def.priority)
	}

	return &Loop{
		screen:       scr,
		clock:        opts.Clock,
		source:       clock.NewSource(opts.Clock, opts.Formatter),
		composer:     composer,
		orchestrator: orchestrator,
		player:       player,
		interval:     opts.FrameInterval,
		width:        width,
		height:       height,
	}
}

// Composer exposes the face state, mainly for tests
func (l *Loop) Composer() *screen.Composer {
	return l.composer
}

// Run blocks until the user quits or ctx is cancelled
// Both background goroutines are stopped before it returns, except the poller which ends when the screen is finalized
func (l *Loop) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)

	samples := make(chan clock.Sample, 1)
	sourceDone := make(chan struct{})
	core.Go(func() {
		defer close(sourceDone)
		l.source.Run(ctx, samples)
	})
	defer func() {
		cancel()
		<-sourceDone
	}()

	events := make(chan tcell.Event, constant.EventQueueSize)
	// Input polling ends on screen Fini, PollEvent returns nil
	core.Go(func() {
		for {
			ev := l.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	})

	frameTicker := l.clock.NewTicker(l.interval)
	defer frameTicker.Stop()

	slog.Debug("loop started", "width", l.width, "height", l.height, "frame_interval", l.interval)

	for {
		select {
		case <-ctx.Done():
			slog.Debug("loop stopped", "reason", ctx.Err())
			return

		case s := <-samples:
			l.applySample(s, l.clock.Now())

		case ev := <-events:
			if l.handleEvent(ev) {
				slog.Debug("loop stopped", "reason", "quit key")
				return
			}

		case now := <-frameTicker.Chan():
			l.renderFrame(now)
		}
	}
}

// applySample decomposes a sample and forwards it to the composer, clicking when cards start to flip
func (l *Loop) applySample(s clock.Sample, now time.Time) int {
	face := clock.Decompose(s)
	started := l.composer.Apply(face, now)
	l.dirty = true

	if started > 0 {
		slog.Debug("flip", "time", face.Text(), "cells", started)
		if l.player != nil {
			l.player.PlayClick(started)
		}
	}
	return started
}

// handleEvent processes one terminal event and reports whether the loop should exit
func (l *Loop) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyRune:
			if ev.Rune() == 'q' || ev.Rune() == 'Q' {
				return true
			}
		}

	case *tcell.EventResize:
		l.width, l.height = ev.Size()
		l.orchestrator.Resize(l.width, l.height)
		l.dirty = true
		slog.Debug("resize", "width", l.width, "height", l.height)
	}
	return false
}

// renderFrame advances animations to now and draws when something changed
// The frame after the last animating one is still drawn so every transition lands on its end state
func (l *Loop) renderFrame(now time.Time) bool {
	l.composer.Advance(now)
	animating := l.composer.Animating()

	if !l.dirty && !animating && !l.wasAnimating {
		return false
	}
	l.wasAnimating = animating
	l.dirty = false

	l.frame++
	l.orchestrator.RenderFrame(render.NewRenderContext(now, l.frame, l.width, l.height))
	return true
}
