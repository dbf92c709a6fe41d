package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/flip-clock/animation"
	"github.com/lixenwraith/flip-clock/audio"
	"github.com/lixenwraith/flip-clock/clock"
	"github.com/lixenwraith/flip-clock/config"
	"github.com/lixenwraith/flip-clock/core"
	"github.com/lixenwraith/flip-clock/engine"
	"github.com/lixenwraith/flip-clock/screen"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

func main() {
	cfg, err := config.Load(os.Args[1:], os.LookupEnv, os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "flip-clock: %v\n", err)
		os.Exit(2)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "flip-clock: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}
	slog.Info("starting",
		"config", cfg.Path,
		"fps", cfg.FPS,
		"flip_duration", cfg.FlipDuration,
		"colon_fade", cfg.ColonFade,
		"sound", cfg.Sound,
	)

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("stdout is not a terminal")
	}

	scr, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "create screen")
	}
	if err := scr.Init(); err != nil {
		return errors.Wrap(err, "init screen")
	}
	// Normal exit terminal cleanup; crashes in any goroutine go through the same path
	core.SetCrashCleanup(scr.Fini)
	defer func() {
		core.SetCrashCleanup(nil)
		scr.Fini()
	}()
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	scr.HideCursor()
	scr.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack))
	scr.Clear()

	var player audio.Player
	if cfg.Sound {
		clicker := audio.NewClicker(cfg.Volume)
		if err := clicker.Initialize(); err != nil {
			slog.Warn("audio unavailable, continuing without sound", "error", err)
		} else {
			defer clicker.Cleanup()
			player = clicker
		}
	}

	loop := engine.NewLoop(scr, engine.Options{
		Formatter:     clock.LayoutFormatter{Layout: cfg.DateLayout},
		FrameInterval: cfg.FrameInterval(),
		Composer: screen.Options{
			FlipDuration: cfg.FlipDuration,
			ColonFade:    cfg.ColonFade,
			FlipCurve:    animation.FlipCurve,
		},
		Debug: cfg.Debug,
	}, player)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loop.Run(ctx)
	slog.Info("stopped")
	return nil
}
