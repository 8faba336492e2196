package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/termsnake/internal/config"
	"github.com/vovakirdan/termsnake/internal/core"
	"github.com/vovakirdan/termsnake/internal/driver"
	"github.com/vovakirdan/termsnake/internal/input"
	"github.com/vovakirdan/termsnake/internal/platform/tui"
	termscreen "github.com/vovakirdan/termsnake/internal/platform/term"
	"github.com/vovakirdan/termsnake/internal/snake"
)

func runGame(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("starting",
		"frontend", cfg.Frontend,
		"scheduling", cfg.Scheduling,
		"frame_rate", cfg.FrameRate,
		"food", cfg.Food.Mode,
		"seed", seed,
	)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rt := cfg.Runtime(0, 0, seed)

	var res driver.Result
	switch cfg.Frontend {
	case config.FrontendTea:
		res, err = playTea(ctx, cfg, rt, logger)
	default:
		res, err = playTcell(ctx, cfg, rt, logger)
	}
	if err != nil {
		logger.Error("session failed", "error", err)
		return err
	}

	if res.Reason == driver.ReasonGameOver {
		fmt.Fprintf(cmd.OutOrStdout(), "Game over (%s).\n", res.Outcome)
	}
	return nil
}

// loadConfig reads the config file and applies flags the user set explicitly.
func loadConfig(cmd *cobra.Command) (config.SnakeConfig, error) {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("speed") {
		if err := config.ApplySpeedPreset(&cfg, config.SpeedPreset(flagSpeed)); err != nil {
			return cfg, err
		}
	}
	if flags.Changed("fps") {
		cfg.FrameRate = flagFPS
	}
	if flags.Changed("food") {
		cfg.Food.Mode = flagFood
	}
	if flags.Changed("frontend") {
		cfg.Frontend = flagFrontend
	}
	if flags.Changed("sched") {
		cfg.Scheduling = flagSched
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// playTcell runs a session on a tcell screen. The screen is restored before
// any error reaches the caller.
func playTcell(ctx context.Context, cfg config.SnakeConfig, rt core.RuntimeConfig, logger *log.Logger) (driver.Result, error) {
	screen, err := termscreen.Open()
	if err != nil {
		return driver.Result{}, err
	}
	defer screen.Close()

	b := screen.Bounds()
	rt.ScreenW, rt.ScreenH = b.Width, b.Height
	logger.Debug("board", "width", rt.ScreenW, "height", rt.ScreenH)

	g, err := snake.New(rt.Bounds(), rand.New(rand.NewSource(rt.Seed)), cfg.GameOptions())
	if err != nil {
		return driver.Result{}, err
	}
	screen.SetPalette(g.Palette())

	opts := driver.Options{FrameRate: rt.FrameRate, Logger: logger}

	if cfg.Scheduling == config.SchedPolled {
		poller := termscreen.NewPoller(screen)
		defer poller.Stop()
		return driver.RunPolled(ctx, g, poller, screen, opts)
	}

	return runThreaded(ctx, g, screen, screen, opts)
}

// runThreaded reads keys from src on a pump goroutine and drives g from the
// intent queue. When the pump closes the queue because a read failed, that
// failure is returned instead of an interrupt.
func runThreaded(ctx context.Context, g driver.Game, src input.KeySource, sink driver.Sink, opts driver.Options) (driver.Result, error) {
	pumpCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	intents := input.NewQueue()
	pumpErr := make(chan error, 1)
	go func() {
		pumpErr <- input.Pump(pumpCtx, src, intents)
	}()

	res, err := driver.Run(ctx, g, intents, sink, opts)
	if err != nil {
		return res, err
	}
	if res.Reason == driver.ReasonInterrupted && ctx.Err() == nil {
		// The pump closed the queue: either Ctrl+C or a read failure.
		if perr := <-pumpErr; perr != nil {
			return res, perr
		}
	}
	return res, nil
}

// playTea runs a session in Bubble Tea. The board fills the terminal minus
// the status line.
func playTea(ctx context.Context, cfg config.SnakeConfig, rt core.RuntimeConfig, logger *log.Logger) (driver.Result, error) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return driver.Result{}, fmt.Errorf("terminal size: %w", err)
	}
	rt.ScreenW, rt.ScreenH = width, max(height-1, 1)
	logger.Debug("board", "width", rt.ScreenW, "height", rt.ScreenH)

	g, err := snake.New(rt.Bounds(), rand.New(rand.NewSource(rt.Seed)), cfg.GameOptions())
	if err != nil {
		return driver.Result{}, err
	}

	return tui.Run(ctx, g, rt.Bounds(), tui.Options{
		FrameRate: rt.FrameRate,
		Palette:   g.Palette(),
		ShowHelp:  true,
		Logger:    logger,
	})
}
