// Package driver runs the frame loop: it applies at most one pending
// direction intent, advances the game by one tick, renders and then waits
// for the next frame boundary. Two scheduling shapes are provided: Run reads
// intents from a channel fed by an input goroutine, RunPolled polls for key
// events itself between frames.
package driver

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/termsnake/internal/core"
	"github.com/vovakirdan/termsnake/internal/snake"
)

// ErrNoFrameRate is returned when Options.FrameRate is not positive.
var ErrNoFrameRate = errors.New("driver: frame rate must be positive")

// Game is the state the driver advances each frame. *snake.Game implements it.
type Game interface {
	SetDirection(d core.Direction)
	Direction() core.Direction
	Tick() snake.TickResult
	Render(dst core.Canvas)
	Eaten() int
}

// Sink is the display surface. Flush commits everything drawn since Clear.
type Sink interface {
	core.Canvas
	Flush() error
}

// Clock abstracts time for frame pacing.
type Clock interface {
	Now() time.Time
	After(d time.Duration) <-chan time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time                         { return time.Now() }
func (systemClock) After(d time.Duration) <-chan time.Time { return time.After(d) }

// SystemClock is the wall clock.
var SystemClock Clock = systemClock{}

// Options configures a driver run.
type Options struct {
	FrameRate int // Frames per second
	Clock     Clock
	Logger    *log.Logger
}

func (o Options) normalize() (Options, error) {
	if o.FrameRate <= 0 {
		return o, ErrNoFrameRate
	}
	if o.Clock == nil {
		o.Clock = SystemClock
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	return o, nil
}

// Interval returns the duration of one frame.
func (o Options) Interval() time.Duration {
	if o.FrameRate <= 0 {
		return 0
	}
	return time.Second / time.Duration(o.FrameRate)
}

// Reason tells why a run ended without an error.
type Reason int

const (
	// ReasonInterrupted means the user pressed the interrupt key or the
	// context was cancelled.
	ReasonInterrupted Reason = iota
	// ReasonGameOver means the game reached a terminal outcome.
	ReasonGameOver
)

func (r Reason) String() string {
	switch r {
	case ReasonInterrupted:
		return "interrupted"
	case ReasonGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Result summarizes a finished run.
type Result struct {
	Reason  Reason
	Outcome snake.Outcome
	Frames  uint64
	Eaten   int
}

// Step runs one frame's work: apply dir when has is true, tick, and render
// unless the tick ended the game. Sink failures are returned as errors.
func Step(g Game, dir core.Direction, has bool, sink Sink) (snake.TickResult, error) {
	if has {
		g.SetDirection(dir)
	}

	res := g.Tick()
	if res.Outcome.Terminal() {
		return res, nil
	}

	g.Render(sink)
	if err := sink.Flush(); err != nil {
		return res, fmt.Errorf("driver: render: %w", err)
	}
	return res, nil
}

// finish builds the result for a run ending at frame n.
func finish(g Game, reason Reason, outcome snake.Outcome, frames uint64, logger *log.Logger) Result {
	r := Result{Reason: reason, Outcome: outcome, Frames: frames, Eaten: g.Eaten()}
	logger.Info("session ended",
		"reason", r.Reason,
		"outcome", r.Outcome,
		"frames", r.Frames,
		"eaten", r.Eaten,
	)
	return r
}
