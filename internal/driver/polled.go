package driver

import (
	"context"
	"fmt"
	"time"

	"github.com/vovakirdan/termsnake/internal/core"
	"github.com/vovakirdan/termsnake/internal/input"
	"github.com/vovakirdan/termsnake/internal/snake"
)

// Poller returns the next key event, waiting at most timeout.
// ok is false when the timeout elapsed without an event.
type Poller interface {
	Poll(timeout time.Duration) (ev input.KeyEvent, ok bool, err error)
}

// RunPolled drives g on the calling goroutine. After each frame it polls for
// key events until the next frame boundary; the poll is the only place the
// loop waits. Intents accepted by the tracker queue up and are applied one
// per frame.
func RunPolled(ctx context.Context, g Game, poller Poller, sink Sink, opts Options) (Result, error) {
	opts, err := opts.normalize()
	if err != nil {
		return Result{}, err
	}
	interval := opts.Interval()
	logger := opts.Logger

	logger.Info("session started", "mode", "polled", "frame_rate", opts.FrameRate)

	var (
		tracker = input.NewTracker()
		pending []core.Direction
		frames  uint64
	)

	for {
		start := opts.Clock.Now()

		var dir core.Direction
		has := len(pending) > 0
		if has {
			dir = pending[0]
			pending = pending[1:]
			logger.Debug("direction change", "from", g.Direction(), "to", dir, "frame", frames)
		}

		res, err := Step(g, dir, has, sink)
		frames++
		if err != nil {
			logger.Error("frame failed", "frame", frames, "error", err)
			return Result{Reason: ReasonInterrupted, Outcome: res.Outcome, Frames: frames, Eaten: g.Eaten()}, err
		}
		if res.Outcome.Terminal() {
			return finish(g, ReasonGameOver, res.Outcome, frames, logger), nil
		}

		for {
			if ctx.Err() != nil {
				return finish(g, ReasonInterrupted, snake.OutcomeRunning, frames, logger), nil
			}

			remaining := interval - opts.Clock.Now().Sub(start)
			if remaining <= 0 {
				break
			}

			ev, ok, err := poller.Poll(remaining)
			if err != nil {
				logger.Error("input failed", "frame", frames, "error", err)
				return Result{Reason: ReasonInterrupted, Frames: frames, Eaten: g.Eaten()}, fmt.Errorf("driver: poll input: %w", err)
			}
			if !ok {
				continue
			}

			d, sig := tracker.Feed(ev)
			switch sig {
			case input.SignalTerminate:
				return finish(g, ReasonInterrupted, snake.OutcomeRunning, frames, logger), nil
			case input.SignalIntent:
				pending = append(pending, d)
			}
		}
	}
}
