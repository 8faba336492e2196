package driver

import (
	"context"

	"github.com/vovakirdan/termsnake/internal/core"
	"github.com/vovakirdan/termsnake/internal/snake"
)

// Run drives g from intents, which an input goroutine fills (see input.Pump).
// It never blocks on the channel: each frame drains whatever is queued,
// applies the oldest pending intent and keeps the rest for later frames.
// A closed channel ends the run as an interrupt.
func Run(ctx context.Context, g Game, intents <-chan core.Direction, sink Sink, opts Options) (Result, error) {
	opts, err := opts.normalize()
	if err != nil {
		return Result{}, err
	}
	interval := opts.Interval()
	logger := opts.Logger

	logger.Info("session started", "mode", "threaded", "frame_rate", opts.FrameRate)

	var (
		pending []core.Direction
		frames  uint64
	)

	for {
		start := opts.Clock.Now()

		if ctx.Err() != nil {
			return finish(g, ReasonInterrupted, snake.OutcomeRunning, frames, logger), nil
		}

		var closed bool
		pending, closed = drainIntents(intents, pending)
		if closed {
			return finish(g, ReasonInterrupted, snake.OutcomeRunning, frames, logger), nil
		}

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

		if remaining := interval - opts.Clock.Now().Sub(start); remaining > 0 {
			select {
			case <-ctx.Done():
				return finish(g, ReasonInterrupted, snake.OutcomeRunning, frames, logger), nil
			case <-opts.Clock.After(remaining):
			}
		}
	}
}

// drainIntents moves every queued intent into pending without blocking.
// It reports whether the channel has been closed.
func drainIntents(intents <-chan core.Direction, pending []core.Direction) ([]core.Direction, bool) {
	for {
		select {
		case d, ok := <-intents:
			if !ok {
				return pending, true
			}
			pending = append(pending, d)
		default:
			return pending, false
		}
	}
}
