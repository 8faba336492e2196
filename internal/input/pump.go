package input

import (
	"context"
	"errors"
	"fmt"

	"github.com/vovakirdan/termsnake/internal/core"
)

// ErrSourceClosed is returned by a KeySource that will produce no more events.
var ErrSourceClosed = errors.New("input: key source closed")

// KeySource yields key presses, blocking until one is available.
type KeySource interface {
	ReadKey() (KeyEvent, error)
}

// QueueSize is the buffer of the intent channel between the input goroutine
// and the driver. Repeats are filtered before queuing, so it rarely fills.
const QueueSize = 32

// NewQueue creates the intent channel used by Pump and the threaded driver.
func NewQueue() chan core.Direction {
	return make(chan core.Direction, QueueSize)
}

// Pump reads events from src and sends accepted intents to out until the
// interrupt key is pressed, ctx is cancelled or src fails. It always closes
// out before returning, which the driver observes as disconnection.
// A nil error means the user interrupted or ctx was cancelled.
func Pump(ctx context.Context, src KeySource, out chan<- core.Direction) error {
	defer close(out)

	tracker := NewTracker()
	for {
		if ctx.Err() != nil {
			return nil
		}

		ev, err := src.ReadKey()
		if err != nil {
			if errors.Is(err, ErrSourceClosed) && ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("input: read key: %w", err)
		}

		dir, sig := tracker.Feed(ev)
		switch sig {
		case SignalTerminate:
			return nil
		case SignalIntent:
			select {
			case out <- dir:
			case <-ctx.Done():
				return nil
			}
		}
	}
}
