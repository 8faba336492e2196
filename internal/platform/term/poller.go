package term

import (
	"time"

	"github.com/vovakirdan/termsnake/internal/input"
)

type readResult struct {
	ev  input.KeyEvent
	err error
}

// Poller turns a blocking KeySource into a bounded-wait one for
// driver.RunPolled. A reader goroutine forwards every key press; the game
// loop only ever waits inside Poll.
type Poller struct {
	results chan readResult
	stop    chan struct{}
}

// NewPoller starts reading from src.
func NewPoller(src input.KeySource) *Poller {
	p := &Poller{
		results: make(chan readResult, input.QueueSize),
		stop:    make(chan struct{}),
	}
	go p.read(src)
	return p
}

func (p *Poller) read(src input.KeySource) {
	for {
		ev, err := src.ReadKey()
		select {
		case p.results <- readResult{ev: ev, err: err}:
		case <-p.stop:
			return
		}
		if err != nil {
			return
		}
	}
}

// Poll waits up to timeout for the next key press.
func (p *Poller) Poll(timeout time.Duration) (input.KeyEvent, bool, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case r := <-p.results:
		if r.err != nil {
			return input.KeyEvent{}, false, r.err
		}
		return r.ev, true, nil
	case <-timer.C:
		return input.KeyEvent{}, false, nil
	}
}

// Stop ends the reader goroutine once its pending read returns.
func (p *Poller) Stop() {
	select {
	case <-p.stop:
	default:
		close(p.stop)
	}
}
