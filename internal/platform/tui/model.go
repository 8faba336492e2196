package tui

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/termsnake/internal/core"
	"github.com/vovakirdan/termsnake/internal/driver"
	"github.com/vovakirdan/termsnake/internal/input"
	"github.com/vovakirdan/termsnake/internal/snake"
)

// Options configures the Bubble Tea frontend.
type Options struct {
	FrameRate int
	Palette   core.Palette
	ShowHelp  bool // Draw a status line below the board
	Logger    *log.Logger
}

// screenSink adapts the in-memory screen to driver.Sink. Bubble Tea pulls
// the frame through View, so Flush has nothing to commit.
type screenSink struct {
	*core.Screen
}

func (screenSink) Flush() error { return nil }

// Model is the Bubble Tea model for one snake session.
type Model struct {
	game    driver.Game
	screen  *core.Screen
	tracker *input.Tracker
	pending []core.Direction
	keys    KeyMap
	help    help.Model
	opts    Options
	frames  uint64
	result  driver.Result
	err     error
	done    bool
}

// NewModel creates a model drawing game onto a board of the given bounds.
func NewModel(game driver.Game, bounds core.Bounds, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return Model{
		game:    game,
		screen:  core.NewScreen(bounds.Width, bounds.Height),
		tracker: input.NewTracker(),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		opts:    opts,
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	m.opts.Logger.Info("session started", "mode", "tea", "frame_rate", m.opts.FrameRate)
	return tickNow
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.done {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The board is fixed for the session; only the help width follows the terminal.
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	dir, sig := m.tracker.Feed(m.keys.Translate(msg))
	switch sig {
	case input.SignalTerminate:
		m.finish(driver.ReasonInterrupted, snake.OutcomeRunning)
		return m, tea.Quit
	case input.SignalIntent:
		m.pending = append(m.pending, dir)
	}
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	var dir core.Direction
	has := len(m.pending) > 0
	if has {
		dir = m.pending[0]
		m.pending = m.pending[1:]
		m.opts.Logger.Debug("direction change", "from", m.game.Direction(), "to", dir, "frame", m.frames)
	}

	res, err := driver.Step(m.game, dir, has, screenSink{m.screen})
	m.frames++
	if err != nil {
		m.opts.Logger.Error("frame failed", "frame", m.frames, "error", err)
		m.err = err
		m.done = true
		return m, tea.Quit
	}
	if res.Outcome.Terminal() {
		m.finish(driver.ReasonGameOver, res.Outcome)
		return m, tea.Quit
	}

	return m, tickCmd(m.opts.FrameRate)
}

func (m *Model) finish(reason driver.Reason, outcome snake.Outcome) {
	m.done = true
	m.result = driver.Result{
		Reason:  reason,
		Outcome: outcome,
		Frames:  m.frames,
		Eaten:   m.game.Eaten(),
	}
	m.opts.Logger.Info("session ended",
		"reason", m.result.Reason,
		"outcome", m.result.Outcome,
		"frames", m.result.Frames,
		"eaten", m.result.Eaten,
	)
}

// Result returns how the session ended. It is meaningful once Done reports true.
func (m Model) Result() driver.Result {
	return m.result
}

// Err returns the render failure that stopped the session, if any.
func (m Model) Err() error {
	return m.err
}

// Done reports whether the session has ended.
func (m Model) Done() bool {
	return m.done
}

// View renders the last drawn frame.
func (m Model) View() string {
	if m.done {
		return ""
	}

	board := RenderScreen(m.screen, m.opts.Palette)
	if !m.opts.ShowHelp {
		return board
	}
	return board + "\n" + statusStyle.Render(m.help.View(m.keys))
}

// Run plays one session in the alternate screen until the player quits,
// the game ends or ctx is cancelled.
func Run(ctx context.Context, game driver.Game, bounds core.Bounds, opts Options) (driver.Result, error) {
	if opts.FrameRate <= 0 {
		return driver.Result{}, driver.ErrNoFrameRate
	}

	model := NewModel(game, bounds, opts)
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	final, err := p.Run()
	fm, ok := final.(Model)
	if !ok {
		fm = model
	}
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			if !fm.done {
				fm.finish(driver.ReasonInterrupted, snake.OutcomeRunning)
			}
			return fm.result, nil
		}
		return fm.result, fmt.Errorf("tui: %w", err)
	}
	if fm.err != nil {
		return fm.result, fm.err
	}
	return fm.result, nil
}
