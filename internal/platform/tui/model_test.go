package tui

import (
	"math/rand"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/termsnake/internal/core"
	"github.com/vovakirdan/termsnake/internal/driver"
	"github.com/vovakirdan/termsnake/internal/snake"
)

func newTestModel(t *testing.T, bounds core.Bounds, showHelp bool) (Model, *snake.Game) {
	t.Helper()
	g, err := snake.New(bounds, rand.New(rand.NewSource(1)), snake.DefaultOptions())
	if err != nil {
		t.Fatalf("snake.New() failed: %v", err)
	}
	m := NewModel(g, bounds, Options{FrameRate: 10, Palette: g.Palette(), ShowHelp: showHelp})
	return m, g
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestTickAdvancesSnake(t *testing.T) {
	m, g := newTestModel(t, core.Bounds{Width: 10, Height: 10}, false)

	m, cmd := update(t, m, TickMsg{})
	if m.Done() || cmd == nil {
		t.Fatal("expected the session to keep running after one tick")
	}
	if g.Head() != (core.Coordinate{X: 1, Y: 0}) {
		t.Errorf("head = %v, expected (1,0)", g.Head())
	}
	if !strings.Contains(m.View(), "x") {
		t.Error("View() should draw the snake after a tick")
	}
}

func TestKeyQueuesIntentForNextTick(t *testing.T) {
	m, g := newTestModel(t, core.Bounds{Width: 10, Height: 10}, false)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if g.Direction() != core.Right {
		t.Fatal("a key press must not change direction before the next tick")
	}

	m, _ = update(t, m, TickMsg{})
	if g.Direction() != core.Down {
		t.Errorf("direction = %v, expected down", g.Direction())
	}
	if g.Head() != (core.Coordinate{X: 0, Y: 1}) {
		t.Errorf("head = %v, expected (0,1)", g.Head())
	}
	if len(m.pending) != 0 {
		t.Errorf("pending = %v, expected empty", m.pending)
	}
}

func TestOneIntentPerTick(t *testing.T) {
	m, g := newTestModel(t, core.Bounds{Width: 10, Height: 10}, false)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})

	m, _ = update(t, m, TickMsg{})
	if g.Direction() != core.Down {
		t.Errorf("first tick direction = %v, expected down", g.Direction())
	}
	m, _ = update(t, m, TickMsg{})
	if g.Direction() != core.Right {
		t.Errorf("second tick direction = %v, expected right", g.Direction())
	}
	if len(m.pending) != 0 {
		t.Errorf("pending = %v, expected empty", m.pending)
	}
}

func TestRepeatedKeySuppressed(t *testing.T) {
	m, _ := newTestModel(t, core.Bounds{Width: 10, Height: 10}, false)

	for range 3 {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	}
	if len(m.pending) != 1 {
		t.Errorf("pending = %v, expected a single intent", m.pending)
	}
}

func TestCtrlCQuits(t *testing.T) {
	m, _ := newTestModel(t, core.Bounds{Width: 10, Height: 10}, false)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})

	if !isQuit(cmd) {
		t.Fatal("Ctrl+C should quit the program")
	}
	if !m.Done() {
		t.Fatal("model should be done after Ctrl+C")
	}
	r := m.Result()
	if r.Reason != driver.ReasonInterrupted {
		t.Errorf("reason = %v, expected interrupted", r.Reason)
	}
	if r.Frames != 0 {
		t.Errorf("frames = %d, expected 0", r.Frames)
	}
	if m.View() != "" {
		t.Error("View() should be empty once done")
	}

	// Messages after the session ended are ignored.
	m, cmd = update(t, m, TickMsg{})
	if cmd != nil || m.Result().Frames != 0 {
		t.Error("tick after quit should be ignored")
	}
}

func TestGameOverQuits(t *testing.T) {
	m, _ := newTestModel(t, core.Bounds{Width: 3, Height: 1}, false)

	var cmd tea.Cmd
	for i := 0; i < 10 && !m.Done(); i++ {
		m, cmd = update(t, m, TickMsg{})
	}

	if !m.Done() {
		t.Fatal("snake running right on a 3x1 board should end within a few ticks")
	}
	if !isQuit(cmd) {
		t.Error("game over should quit the program")
	}
	r := m.Result()
	if r.Reason != driver.ReasonGameOver {
		t.Errorf("reason = %v, expected game over", r.Reason)
	}
	if !r.Outcome.Terminal() {
		t.Errorf("outcome = %v, expected terminal", r.Outcome)
	}
	if m.Err() != nil {
		t.Errorf("Err() = %v, expected nil", m.Err())
	}
}

func TestWindowSizeKeepsBoard(t *testing.T) {
	m, g := newTestModel(t, core.Bounds{Width: 10, Height: 4}, false)

	m, cmd := update(t, m, tea.WindowSizeMsg{Width: 40, Height: 20})
	if cmd != nil {
		t.Error("resize should not schedule work")
	}
	if g.Bounds() != (core.Bounds{Width: 10, Height: 4}) {
		t.Errorf("bounds changed to %v", g.Bounds())
	}
	if m.screen.Width() != 10 || m.screen.Height() != 4 {
		t.Errorf("screen resized to %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestViewWithHelp(t *testing.T) {
	m, _ := newTestModel(t, core.Bounds{Width: 10, Height: 4}, true)
	m, _ = update(t, m, TickMsg{})

	view := m.View()
	if !strings.Contains(view, "quit") {
		t.Errorf("status line missing quit binding:\n%s", view)
	}
	lines := strings.Split(view, "\n")
	status := lines[len(lines)-1]
	if strings.ContainsAny(status, "0123456789") {
		t.Errorf("status line should only list key bindings, got %q", status)
	}
	if got := strings.Count(view, "\n"); got != 4 {
		t.Errorf("view has %d newlines, expected 4 (board rows plus status)", got)
	}
}
