// Package term is the tcell terminal backend: it owns raw mode and the
// alternate screen, paints glyphs and reads key presses.
package term

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/termsnake/internal/core"
	"github.com/vovakirdan/termsnake/internal/input"
)

// Screen adapts a tcell.Screen to driver.Sink and input.KeySource.
type Screen struct {
	screen    tcell.Screen
	palette   core.Palette
	closeOnce sync.Once
}

// Open initializes the controlling terminal.
// Callers must Close it to restore the terminal.
func Open() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("term: cannot create screen: %w", err)
	}
	return New(s)
}

// New initializes s and wraps it.
func New(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("term: cannot initialize screen: %w", err)
	}
	s.HideCursor()
	s.Clear()
	return &Screen{screen: s}, nil
}

// Close restores the terminal. It is safe to call more than once.
func (t *Screen) Close() {
	t.closeOnce.Do(t.screen.Fini)
}

// Bounds returns the current terminal size in cells.
func (t *Screen) Bounds() core.Bounds {
	w, h := t.screen.Size()
	return core.Bounds{Width: w, Height: h}
}

// SetPalette assigns colors to glyphs drawn with Set.
func (t *Screen) SetPalette(p core.Palette) {
	t.palette = p
}

// Clear blanks the whole surface.
func (t *Screen) Clear() {
	t.screen.Clear()
}

// Set places r at (x, y). Out-of-bounds cells are ignored by tcell.
func (t *Screen) Set(x, y int, r rune) {
	t.screen.SetContent(x, y, r, nil, styleFor(t.palette.Lookup(r)))
}

// Flush shows everything drawn since the last Clear. tcell reports no write
// errors from Show, so it always returns nil.
func (t *Screen) Flush() error {
	t.screen.Show()
	return nil
}

// ReadKey blocks until the next key press. Resize and mouse events are
// skipped; the board size is fixed for the session.
func (t *Screen) ReadKey() (input.KeyEvent, error) {
	for {
		switch ev := t.screen.PollEvent().(type) {
		case nil:
			// PollEvent returns nil once the screen is finalized
			return input.KeyEvent{}, input.ErrSourceClosed
		case *tcell.EventKey:
			return translateKey(ev), nil
		case *tcell.EventError:
			return input.KeyEvent{}, fmt.Errorf("term: %w", ev)
		}
	}
}

func styleFor(c core.Color) tcell.Style {
	idx := c.ANSI()
	if idx < 0 {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Foreground(tcell.PaletteColor(idx))
}

// translateKey maps a tcell key event onto the backend-neutral model.
func translateKey(ev *tcell.EventKey) input.KeyEvent {
	var mod input.Modifier
	if ev.Modifiers()&tcell.ModShift != 0 {
		mod |= input.ModShift
	}
	if ev.Modifiers()&tcell.ModAlt != 0 {
		mod |= input.ModAlt
	}
	if ev.Modifiers()&tcell.ModCtrl != 0 {
		mod |= input.ModCtrl
	}

	switch ev.Key() {
	case tcell.KeyUp:
		return input.KeyEvent{Key: input.KeyUp, Mod: mod}
	case tcell.KeyDown:
		return input.KeyEvent{Key: input.KeyDown, Mod: mod}
	case tcell.KeyLeft:
		return input.KeyEvent{Key: input.KeyLeft, Mod: mod}
	case tcell.KeyRight:
		return input.KeyEvent{Key: input.KeyRight, Mod: mod}
	case tcell.KeyCtrlC:
		return input.KeyEvent{Key: input.KeyCtrlC, Mod: mod | input.ModCtrl}
	case tcell.KeyEscape:
		return input.KeyEvent{Key: input.KeyEscape, Mod: mod}
	case tcell.KeyRune:
		return input.KeyEvent{Key: input.KeyRune, Rune: ev.Rune(), Mod: mod}
	}
	return input.KeyEvent{Key: input.KeyOther, Mod: mod}
}
