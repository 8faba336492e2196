// Package input translates raw key events into snake direction intents.
// Backends convert their native events into KeyEvent; the Tracker filters
// them and the Pump forwards accepted intents to the driver.
package input

import "strings"

// Key identifies a logical key.
type Key int

const (
	KeyOther Key = iota
	KeyRune
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyCtrlC
	KeyEscape
)

// Modifier is a bit set of active modifier keys.
type Modifier uint8

const (
	ModShift Modifier = 1 << iota
	ModAlt
	ModCtrl
)

// KeyEvent is a single key press as reported by a backend.
type KeyEvent struct {
	Key  Key
	Rune rune // Set when Key is KeyRune
	Mod  Modifier
}

// RuneEvent is shorthand for an unmodified printable key press.
func RuneEvent(r rune) KeyEvent {
	return KeyEvent{Key: KeyRune, Rune: r}
}

// IsInterrupt returns true for Ctrl+C, reported either as a dedicated key or
// as the rune 'c' with the control modifier.
func (e KeyEvent) IsInterrupt() bool {
	if e.Key == KeyCtrlC {
		return true
	}
	return e.Key == KeyRune && e.Mod&ModCtrl != 0 && (e.Rune == 'c' || e.Rune == 'C')
}

// ParseKey converts a key name in the form used by Bubble Tea
// ("up", "ctrl+c", "w") into a KeyEvent.
func ParseKey(name string) KeyEvent {
	switch name {
	case "up":
		return KeyEvent{Key: KeyUp}
	case "down":
		return KeyEvent{Key: KeyDown}
	case "left":
		return KeyEvent{Key: KeyLeft}
	case "right":
		return KeyEvent{Key: KeyRight}
	case "ctrl+c":
		return KeyEvent{Key: KeyCtrlC, Mod: ModCtrl}
	case "esc":
		return KeyEvent{Key: KeyEscape}
	}

	var mod Modifier
	rest := name
	for {
		switch {
		case strings.HasPrefix(rest, "ctrl+"):
			mod |= ModCtrl
			rest = strings.TrimPrefix(rest, "ctrl+")
			continue
		case strings.HasPrefix(rest, "alt+"):
			mod |= ModAlt
			rest = strings.TrimPrefix(rest, "alt+")
			continue
		}
		break
	}

	runes := []rune(rest)
	if len(runes) != 1 {
		return KeyEvent{Key: KeyOther, Mod: mod}
	}
	return KeyEvent{Key: KeyRune, Rune: runes[0], Mod: mod}
}
