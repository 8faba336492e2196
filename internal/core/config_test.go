package core

import "testing"

func TestRuntimeConfigBounds(t *testing.T) {
	cfg := RuntimeConfig{ScreenW: 30, ScreenH: 12}
	b := cfg.Bounds()
	if !b.Valid() || b.Area() != 360 {
		t.Errorf("Bounds() = %+v, expected a valid 30x12 board", b)
	}
}
