package snake

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/vovakirdan/termsnake/internal/core"
)

func newTestGame(t *testing.T, w, h int, seed int64) *Game {
	t.Helper()
	g, err := New(core.Bounds{Width: w, Height: h}, rand.New(rand.NewSource(seed)), DefaultOptions())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return g
}

func TestMovesWithoutGrowing(t *testing.T) {
	g := newTestGame(t, 10, 10, 1)
	g.food = []core.Coordinate{{X: 9, Y: 9}}

	for i := 0; i < 3; i++ {
		res := g.Tick()
		if res.Ate || res.Outcome.Terminal() {
			t.Fatalf("tick %d: unexpected result %+v", i, res)
		}
	}

	if g.Len() != 1 {
		t.Errorf("Expected length 1, got %d", g.Len())
	}
	if head := g.Head(); head != (core.Coordinate{X: 3, Y: 0}) {
		t.Errorf("Expected head at (3,0), got %v", head)
	}
}

func TestEatingGrowsByOne(t *testing.T) {
	g := newTestGame(t, 10, 10, 2)
	g.food = []core.Coordinate{{X: 1, Y: 0}}

	res := g.Tick()
	if !res.Ate {
		t.Fatal("Expected food to be eaten")
	}
	if res.Outcome.Terminal() {
		t.Fatalf("Unexpected terminal outcome %v", res.Outcome)
	}

	segs := g.Segments()
	expected := []core.Coordinate{{X: 0, Y: 0}, {X: 1, Y: 0}}
	if len(segs) != len(expected) {
		t.Fatalf("Expected %d segments, got %v", len(expected), segs)
	}
	for i := range expected {
		if segs[i] != expected[i] {
			t.Errorf("segment %d = %v, expected %v", i, segs[i], expected[i])
		}
	}

	food := g.Food()
	if len(food) != 1 {
		t.Fatalf("Expected one replacement food item, got %v", food)
	}
	for _, seg := range segs {
		if food[0] == seg {
			t.Errorf("Replacement food placed on snake at %v", seg)
		}
	}
	if g.Eaten() != 1 {
		t.Errorf("Eaten() = %d, expected 1", g.Eaten())
	}
}

func TestSelfCollision(t *testing.T) {
	g := newTestGame(t, 10, 10, 3)
	g.body = &Body{
		segments:  []core.Coordinate{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}},
		direction: core.Right,
	}
	g.food = []core.Coordinate{{X: 9, Y: 9}}

	g.SetDirection(core.Left)
	res := g.Tick()

	if res.Outcome != OutcomeSelfCollision {
		t.Fatalf("Expected self collision, got %v", res.Outcome)
	}
	if g.Len() != 3 {
		t.Errorf("Body changed on terminal tick: len %d", g.Len())
	}
}

func TestChasingTailIsAllowed(t *testing.T) {
	g := newTestGame(t, 10, 10, 4)
	// Square loop: tail at (0,0), head at (0,1) heading up into the tail cell.
	g.body = &Body{
		segments:  []core.Coordinate{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}},
		direction: core.Up,
	}
	g.food = []core.Coordinate{{X: 9, Y: 9}}

	res := g.Tick()
	if res.Outcome.Terminal() {
		t.Fatalf("Moving into the vacating tail should not collide, got %v", res.Outcome)
	}
	if g.Head() != (core.Coordinate{X: 0, Y: 0}) {
		t.Errorf("Expected head at (0,0), got %v", g.Head())
	}
}

func TestOutOfBounds(t *testing.T) {
	tests := []struct {
		name  string
		start core.Coordinate
		dir   core.Direction
	}{
		{name: "top edge", start: core.Coordinate{X: 2, Y: 0}, dir: core.Up},
		{name: "left edge", start: core.Coordinate{X: 0, Y: 2}, dir: core.Left},
		{name: "bottom edge", start: core.Coordinate{X: 2, Y: 4}, dir: core.Down},
		{name: "right edge", start: core.Coordinate{X: 4, Y: 2}, dir: core.Right},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			opts := DefaultOptions()
			opts.Start = tc.start
			opts.Direction = tc.dir
			g, err := New(core.Bounds{Width: 5, Height: 5}, rand.New(rand.NewSource(5)), opts)
			if err != nil {
				t.Fatalf("New() failed: %v", err)
			}

			res := g.Tick()
			if res.Outcome != OutcomeOutOfBounds {
				t.Fatalf("Expected out of bounds, got %v", res.Outcome)
			}

			// Further ticks are no-ops
			before := g.Snapshot()
			again := g.Tick()
			if again.Outcome != OutcomeOutOfBounds {
				t.Errorf("Outcome changed after terminal tick: %v", again.Outcome)
			}
			if g.Snapshot() != before {
				t.Errorf("State changed after terminal tick")
			}
		})
	}
}

func TestBoardFull(t *testing.T) {
	g := newTestGame(t, 2, 1, 6)
	if food := g.Food(); len(food) != 1 || food[0] != (core.Coordinate{X: 1, Y: 0}) {
		t.Fatalf("Expected the only free cell to hold food, got %v", food)
	}

	res := g.Tick()
	if !res.Ate {
		t.Error("Expected the last food item to be eaten")
	}
	if res.Outcome != OutcomeBoardFull {
		t.Fatalf("Expected board full outcome, got %v", res.Outcome)
	}
}

func TestNewRejectsBadBoards(t *testing.T) {
	tests := []struct {
		name string
		b    core.Bounds
		want error
	}{
		{name: "zero size", b: core.Bounds{}, want: ErrInvalidBounds},
		{name: "negative", b: core.Bounds{Width: -4, Height: 4}, want: ErrInvalidBounds},
		{name: "single cell", b: core.Bounds{Width: 1, Height: 1}, want: ErrBoardFull},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.b, rand.New(rand.NewSource(1)), DefaultOptions())
			if !errors.Is(err, tc.want) {
				t.Errorf("New() error = %v, expected %v", err, tc.want)
			}
		})
	}
}

func TestNewRejectsStartOffBoard(t *testing.T) {
	opts := DefaultOptions()
	opts.Start = core.Coordinate{X: 10, Y: 0}
	_, err := New(core.Bounds{Width: 10, Height: 10}, rand.New(rand.NewSource(1)), opts)
	if !errors.Is(err, ErrInvalidBounds) {
		t.Errorf("Expected ErrInvalidBounds, got %v", err)
	}
}

// TestRandomWalkInvariants drives many games with random headings and checks
// the length and adjacency invariants after every tick.
func TestRandomWalkInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(77))

	for game := 0; game < 20; game++ {
		g := newTestGame(t, 12, 8, int64(game))

		for i := 0; i < 400; i++ {
			if rng.Intn(4) == 0 {
				g.SetDirection(core.Directions[rng.Intn(len(core.Directions))])
			}

			before := g.Len()
			res := g.Tick()
			if res.Outcome.Terminal() {
				if res.Outcome != OutcomeBoardFull && g.Len() != before {
					t.Fatalf("length changed on terminal tick: %d -> %d", before, g.Len())
				}
				break
			}

			want := before
			if res.Ate {
				want++
			}
			if g.Len() != want {
				t.Fatalf("game %d tick %d: length %d, expected %d", game, i, g.Len(), want)
			}

			segs := g.Segments()
			for j := 1; j < len(segs); j++ {
				if segs[j-1].Distance(segs[j]) != 1 {
					t.Fatalf("game %d tick %d: segments %v and %v not adjacent", game, i, segs[j-1], segs[j])
				}
			}

			for _, f := range g.Food() {
				if g.body.Occupies(f) {
					t.Fatalf("game %d tick %d: food %v on snake", game, i, f)
				}
			}
		}
	}
}

func TestMultiFoodSpawns(t *testing.T) {
	opts := DefaultOptions()
	opts.FoodMode = FoodMulti
	opts.SpawnChance = 1
	opts.MaxFood = 3
	opts.Start = core.Coordinate{X: 0, Y: 5}

	g, err := New(core.Bounds{Width: 40, Height: 10}, rand.New(rand.NewSource(8)), opts)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	for i := 0; i < 10 && !g.Outcome().Terminal(); i++ {
		g.Tick()
	}

	food := g.Food()
	if len(food) != 3 {
		t.Fatalf("Expected 3 food items, got %d", len(food))
	}
	seen := make(map[core.Coordinate]bool)
	for _, f := range food {
		if seen[f] {
			t.Errorf("Duplicate food at %v", f)
		}
		seen[f] = true
		if g.body.Occupies(f) {
			t.Errorf("Food on snake at %v", f)
		}
	}
}

func TestSingleFoodNeverSpawnsExtra(t *testing.T) {
	g := newTestGame(t, 40, 10, 9)
	g.opts.SpawnChance = 1

	for i := 0; i < 20 && !g.Outcome().Terminal(); i++ {
		g.Tick()
		if n := len(g.Food()); n != 1 {
			t.Fatalf("tick %d: expected 1 food item, got %d", i, n)
		}
	}
}

func TestDeterminism(t *testing.T) {
	g1 := newTestGame(t, 30, 15, 12345)
	g2 := newTestGame(t, 30, 15, 12345)

	turns := map[int]core.Direction{5: core.Down, 12: core.Right, 18: core.Down}
	for i := 0; i < 40; i++ {
		if d, ok := turns[i]; ok {
			g1.SetDirection(d)
			g2.SetDirection(d)
		}
		g1.Tick()
		g2.Tick()
	}

	if g1.Snapshot() != g2.Snapshot() {
		t.Errorf("Snapshot mismatch:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}
	f1, f2 := g1.Food(), g2.Food()
	if len(f1) != len(f2) || f1[0] != f2[0] {
		t.Errorf("Food mismatch: %v vs %v", f1, f2)
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, 10, 5, 10)
	g.body = &Body{
		segments:  []core.Coordinate{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}},
		direction: core.Right,
	}
	g.food = []core.Coordinate{{X: 5, Y: 3}}

	screen := core.NewScreen(10, 5)
	screen.Set(9, 4, '#') // stale content must be cleared
	g.Render(screen)

	if n := strings.Count(screen.String(), "x"); n != 3 {
		t.Errorf("Expected 3 segment glyphs, got %d", n)
	}
	if screen.Get(5, 3) != 'o' {
		t.Errorf("Expected food glyph at (5,3), got %q", screen.Get(5, 3))
	}
	if screen.Get(9, 4) != ' ' {
		t.Error("Render should clear the canvas first")
	}
}

func TestPalette(t *testing.T) {
	g := newTestGame(t, 10, 5, 11)
	p := g.Palette()
	if p.Lookup('x') != core.ColorBrightGreen {
		t.Errorf("segment color = %v", p.Lookup('x'))
	}
	if p.Lookup('?') != core.ColorDefault {
		t.Errorf("unknown glyph color = %v", p.Lookup('?'))
	}
}
