// Package snake implements the game state of a single snake session: the
// segment queue, food placement and the discrete tick.
package snake

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/termsnake/internal/core"
)

// ErrInvalidBounds is returned for boards without positive dimensions or a
// start cell outside the board.
var ErrInvalidBounds = errors.New("snake: invalid board bounds")

// FoodMode selects how many food items can exist at once.
type FoodMode string

const (
	// FoodSingle keeps exactly one food item on the board.
	FoodSingle FoodMode = "single"
	// FoodMulti spawns extra items at random, up to Options.MaxFood.
	FoodMulti FoodMode = "multi"
)

// Outcome describes whether a session continues and, if not, why it ended.
// Terminal outcomes are normal game endings, not errors.
type Outcome int

const (
	OutcomeRunning Outcome = iota
	OutcomeOutOfBounds
	OutcomeSelfCollision
	OutcomeBoardFull
)

// Terminal returns true if the outcome ends the session.
func (o Outcome) Terminal() bool {
	return o != OutcomeRunning
}

func (o Outcome) String() string {
	switch o {
	case OutcomeRunning:
		return "running"
	case OutcomeOutOfBounds:
		return "out_of_bounds"
	case OutcomeSelfCollision:
		return "self_collision"
	case OutcomeBoardFull:
		return "board_full"
	default:
		return "unknown"
	}
}

// TickResult reports what happened during one tick.
type TickResult struct {
	Ate     bool
	Outcome Outcome
}

// Options configures a game session.
type Options struct {
	Start        core.Coordinate
	Direction    core.Direction
	FoodMode     FoodMode
	SpawnChance  float64 // Per-tick chance of an extra item (multi mode)
	MaxFood      int     // Upper bound on simultaneous items (multi mode)
	SegmentGlyph rune
	FoodGlyph    rune
}

// DefaultOptions returns the classic setup: one segment in the top-left
// corner heading right, a single food item.
func DefaultOptions() Options {
	return Options{
		Start:        core.Coordinate{X: 0, Y: 0},
		Direction:    core.Right,
		FoodMode:     FoodSingle,
		SpawnChance:  0.05,
		MaxFood:      5,
		SegmentGlyph: 'x',
		FoodGlyph:    'o',
	}
}

// Game is one snake session. It is not safe for concurrent use; the driver
// owns it exclusively.
type Game struct {
	bounds  core.Bounds
	body    *Body
	food    []core.Coordinate
	rng     Rand
	opts    Options
	tick    uint64
	eaten   int
	outcome Outcome
}

// New creates a session on a board of the given size and places the first
// food item.
func New(bounds core.Bounds, rng Rand, opts Options) (*Game, error) {
	if !bounds.Valid() || !bounds.Contains(opts.Start) {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidBounds, bounds.Width, bounds.Height)
	}
	if opts.FoodMode == "" {
		opts.FoodMode = FoodSingle
	}
	if opts.MaxFood < 1 {
		opts.MaxFood = 1
	}
	if opts.SegmentGlyph == 0 {
		opts.SegmentGlyph = 'x'
	}
	if opts.FoodGlyph == 0 {
		opts.FoodGlyph = 'o'
	}

	g := &Game{
		bounds: bounds,
		body:   NewBody(opts.Start, opts.Direction),
		rng:    rng,
		opts:   opts,
	}

	if err := g.spawnFood(); err != nil {
		return nil, fmt.Errorf("snake: cannot place initial food: %w", err)
	}
	return g, nil
}

// Bounds returns the board size.
func (g *Game) Bounds() core.Bounds {
	return g.bounds
}

// Direction returns the current heading.
func (g *Game) Direction() core.Direction {
	return g.body.Direction()
}

// SetDirection changes the heading used by the next tick. Reversing into the
// body is allowed and ends the game on that tick, as in classic snake.
func (g *Game) SetDirection(d core.Direction) {
	g.body.SetDirection(d)
}

// Head returns the head coordinate.
func (g *Game) Head() core.Coordinate {
	return g.body.Head()
}

// Len returns the snake length.
func (g *Game) Len() int {
	return g.body.Len()
}

// Segments returns the body from tail to head.
func (g *Game) Segments() []core.Coordinate {
	return g.body.Segments()
}

// Food returns a copy of the current food cells.
func (g *Game) Food() []core.Coordinate {
	out := make([]core.Coordinate, len(g.food))
	copy(out, g.food)
	return out
}

// Outcome returns the session outcome so far.
func (g *Game) Outcome() Outcome {
	return g.outcome
}

// Ticks returns the number of ticks simulated.
func (g *Game) Ticks() uint64 {
	return g.tick
}

// Eaten returns the number of food items consumed.
func (g *Game) Eaten() int {
	return g.eaten
}

// Tick advances the snake one cell in its current direction.
// Once a terminal outcome is reached further calls change nothing.
func (g *Game) Tick() TickResult {
	if g.outcome.Terminal() {
		return TickResult{Outcome: g.outcome}
	}
	g.tick++

	next := g.body.Head().StepIn(g.body.Direction())
	if !g.bounds.Contains(next) {
		g.outcome = OutcomeOutOfBounds
		return TickResult{Outcome: g.outcome}
	}

	foodIdx := g.foodIndex(next)
	ate := foodIdx >= 0

	// The tail moves away this tick unless the snake grows.
	collides := g.body.OccupiesExceptTail(next)
	if ate {
		collides = g.body.Occupies(next)
	}
	if collides {
		g.outcome = OutcomeSelfCollision
		return TickResult{Outcome: g.outcome}
	}

	g.body.AdvanceHead(g.body.Direction())

	if ate {
		g.eaten++
		g.food = append(g.food[:foodIdx], g.food[foodIdx+1:]...)
		if err := g.spawnFood(); err != nil && len(g.food) == 0 {
			g.outcome = OutcomeBoardFull
			return TickResult{Ate: true, Outcome: g.outcome}
		}
	} else {
		g.body.ShrinkTail()
	}

	if g.opts.FoodMode == FoodMulti && len(g.food) < g.opts.MaxFood &&
		g.rng.Float64() < g.opts.SpawnChance {
		//nolint:errcheck // A crowded board simply skips the bonus item
		g.spawnFood()
	}

	return TickResult{Ate: ate, Outcome: g.outcome}
}

// spawnFood adds one food item on a free cell.
func (g *Game) spawnFood() error {
	c, err := Place(g.bounds, g.occupied, g.rng)
	if err != nil {
		return err
	}
	g.food = append(g.food, c)
	return nil
}

// occupied reports cells new food must avoid.
func (g *Game) occupied(c core.Coordinate) bool {
	return g.body.Occupies(c) || g.foodIndex(c) >= 0
}

func (g *Game) foodIndex(c core.Coordinate) int {
	for i, f := range g.food {
		if f == c {
			return i
		}
	}
	return -1
}

// Render clears dst and draws one glyph per segment and per food item.
func (g *Game) Render(dst core.Canvas) {
	dst.Clear()

	for _, seg := range g.body.segments {
		dst.Set(seg.X, seg.Y, g.opts.SegmentGlyph)
	}
	for _, f := range g.food {
		dst.Set(f.X, f.Y, g.opts.FoodGlyph)
	}
}

// Palette returns the default colors for this game's glyphs.
func (g *Game) Palette() core.Palette {
	return core.Palette{
		g.opts.SegmentGlyph: core.ColorBrightGreen,
		g.opts.FoodGlyph:    core.ColorBrightRed,
	}
}
