package snake

// Snapshot captures the game state for determinism testing and logging.
type Snapshot struct {
	Tick     uint64
	Eaten    int
	SnakeLen int
	HeadX    int
	HeadY    int
	Dir      string
	Food     int // Number of food items on the board
	Outcome  string
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	head := g.body.Head()
	return Snapshot{
		Tick:     g.tick,
		Eaten:    g.eaten,
		SnakeLen: g.body.Len(),
		HeadX:    head.X,
		HeadY:    head.Y,
		Dir:      g.body.Direction().String(),
		Food:     len(g.food),
		Outcome:  g.outcome.String(),
	}
}
