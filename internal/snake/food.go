package snake

import (
	"errors"

	"github.com/vovakirdan/termsnake/internal/core"
)

// maxPlacementAttempts bounds rejection sampling before Place falls back to
// scanning for free cells.
const maxPlacementAttempts = 64

// ErrBoardFull is returned when no free cell is left for food.
var ErrBoardFull = errors.New("snake: no free cell for food")

// Rand is the randomness source used for food placement.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Place picks a uniformly random cell within bounds for which occupied
// returns false.
func Place(bounds core.Bounds, occupied func(core.Coordinate) bool, rng Rand) (core.Coordinate, error) {
	if !bounds.Valid() {
		return core.Coordinate{}, ErrInvalidBounds
	}

	for range maxPlacementAttempts {
		c := core.Coordinate{
			X: rng.Intn(bounds.Width),
			Y: rng.Intn(bounds.Height),
		}
		if !occupied(c) {
			return c, nil
		}
	}

	// Crowded board: sample among the cells that are actually free.
	var free []core.Coordinate
	for y := 0; y < bounds.Height; y++ {
		for x := 0; x < bounds.Width; x++ {
			c := core.Coordinate{X: x, Y: y}
			if !occupied(c) {
				free = append(free, c)
			}
		}
	}

	if len(free) == 0 {
		return core.Coordinate{}, ErrBoardFull
	}
	return free[rng.Intn(len(free))], nil
}
