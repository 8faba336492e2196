package snake

import "github.com/vovakirdan/termsnake/internal/core"

// Body is the ordered segment queue of the snake. The tail is the first
// element and the head the last; it is never empty.
type Body struct {
	segments  []core.Coordinate
	direction core.Direction
}

// NewBody creates a one-segment snake at start heading in dir.
func NewBody(start core.Coordinate, dir core.Direction) *Body {
	segments := make([]core.Coordinate, 1, 16)
	segments[0] = start
	return &Body{segments: segments, direction: dir}
}

// Direction returns the current heading.
func (b *Body) Direction() core.Direction {
	return b.direction
}

// SetDirection changes the heading. Reversals are not rejected.
func (b *Body) SetDirection(d core.Direction) {
	b.direction = d
}

// Head returns the most recently added segment.
func (b *Body) Head() core.Coordinate {
	return b.segments[len(b.segments)-1]
}

// Tail returns the oldest segment.
func (b *Body) Tail() core.Coordinate {
	return b.segments[0]
}

// Len returns the number of segments.
func (b *Body) Len() int {
	return len(b.segments)
}

// Segments returns a copy of the segments from tail to head.
func (b *Body) Segments() []core.Coordinate {
	out := make([]core.Coordinate, len(b.segments))
	copy(out, b.segments)
	return out
}

// AdvanceHead appends the cell one step from the head in direction d and
// returns it. Growth versus movement is decided by the caller.
func (b *Body) AdvanceHead(d core.Direction) core.Coordinate {
	head := b.Head().StepIn(d)
	b.segments = append(b.segments, head)
	return head
}

// ShrinkTail removes the oldest segment. A one-segment body is left intact.
func (b *Body) ShrinkTail() {
	if len(b.segments) <= 1 {
		return
	}
	b.segments = b.segments[1:]
}

// Occupies returns true if any segment is at c.
func (b *Body) Occupies(c core.Coordinate) bool {
	for _, seg := range b.segments {
		if seg == c {
			return true
		}
	}
	return false
}

// OccupiesExceptTail is Occupies without the tail segment, which vacates its
// cell on a non-growing move.
func (b *Body) OccupiesExceptTail(c core.Coordinate) bool {
	for _, seg := range b.segments[1:] {
		if seg == c {
			return true
		}
	}
	return false
}
