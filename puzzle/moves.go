package puzzle

import (
	"fmt"
	"strings"
)

// Direction is the way a tile travels on screen when it slides into the blank.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// DefaultSwipeThreshold is the displacement a drag must reach on at least one
// axis before it counts as a swipe.
const DefaultSwipeThreshold = 24.0

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// ParseDirection accepts "up", "down", "left" or "right" in any case.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u":
		return Up, nil
	case "down", "d":
		return Down, nil
	case "left", "l":
		return Left, nil
	case "right", "r":
		return Right, nil
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

// Movable returns the indices of the tiles orthogonally adjacent to the blank.
func (b Board) Movable() []int {
	n := b.Size()
	blank := b.Blank()
	if n == 0 || blank < 0 {
		return nil
	}
	row, col := blank/n, blank%n
	idx := make([]int, 0, 4)
	for _, d := range [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
		r, c := row+d[0], col+d[1]
		if r >= 0 && r < n && c >= 0 && c < n {
			idx = append(idx, r*n+c)
		}
	}
	return idx
}

// CanMove reports whether the tile at idx can slide into the blank.
func (b Board) CanMove(idx int) bool {
	for _, m := range b.Movable() {
		if m == idx {
			return true
		}
	}
	return false
}

// Apply slides the tile at idx into the blank. The board is left untouched
// and ErrIllegalMove returned when the tile is not next to the blank.
func (b Board) Apply(idx int) (solved bool, err error) {
	if !b.CanMove(idx) {
		return false, ErrIllegalMove
	}
	blank := b.Blank()
	b[blank], b[idx] = b[idx], b[blank]
	return b.IsSolved(), nil
}

// Target returns the index of the tile that would travel in direction d.
// Up slides the tile below the blank, Right slides the tile to its left.
func (b Board) Target(d Direction) (int, bool) {
	n := b.Size()
	blank := b.Blank()
	if n == 0 || blank < 0 {
		return -1, false
	}
	row, col := blank/n, blank%n
	switch d {
	case Up:
		if row < n-1 {
			return blank + n, true
		}
	case Down:
		if row > 0 {
			return blank - n, true
		}
	case Left:
		if col < n-1 {
			return blank + 1, true
		}
	case Right:
		if col > 0 {
			return blank - 1, true
		}
	}
	return -1, false
}

// SwipeDirection maps a drag displacement to a direction. Drags shorter than
// threshold on both axes are ignored; otherwise the longer axis decides and
// ties go to the vertical axis.
func SwipeDirection(dx, dy, threshold float64) (Direction, bool) {
	ax, ay := abs(dx), abs(dy)
	if ax < threshold && ay < threshold {
		return 0, false
	}
	if ax > ay {
		if dx > 0 {
			return Right, true
		}
		return Left, true
	}
	if dy > 0 {
		return Down, true
	}
	return Up, true
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
