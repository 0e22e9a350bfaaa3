// Package puzzle implements the sliding-tile board: arrangement, solvability
// and the moves a player can make.
package puzzle

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

const (
	// MinSize and MaxSize bound the side length of a board.
	MinSize = 3
	MaxSize = 5

	// maxShuffleAttempts bounds Shuffle. Half of all permutations are
	// solvable, so hitting it means the parity check is broken.
	maxShuffleAttempts = 10000
)

var (
	ErrInvalidBoard       = errors.New("invalid board")
	ErrIllegalMove        = errors.New("tile is not next to the blank")
	ErrGeneratorExhausted = errors.New("no solvable arrangement found")
)

// Board is a row-major list of N*N tiles where 0 is the blank.
type Board []int

// Solved returns the finished arrangement 1, 2, ..., n*n-1, 0.
func Solved(n int) Board {
	b := make(Board, n*n)
	for i := range b {
		b[i] = (i + 1) % (n * n)
	}
	return b
}

// Size returns the side length of the board, or 0 if the tile count is not a
// perfect square.
func (b Board) Size() int {
	for n := 1; n*n <= len(b); n++ {
		if n*n == len(b) {
			return n
		}
	}
	return 0
}

// Blank returns the index of the blank, or -1 if there is none.
func (b Board) Blank() int {
	for i, v := range b {
		if v == 0 {
			return i
		}
	}
	return -1
}

func (b Board) Clone() Board {
	c := make(Board, len(b))
	copy(c, b)
	return c
}

func (b Board) Equal(o Board) bool {
	if len(b) != len(o) {
		return false
	}
	for i := range b {
		if b[i] != o[i] {
			return false
		}
	}
	return true
}

// Validate checks that b is a square board of a supported size holding each
// of 0..n*n-1 exactly once.
func (b Board) Validate() error {
	n := b.Size()
	if n < MinSize || n > MaxSize {
		return fmt.Errorf("%w: %d tiles", ErrInvalidBoard, len(b))
	}
	seen := make([]bool, len(b))
	for _, v := range b {
		if v < 0 || v >= len(b) {
			return fmt.Errorf("%w: tile %d out of range", ErrInvalidBoard, v)
		}
		if seen[v] {
			return fmt.Errorf("%w: tile %d repeated", ErrInvalidBoard, v)
		}
		seen[v] = true
	}
	return nil
}

// IsSolved returns true if every tile is in its home position.
func (b Board) IsSolved() bool {
	if len(b) == 0 || b[len(b)-1] != 0 {
		return false
	}
	for i := 0; i < len(b)-1; i++ {
		if b[i] != i+1 {
			return false
		}
	}
	return true
}

// Inversions counts the pairs of numbered tiles that appear out of order
// when the board is read row by row. The blank is skipped.
func (b Board) Inversions() int {
	inv := 0
	for i := 0; i < len(b); i++ {
		if b[i] == 0 {
			continue
		}
		for j := i + 1; j < len(b); j++ {
			if b[j] != 0 && b[i] > b[j] {
				inv++
			}
		}
	}
	return inv
}

// IsSolvable reports whether the solved arrangement can be reached by sliding
// tiles. On odd boards the inversion count must be even. On even boards the
// blank's row counted from the bottom (starting at 1) and the inversion count
// must have different parity.
func (b Board) IsSolvable() bool {
	n := b.Size()
	if n == 0 {
		return false
	}
	inv := b.Inversions()
	if n%2 == 1 {
		return inv%2 == 0
	}
	fromBottom := n - b.Blank()/n
	return (fromBottom%2 == 0) != (inv%2 == 0)
}

// Generator produces shuffled boards from its random source.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a generator drawing from rng. A nil rng is seeded from
// the wall clock.
func NewGenerator(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{rng: rng}
}

// Shuffle returns a uniformly shuffled n*n board that is solvable and not
// already solved. It panics with ErrGeneratorExhausted if no such board turns
// up within a generous number of attempts.
func (g *Generator) Shuffle(n int) Board {
	b := Solved(n)
	for attempt := 0; attempt < maxShuffleAttempts; attempt++ {
		for i := len(b) - 1; i > 0; i-- {
			j := g.rng.Intn(i + 1)
			b[i], b[j] = b[j], b[i]
		}
		if b.IsSolvable() && !b.IsSolved() {
			return b
		}
	}
	panic(fmt.Errorf("%w: size %d after %d attempts", ErrGeneratorExhausted, n, maxShuffleAttempts))
}
