package puzzle

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMovable(t *testing.T) {
	tests := []struct {
		name  string
		board Board
		want  []int
	}{
		{"corner", Solved(3), []int{5, 7}},
		{"center", Board{1, 2, 3, 4, 0, 5, 6, 7, 8}, []int{1, 3, 5, 7}},
		{"top edge", Board{1, 0, 2, 3, 4, 5, 6, 7, 8}, []int{0, 2, 4}},
		{"left edge 4x4", Board{1, 2, 3, 4, 0, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}, []int{0, 5, 8}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.board.Movable()
			sort.Ints(got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMovableProperties(t *testing.T) {
	gen := NewGenerator(rand.New(rand.NewSource(3)))
	for n := MinSize; n <= MaxSize; n++ {
		for i := 0; i < 200; i++ {
			b := gen.Shuffle(n)
			blank := b.Blank()
			m := b.Movable()
			require.LessOrEqual(t, len(m), 4)
			for _, idx := range m {
				require.NotEqual(t, blank, idx)
				require.True(t, idx >= 0 && idx < n*n)
				switch idx - blank {
				case 1, -1:
					require.Equal(t, blank/n, idx/n, "horizontal neighbour must share the row")
				case n, -n:
				default:
					t.Fatalf("index %d is not adjacent to blank %d on %dx%d", idx, blank, n, n)
				}
			}
		}
	}
}

func TestApply(t *testing.T) {
	b := Board{1, 2, 3, 4, 5, 6, 7, 0, 8}
	solved, err := b.Apply(8)
	require.NoError(t, err)
	assert.True(t, solved)
	assert.Equal(t, Solved(3), b)

	b = Board{1, 2, 3, 4, 5, 6, 7, 0, 8}
	solved, err = b.Apply(6)
	require.NoError(t, err)
	assert.False(t, solved)
	assert.Equal(t, Board{1, 2, 3, 4, 5, 6, 0, 7, 8}, b)
}

func TestApplyIllegal(t *testing.T) {
	b := Board{1, 2, 3, 4, 5, 6, 7, 0, 8}
	before := b.Clone()
	for _, idx := range []int{0, 2, 7, -1, 9, 100} {
		_, err := b.Apply(idx)
		assert.ErrorIs(t, err, ErrIllegalMove, "index %d", idx)
		assert.Equal(t, before, b)
	}
}

func TestApplyIsInvolution(t *testing.T) {
	gen := NewGenerator(rand.New(rand.NewSource(11)))
	for n := MinSize; n <= MaxSize; n++ {
		b := gen.Shuffle(n)
		for _, idx := range b.Movable() {
			c := b.Clone()
			blank := c.Blank()
			_, err := c.Apply(idx)
			require.NoError(t, err)
			_, err = c.Apply(blank)
			require.NoError(t, err)
			require.Equal(t, b, c)
		}
	}
}

func TestTarget(t *testing.T) {
	center := Board{1, 2, 3, 4, 0, 5, 6, 7, 8}
	tests := []struct {
		board Board
		dir   Direction
		want  int
		ok    bool
	}{
		{center, Up, 7, true},
		{center, Down, 1, true},
		{center, Left, 5, true},
		{center, Right, 3, true},
		// Blank in the bottom-right corner: nothing below or to its right.
		{Solved(3), Up, -1, false},
		{Solved(3), Left, -1, false},
		{Solved(3), Down, 5, true},
		{Solved(3), Right, 7, true},
		// Blank in the top-left corner.
		{Board{0, 1, 2, 3, 4, 5, 6, 7, 8}, Down, -1, false},
		{Board{0, 1, 2, 3, 4, 5, 6, 7, 8}, Right, -1, false},
		{Board{0, 1, 2, 3, 4, 5, 6, 7, 8}, Up, 3, true},
		{Board{0, 1, 2, 3, 4, 5, 6, 7, 8}, Left, 1, true},
	}
	for _, tt := range tests {
		got, ok := tt.board.Target(tt.dir)
		if got != tt.want || ok != tt.ok {
			t.Errorf("%v.Target(%s) = %d, %v, want %d, %v", tt.board, tt.dir, got, ok, tt.want, tt.ok)
		}
	}
}

func TestTargetIsAlwaysMovable(t *testing.T) {
	gen := NewGenerator(rand.New(rand.NewSource(5)))
	for i := 0; i < 100; i++ {
		b := gen.Shuffle(4)
		for _, d := range []Direction{Up, Down, Left, Right} {
			if idx, ok := b.Target(d); ok {
				require.True(t, b.CanMove(idx), "%v: %s -> %d", b, d, idx)
			}
		}
	}
}

func TestSwipeDirection(t *testing.T) {
	tests := []struct {
		dx, dy float64
		want   Direction
		ok     bool
	}{
		{0, 0, 0, false},
		{23, -23, 0, false},
		{24, 0, Right, true},
		{-24, 0, Left, true},
		{0, 24, Down, true},
		{0, -30, Up, true},
		{40, 30, Right, true},
		{-10, 50, Down, true},
		// Equal displacement goes to the vertical axis.
		{30, 30, Down, true},
		{30, -30, Up, true},
	}
	for _, tt := range tests {
		got, ok := SwipeDirection(tt.dx, tt.dy, DefaultSwipeThreshold)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("SwipeDirection(%v, %v) = %s, %v, want %s, %v", tt.dx, tt.dy, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParseDirection(t *testing.T) {
	for _, d := range []Direction{Up, Down, Left, Right} {
		got, err := ParseDirection(d.String())
		require.NoError(t, err)
		assert.Equal(t, d, got)
	}
	got, err := ParseDirection(" UP ")
	require.NoError(t, err)
	assert.Equal(t, Up, got)

	_, err = ParseDirection("sideways")
	assert.Error(t, err)
}
