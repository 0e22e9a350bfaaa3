package ui

import (
	"math/rand"
	"testing"

	"github.com/benbjohnson/clock"
	"github.com/rivo/tview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termfifteen/config"
	"termfifteen/engine"
	"termfifteen/puzzle"
	"termfifteen/store"
	"termfifteen/types"
)

type countingSounder struct {
	moves, wins int
}

func (s *countingSounder) PlayMove() { s.moves++ }
func (s *countingSounder) PlayWin()  { s.wins++ }

type fixedScores struct {
	opts types.Options
	best *types.BestRecord
}

func (f fixedScores) Options() types.Options { return f.opts }

func (f fixedScores) Best() (types.BestRecord, bool) {
	if f.best == nil {
		return types.BestRecord{}, false
	}
	return *f.best, true
}

type viewFixture struct {
	view  *View
	pages *tview.Pages
	board *BoardUI
	panel *StatusPanel
	menu  *MenuUI
	sound *countingSounder
}

func newViewFixture() *viewFixture {
	cfg := config.DefaultConfig
	f := &viewFixture{
		pages: tview.NewPages(),
		board: NewBoard(&cfg, nil),
		panel: NewStatusPanel(),
		menu:  NewMenu(types.DefaultOptions(), MenuActions{LoadGame: func() {}}),
		sound: &countingSounder{},
	}
	f.pages.AddPage(PageMenu, f.menu.Form(), true, true)
	f.pages.AddPage(PageGame, tview.NewBox(), true, false)
	f.view = NewView(f.pages, f.board, f.panel, f.menu, f.sound)
	return f
}

func frontPage(p *tview.Pages) string {
	name, _ := p.GetFrontPage()
	return name
}

func TestViewForwardsUpdates(t *testing.T) {
	f := newViewFixture()
	f.view.Attach(fixedScores{
		opts: types.Options{Size: 3, LimitSeconds: 120},
		best: &types.BestRecord{Seconds: 42, Moves: 20},
	}, nil)

	f.view.Render(puzzle.Solved(3), []int{5, 7})
	f.view.UpdateMoves(7)
	f.view.UpdateTime("00:09")
	f.view.ShowMessage("hello")

	assert.Equal(t, puzzle.Solved(3), f.board.Tiles())
	assert.True(t, f.board.movable[5])
	assert.False(t, f.board.movable[0])
	text := f.panel.Text()
	assert.Contains(t, text, "Moves: 7")
	assert.Contains(t, text, "00:09 / 02:00")
	assert.Contains(t, text, "00:42 in 20 moves")
	assert.Contains(t, text, "hello")

	f.view.PlayMoveSound()
	f.view.PlayWinSound()
	assert.Equal(t, 1, f.sound.moves)
	assert.Equal(t, 1, f.sound.wins)
}

func TestViewWithoutSounder(t *testing.T) {
	f := newViewFixture()
	v := NewView(f.pages, f.board, f.panel, f.menu, nil)
	assert.NotPanics(t, v.PlayMoveSound)
	assert.NotPanics(t, v.PlayWinSound)
	assert.NotPanics(t, func() { v.Render(puzzle.Solved(4), nil) })
}

func TestViewMenuPages(t *testing.T) {
	f := newViewFixture()
	saved := false
	f.view.Attach(fixedScores{opts: types.Options{Size: 5, LimitSeconds: 600}}, func() bool { return saved })

	f.view.HideMenu()
	assert.Equal(t, PageGame, frontPage(f.pages))

	f.view.ShowMenu()
	assert.Equal(t, PageMenu, frontPage(f.pages))
	assert.Equal(t, types.Options{Size: 5, LimitSeconds: 600}, f.menu.Options())
	assert.NotContains(t, f.menu.ButtonLabels(), "Load Game")

	saved = true
	f.view.ShowMenu()
	assert.Contains(t, f.menu.ButtonLabels(), "Load Game")
}

func TestViewDrivenBySession(t *testing.T) {
	f := newViewFixture()
	st := store.New(store.NewMemoryBackend(), nil)
	s := engine.NewSession(st, f.view,
		engine.WithClock(clock.NewMock()),
		engine.WithGenerator(puzzle.NewGenerator(rand.New(rand.NewSource(3)))),
	)
	t.Cleanup(s.Close)
	f.view.Attach(s, st.HasSaved)
	f.board.SetMover(s)

	s.Shuffle(types.Options{Size: 3, LimitSeconds: 60})
	assert.Equal(t, PageGame, frontPage(f.pages))
	assert.Equal(t, s.Board(), f.board.Tiles())
	assert.Contains(t, f.panel.Text(), "00:00 / 01:00")

	movable := s.Board().Movable()
	require.NotEmpty(t, movable)
	f.board.click(movable[0])
	assert.Equal(t, 1, s.Moves())
	assert.Equal(t, s.Board(), f.board.Tiles())
	assert.Contains(t, f.panel.Text(), "Moves: 1")
	assert.Equal(t, 1, f.sound.moves)

	s.Reset()
	assert.Equal(t, PageMenu, frontPage(f.pages))
	assert.NotContains(t, f.menu.ButtonLabels(), "Load Game")
}
