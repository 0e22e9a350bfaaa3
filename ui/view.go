package ui

import (
	"github.com/rivo/tview"

	"termfifteen/engine"
	"termfifteen/puzzle"
	"termfifteen/types"
)

// Page names in the root tview.Pages.
const (
	PageMenu   = "menu"
	PageGame   = "game"
	PageColors = "colors"
)

// Sounder plays the move and win cues.
type Sounder interface {
	PlayMove()
	PlayWin()
}

// Scoreboard supplies what the status panel shows besides the counters.
type Scoreboard interface {
	Options() types.Options
	Best() (types.BestRecord, bool)
}

// View forwards session updates to the widgets. Its methods must run on the
// tview event loop, or before the application starts.
type View struct {
	pages   *tview.Pages
	board   *BoardUI
	panel   *StatusPanel
	menu    *MenuUI
	sound   Sounder
	scores  Scoreboard
	hasSave func() bool
}

var _ engine.Presenter = (*View)(nil)

func NewView(pages *tview.Pages, board *BoardUI, panel *StatusPanel, menu *MenuUI, sound Sounder) *View {
	return &View{
		pages:   pages,
		board:   board,
		panel:   panel,
		menu:    menu,
		sound:   sound,
		hasSave: func() bool { return false },
	}
}

// Attach connects the view to the session it shows, once that exists.
func (v *View) Attach(scores Scoreboard, hasSave func() bool) {
	v.scores = scores
	if hasSave != nil {
		v.hasSave = hasSave
	}
}

func (v *View) Render(board puzzle.Board, movable []int) {
	v.board.Render(board, movable)
	if v.scores != nil {
		v.panel.SetLimit(v.scores.Options().LimitSeconds)
		v.panel.SetBest(v.scores.Best())
	}
}

func (v *View) UpdateMoves(n int) {
	v.panel.SetMoves(n)
}

func (v *View) UpdateTime(elapsed string) {
	v.panel.SetTime(elapsed)
}

func (v *View) ShowMessage(text string) {
	v.panel.SetMessage(text)
}

func (v *View) PlayMoveSound() {
	if v.sound != nil {
		v.sound.PlayMove()
	}
}

func (v *View) PlayWinSound() {
	if v.sound != nil {
		v.sound.PlayWin()
	}
}

// ShowMenu brings up the menu, offering Load Game when a save exists.
func (v *View) ShowMenu() {
	opts := types.DefaultOptions()
	if v.scores != nil {
		opts = v.scores.Options()
	}
	v.menu.Refresh(opts, v.hasSave())
	v.pages.SwitchToPage(PageMenu)
}

func (v *View) HideMenu() {
	v.pages.SwitchToPage(PageGame)
}
