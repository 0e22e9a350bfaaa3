package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termfifteen/engine"
	"termfifteen/types"
)

// panelWidth is the fixed width of the status panel beside the board.
const panelWidth = 30

// StatusPanel shows counters, the best record, sound settings and the
// current message alongside the board.
type StatusPanel struct {
	flex    *tview.Flex
	info    *tview.TextView
	meter   *VolumeMeter
	moves   int
	elapsed string
	limit   int
	best    *types.BestRecord
	message string
}

func NewStatusPanel() *StatusPanel {
	p := &StatusPanel{
		info:    tview.NewTextView(),
		meter:   NewVolumeMeter("Sound"),
		elapsed: engine.FormatClock(0),
	}

	p.info.SetDynamicColors(true)
	p.info.SetWordWrap(true)
	p.info.SetBorder(false)
	p.info.SetTextAlign(tview.AlignLeft)

	meterBox := tview.NewBox()
	meterBox.SetDrawFunc(func(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
		p.meter.Draw(screen, x, y, width)
		return x, y, width, height
	})

	p.flex = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(p.info, 0, 1, false).
		AddItem(meterBox, 1, 0, false)
	p.refresh()
	return p
}

// Primitive returns the tview component.
func (p *StatusPanel) Primitive() tview.Primitive {
	return p.flex
}

func (p *StatusPanel) SetMoves(n int) {
	p.moves = n
	p.refresh()
}

// SetTime shows elapsed time, already formatted as mm:ss.
func (p *StatusPanel) SetTime(elapsed string) {
	p.elapsed = elapsed
	p.refresh()
}

func (p *StatusPanel) SetLimit(seconds int) {
	p.limit = seconds
	p.refresh()
}

// SetBest shows r, or no record when ok is false.
func (p *StatusPanel) SetBest(r types.BestRecord, ok bool) {
	if ok {
		p.best = &r
	} else {
		p.best = nil
	}
	p.refresh()
}

func (p *StatusPanel) SetMessage(text string) {
	p.message = text
	p.refresh()
}

func (p *StatusPanel) SetSound(prefs types.SoundPrefs, audible bool) {
	p.meter.Set(prefs, audible)
}

// Text returns the panel text without colour tags.
func (p *StatusPanel) Text() string {
	return p.info.GetText(true)
}

func (p *StatusPanel) refresh() {
	var text strings.Builder
	label := tag(MenuColors.Label)
	dim := tag(MenuColors.Hint)

	text.WriteString("[::b]Puzzle[-:-:-]\n")
	text.WriteString(dim + "──────────────────────[-:-:-]\n")
	fmt.Fprintf(&text, "%sMoves:[-] %d\n", label, p.moves)
	fmt.Fprintf(&text, "%sTime:[-]  %s / %s\n", label, p.elapsed, engine.FormatClock(p.limit))

	if p.best != nil {
		fmt.Fprintf(&text, "%sBest:[-]  %s in %d moves\n", label, engine.FormatClock(p.best.Seconds), p.best.Moves)
		fmt.Fprintf(&text, "%s       %s[-]\n", dim, p.best.Time().Format("2006-01-02"))
	} else {
		fmt.Fprintf(&text, "%sBest:[-]  %s--[-]\n", label, dim)
	}

	if p.message != "" {
		text.WriteString("\n" + tag(MenuColors.Title) + "[::b]" + tview.Escape(p.message) + "[-:-:-]\n")
	}
	p.info.SetText(text.String())
}

// CreateGameLayout creates the main game layout with board and side panel.
func CreateGameLayout(board *BoardUI, panel *StatusPanel, hint *tview.TextView) *tview.Flex {
	gameFrame := tview.NewFlex()
	RebuildNormalLayout(gameFrame, board, panel, hint)
	return gameFrame
}

// CreateCenteredForm creates a centered container for the menu screen.
func CreateCenteredForm(form *tview.Flex, maxWidth int) *tview.Flex {
	centered := tview.NewFlex().SetDirection(tview.FlexColumn)
	centered.AddItem(nil, 0, 1, false)
	centered.AddItem(form, maxWidth, 0, true)
	centered.AddItem(nil, 0, 1, false)

	return centered
}

// RebuildNormalLayout restores the board, status panel and hint.
func RebuildNormalLayout(gameFrame *tview.Flex, board *BoardUI, panel *StatusPanel, hint *tview.TextView) {
	gameFrame.Clear()

	boardRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	boardRow.AddItem(board.Box, 0, 1, true)
	boardRow.AddItem(panel.Primitive(), panelWidth, 0, false)

	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(boardRow, 0, 1, true)
	gameFrame.AddItem(hint, 4, 0, false)
}

// BuildFocusLayout shows only the board, centred.
func BuildFocusLayout(gameFrame *tview.Flex, board *BoardUI) {
	gameFrame.Clear()

	n := board.tiles.Size()
	if n == 0 {
		n = types.DefaultBoardSize
	}
	boardWidth, boardHeight := n*tileWidth, n*tileHeight

	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(nil, 0, 1, false)

	centerRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	centerRow.AddItem(nil, 0, 1, false)
	centerRow.AddItem(board.Box, boardWidth, 0, true)
	centerRow.AddItem(nil, 0, 1, false)

	gameFrame.AddItem(centerRow, boardHeight, 0, true)
	gameFrame.AddItem(nil, 0, 1, false)
}
