// Package ui provides custom controls for tview to play the sliding-tile
// puzzle in the terminal.
package ui

import (
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termfifteen/config"
	"termfifteen/engine"
	"termfifteen/puzzle"
)

// Size of one tile in terminal cells.
const (
	tileWidth  = 6
	tileHeight = 3
)

// Indices into BoardUI.styles.
const (
	colTile = iota
	colTileAlt
	colText
	colBlank
	colMovable
	colCursorFG
	colCursorBG
	colSolved
)

// Mover is the part of a session the board drives.
type Mover interface {
	SubmitMove(idx int) engine.MoveOutcome
	Slide(d puzzle.Direction) engine.MoveOutcome
}

type BoardUI struct {
	Box       *tview.Box
	hint      *tview.TextView
	cfg       *config.Config
	styles    []tcell.Color
	tiles     puzzle.Board
	movable   map[int]bool
	selX      int
	selY      int
	left      int // screen position of the top left tile, set on draw
	top       int
	mover     Mover
	dragging  bool
	dragX     int
	dragY     int
	focusMode bool
}

func NewBoard(c *config.Config, hint *tview.TextView) *BoardUI {
	b := &BoardUI{
		Box:     tview.NewBox(),
		hint:    hint,
		movable: map[int]bool{},
		selX:    -1,
		selY:    -1,
	}
	b.SetConfig(c)
	b.Box.SetDrawFunc(b.draw)
	b.Box.SetMouseCapture(b.handleMouse)
	b.refreshHint()
	return b
}

// SetMover connects the board to the session it plays.
func (b *BoardUI) SetMover(m Mover) {
	b.mover = m
}

func (b *BoardUI) SetConfig(c *config.Config) {
	b.styles = []tcell.Color{
		tcell.PaletteColor(c.Theme.Colors.TileColor),      // 0
		tcell.PaletteColor(c.Theme.Colors.TileColorAlt),   // 1
		tcell.PaletteColor(c.Theme.Colors.TextColor),      // 2
		tcell.PaletteColor(c.Theme.Colors.BlankColor),     // 3
		tcell.PaletteColor(c.Theme.Colors.MovableColorBG), // 4
		tcell.PaletteColor(c.Theme.Colors.CursorColorFG),  // 5
		tcell.PaletteColor(c.Theme.Colors.CursorColorBG),  // 6
		tcell.PaletteColor(c.Theme.Colors.SolvedColorBG),  // 7
	}
	b.cfg = c
}

// Render replaces the tiles shown. movable lists the tiles that may slide.
func (b *BoardUI) Render(tiles puzzle.Board, movable []int) {
	b.tiles = tiles.Clone()
	b.movable = make(map[int]bool, len(movable))
	for _, idx := range movable {
		b.movable[idx] = true
	}
	n := b.tiles.Size()
	if b.selX >= n || b.selY >= n {
		b.ResetSelection()
	}
}

// Tiles returns the tiles currently shown.
func (b *BoardUI) Tiles() puzzle.Board {
	return b.tiles.Clone()
}

// ToggleFocusMode toggles focus mode and returns the new state.
func (b *BoardUI) ToggleFocusMode() bool {
	b.focusMode = !b.focusMode
	b.refreshHint()
	return b.focusMode
}

func (b *BoardUI) SetFocusMode(enabled bool) {
	b.focusMode = enabled
	b.refreshHint()
}

func (b *BoardUI) IsFocusMode() bool {
	return b.focusMode
}

// SelectedTile returns the index under the keyboard cursor, or -1.
func (b *BoardUI) SelectedTile() int {
	if b.selX == -1 && b.selY == -1 {
		return -1
	}
	return b.selY*b.tiles.Size() + b.selX
}

// MoveSelection moves the cursor. The first call places it on the blank.
func (b *BoardUI) MoveSelection(h, v int) {
	n := b.tiles.Size()
	if n == 0 {
		return
	}
	if b.SelectedTile() == -1 {
		blank := b.tiles.Blank()
		b.selX, b.selY = blank%n, blank/n
		return
	}
	if b.selX+h < 0 || b.selX+h >= n {
		return
	}
	if b.selY+v < 0 || b.selY+v >= n {
		return
	}
	b.selX += h
	b.selY += v
}

func (b *BoardUI) ResetSelection() {
	b.selX = -1
	b.selY = -1
}

// HandleKey plays arrow and hjkl slides, moves the cursor with wasd and
// clicks the cursor tile with Enter or space. Other keys are passed on.
func (b *BoardUI) HandleKey(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyUp:
		b.slide(puzzle.Up)
	case tcell.KeyDown:
		b.slide(puzzle.Down)
	case tcell.KeyLeft:
		b.slide(puzzle.Left)
	case tcell.KeyRight:
		b.slide(puzzle.Right)
	case tcell.KeyEnter:
		b.clickSelected()
	case tcell.KeyRune:
		switch event.Rune() {
		case 'k':
			b.slide(puzzle.Up)
		case 'j':
			b.slide(puzzle.Down)
		case 'h':
			b.slide(puzzle.Left)
		case 'l':
			b.slide(puzzle.Right)
		case 'w':
			b.MoveSelection(0, -1)
		case 's':
			b.MoveSelection(0, 1)
		case 'a':
			b.MoveSelection(-1, 0)
		case 'd':
			b.MoveSelection(1, 0)
		case ' ':
			b.clickSelected()
		default:
			return event
		}
	default:
		return event
	}
	return nil
}

func (b *BoardUI) slide(d puzzle.Direction) {
	if b.mover == nil {
		return
	}
	b.mover.Slide(d)
}

func (b *BoardUI) click(idx int) {
	if b.mover == nil || idx < 0 {
		return
	}
	b.mover.SubmitMove(idx)
}

func (b *BoardUI) clickSelected() {
	b.click(b.SelectedTile())
}

// handleMouse turns a left press and release into a click when both land on
// the same tile, or a swipe when the pointer travelled far enough.
func (b *BoardUI) handleMouse(action tview.MouseAction, event *tcell.EventMouse) (tview.MouseAction, *tcell.EventMouse) {
	x, y := event.Position()
	switch action {
	case tview.MouseLeftDown:
		if b.Box.InRect(x, y) {
			b.dragging, b.dragX, b.dragY = true, x, y
		}
	case tview.MouseLeftUp:
		if b.dragging {
			b.dragging = false
			b.release(x, y)
		}
	}
	return action, event
}

func (b *BoardUI) release(x, y int) {
	if d, ok := dragDirection(b.dragX, b.dragY, x, y, b.cfg.Input); ok {
		b.slide(d)
		return
	}
	idx := b.tileAt(b.dragX, b.dragY)
	if idx >= 0 && idx == b.tileAt(x, y) {
		n := b.tiles.Size()
		b.selX, b.selY = idx%n, idx/n
		b.click(idx)
	}
}

// dragDirection converts a drag in terminal cells to a swipe.
func dragDirection(fromX, fromY, toX, toY int, in config.InputConfig) (puzzle.Direction, bool) {
	dx := float64(toX-fromX) * in.CellWidth
	dy := float64(toY-fromY) * in.CellHeight
	return puzzle.SwipeDirection(dx, dy, in.SwipeThreshold)
}

// tileAt returns the index of the tile drawn at screen position x, y, or -1.
func (b *BoardUI) tileAt(x, y int) int {
	n := b.tiles.Size()
	if n == 0 || x < b.left || y < b.top {
		return -1
	}
	col, row := (x-b.left)/tileWidth, (y-b.top)/tileHeight
	if col >= n || row >= n {
		return -1
	}
	return row*n + col
}

func (b *BoardUI) draw(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	n := b.tiles.Size()
	if n == 0 {
		return x, y, width, height
	}
	b.left = x + max(0, (width-n*tileWidth)/2)
	b.top = y + max(0, (height-n*tileHeight)/2)

	solved := b.tiles.IsSolved()
	sel := b.SelectedTile()
	for idx, v := range b.tiles {
		style, label := b.tileLook(idx, v, solved)
		left, top := b.left+(idx%n)*tileWidth, b.top+(idx/n)*tileHeight
		drawTile(screen, left, top, label, style)
		if idx == sel {
			screen.SetContent(left, top+tileHeight/2, b.cfg.Theme.Symbols.Cursor, nil, style)
		}
	}
	return x, y, width, height
}

// tileLook picks the style and label for the tile with value v at idx.
func (b *BoardUI) tileLook(idx, v int, solved bool) (tcell.Style, string) {
	theme := b.cfg.Theme
	n := b.tiles.Size()
	if v == 0 {
		style := tcell.StyleDefault.Background(b.styles[colBlank]).Foreground(b.styles[colTile])
		if idx == b.SelectedTile() && theme.DrawCursorOutline {
			style = style.Background(b.styles[colCursorBG])
		}
		return style, string(theme.Symbols.Blank)
	}

	bg, fg := b.styles[colTile], b.styles[colText]
	// Checkered by home square, so a solved board shows a clean pattern.
	home := v - 1
	if theme.CheckeredTiles && (home/n+home%n)%2 == 1 {
		bg = b.styles[colTileAlt]
	}
	switch {
	case solved:
		bg = b.styles[colSolved]
	case theme.HighlightMovable && b.movable[idx]:
		bg = b.styles[colMovable]
	}
	if idx == b.SelectedTile() && theme.DrawCursorOutline {
		bg, fg = b.styles[colCursorBG], b.styles[colCursorFG]
	}
	return tcell.StyleDefault.Background(bg).Foreground(fg).Bold(true), strconv.Itoa(v)
}

// drawTile fills one tile and centres label on its middle row.
func drawTile(s tcell.Screen, left, top int, label string, style tcell.Style) {
	for row := 0; row < tileHeight; row++ {
		for col := 0; col < tileWidth; col++ {
			s.SetContent(left+col, top+row, ' ', nil, style)
		}
	}
	runes := []rune(label)
	start := left + (tileWidth-len(runes))/2
	for i, r := range runes {
		s.SetContent(start+i, top+tileHeight/2, r, nil, style)
	}
}

func (b *BoardUI) refreshHint() {
	if b.hint == nil {
		return
	}
	if b.focusMode {
		b.hint.SetText("  f to toggle")
		return
	}
	b.hint.SetText(`  ←↑↓→/hjkl slide   wasd cursor   ⏎ move
  n new   r reset   m mute   +/- volume   f focus   q menu`)
}
