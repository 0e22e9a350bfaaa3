package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"go.uber.org/zap"

	"termfifteen/config"
	"termfifteen/logging"
	"termfifteen/puzzle"
)

// ColorConfigUI lets the player pick tile and number colours with a live
// preview.
type ColorConfigUI struct {
	flex      *tview.Flex
	colorList *tview.List
	preview   *tview.Box
	cfg       *config.Config
	log       *zap.Logger
	onDone    func()

	selectedTileColor int
	selectedTextColor int
	editingText       bool // false while picking the tile colour
}

type namedColor struct {
	code int
	name string
}

var tileColors = []namedColor{
	{230, "Light Cream"},
	{229, "Pale Yellow"},
	{222, "Gold"},
	{214, "Orange Gold"},
	{180, "Tan"},
	{179, "Light Brown"},
	{172, "Brown"},
	{151, "Sage"},
	{152, "Powder Blue"},
	{110, "Steel Blue"},
	{67, "Slate Blue"},
	{139, "Mauve"},
	{252, "Light Gray"},
	{248, "Medium Gray"},
	{223, "Peach"},
	{216, "Salmon"},
}

var textColors = []namedColor{
	{232, "Black"},
	{236, "Dark Gray"},
	{94, "Saddle Brown"},
	{88, "Dark Red"},
	{52, "Dark Maroon"},
	{22, "Dark Green"},
	{24, "Dark Cyan"},
	{17, "Navy Blue"},
	{54, "Purple"},
	{255, "White"},
	{230, "Cream"},
}

// NewColorConfig creates the colour screen. onDone is called once the
// choice has been saved.
func NewColorConfig(cfg *config.Config, log *zap.Logger, onDone func()) *ColorConfigUI {
	cc := &ColorConfigUI{
		cfg:               cfg,
		log:               logging.OrNop(log),
		onDone:            onDone,
		selectedTileColor: cfg.Theme.Colors.TileColor,
		selectedTextColor: cfg.Theme.Colors.TextColor,
	}

	cc.colorList = tview.NewList()
	cc.colorList.SetBorder(true)
	cc.colorList.ShowSecondaryText(false)
	cc.populateColorList()

	cc.colorList.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		cc.preselect(index)
	})

	cc.colorList.SetSelectedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		cc.Choose(index)
	})

	cc.preview = tview.NewBox()
	cc.preview.SetBorder(true)
	cc.preview.SetTitle(" Preview ")
	cc.preview.SetDrawFunc(cc.drawPreview)

	cc.flex = tview.NewFlex().
		AddItem(cc.colorList, 30, 0, true).
		AddItem(cc.preview, 0, 1, false)

	return cc
}

func (cc *ColorConfigUI) choices() []namedColor {
	if cc.editingText {
		return textColors
	}
	return tileColors
}

// preselect shows the colour at index in the preview without saving it.
func (cc *ColorConfigUI) preselect(index int) {
	choices := cc.choices()
	if index < 0 || index >= len(choices) {
		return
	}
	if cc.editingText {
		cc.selectedTextColor = choices[index].code
	} else {
		cc.selectedTileColor = choices[index].code
	}
}

// Choose applies the colour at index. Picking a tile colour moves on to the
// number colour; picking that saves both and returns.
func (cc *ColorConfigUI) Choose(index int) {
	choices := cc.choices()
	if index < 0 || index >= len(choices) {
		return
	}
	cc.preselect(index)
	if !cc.editingText {
		cc.editingText = true
		cc.populateColorList()
		return
	}

	cc.cfg.Theme.Colors.TileColor = cc.selectedTileColor
	cc.cfg.Theme.Colors.TextColor = cc.selectedTextColor
	if err := cc.cfg.Save(); err != nil {
		cc.log.Warn("saving config failed", zap.Error(err))
	}
	cc.editingText = false
	cc.populateColorList()
	if cc.onDone != nil {
		cc.onDone()
	}
}

func (cc *ColorConfigUI) populateColorList() {
	cc.colorList.Clear()

	selected := cc.selectedTileColor
	if cc.editingText {
		cc.colorList.SetTitle(" Number Color (Tab: tiles) ")
		selected = cc.selectedTextColor
	} else {
		cc.colorList.SetTitle(" Tile Color (Tab: numbers) ")
	}
	// Adding items fires the changed func, so keep the selection aside.
	choices := cc.choices()
	for i, c := range choices {
		cc.colorList.AddItem(fmt.Sprintf("[#%06x]████[-] %s (%d)",
			tcell.PaletteColor(c.code).Hex(), c.name, c.code),
			"", rune('a'+i), nil)
	}
	cc.restore(selected)
	for i, c := range choices {
		if c.code == selected {
			cc.colorList.SetCurrentItem(i)
			break
		}
	}
}

func (cc *ColorConfigUI) restore(code int) {
	if cc.editingText {
		cc.selectedTextColor = code
	} else {
		cc.selectedTileColor = code
	}
}

// Reset drops unsaved choices and starts again from the tile colour.
func (cc *ColorConfigUI) Reset() {
	cc.selectedTileColor = cc.cfg.Theme.Colors.TileColor
	cc.selectedTextColor = cc.cfg.Theme.Colors.TextColor
	cc.editingText = false
	cc.populateColorList()
}

// ToggleMode switches between tile and number colours.
func (cc *ColorConfigUI) ToggleMode() {
	cc.editingText = !cc.editingText
	cc.populateColorList()
}

// Selection returns the tile and number colours shown in the preview.
func (cc *ColorConfigUI) Selection() (tile, text int) {
	return cc.selectedTileColor, cc.selectedTextColor
}

func (cc *ColorConfigUI) drawPreview(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	const n = 3
	if width < n*tileWidth+4 || height < n*tileHeight+4 {
		return x, y, width, height
	}

	tile := tcell.PaletteColor(cc.selectedTileColor)
	alt := tcell.PaletteColor(cc.cfg.Theme.Colors.TileColorAlt)
	text := tcell.PaletteColor(cc.selectedTextColor)
	blank := tcell.PaletteColor(cc.cfg.Theme.Colors.BlankColor)

	startX, startY := x+2, y+1
	for idx, v := range puzzle.Solved(n) {
		left, top := startX+(idx%n)*tileWidth, startY+(idx/n)*tileHeight
		if v == 0 {
			drawTile(screen, left, top, string(cc.cfg.Theme.Symbols.Blank), tcell.StyleDefault.Background(blank).Foreground(tile))
			continue
		}
		bg := tile
		if cc.cfg.Theme.CheckeredTiles && (idx/n+idx%n)%2 == 1 {
			bg = alt
		}
		drawTile(screen, left, top, fmt.Sprint(v), tcell.StyleDefault.Background(bg).Foreground(text).Bold(true))
	}

	info := fmt.Sprintf("Tiles: %d  Numbers: %d", cc.selectedTileColor, cc.selectedTextColor)
	for i, ch := range info {
		if startX+i < x+width-1 {
			screen.SetContent(startX+i, startY+n*tileHeight+1, ch, nil, tcell.StyleDefault)
		}
	}
	return x, y, width, height
}

// Flex returns the flex container for this UI.
func (cc *ColorConfigUI) Flex() *tview.Flex {
	return cc.flex
}

// SetInputCapture sets the input capture for the color list.
func (cc *ColorConfigUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	cc.colorList.SetInputCapture(capture)
}
