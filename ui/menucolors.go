package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// MenuColors is the palette for everything around the board: menu, status
// panel and colour screen.
var MenuColors = struct {
	Border      tcell.Color
	BorderFocus tcell.Color
	Title       tcell.Color
	Label       tcell.Color
	Hint        tcell.Color
	Selected    tcell.Color
	Unselected  tcell.Color
	Success     tcell.Color // solved messages
	Warning     tcell.Color // time running out, game over
	ButtonBG    tcell.Color
	ButtonFocus tcell.Color
	ButtonText  tcell.Color
}{
	Border:      tcell.PaletteColor(60),
	BorderFocus: tcell.PaletteColor(109),
	Title:       tcell.PaletteColor(255),
	Label:       tcell.PaletteColor(250),
	Hint:        tcell.PaletteColor(245),
	Selected:    tcell.PaletteColor(109),
	Unselected:  tcell.PaletteColor(240),
	Success:     tcell.PaletteColor(108),
	Warning:     tcell.PaletteColor(174),
	ButtonBG:    tcell.PaletteColor(60),
	ButtonFocus: tcell.PaletteColor(109),
	ButtonText:  tcell.PaletteColor(255),
}

// tag returns a tview colour tag for c.
func tag(c tcell.Color) string {
	return fmt.Sprintf("[#%06x]", c.Hex())
}
