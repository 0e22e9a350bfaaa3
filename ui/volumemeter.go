package ui

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"termfifteen/types"
)

// meterWidth is the number of cells in a full bar.
const meterWidth = 10

// VolumeMeter draws the sound settings as a horizontal bar.
type VolumeMeter struct {
	label   string
	prefs   types.SoundPrefs
	audible bool
}

func NewVolumeMeter(label string) *VolumeMeter {
	return &VolumeMeter{label: label, prefs: types.DefaultSoundPrefs()}
}

// Set updates the meter. audible is false when no bell is available.
func (m *VolumeMeter) Set(prefs types.SoundPrefs, audible bool) {
	m.prefs = prefs
	m.audible = audible
}

// meterCells is the number of filled cells for volume v.
func meterCells(v float64) int {
	n := int(math.Round(v * meterWidth))
	if n < 0 {
		return 0
	}
	if n > meterWidth {
		return meterWidth
	}
	return n
}

// Draw renders the meter on one row and returns the number of rows used.
func (m *VolumeMeter) Draw(screen tcell.Screen, x, y, width int) int {
	labelStyle := tcell.StyleDefault.Foreground(MenuColors.Label)
	accentStyle := tcell.StyleDefault.Foreground(MenuColors.Selected)
	selectedStyle := tcell.StyleDefault.Foreground(MenuColors.Selected)
	unselectedStyle := tcell.StyleDefault.Foreground(MenuColors.Unselected)
	hintStyle := tcell.StyleDefault.Foreground(MenuColors.Hint)

	col := x
	put := func(r rune, style tcell.Style) {
		if col < x+width {
			screen.SetContent(col, y, r, nil, style)
		}
		col++
	}
	puts := func(s string, style tcell.Style) {
		for _, r := range s {
			put(r, style)
		}
	}

	// ◈ Sound
	put('◈', accentStyle)
	col++
	puts(m.label, labelStyle)
	col++

	if m.prefs.Muted {
		puts("muted", hintStyle)
		return 1
	}

	filled := meterCells(m.prefs.Volume)
	for i := 0; i < meterWidth; i++ {
		if i < filled {
			put('█', selectedStyle)
		} else {
			put('░', unselectedStyle)
		}
	}
	col++
	puts(fmt.Sprintf("%d%%", int(math.Round(m.prefs.Volume*100))), labelStyle)
	if !m.audible && m.prefs.Volume > 0 {
		col++
		puts("(no bell)", hintStyle)
	}
	return 1
}
