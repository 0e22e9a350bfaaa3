package ui

import (
	"fmt"
	"sort"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termfifteen/engine"
	"termfifteen/types"
)

var (
	sizeChoices  = []int{3, 4, 5}
	limitChoices = []int{60, 120, 180, 300, 600, 900}
)

// MenuActions are the handlers behind the menu buttons. LoadGame is only
// offered while a saved game exists.
type MenuActions struct {
	NewGame  func(types.Options)
	LoadGame func()
	Colors   func()
	Quit     func()
}

// MenuUI is the new game form.
type MenuUI struct {
	form    *tview.Form
	flex    *tview.Flex
	size    *tview.DropDown
	limit   *tview.DropDown
	actions MenuActions

	opts   types.Options
	limits []int
}

// NewMenu creates the menu with opts preselected.
func NewMenu(opts types.Options, actions MenuActions) *MenuUI {
	m := &MenuUI{
		actions: actions,
		size:    tview.NewDropDown().SetLabel("Board Size"),
		limit:   tview.NewDropDown().SetLabel("Time Limit"),
	}

	form := tview.NewForm()
	form.AddFormItem(m.size)
	form.AddFormItem(m.limit)

	form.SetBorder(true)
	form.SetTitle(" New Puzzle ")
	form.SetTitleAlign(tview.AlignCenter)
	form.SetBorderColor(MenuColors.Border)
	form.SetButtonBackgroundColor(MenuColors.ButtonBG)
	form.SetButtonTextColor(MenuColors.ButtonText)
	form.SetFieldBackgroundColor(MenuColors.ButtonBG)

	helpText := tview.NewTextView().
		SetText("Tab/Shift+Tab: navigate  |  Enter: open dropdown or press  |  Esc: back").
		SetTextAlign(tview.AlignCenter)
	helpText.SetTextColor(MenuColors.Hint)

	m.form = form
	m.flex = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(form, 0, 1, true).
		AddItem(helpText, 1, 0, false)

	m.Refresh(opts, false)
	return m
}

// Refresh selects opts in the dropdowns and offers Load Game when hasSave.
func (m *MenuUI) Refresh(opts types.Options, hasSave bool) {
	opts = opts.Clamp()
	m.opts = opts

	sizes := make([]string, len(sizeChoices))
	current := 0
	for i, n := range sizeChoices {
		sizes[i] = fmt.Sprintf("%d x %d", n, n)
		if n == opts.Size {
			current = i
		}
	}
	m.size.SetOptions(sizes, func(_ string, index int) {
		if index >= 0 && index < len(sizeChoices) {
			m.opts.Size = sizeChoices[index]
		}
	})
	m.size.SetCurrentOption(current)

	m.limits = limitOptions(opts.LimitSeconds)
	labels := make([]string, len(m.limits))
	current = 0
	for i, s := range m.limits {
		labels[i] = limitLabel(s)
		if s == opts.LimitSeconds {
			current = i
		}
	}
	m.limit.SetOptions(labels, func(_ string, index int) {
		if index >= 0 && index < len(m.limits) {
			m.opts.LimitSeconds = m.limits[index]
		}
	})
	m.limit.SetCurrentOption(current)

	m.form.ClearButtons()
	m.form.AddButton("New Game", func() {
		if m.actions.NewGame != nil {
			m.actions.NewGame(m.opts)
		}
	})
	if hasSave && m.actions.LoadGame != nil {
		m.form.AddButton("Load Game", m.actions.LoadGame)
	}
	m.form.AddButton("Tile Colors", func() {
		if m.actions.Colors != nil {
			m.actions.Colors()
		}
	})
	m.form.AddButton("Quit", func() {
		if m.actions.Quit != nil {
			m.actions.Quit()
		}
	})
}

// Options returns the size and limit currently selected.
func (m *MenuUI) Options() types.Options {
	return m.opts
}

// ButtonLabels lists the buttons currently offered, in order.
func (m *MenuUI) ButtonLabels() []string {
	labels := make([]string, m.form.GetButtonCount())
	for i := range labels {
		labels[i] = m.form.GetButton(i).GetLabel()
	}
	return labels
}

// Form returns the flex container with form and help text.
func (m *MenuUI) Form() *tview.Flex {
	return m.flex
}

// SetInputCapture sets the input capture function for the form.
func (m *MenuUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	m.form.SetInputCapture(capture)
}

// limitOptions returns the preset limits plus current when it is not one.
func limitOptions(current int) []int {
	limits := append([]int(nil), limitChoices...)
	for _, s := range limits {
		if s == current {
			return limits
		}
	}
	limits = append(limits, current)
	sort.Ints(limits)
	return limits
}

func limitLabel(seconds int) string {
	if seconds%60 == 0 {
		return fmt.Sprintf("%d min", seconds/60)
	}
	return engine.FormatClock(seconds)
}
