package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termfifteen/types"
)

// press activates a form button as the Enter key would.
func press(t *testing.T, m *MenuUI, label string) {
	t.Helper()
	for i := 0; i < m.form.GetButtonCount(); i++ {
		b := m.form.GetButton(i)
		if b.GetLabel() == label {
			b.InputHandler()(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), func(tview.Primitive) {})
			return
		}
	}
	t.Fatalf("no %q button", label)
}

func TestMenuButtons(t *testing.T) {
	m := NewMenu(types.DefaultOptions(), MenuActions{LoadGame: func() {}})
	assert.Equal(t, []string{"New Game", "Tile Colors", "Quit"}, m.ButtonLabels())

	m.Refresh(types.DefaultOptions(), true)
	assert.Equal(t, []string{"New Game", "Load Game", "Tile Colors", "Quit"}, m.ButtonLabels())

	m.Refresh(types.DefaultOptions(), false)
	assert.Equal(t, []string{"New Game", "Tile Colors", "Quit"}, m.ButtonLabels())
}

func TestMenuLoadNeedsHandler(t *testing.T) {
	m := NewMenu(types.DefaultOptions(), MenuActions{})
	m.Refresh(types.DefaultOptions(), true)
	assert.NotContains(t, m.ButtonLabels(), "Load Game")
}

func TestMenuOptions(t *testing.T) {
	var started []types.Options
	m := NewMenu(types.Options{Size: 3, LimitSeconds: 120}, MenuActions{
		NewGame: func(o types.Options) { started = append(started, o) },
	})
	assert.Equal(t, types.Options{Size: 3, LimitSeconds: 120}, m.Options())

	m.size.SetCurrentOption(2)
	m.limit.SetCurrentOption(0)
	assert.Equal(t, types.Options{Size: 5, LimitSeconds: 60}, m.Options())

	press(t, m, "New Game")
	require.Len(t, started, 1)
	assert.Equal(t, types.Options{Size: 5, LimitSeconds: 60}, started[0])
}

func TestMenuRefreshClamps(t *testing.T) {
	m := NewMenu(types.DefaultOptions(), MenuActions{})
	m.Refresh(types.Options{Size: 8, LimitSeconds: 420}, false)
	assert.Equal(t, types.Options{Size: 5, LimitSeconds: 420}, m.Options())
	_, label := m.limit.GetCurrentOption()
	assert.Equal(t, "7 min", label)
}

func TestMenuActions(t *testing.T) {
	var calls []string
	m := NewMenu(types.DefaultOptions(), MenuActions{
		LoadGame: func() { calls = append(calls, "load") },
		Colors:   func() { calls = append(calls, "colors") },
		Quit:     func() { calls = append(calls, "quit") },
	})
	m.Refresh(types.DefaultOptions(), true)
	press(t, m, "Load Game")
	press(t, m, "Tile Colors")
	press(t, m, "Quit")
	assert.Equal(t, []string{"load", "colors", "quit"}, calls)
}

func TestLimitOptions(t *testing.T) {
	assert.Equal(t, limitChoices, limitOptions(300))
	assert.Equal(t, []int{60, 90, 120, 180, 300, 600, 900}, limitOptions(90))
	assert.Equal(t, []int{60, 120, 180, 300, 600, 900, 3600}, limitOptions(3600))
}

func TestLimitLabel(t *testing.T) {
	assert.Equal(t, "1 min", limitLabel(60))
	assert.Equal(t, "15 min", limitLabel(900))
	assert.Equal(t, "01:30", limitLabel(90))
}
