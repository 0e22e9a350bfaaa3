package ui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/stretchr/testify/assert"

	"termfifteen/config"
	"termfifteen/puzzle"
	"termfifteen/types"
)

func TestStatusPanelText(t *testing.T) {
	p := NewStatusPanel()
	p.SetMoves(12)
	p.SetTime("01:05")
	p.SetLimit(300)

	text := p.Text()
	assert.Contains(t, text, "Moves: 12")
	assert.Contains(t, text, "Time:  01:05 / 05:00")
	assert.Contains(t, text, "Best:  --")

	p.SetBest(types.BestRecord{Seconds: 50, Moves: 30}, true)
	assert.Contains(t, p.Text(), "Best:  00:50 in 30 moves")

	p.SetBest(types.BestRecord{}, false)
	assert.Contains(t, p.Text(), "Best:  --")
}

func TestStatusPanelMessage(t *testing.T) {
	p := NewStatusPanel()
	p.SetMessage("Time is up! Game over.")
	assert.Contains(t, p.Text(), "Time is up! Game over.")

	p.SetMessage("")
	assert.NotContains(t, p.Text(), "Time is up")
}

func TestMeterCells(t *testing.T) {
	tests := []struct {
		volume float64
		want   int
	}{
		{0, 0},
		{0.05, 1},
		{0.6, 6},
		{1, 10},
		{1.5, 10},
		{-1, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, meterCells(tt.volume), "meterCells(%v)", tt.volume)
	}
}

func screenRow(s tcell.Screen, y, width int) string {
	var row strings.Builder
	for x := 0; x < width; x++ {
		row.WriteRune(runeAt(s, x, y))
	}
	return row.String()
}

func TestVolumeMeterDraw(t *testing.T) {
	s := newTestScreen(t)
	m := NewVolumeMeter("Sound")
	m.Set(types.SoundPrefs{Volume: 0.6}, true)
	assert.Equal(t, 1, m.Draw(s, 0, 0, 40))
	row := screenRow(s, 0, 40)
	assert.Contains(t, row, "Sound ██████░░░░ 60%")
	assert.NotContains(t, row, "no bell")

	m.Set(types.SoundPrefs{Volume: 0.6}, false)
	m.Draw(s, 0, 1, 40)
	assert.Contains(t, screenRow(s, 1, 40), "(no bell)")

	m.Set(types.SoundPrefs{Volume: 0.6, Muted: true}, true)
	m.Draw(s, 0, 2, 40)
	assert.Contains(t, screenRow(s, 2, 40), "Sound muted")
}

func TestVolumeMeterClipsToWidth(t *testing.T) {
	s := newTestScreen(t)
	m := NewVolumeMeter("Sound")
	m.Draw(s, 0, 0, 8)
	assert.Equal(t, ' ', runeAt(s, 8, 0))
}

func TestLayouts(t *testing.T) {
	cfg := config.DefaultConfig
	hint := tview.NewTextView()
	b := NewBoard(&cfg, hint)
	p := NewStatusPanel()
	frame := CreateGameLayout(b, p, hint)
	assert.Equal(t, 2, frame.GetItemCount())

	b.Render(puzzle.Solved(5), nil)
	BuildFocusLayout(frame, b)
	assert.Equal(t, 3, frame.GetItemCount())

	RebuildNormalLayout(frame, b, p, hint)
	assert.Equal(t, 2, frame.GetItemCount())
}
