// Package engine runs a sliding-tile game session: the shuffle, the moves,
// the clock and what happens when the puzzle is solved or time runs out.
package engine

import (
	"fmt"

	"termfifteen/puzzle"
	"termfifteen/types"
)

// Presenter receives everything a session wants shown or played.
// Calls are made without the session lock held.
type Presenter interface {
	// Render draws the board. movable is empty when no move is allowed.
	Render(board puzzle.Board, movable []int)

	// UpdateMoves shows the move counter.
	UpdateMoves(n int)

	// UpdateTime shows the elapsed time as mm:ss.
	UpdateTime(elapsed string)

	// ShowMessage shows a status line. An empty text clears it.
	ShowMessage(text string)

	PlayMoveSound()
	PlayWinSound()

	// ShowMenu and HideMenu toggle the new game menu.
	ShowMenu()
	HideMenu()
}

// Store persists sessions, options and the best record. Implementations
// absorb their own failures.
type Store interface {
	Save(snap types.SessionSnapshot)
	Load() (types.SessionSnapshot, bool)
	Clear()
	SaveOptions(o types.Options)
	LoadOptions() (types.Options, bool)
	SaveBest(r types.BestRecord)
	LoadBest() (types.BestRecord, bool)
}

// FormatClock renders seconds as mm:ss.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// IsBetter reports whether candidate beats previous: fewer seconds, or the
// same seconds in fewer moves. Anything beats no record at all.
func IsBetter(candidate types.BestRecord, previous *types.BestRecord) bool {
	if previous == nil {
		return true
	}
	if candidate.Seconds != previous.Seconds {
		return candidate.Seconds < previous.Seconds
	}
	return candidate.Moves < previous.Moves
}

type nopPresenter struct{}

func (nopPresenter) Render(puzzle.Board, []int) {}
func (nopPresenter) UpdateMoves(int)            {}
func (nopPresenter) UpdateTime(string)          {}
func (nopPresenter) ShowMessage(string)         {}
func (nopPresenter) PlayMoveSound()             {}
func (nopPresenter) PlayWinSound()              {}
func (nopPresenter) ShowMenu()                  {}
func (nopPresenter) HideMenu()                  {}

type nopStore struct{}

func (nopStore) Save(types.SessionSnapshot)          {}
func (nopStore) Load() (types.SessionSnapshot, bool) { return types.SessionSnapshot{}, false }
func (nopStore) Clear()                              {}
func (nopStore) SaveOptions(types.Options)           {}
func (nopStore) LoadOptions() (types.Options, bool)  { return types.Options{}, false }
func (nopStore) SaveBest(types.BestRecord)           {}
func (nopStore) LoadBest() (types.BestRecord, bool)  { return types.BestRecord{}, false }
