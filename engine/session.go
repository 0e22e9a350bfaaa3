package engine

import (
	"fmt"
	"sync"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"termfifteen/logging"
	"termfifteen/puzzle"
	"termfifteen/types"
)

// State is where a session is in its life.
type State int

const (
	NotStarted State = iota
	InProgress
	Won
	TimedOut
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not started"
	case InProgress:
		return "in progress"
	case Won:
		return "won"
	case TimedOut:
		return "timed out"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Terminal is true for Won and TimedOut.
func (s State) Terminal() bool {
	return s == Won || s == TimedOut
}

// MoveOutcome is the result of submitting a move.
type MoveOutcome int

const (
	MoveRejected MoveOutcome = iota // tile not next to the blank
	MoveGameOver                    // no puzzle in progress
	MoveAccepted
	MoveWon
	MoveRecord // won with a new best record
)

// Accepted is true when the tile moved.
func (o MoveOutcome) Accepted() bool {
	return o >= MoveAccepted
}

func (o MoveOutcome) String() string {
	switch o {
	case MoveRejected:
		return "rejected"
	case MoveGameOver:
		return "game over"
	case MoveAccepted:
		return "accepted"
	case MoveWon:
		return "won"
	case MoveRecord:
		return "record"
	}
	return fmt.Sprintf("MoveOutcome(%d)", int(o))
}

// Session owns all mutable puzzle state.
type Session struct {
	mu      sync.Mutex
	board   puzzle.Board
	moves   int
	elapsed int
	opts    types.Options
	state   State
	id      string

	clk      clock.Clock
	ticker   *Clock
	gen      *puzzle.Generator
	store    Store
	view     Presenter
	dispatch func(func())
	log      *zap.Logger
	initial  *types.Options
}

// Option configures a Session.
type Option func(*Session)

// WithClock replaces the wall clock, for tests.
func WithClock(clk clock.Clock) Option {
	return func(s *Session) { s.clk = clk }
}

// WithGenerator replaces the shuffle generator.
func WithGenerator(g *puzzle.Generator) Option {
	return func(s *Session) { s.gen = g }
}

// WithDispatcher runs clock ticks through dispatch, typically to move them
// onto a UI event loop.
func WithDispatcher(dispatch func(func())) Option {
	return func(s *Session) { s.dispatch = dispatch }
}

// WithOptions sets the options used until the first shuffle, in place of
// the stored ones.
func WithOptions(o types.Options) Option {
	return func(s *Session) { s.initial = &o }
}

func WithLogger(l *zap.Logger) Option {
	return func(s *Session) { s.log = l }
}

// NewSession returns a session showing the solved board. Options come from
// WithOptions, else from the store when it has them. Nil store and view are replaced with no-ops.
func NewSession(store Store, view Presenter, opts ...Option) *Session {
	s := &Session{
		store:    store,
		view:     view,
		dispatch: func(f func()) { f() },
	}
	for _, o := range opts {
		o(s)
	}
	if s.store == nil {
		s.store = nopStore{}
	}
	if s.view == nil {
		s.view = nopPresenter{}
	}
	if s.clk == nil {
		s.clk = clock.New()
	}
	if s.gen == nil {
		s.gen = puzzle.NewGenerator(nil)
	}
	s.log = logging.OrNop(s.log)
	s.ticker = NewClock(s.clk)

	s.opts = types.DefaultOptions()
	if s.initial != nil {
		s.opts = s.initial.Clamp()
	} else if o, ok := s.store.LoadOptions(); ok {
		s.opts = o.Clamp()
	}
	s.board = puzzle.Solved(s.opts.Size)
	return s
}

// updates are Presenter calls collected under the lock and made after it is
// released.
type updates []func(Presenter)

func (u *updates) add(f func(Presenter)) {
	*u = append(*u, f)
}

func (u updates) send(p Presenter) {
	for _, f := range u {
		f(p)
	}
}

// renderLocked queues a full redraw of board and counters.
func (s *Session) renderLocked(u *updates) {
	board := s.board.Clone()
	var movable []int
	if s.state == InProgress {
		movable = board.Movable()
	}
	moves, clockText := s.moves, FormatClock(s.elapsed)
	u.add(func(p Presenter) {
		p.Render(board, movable)
		p.UpdateMoves(moves)
		p.UpdateTime(clockText)
	})
}

// Shuffle starts a new puzzle with the given options.
func (s *Session) Shuffle(opts types.Options) {
	var u updates
	s.mu.Lock()
	opts = opts.Clamp()
	s.store.SaveOptions(opts)
	s.opts = opts
	s.board = s.gen.Shuffle(opts.Size)
	s.moves = 0
	s.elapsed = 0
	s.id = uuid.NewString()
	s.state = InProgress
	s.startClockLocked()
	s.store.Save(s.snapshotLocked())
	s.log.Info("new game", zap.String("game_id", s.id), zap.Int("size", opts.Size), zap.Int("limit", opts.LimitSeconds))
	s.renderLocked(&u)
	u.add(func(p Presenter) {
		p.ShowMessage("")
		p.HideMenu()
	})
	s.mu.Unlock()
	u.send(s.view)
}

// Reset puts the tiles back in order and abandons the current puzzle.
func (s *Session) Reset() {
	var u updates
	s.mu.Lock()
	s.ticker.Stop()
	s.board = puzzle.Solved(s.opts.Size)
	s.moves = 0
	s.elapsed = 0
	s.state = NotStarted
	s.log.Info("reset", zap.String("game_id", s.id))
	s.id = ""
	s.store.Clear()
	s.renderLocked(&u)
	u.add(func(p Presenter) {
		p.ShowMessage("")
		p.ShowMenu()
	})
	s.mu.Unlock()
	u.send(s.view)
}

// SubmitMove slides the tile at idx into the blank.
func (s *Session) SubmitMove(idx int) MoveOutcome {
	var u updates
	s.mu.Lock()
	out := s.submitLocked(idx, &u)
	s.mu.Unlock()
	u.send(s.view)
	return out
}

// Slide moves the tile that travels in direction d.
func (s *Session) Slide(d puzzle.Direction) MoveOutcome {
	var u updates
	s.mu.Lock()
	if s.state != InProgress {
		s.mu.Unlock()
		return MoveGameOver
	}
	idx, ok := s.board.Target(d)
	out := MoveRejected
	if ok {
		out = s.submitLocked(idx, &u)
	}
	s.mu.Unlock()
	u.send(s.view)
	return out
}

func (s *Session) submitLocked(idx int, u *updates) MoveOutcome {
	if s.state != InProgress {
		return MoveGameOver
	}
	solved, err := s.board.Apply(idx)
	if err != nil {
		return MoveRejected
	}
	s.moves++
	if !solved {
		s.renderLocked(u)
		u.add(func(p Presenter) { p.PlayMoveSound() })
		s.store.Save(s.snapshotLocked())
		return MoveAccepted
	}

	s.ticker.Stop()
	s.state = Won
	s.store.Clear()
	result := types.BestRecord{Seconds: s.elapsed, Moves: s.moves, Timestamp: s.clk.Now().UnixMilli()}
	var previous *types.BestRecord
	if r, ok := s.store.LoadBest(); ok {
		previous = &r
	}
	record := IsBetter(result, previous)
	if record {
		s.store.SaveBest(result)
	}
	s.log.Info("solved", zap.String("game_id", s.id), zap.Int("moves", s.moves), zap.Int("elapsed", s.elapsed), zap.Bool("record", record))

	s.renderLocked(u)
	msg := fmt.Sprintf("Congratulations! Time %s, moves %d.", FormatClock(result.Seconds), result.Moves)
	if record {
		msg = fmt.Sprintf("Congratulations! New record: %s, moves %d.", FormatClock(result.Seconds), result.Moves)
	}
	u.add(func(p Presenter) {
		p.PlayMoveSound()
		p.ShowMessage(msg)
		p.PlayWinSound()
	})
	if record {
		return MoveRecord
	}
	return MoveWon
}

// Tick advances the elapsed time by one second.
func (s *Session) Tick() {
	var u updates
	s.mu.Lock()
	s.tickLocked(&u)
	s.mu.Unlock()
	u.send(s.view)
}

func (s *Session) tickFrom(gen uint64) {
	var u updates
	s.mu.Lock()
	if s.ticker.IsCurrent(gen) {
		s.tickLocked(&u)
	}
	s.mu.Unlock()
	u.send(s.view)
}

func (s *Session) tickLocked(u *updates) {
	if s.state != InProgress {
		return
	}
	s.elapsed++
	clockText := FormatClock(s.elapsed)
	u.add(func(p Presenter) { p.UpdateTime(clockText) })
	if s.elapsed < s.opts.LimitSeconds {
		return
	}
	s.ticker.Stop()
	s.state = TimedOut
	s.store.Clear()
	s.log.Info("time is up", zap.String("game_id", s.id), zap.Int("moves", s.moves), zap.Int("elapsed", s.elapsed))
	s.renderLocked(u)
	u.add(func(p Presenter) { p.ShowMessage("Time is up! Game over.") })
}

// Load restores a saved game and resumes its clock. A malformed snapshot
// is treated as no save at all: Load returns false and nothing changes.
func (s *Session) Load(snap types.SessionSnapshot) bool {
	board := puzzle.Board(append([]int(nil), snap.Tiles...))
	size := snap.Size
	if size == 0 {
		size = board.Size()
	}
	if err := board.Validate(); err != nil || len(board) != size*size {
		s.log.Warn("ignoring malformed save", zap.Int("tiles", len(snap.Tiles)), zap.Int("size", snap.Size), zap.Error(err))
		return false
	}
	if snap.Moves < 0 || snap.Timer < 0 || snap.LimitSeconds < 0 {
		s.log.Warn("ignoring save with negative counters", zap.Int("moves", snap.Moves), zap.Int("elapsed", snap.Timer))
		return false
	}

	var u updates
	s.mu.Lock()
	limit := snap.LimitSeconds
	if limit == 0 {
		limit = s.opts.LimitSeconds
	}
	s.opts = types.Options{Size: size, LimitSeconds: limit}.Clamp()
	s.board = board
	s.moves = snap.Moves
	s.elapsed = snap.Timer
	s.id = snap.ID
	if s.id == "" {
		s.id = uuid.NewString()
	}
	s.state = InProgress
	s.startClockLocked()
	s.log.Info("resumed game", zap.String("game_id", s.id), zap.Int("moves", s.moves), zap.Int("elapsed", s.elapsed))
	s.renderLocked(&u)
	u.add(func(p Presenter) {
		p.ShowMessage("")
		p.HideMenu()
	})
	s.mu.Unlock()
	u.send(s.view)
	return true
}

// Resume loads the game saved in the store.
func (s *Session) Resume() bool {
	snap, ok := s.store.Load()
	if !ok {
		return false
	}
	return s.Load(snap)
}

// Close stops the clock and saves a game still in progress so the time
// spent since the last move is kept.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ticker.Stop()
	if s.state == InProgress {
		s.store.Save(s.snapshotLocked())
	}
}

func (s *Session) startClockLocked() {
	s.ticker.Start(func(gen uint64) {
		s.dispatch(func() { s.tickFrom(gen) })
	})
}

func (s *Session) snapshotLocked() types.SessionSnapshot {
	return types.SessionSnapshot{
		ID:           s.id,
		Tiles:        s.board.Clone(),
		Moves:        s.moves,
		Timer:        s.elapsed,
		Size:         s.opts.Size,
		LimitSeconds: s.opts.LimitSeconds,
		Timestamp:    s.clk.Now().UnixMilli(),
	}
}

// Snapshot returns the session as it would be saved.
func (s *Session) Snapshot() types.SessionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Board returns a copy of the tiles.
func (s *Session) Board() puzzle.Board {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.Clone()
}

func (s *Session) Moves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.moves
}

func (s *Session) Elapsed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.elapsed
}

// Options returns the size and limit of the current puzzle.
func (s *Session) Options() types.Options {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.opts
}

// Best returns the stored best record.
func (s *Session) Best() (types.BestRecord, bool) {
	return s.store.LoadBest()
}

// Ticking reports whether the clock is running.
func (s *Session) Ticking() bool {
	return s.ticker.Running()
}
