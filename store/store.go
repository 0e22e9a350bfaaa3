// Package store persists games, options, the best record and sound settings.
// Every call absorbs its own failures: a broken disk never stops a move.
package store

import (
	"encoding/json"
	"errors"

	"go.uber.org/zap"

	"termfifteen/logging"
	"termfifteen/types"
)

const (
	keySession = "session"
	keyOptions = "options"
	keyBest    = "best"
	keySound   = "sound"
)

// Store reads and writes JSON records through a Backend.
type Store struct {
	backend Backend
	log     *zap.Logger
}

// New wraps backend. A nil logger discards failures silently.
func New(backend Backend, log *zap.Logger) *Store {
	return &Store{backend: backend, log: logging.OrNop(log)}
}

func (s *Store) put(key string, v any) bool {
	data, err := json.Marshal(v)
	if err != nil {
		s.log.Warn("failed to encode record", zap.String("key", key), zap.Error(err))
		return false
	}
	if err := s.backend.Set(key, data); err != nil {
		s.log.Warn("failed to write record", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (s *Store) get(key string, v any) bool {
	data, err := s.backend.Get(key)
	if errors.Is(err, ErrNotFound) {
		return false
	}
	if err != nil {
		s.log.Warn("failed to read record", zap.String("key", key), zap.Error(err))
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		s.log.Warn("ignoring malformed record", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (s *Store) remove(key string) {
	if err := s.backend.Delete(key); err != nil {
		s.log.Warn("failed to delete record", zap.String("key", key), zap.Error(err))
	}
}

// Save writes the in-progress game.
func (s *Store) Save(snap types.SessionSnapshot) {
	if s.put(keySession, snap) {
		s.log.Debug("saved game", zap.String("game_id", snap.ID), zap.Int("moves", snap.Moves), zap.Int("elapsed", snap.Timer))
	}
}

// Load returns the saved game, if there is a readable one.
func (s *Store) Load() (types.SessionSnapshot, bool) {
	var snap types.SessionSnapshot
	ok := s.get(keySession, &snap)
	return snap, ok
}

// HasSaved reports whether a saved game exists, readable or not.
func (s *Store) HasSaved() bool {
	_, err := s.backend.Get(keySession)
	return err == nil
}

// Clear removes the saved game.
func (s *Store) Clear() {
	s.remove(keySession)
}

func (s *Store) SaveOptions(o types.Options) {
	s.put(keyOptions, o)
}

func (s *Store) LoadOptions() (types.Options, bool) {
	var o types.Options
	ok := s.get(keyOptions, &o)
	return o, ok
}

func (s *Store) SaveBest(r types.BestRecord) {
	s.put(keyBest, r)
}

func (s *Store) LoadBest() (types.BestRecord, bool) {
	var r types.BestRecord
	ok := s.get(keyBest, &r)
	return r, ok
}

func (s *Store) SaveSoundPrefs(p types.SoundPrefs) {
	s.put(keySound, p)
}

func (s *Store) LoadSoundPrefs() (types.SoundPrefs, bool) {
	var p types.SoundPrefs
	ok := s.get(keySound, &p)
	return p, ok
}
