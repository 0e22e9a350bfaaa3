// Package types contains the records termfifteen persists and passes between
// its packages.
package types

import "time"

const (
	DefaultBoardSize    = 4
	DefaultLimitSeconds = 300
	MinLimitSeconds     = 60
	MinBoardSize        = 3
	MaxBoardSize        = 5
	DefaultVolume       = 0.6
)

// Options are the settings read when a new puzzle is shuffled.
type Options struct {
	Size         int `json:"size"`
	LimitSeconds int `json:"limit_seconds"`
}

// DefaultOptions returns a 4x4 board with a five minute limit.
func DefaultOptions() Options {
	return Options{Size: DefaultBoardSize, LimitSeconds: DefaultLimitSeconds}
}

// Clamp keeps the size within 3..5 and the limit at no less than a minute.
// Zero fields fall back to the defaults.
func (o Options) Clamp() Options {
	if o.Size == 0 {
		o.Size = DefaultBoardSize
	}
	if o.LimitSeconds == 0 {
		o.LimitSeconds = DefaultLimitSeconds
	}
	if o.Size < MinBoardSize {
		o.Size = MinBoardSize
	}
	if o.Size > MaxBoardSize {
		o.Size = MaxBoardSize
	}
	if o.LimitSeconds < MinLimitSeconds {
		o.LimitSeconds = MinLimitSeconds
	}
	return o
}

// SessionSnapshot is an in-progress game as written to the store.
type SessionSnapshot struct {
	ID           string `json:"id,omitempty"`
	Tiles        []int  `json:"tiles"`
	Moves        int    `json:"moves"`
	Timer        int    `json:"timer"`
	Size         int    `json:"size"`
	LimitSeconds int    `json:"limit_seconds"`
	Timestamp    int64  `json:"timestamp"` // unix milliseconds
}

// BestRecord is the fastest completed game.
type BestRecord struct {
	Seconds   int   `json:"seconds"`
	Moves     int   `json:"moves"`
	Timestamp int64 `json:"timestamp"` // unix milliseconds
}

// Time returns the moment the record was set.
func (r BestRecord) Time() time.Time {
	return time.UnixMilli(r.Timestamp)
}

// SoundPrefs holds the player's volume (0..1) and mute setting.
type SoundPrefs struct {
	Volume float64 `json:"volume"`
	Muted  bool    `json:"muted"`
}

// DefaultSoundPrefs returns an unmuted volume of 0.6.
func DefaultSoundPrefs() SoundPrefs {
	return SoundPrefs{Volume: DefaultVolume}
}
