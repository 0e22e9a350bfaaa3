// Package audio plays the puzzle's sound cues on the terminal bell and keeps
// the player's volume and mute settings.
package audio

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"

	"termfifteen/logging"
	"termfifteen/types"
)

// jingleNotes is the number of bells in the win cue, spaced jingleGap apart.
const (
	jingleNotes = 4
	jingleGap   = 120 * time.Millisecond
	volumeStep  = 0.1
)

// Beeper rings the terminal bell. tcell.Screen satisfies it.
type Beeper interface {
	Beep() error
}

// PrefsStore persists sound settings.
type PrefsStore interface {
	SaveSoundPrefs(p types.SoundPrefs)
	LoadSoundPrefs() (types.SoundPrefs, bool)
}

// Controller owns the sound settings and plays cues.
type Controller struct {
	mu     sync.Mutex
	prefs  types.SoundPrefs
	beeper Beeper
	store  PrefsStore
	clk    clock.Clock
	log    *zap.Logger
}

// NewController loads saved settings from store, falling back to the
// defaults. Store and beeper may be nil.
func NewController(store PrefsStore, clk clock.Clock, log *zap.Logger) *Controller {
	if clk == nil {
		clk = clock.New()
	}
	c := &Controller{
		prefs: types.DefaultSoundPrefs(),
		store: store,
		clk:   clk,
		log:   logging.OrNop(log),
	}
	if store != nil {
		if p, ok := store.LoadSoundPrefs(); ok {
			c.prefs = types.SoundPrefs{Volume: clampVolume(p.Volume), Muted: p.Muted}
		}
	}
	return c
}

// SetBeeper attaches the bell once the screen exists.
func (c *Controller) SetBeeper(b Beeper) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.beeper = b
}

// Prefs returns the current settings.
func (c *Controller) Prefs() types.SoundPrefs {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.prefs
}

// Audible reports whether cues currently make a sound.
func (c *Controller) Audible() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.audibleLocked()
}

func (c *Controller) audibleLocked() bool {
	return c.beeper != nil && !c.prefs.Muted && c.prefs.Volume > 0
}

// ToggleMute flips the mute setting and returns the new value.
func (c *Controller) ToggleMute() bool {
	c.mu.Lock()
	c.prefs.Muted = !c.prefs.Muted
	p := c.prefs
	c.mu.Unlock()
	c.persist(p)
	return p.Muted
}

// SetVolume sets the volume, clamped to 0..1.
func (c *Controller) SetVolume(v float64) {
	c.mu.Lock()
	c.prefs.Volume = clampVolume(v)
	p := c.prefs
	c.mu.Unlock()
	c.persist(p)
}

// AdjustVolume changes the volume by steps of a tenth and returns the result.
func (c *Controller) AdjustVolume(steps int) float64 {
	c.mu.Lock()
	c.prefs.Volume = clampVolume(c.prefs.Volume + float64(steps)*volumeStep)
	p := c.prefs
	c.mu.Unlock()
	c.persist(p)
	return p.Volume
}

func (c *Controller) persist(p types.SoundPrefs) {
	if c.store != nil {
		c.store.SaveSoundPrefs(p)
	}
}

// PlayMove rings once.
func (c *Controller) PlayMove() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.audibleLocked() {
		c.beepLocked()
	}
}

// PlayWin rings the jingle. The first bell is immediate, the rest are
// scheduled and skipped if sound is turned off meanwhile.
func (c *Controller) PlayWin() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.audibleLocked() {
		return
	}
	c.beepLocked()
	for i := 1; i < jingleNotes; i++ {
		c.clk.AfterFunc(time.Duration(i)*jingleGap, c.PlayMove)
	}
}

func (c *Controller) beepLocked() {
	if err := c.beeper.Beep(); err != nil {
		c.log.Debug("bell failed", zap.Error(err))
	}
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
