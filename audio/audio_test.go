package audio

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termfifteen/store"
	"termfifteen/types"
)

type countingBeeper struct {
	mu    sync.Mutex
	count int
	err   error
}

func (b *countingBeeper) Beep() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.count++
	return b.err
}

func (b *countingBeeper) beeps() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.count
}

func TestDefaults(t *testing.T) {
	c := NewController(nil, clock.NewMock(), nil)
	assert.Equal(t, types.DefaultSoundPrefs(), c.Prefs())
	assert.False(t, c.Audible(), "no bell attached yet")
	assert.NotPanics(t, c.PlayMove)
	assert.NotPanics(t, c.PlayWin)
}

func TestLoadsSavedPrefs(t *testing.T) {
	st := store.New(store.NewMemoryBackend(), nil)
	st.SaveSoundPrefs(types.SoundPrefs{Volume: 3, Muted: true})
	c := NewController(st, clock.NewMock(), nil)
	assert.Equal(t, types.SoundPrefs{Volume: 1, Muted: true}, c.Prefs())
}

func TestPlayMove(t *testing.T) {
	b := &countingBeeper{}
	c := NewController(nil, clock.NewMock(), nil)
	c.SetBeeper(b)
	c.PlayMove()
	assert.Equal(t, 1, b.beeps())

	c.ToggleMute()
	c.PlayMove()
	assert.Equal(t, 1, b.beeps())

	c.ToggleMute()
	c.SetVolume(0)
	c.PlayMove()
	assert.Equal(t, 1, b.beeps())
}

func TestPlayWinJingle(t *testing.T) {
	mock := clock.NewMock()
	b := &countingBeeper{}
	c := NewController(nil, mock, nil)
	c.SetBeeper(b)

	c.PlayWin()
	assert.Equal(t, 1, b.beeps())
	mock.Add(3 * jingleGap)
	require.Eventually(t, func() bool { return b.beeps() == jingleNotes }, time.Second, time.Millisecond)
}

func TestMuteDuringJingle(t *testing.T) {
	mock := clock.NewMock()
	b := &countingBeeper{}
	c := NewController(nil, mock, nil)
	c.SetBeeper(b)

	c.PlayWin()
	c.ToggleMute()
	mock.Add(time.Second)
	require.Never(t, func() bool { return b.beeps() > 1 }, 50*time.Millisecond, 5*time.Millisecond)
}

func TestBeeperFailureIsAbsorbed(t *testing.T) {
	b := &countingBeeper{err: errors.New("no tty")}
	c := NewController(nil, clock.NewMock(), nil)
	c.SetBeeper(b)
	assert.NotPanics(t, c.PlayMove)
	assert.Equal(t, 1, b.beeps())
}

func TestSettingsArePersisted(t *testing.T) {
	st := store.New(store.NewMemoryBackend(), nil)
	c := NewController(st, clock.NewMock(), nil)

	assert.True(t, c.ToggleMute())
	p, ok := st.LoadSoundPrefs()
	require.True(t, ok)
	assert.True(t, p.Muted)

	c.SetVolume(-2)
	p, _ = st.LoadSoundPrefs()
	assert.Equal(t, 0.0, p.Volume)

	assert.InDelta(t, 0.2, c.AdjustVolume(2), 1e-9)
	assert.InDelta(t, 1.0, c.AdjustVolume(20), 1e-9)
	p, _ = st.LoadSoundPrefs()
	assert.InDelta(t, 1.0, p.Volume, 1e-9)
}
