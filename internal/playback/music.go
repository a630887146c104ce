package playback

import "github.com/rs/zerolog/log"

// Track is the part of Player the celebration drives.
type Track interface {
	Loaded() bool
	Restart() error
	Stop()
	Toggle() error
}

// Music decides when the song plays. A celebration starts it from the top and
// the return to the countdown pauses it. A start that fails is not reported to
// the user; it is retried on their next action while the celebration lasts.
type Music struct {
	track       Track
	celebrating bool
	pending     bool
}

func NewMusic(track Track) *Music {
	return &Music{track: track}
}

// Start is called when a celebration begins.
func (m *Music) Start() {
	m.celebrating = true
	m.play()
}

// Stop is called when the screen returns to the countdown.
func (m *Music) Stop() {
	m.celebrating = false
	m.pending = false
	m.track.Stop()
}

// Retry replays the song if an earlier start failed.
func (m *Music) Retry() {
	if m.pending && m.celebrating {
		m.play()
	}
}

// Toggle mutes or unmutes. While a start is pending it retries instead.
func (m *Music) Toggle() {
	if m.pending {
		m.Retry()
		return
	}
	if err := m.track.Toggle(); err != nil {
		log.Debug().Err(err).Msg("music toggle ignored")
	}
}

// Pending reports whether a failed start is waiting to be retried.
func (m *Music) Pending() bool { return m.pending }

func (m *Music) play() {
	if !m.track.Loaded() {
		return
	}
	if err := m.track.Restart(); err != nil {
		log.Warn().Err(err).Msg("music did not start, will retry on next action")
		m.pending = true
		return
	}
	m.pending = false
}
