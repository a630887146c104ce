// Package sequencer drives the celebration script: message, one slideshow pass
// over the media, then the gallery.
package sequencer

import (
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

// Phase is the active step of the celebration script.
type Phase int

const (
	Idle Phase = iota
	ShowingMessage
	RunningSlideshow
	ShowingGallery
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case ShowingMessage:
		return "message"
	case RunningSlideshow:
		return "slideshow"
	case ShowingGallery:
		return "gallery"
	default:
		return "unknown"
	}
}

// Durations configures how long the timed phases last.
type Durations struct {
	Message time.Duration
	Slide   time.Duration
}

// DefaultDurations shows the message for 3s and each slide for 2s.
var DefaultDurations = Durations{
	Message: 3 * time.Second,
	Slide:   2 * time.Second,
}

// Sequencer is the celebration state machine. At most one timer is armed at a
// time and it always belongs to the current phase; leaving a phase stops and
// drains it, so a callback from an abandoned phase can never be observed.
//
// Sequencer is driven from a single goroutine (the game loop) through Sync and
// Poll.
type Sequencer struct {
	clock     clockwork.Clock
	durations Durations

	phase      Phase
	mediaCount int
	slide      int
	advances   int

	timer clockwork.Timer

	observers []func(from, to Phase)
}

// New returns an idle sequencer. Zero durations fall back to DefaultDurations.
func New(clock clockwork.Clock, d Durations) *Sequencer {
	if d.Message <= 0 {
		d.Message = DefaultDurations.Message
	}
	if d.Slide <= 0 {
		d.Slide = DefaultDurations.Slide
	}
	return &Sequencer{clock: clock, durations: d}
}

// OnTransition registers fn to be called synchronously after every phase change.
func (s *Sequencer) OnTransition(fn func(from, to Phase)) {
	s.observers = append(s.observers, fn)
}

// Sync evaluates the trigger condition. Becoming active while idle starts the
// script from the message; becoming inactive resets to Idle from any phase.
// The media count is captured when the script starts.
func (s *Sequencer) Sync(active bool, mediaCount int) {
	switch {
	case active && s.phase == Idle:
		s.mediaCount = mediaCount
		s.enter(ShowingMessage)
	case !active && s.phase != Idle:
		s.enter(Idle)
	}
}

// Poll fires the current phase's timer if it has expired.
func (s *Sequencer) Poll() {
	if s.timer == nil {
		return
	}
	select {
	case <-s.timer.Chan():
	default:
		return
	}
	s.timer = nil

	switch s.phase {
	case ShowingMessage:
		if s.mediaCount > 0 {
			s.enter(RunningSlideshow)
		} else {
			s.enter(ShowingGallery)
		}
	case RunningSlideshow:
		s.advance()
	}
}

// Reset returns to Idle regardless of the trigger.
func (s *Sequencer) Reset() {
	if s.phase != Idle {
		s.enter(Idle)
	}
}

// Phase returns the active phase.
func (s *Sequencer) Phase() Phase { return s.phase }

// Slide returns the index of the media item on screen during the slideshow.
func (s *Sequencer) Slide() int { return s.slide }

// Advances returns how many times the slideshow has advanced in this run.
func (s *Sequencer) Advances() int { return s.advances }

// MediaCount returns the number of items captured when the script started.
func (s *Sequencer) MediaCount() int { return s.mediaCount }

func (s *Sequencer) advance() {
	s.advances++
	next := s.slide + 1
	if next >= s.mediaCount {
		// one pass only
		s.slide = 0
		s.enter(ShowingGallery)
		return
	}
	s.slide = next
	log.Debug().Int("slide", s.slide).Int("of", s.mediaCount).Msg("slideshow advanced")
	s.arm(s.durations.Slide)
}

// enter cancels the current timer before anything else, then arms the timer
// owned by the new phase.
func (s *Sequencer) enter(to Phase) {
	s.cancel()
	from := s.phase
	s.phase = to

	switch to {
	case Idle:
		s.slide = 0
		s.advances = 0
		s.mediaCount = 0
	case ShowingMessage:
		s.slide = 0
		s.advances = 0
		s.arm(s.durations.Message)
	case RunningSlideshow:
		s.slide = 0
		s.arm(s.durations.Slide)
	case ShowingGallery:
	}

	log.Info().
		Str("from", from.String()).
		Str("to", to.String()).
		Int("media", s.mediaCount).
		Msg("celebration phase changed")

	for _, fn := range s.observers {
		fn(from, to)
	}
}

func (s *Sequencer) arm(d time.Duration) {
	s.timer = s.clock.NewTimer(d)
}

func (s *Sequencer) cancel() {
	if s.timer == nil {
		return
	}
	stopAndDrainTimer(s.timer)
	s.timer = nil
}

// stopAndDrainTimer stops a timer and drains a value that may already be
// buffered in its channel.
func stopAndDrainTimer(timer clockwork.Timer) {
	if !timer.Stop() {
		select {
		case <-timer.Chan():
		default:
		}
	}
}
