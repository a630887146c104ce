// Package playback plays the background song through the system speaker.
package playback

import (
	"errors"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"github.com/rs/zerolog/log"

	"github.com/iburimskiy/celebration-countdown/internal/audio"
	"github.com/iburimskiy/celebration-countdown/internal/config"
)

var ErrNoSong = errors.New("no song loaded")

// Player loops one song forever. It starts paused; the celebration restarts it
// from the beginning and pauses it again when the celebration ends.
//
// Player methods are called from the game loop; the speaker goroutine only
// touches the streamer chain under speaker.Lock.
type Player struct {
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	tap      *audio.Tap

	initDone bool
	playing  bool
}

// New returns a Player with nothing loaded.
func New() *Player {
	return &Player{}
}

// Load decodes the song and queues it, paused, on the speaker. A previous song
// is stopped and closed.
func (p *Player) Load(path string) error {
	streamer, format, err := audio.Decode(path)
	if err != nil {
		return err
	}

	// (Re)initialize speaker if needed
	bufferSize := format.SampleRate.N(time.Second / 20)
	if !p.initDone || p.format.SampleRate != format.SampleRate {
		if p.initDone {
			speaker.Clear()
		}
		if err := speaker.Init(format.SampleRate, bufferSize); err != nil {
			_ = streamer.Close()
			return err
		}
		p.initDone = true
	} else {
		speaker.Clear()
	}
	p.closeCurrent()
	p.attach(streamer, format)

	speaker.Play(p.ctrl)

	log.Info().
		Str("path", path).
		Int("sample_rate", int(format.SampleRate)).
		Dur("length", format.SampleRate.D(streamer.Len())).
		Msg("song loaded")
	return nil
}

// attach builds the chain streamer -> loop -> tap -> ctrl, paused.
func (p *Player) attach(streamer beep.StreamSeekCloser, format beep.Format) {
	p.streamer = streamer
	p.format = format
	p.tap = audio.NewTap(beep.Loop(-1, streamer), config.VisualRingSize)
	p.ctrl = &beep.Ctrl{Streamer: p.tap, Paused: true}
	p.playing = false
}

// Loaded reports whether a song is queued.
func (p *Player) Loaded() bool { return p.ctrl != nil }

// Playing reports whether the song is audible.
func (p *Player) Playing() bool { return p.playing }

// Restart rewinds the song and plays it.
func (p *Player) Restart() error {
	if p.ctrl == nil {
		return ErrNoSong
	}
	speaker.Lock()
	err := p.streamer.Seek(0)
	if err == nil {
		p.ctrl.Paused = false
	}
	speaker.Unlock()
	if err != nil {
		return err
	}
	p.playing = true
	return nil
}

// Stop pauses the song.
func (p *Player) Stop() {
	if p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = true
	speaker.Unlock()
	p.playing = false
}

// Toggle pauses or resumes without rewinding.
func (p *Player) Toggle() error {
	if p.ctrl == nil {
		return ErrNoSong
	}
	speaker.Lock()
	p.ctrl.Paused = !p.ctrl.Paused
	p.playing = !p.ctrl.Paused
	speaker.Unlock()
	return nil
}

// Level returns how loud the song currently is, in [0, 1].
func (p *Player) Level() float64 {
	if p.tap == nil || !p.playing {
		return 0
	}
	return p.tap.Level(config.LevelWindow)
}

// Close stops playback and releases the song.
func (p *Player) Close() {
	if p.initDone {
		speaker.Clear()
	}
	p.closeCurrent()
}

func (p *Player) closeCurrent() {
	if p.streamer != nil {
		_ = p.streamer.Close()
	}
	p.streamer = nil
	p.ctrl = nil
	p.tap = nil
	p.playing = false
}
