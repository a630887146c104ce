// Package session holds the in-memory state of one run of the application:
// what the user configured and which screen-level toggles are on.
package session

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/iburimskiy/celebration-countdown/internal/media"
)

// DefaultMessage is shown when the user does not write their own.
const DefaultMessage = "HAPPY NEW YEAR"

var ErrNoMedia = errors.New("select at least one photo or video")

// Session is the application state passed down to the screens. It is owned by
// the game loop and not safe for concurrent use.
type Session struct {
	media        []media.Item
	mediaVersion uint64

	musicPath string
	message   string

	setupComplete bool
	preview       bool
	selected      int
}

// New returns a session in the setup stage.
func New(message string) *Session {
	s := &Session{selected: -1}
	s.SetMessage(message)
	return s
}

// SetMedia replaces the media set. Every replacement gets a new version so
// derived layouts are recomputed.
func (s *Session) SetMedia(items []media.Item) {
	s.media = items
	s.mediaVersion++
	s.selected = -1
}

// Media returns the current media set.
func (s *Session) Media() []media.Item { return s.media }

// MediaVersion identifies the current media set.
func (s *Session) MediaVersion() uint64 { return s.mediaVersion }

// SetMusic records the background song.
func (s *Session) SetMusic(path string) { s.musicPath = path }

// MusicPath returns the song path, empty when none was chosen.
func (s *Session) MusicPath() string { return s.musicPath }

// MusicName returns the song file name for display.
func (s *Session) MusicName() string {
	if s.musicPath == "" {
		return ""
	}
	return filepath.Base(s.musicPath)
}

// SetMessage stores the celebration message. A literal `\n` typed into a
// single-line input becomes a line break; a blank message falls back to
// DefaultMessage.
func (s *Session) SetMessage(text string) {
	text = strings.ReplaceAll(text, `\n`, "\n")
	if strings.TrimSpace(text) == "" {
		text = DefaultMessage
	}
	s.message = text
}

// Message returns the celebration message.
func (s *Session) Message() string { return s.message }

// Start finishes setup. At least one media item is required.
func (s *Session) Start() error {
	if len(s.media) == 0 {
		return ErrNoMedia
	}
	s.setupComplete = true
	return nil
}

// ReopenSetup returns to the setup screen, leaving preview mode.
func (s *Session) ReopenSetup() {
	s.setupComplete = false
	s.preview = false
	s.selected = -1
}

// SetupComplete reports whether the countdown screen is shown.
func (s *Session) SetupComplete() bool { return s.setupComplete }

// TogglePreview flips preview mode. Turning preview on also finishes setup
// with whatever has been configured so far, even with no media.
func (s *Session) TogglePreview() bool {
	s.preview = !s.preview
	if s.preview {
		s.setupComplete = true
	} else {
		s.selected = -1
	}
	return s.preview
}

// Preview reports whether preview mode is on.
func (s *Session) Preview() bool { return s.preview }

// Active is the celebration trigger: the countdown finished or preview is on,
// and setup is done.
func (s *Session) Active(timerComplete bool) bool {
	return (timerComplete || s.preview) && s.setupComplete
}

// Select opens the lightbox on item i. Out of range indexes are ignored.
func (s *Session) Select(i int) {
	if i >= 0 && i < len(s.media) {
		s.selected = i
	}
}

// ClearSelection closes the lightbox.
func (s *Session) ClearSelection() { s.selected = -1 }

// Selected returns the item shown in the lightbox, if any.
func (s *Session) Selected() (media.Item, bool) {
	if s.selected < 0 || s.selected >= len(s.media) {
		return media.Item{}, false
	}
	return s.media[s.selected], true
}
