package session

import (
	"errors"
	"testing"

	"github.com/iburimskiy/celebration-countdown/internal/media"
)

func threeItems() []media.Item {
	return []media.Item{
		{ID: 0, Label: "a.png"},
		{ID: 1, Label: "b.png"},
		{ID: 2, Label: "c.png"},
	}
}

func TestStart_RequiresMedia(t *testing.T) {
	s := New("")
	if err := s.Start(); !errors.Is(err, ErrNoMedia) {
		t.Fatalf("Start() err = %v, want ErrNoMedia", err)
	}
	if s.SetupComplete() {
		t.Fatal("setup should not complete without media")
	}

	s.SetMedia(threeItems())
	if err := s.Start(); err != nil {
		t.Fatalf("Start(): %v", err)
	}
	if !s.SetupComplete() {
		t.Fatal("setup should be complete")
	}
}

func TestActive(t *testing.T) {
	tests := []struct {
		name          string
		setup         bool
		preview       bool
		timerComplete bool
		want          bool
	}{
		{"setup only", true, false, false, false},
		{"timer done", true, false, true, true},
		{"preview", true, true, false, true},
		{"timer done before setup", false, false, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Session{setupComplete: tt.setup, preview: tt.preview, selected: -1}
			if got := s.Active(tt.timerComplete); got != tt.want {
				t.Errorf("Active(%v) = %v, want %v", tt.timerComplete, got, tt.want)
			}
		})
	}
}

func TestTogglePreview_CompletesSetupWithoutMedia(t *testing.T) {
	s := New("HELLO")
	if !s.TogglePreview() {
		t.Fatal("preview should be on")
	}
	if !s.SetupComplete() || !s.Active(false) {
		t.Fatal("preview should make the celebration active with no media")
	}

	if s.TogglePreview() {
		t.Fatal("preview should be off")
	}
	if s.Active(false) {
		t.Error("celebration should stop when preview is turned off")
	}
	if !s.SetupComplete() {
		t.Error("leaving preview should not return to setup")
	}
}

func TestSetMessage(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"HELLO", "HELLO"},
		{`I LOVE YOU\nJAANU`, "I LOVE YOU\nJAANU"},
		{"   ", DefaultMessage},
		{"", DefaultMessage},
	}
	for _, tt := range tests {
		s := New(tt.in)
		if got := s.Message(); got != tt.want {
			t.Errorf("New(%q).Message() = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSetMedia_BumpsVersionAndClearsSelection(t *testing.T) {
	s := New("")
	s.SetMedia(threeItems())
	v := s.MediaVersion()
	s.Select(1)
	if it, ok := s.Selected(); !ok || it.Label != "b.png" {
		t.Fatalf("Selected() = %+v, %v", it, ok)
	}

	s.SetMedia(threeItems())
	if s.MediaVersion() == v {
		t.Error("version should change when the set is replaced")
	}
	if _, ok := s.Selected(); ok {
		t.Error("replacing media should close the lightbox")
	}
}

func TestSelect_IgnoresOutOfRange(t *testing.T) {
	s := New("")
	s.SetMedia(threeItems())
	s.Select(7)
	if _, ok := s.Selected(); ok {
		t.Error("out of range selection should be ignored")
	}
	s.Select(2)
	s.ClearSelection()
	if _, ok := s.Selected(); ok {
		t.Error("selection should be cleared")
	}
}

func TestMusicName(t *testing.T) {
	s := New("")
	if s.MusicName() != "" {
		t.Error("no song should have no name")
	}
	s.SetMusic("/home/me/music/auld-lang-syne.mp3")
	if got := s.MusicName(); got != "auld-lang-syne.mp3" {
		t.Errorf("MusicName() = %q", got)
	}
}

func TestReopenSetup(t *testing.T) {
	s := New("")
	s.TogglePreview()
	s.ReopenSetup()
	if s.SetupComplete() || s.Preview() {
		t.Fatalf("setup=%v preview=%v, want both false", s.SetupComplete(), s.Preview())
	}
	if s.Active(true) {
		t.Error("celebration cannot run on the setup screen")
	}
}
