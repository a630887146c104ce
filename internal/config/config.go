package config

import "time"

const (
	WindowWidth  = 1280
	WindowHeight = 720

	VisualRingSize = 8192
	LevelWindow    = 2048

	// Button dimensions
	ButtonWidth  = 220
	ButtonHeight = 44

	// Countdown boxes
	TimeBoxWidth  = 150
	TimeBoxHeight = 130
	TimeBoxGap    = 28

	// Gallery tiles
	TileSize     = 120
	LightboxSize = 520
	SlideWidth   = 960
	SlideHeight  = 560

	// Celebration visuals
	GlowSmoothing   = 0.85
	ColorShiftSpeed = 0.003

	// TargetLayout is the format of CELEBRATION_TARGET and the preset target.
	TargetLayout = "2006-01-02 15:04:05"

	DefaultMessageDuration = 3 * time.Second
	DefaultSlideInterval   = 2 * time.Second
)
