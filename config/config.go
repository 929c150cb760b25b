package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the single render layer every renderer draws on.
const Default ecs.LayerID = 0

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	TPS    int // Update ticks per second; tween durations are advanced by 1/TPS
	Title  string
}

// FollowerConfig contains configuration for the shared cursor indicator
type FollowerConfig struct {
	Speed          float64 // Smoothing factor in (0, 1] applied every frame
	Width          float64 // Resting width of the indicator
	Height         float64 // Resting height of the indicator
	ResizeDuration float64 // Seconds for width/height transitions (0 = immediate)

	Color        color.RGBA // Fill while tracking the raw pointer
	ClaimedColor color.RGBA // Fill while centered over a magnetic element
	OutlineColor color.RGBA
}

// MagneticConfig contains defaults for magnetic elements
type MagneticConfig struct {
	OuterPadding float64 // Hover zone grows this far beyond the element box
	InnerPadding float64 // Element box grows this far beyond its content
	Offset       float64 // Max wobble displacement toward the pointer, in pixels
	Scale        float64 // Element scale while hovered
	Speed        float64 // Wobble smoothing factor

	IndicatorScale float64 // Indicator size = element size * Scale * IndicatorScale
	PressScale     float64 // Indicator size multiplier while the pointer is held down

	Color       color.RGBA
	HoverColor  color.RGBA
	TextColor   color.RGBA
	CornerInset float64 // Width of the darker border drawn inside the element box
}

// MotionConfig contains interpolation settings shared by every animated point
type MotionConfig struct {
	Epsilon float64 // Per-axis distance below which a point counts as arrived
}

// SpaceConfig sizes the resolv space used for hit-testing
type SpaceConfig struct {
	CellWidth  int
	CellHeight int
}

// ShowcaseConfig lays out the demo grid of magnetic elements
type ShowcaseConfig struct {
	Labels     []string
	Columns    int
	CellWidth  float64
	CellHeight float64
	Gap        float64
	TopY       float64
	Background color.RGBA
}

// UIConfig contains status panel and overlay settings
type UIConfig struct {
	PanelColor   color.RGBA
	ButtonColor  color.RGBA
	ButtonHover  color.RGBA
	ButtonPress  color.RGBA
	LabelColor   color.RGBA
	HintColor    color.RGBA
	FontSize     float64
	DebugFont    float64
	DebugHitbox  color.RGBA
	DebugTarget  color.RGBA
	DebugClaimed color.RGBA
}

// MessageConfig contains toast display settings
type MessageConfig struct {
	DisplayDuration int // Frames a toast stays on screen
	TopMargin       float64
	BoxPadding      float64
	BoxColor        color.RGBA
	TextColor       color.RGBA
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay bool // Draw hitboxes, target crosshair and readout
}

// Global configuration instances
var C *Config
var Follower FollowerConfig
var Magnetic MagneticConfig
var Motion MotionConfig
var Space SpaceConfig
var Showcase ShowcaseConfig
var UI UIConfig
var Message MessageConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Ink          = color.RGBA{R: 18, G: 18, B: 24, A: 255}
	Slate        = color.RGBA{R: 40, G: 44, B: 58, A: 255}
	LightSlate   = color.RGBA{R: 70, G: 78, B: 102, A: 255}
	Accent       = color.RGBA{R: 255, G: 120, B: 60, A: 200}
	AccentSoft   = color.RGBA{R: 255, G: 120, B: 60, A: 90}
	Cyan         = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
		TPS:    60,
		Title:  "magnetcursor",
	}

	Follower = FollowerConfig{
		Speed:          0.15,
		Width:          20,
		Height:         20,
		ResizeDuration: 0.2,

		Color:        Accent,
		ClaimedColor: AccentSoft,
		OutlineColor: White,
	}

	Magnetic = MagneticConfig{
		OuterPadding: 24,
		InnerPadding: 12,
		Offset:       10,
		Scale:        1.1,
		Speed:        0.2,

		IndicatorScale: 1.0,
		PressScale:     0.9,

		Color:       Slate,
		HoverColor:  LightSlate,
		TextColor:   White,
		CornerInset: 2,
	}

	Motion = MotionConfig{
		Epsilon: 0.01,
	}

	Space = SpaceConfig{
		CellWidth:  16,
		CellHeight: 16,
	}

	Showcase = ShowcaseConfig{
		Labels:     []string{"Home", "Blog", "Projects", "About", "Contact", "Remove me"},
		Columns:    3,
		CellWidth:  180,
		CellHeight: 90,
		Gap:        60,
		TopY:       90,
		Background: Ink,
	}

	UI = UIConfig{
		PanelColor:   color.RGBA{R: 30, G: 30, B: 40, A: 230},
		ButtonColor:  color.RGBA{R: 60, G: 60, B: 80, A: 255},
		ButtonHover:  color.RGBA{R: 80, G: 80, B: 110, A: 255},
		ButtonPress:  color.RGBA{R: 45, G: 45, B: 60, A: 255},
		LabelColor:   White,
		HintColor:    color.RGBA{R: 180, G: 180, B: 180, A: 255},
		FontSize:     12,
		DebugFont:    10,
		DebugHitbox:  Cyan,
		DebugTarget:  Magenta,
		DebugClaimed: BrightGreen,
	}

	Message = MessageConfig{
		DisplayDuration: 90,
		TopMargin:       20,
		BoxPadding:      8,
		BoxColor:        BlackOverlay,
		TextColor:       White,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		Overlay: false,
	}
}
