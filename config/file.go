package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the on-disk shape of the configuration. Keys left out of the
// YAML keep their current values.
type File struct {
	Window   WindowFile   `yaml:"window"`
	Follower FollowerFile `yaml:"follower"`
	Magnetic MagneticFile `yaml:"magnetic"`
	Motion   MotionFile   `yaml:"motion"`
	Showcase ShowcaseFile `yaml:"showcase"`
	Debug    DebugFile    `yaml:"debug"`
}

type WindowFile struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	TPS    int    `yaml:"tps"`
	Title  string `yaml:"title"`
}

type FollowerFile struct {
	Speed          float64 `yaml:"speed"`
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	ResizeDuration float64 `yaml:"resize_duration"`
}

type MagneticFile struct {
	OuterPadding   float64 `yaml:"outer_padding"`
	InnerPadding   float64 `yaml:"inner_padding"`
	Offset         float64 `yaml:"offset"`
	Scale          float64 `yaml:"scale"`
	Speed          float64 `yaml:"speed"`
	IndicatorScale float64 `yaml:"indicator_scale"`
	PressScale     float64 `yaml:"press_scale"`
}

type MotionFile struct {
	Epsilon float64 `yaml:"epsilon"`
}

type ShowcaseFile struct {
	Labels  []string `yaml:"labels"`
	Columns int      `yaml:"columns"`
}

type DebugFile struct {
	Overlay bool `yaml:"overlay"`
}

// Current snapshots the global configuration into a File.
func Current() *File {
	return &File{
		Window: WindowFile{Width: C.Width, Height: C.Height, TPS: C.TPS, Title: C.Title},
		Follower: FollowerFile{
			Speed:          Follower.Speed,
			Width:          Follower.Width,
			Height:         Follower.Height,
			ResizeDuration: Follower.ResizeDuration,
		},
		Magnetic: MagneticFile{
			OuterPadding:   Magnetic.OuterPadding,
			InnerPadding:   Magnetic.InnerPadding,
			Offset:         Magnetic.Offset,
			Scale:          Magnetic.Scale,
			Speed:          Magnetic.Speed,
			IndicatorScale: Magnetic.IndicatorScale,
			PressScale:     Magnetic.PressScale,
		},
		Motion:   MotionFile{Epsilon: Motion.Epsilon},
		Showcase: ShowcaseFile{Labels: append([]string(nil), Showcase.Labels...), Columns: Showcase.Columns},
		Debug:    DebugFile{Overlay: Debug.Overlay},
	}
}

// Load reads a YAML file layered over the current globals.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	f := Current()
	if err := yaml.Unmarshal(data, f); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return f, nil
}

// Save writes f as YAML.
func Save(path string, f *File) error {
	data, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Write encodes f as YAML to w.
func (f *File) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return enc.Close()
}

var (
	ErrWindowSize = errors.New("window width and height must be positive")
	ErrSpeed      = errors.New("speed must be in (0, 1]")
	ErrEpsilon    = errors.New("epsilon must be positive")
	ErrColumns    = errors.New("showcase columns must be positive")
)

// Validate reports the first value that the motion core cannot run with.
func (f *File) Validate() error {
	if f.Window.Width <= 0 || f.Window.Height <= 0 {
		return ErrWindowSize
	}
	if f.Follower.Speed <= 0 || f.Follower.Speed > 1 {
		return fmt.Errorf("follower: %w", ErrSpeed)
	}
	if f.Magnetic.Speed <= 0 || f.Magnetic.Speed > 1 {
		return fmt.Errorf("magnetic: %w", ErrSpeed)
	}
	if f.Motion.Epsilon <= 0 {
		return ErrEpsilon
	}
	if f.Showcase.Columns <= 0 {
		return ErrColumns
	}
	return nil
}

// Apply copies f into the global configuration.
func (f *File) Apply() {
	C.Width = f.Window.Width
	C.Height = f.Window.Height
	if f.Window.TPS > 0 {
		C.TPS = f.Window.TPS
	}
	if f.Window.Title != "" {
		C.Title = f.Window.Title
	}

	Follower.Speed = f.Follower.Speed
	Follower.Width = f.Follower.Width
	Follower.Height = f.Follower.Height
	Follower.ResizeDuration = f.Follower.ResizeDuration

	Magnetic.OuterPadding = f.Magnetic.OuterPadding
	Magnetic.InnerPadding = f.Magnetic.InnerPadding
	Magnetic.Offset = f.Magnetic.Offset
	Magnetic.Scale = f.Magnetic.Scale
	Magnetic.Speed = f.Magnetic.Speed
	Magnetic.IndicatorScale = f.Magnetic.IndicatorScale
	Magnetic.PressScale = f.Magnetic.PressScale

	Motion.Epsilon = f.Motion.Epsilon

	if len(f.Showcase.Labels) > 0 {
		Showcase.Labels = f.Showcase.Labels
	}
	Showcase.Columns = f.Showcase.Columns

	Debug.Overlay = f.Debug.Overlay
}
