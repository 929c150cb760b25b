package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/magnetcursor/components"
	cfg "github.com/automoto/magnetcursor/config"
	"github.com/automoto/magnetcursor/fonts"
	"github.com/automoto/magnetcursor/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every resolv zone, marks the shared target and prints
// the motion state. Only drawn while cfg.Debug.Overlay is set.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Overlay {
		return
	}
	state := GetOrCreateMotionState(ecs)

	if space, ok := getSpace(ecs); ok {
		for _, obj := range space.Objects() {
			if !obj.HasTags(tags.ResolvMagnetic) {
				continue
			}
			c := cfg.UI.DebugHitbox
			ref, _ := obj.Data.(*components.ZoneRef)
			if owner, ok := ClaimOwner(ecs); ok && ref != nil && ref.Entity == owner.Entity() {
				c = cfg.UI.DebugClaimed
			}
			outline(screen, obj.X, obj.Y, obj.W, obj.H, c)
		}
	}

	if f, ok := getFollower(ecs); ok && f.Node.Alive() {
		half := f.Node.Half()
		crosshair(screen, state.Target.X+half.X, state.Target.Y+half.Y, cfg.UI.DebugTarget)
	}

	if !fonts.Loaded(fonts.Small) {
		return
	}
	face := fonts.Small.Get()
	lines := DebugLines(ecs)
	vector.FillRect(screen, 4, 4, 220, float32(len(lines)*12+6), cfg.BlackOverlay, false)
	for i, line := range lines {
		text.Draw(screen, line, face, 8, 16+i*12, cfg.UI.LabelColor) //nolint:staticcheck // TODO: migrate to text/v2
	}
}

// DebugLines describes the shared motion state for the overlay.
func DebugLines(ecs *ecs.ECS) []string {
	state := GetOrCreateMotionState(ecs)

	owner := "none"
	if entry, ok := ClaimOwner(ecs); ok {
		m := components.Magnetic.Get(entry)
		owner = fmt.Sprintf("%v (%s)", entry.Entity(), m.State)
	} else if state.Claimed {
		owner = fmt.Sprintf("%v (stale)", state.Owner)
	}

	running := false
	size := "detached"
	if f, ok := getFollower(ecs); ok && f.Node.Alive() {
		running = f.Motion.Running()
		size = fmt.Sprintf("%.0fx%.0f", f.Node.Width, f.Node.Height)
	}

	pending := 0
	if state.Frames != nil {
		pending = state.Frames.Pending()
	}

	return []string{
		fmt.Sprintf("owner:   %s", owner),
		fmt.Sprintf("target:  %.1f, %.1f", state.Target.X, state.Target.Y),
		fmt.Sprintf("pointer: %.1f, %.1f", state.Pointer.X, state.Pointer.Y),
		fmt.Sprintf("size:    %s", size),
		fmt.Sprintf("running: %t  frames: %d", running, pending),
	}
}

func outline(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.FillRect(screen, float32(x), float32(y), float32(w), 1, c, false)     // Top
	vector.FillRect(screen, float32(x), float32(y+h-1), float32(w), 1, c, false) // Bottom
	vector.FillRect(screen, float32(x), float32(y), 1, float32(h), c, false)     // Left
	vector.FillRect(screen, float32(x+w-1), float32(y), 1, float32(h), c, false) // Right
}

func crosshair(screen *ebiten.Image, x, y float64, c color.Color) {
	vector.StrokeLine(screen, float32(x-6), float32(y), float32(x+6), float32(y), 1, c, false)
	vector.StrokeLine(screen, float32(x), float32(y-6), float32(x), float32(y+6), 1, c, false)
}
