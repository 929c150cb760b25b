package systems

import (
	"github.com/automoto/magnetcursor/components"
	cfg "github.com/automoto/magnetcursor/config"
	"github.com/automoto/magnetcursor/motion"
	"github.com/automoto/magnetcursor/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MountMagnetic creates a magnetic element wrapping content, with the
// content's top-left corner at (x, y).
func MountMagnetic(e *ecs.ECS, x, y float64, content components.Content, params components.MagneticParams) *donburi.Entry {
	state := GetOrCreateMotionState(e)
	return factory.CreateMagnetic(e, state.Frames, x, y, content, params)
}

// UnmountMagnetic removes an element. An element that holds the claim goes
// through the same release path as a pointer leave first, so the follower
// never stays parked on a box that no longer exists. A raw World.Remove skips
// all of this and leaves the zone behind until SweepOrphanedZones runs.
func UnmountMagnetic(e *ecs.ECS, entry *donburi.Entry) {
	if entry == nil || !entry.Valid() {
		return
	}
	entity := entry.Entity()
	m := components.Magnetic.Get(entry)

	if m.State != components.MagneticIdle || GetOrCreateMotionState(e).OwnedBy(entity) {
		releaseMagnetic(e, entry, m)
	}
	m.Wobble.Stop()
	m.Node.Detach()

	if entry.HasComponent(components.Object) {
		obj := components.Object.Get(entry)
		if obj.Object != nil && obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
	}
	if pointer, ok := getPointer(e); ok && pointer.HasHovered && pointer.Hovered == entity {
		pointer.HasHovered = false
	}
	e.World.Remove(entity)
}

// MagneticPointerEnter claims the follower for entry, sizes it to the
// element and snaps its target onto the element in the same step.
func MagneticPointerEnter(e *ecs.ECS, entry *donburi.Entry, p motion.Point) {
	state := GetOrCreateMotionState(e)
	m := components.Magnetic.Get(entry)
	if m.State == components.MagneticActive && state.OwnedBy(entry.Entity()) {
		MagneticPointerMove(e, entry, p)
		return
	}

	ClaimTarget(e, entry)
	m.State = components.MagneticClaiming

	w, h := indicatorSize(m)
	SetFollowerSize(e, w, h)

	m.State = components.MagneticActive
	applyPointer(state, m, p)
	resync(state)
}

// MagneticPointerMove leans the element toward p and re-centers the follower on it.
func MagneticPointerMove(e *ecs.ECS, entry *donburi.Entry, p motion.Point) {
	state := GetOrCreateMotionState(e)
	m := components.Magnetic.Get(entry)
	if m.State != components.MagneticActive || !state.OwnedBy(entry.Entity()) {
		return
	}
	applyPointer(state, m, p)
	resync(state)
}

// MagneticPointerLeave releases the claim and sends the follower back to the raw pointer.
func MagneticPointerLeave(e *ecs.ECS, entry *donburi.Entry) {
	releaseMagnetic(e, entry, components.Magnetic.Get(entry))
}

// MagneticPointerDown presses the element; the follower shrinks while held.
func MagneticPointerDown(e *ecs.ECS, entry *donburi.Entry) {
	m := components.Magnetic.Get(entry)
	if m.State != components.MagneticActive {
		return
	}
	m.Pressed = true
	w, h := indicatorSize(m)
	SetFollowerSize(e, w*cfg.Magnetic.PressScale, h*cfg.Magnetic.PressScale)
	republishOwner(e, GetOrCreateMotionState(e))
}

// MagneticPointerUp ends a press. If the pointer is still inside the
// element it counts as a click and OnClick runs last, since it may unmount
// entry.
func MagneticPointerUp(e *ecs.ECS, entry *donburi.Entry, inside bool) {
	m := components.Magnetic.Get(entry)
	if !m.Pressed {
		return
	}
	m.Pressed = false
	if m.State == components.MagneticActive {
		w, h := indicatorSize(m)
		SetFollowerSize(e, w, h)
		republishOwner(e, GetOrCreateMotionState(e))
	}
	if inside && m.Params.OnClick != nil {
		m.Params.OnClick(entry)
	}
}

// releaseMagnetic resets the element to Idle and, if it owned the claim,
// restores the follower's size and resyncs it onto the raw pointer.
func releaseMagnetic(e *ecs.ECS, entry *donburi.Entry, m *components.MagneticData) {
	m.State = components.MagneticIdle
	m.Pressed = false
	m.Wobble.SetTarget(motion.Point{})

	if GetOrCreateMotionState(e).OwnedBy(entry.Entity()) {
		RestoreFollowerSize(e)
		ReleaseTarget(e, entry.Entity())
	}
}

// applyPointer sets the element's wobble target from p and publishes the
// follower target that centers the indicator over the element.
func applyPointer(state *components.MotionStateData, m *components.MagneticData, p motion.Point) {
	p = motion.Sanitize(p)
	center := m.Box.Center()
	zone := m.Zone()

	nx := motion.Normalize(p.X-center.X, zone.W/2)
	ny := motion.Normalize(p.Y-center.Y, zone.H/2)
	m.Wobble.SetTarget(motion.Pt(nx*m.Params.Offset, ny*m.Params.Offset))

	publishTarget(state, m)
}

// publishTarget writes the element's centering target into shared state.
// Without an attached follower node there is nothing to center.
func publishTarget(state *components.MotionStateData, m *components.MagneticData) {
	node := state.Follower
	if !node.Alive() {
		return
	}
	center := m.Box.Center()
	half := node.Half()
	state.Target = motion.Pt(center.X-half.X, center.Y-half.Y)
}

// republishOwner re-derives the owner's target, e.g. while the follower resizes.
func republishOwner(e *ecs.ECS, state *components.MotionStateData) {
	entry, ok := ClaimOwner(e)
	if !ok || !entry.HasComponent(components.Magnetic) {
		return
	}
	m := components.Magnetic.Get(entry)
	if m.State != components.MagneticActive {
		return
	}
	publishTarget(state, m)
	resync(state)
}

// indicatorSize is the follower size an element asks for while it holds the claim.
func indicatorSize(m *components.MagneticData) (float64, float64) {
	scale := m.Params.Scale
	if scale <= 0 {
		scale = 1
	}
	k := scale * cfg.Magnetic.IndicatorScale
	return m.Box.W * k, m.Box.H * k
}
