package systems

import (
	"log"

	"github.com/automoto/magnetcursor/components"
	cfg "github.com/automoto/magnetcursor/config"
	"github.com/automoto/magnetcursor/motion"
	"github.com/automoto/magnetcursor/systems/factory"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// followerHandle is the Resyncer the follower publishes into shared state.
type followerHandle struct {
	ecs *ecs.ECS
}

func (h followerHandle) Resync(p *motion.Point) {
	ResyncFollower(h.ecs, p)
}

// MountFollower creates the indicator, publishes its node and resync handle
// into shared state and subscribes it to pointer moves.
func MountFollower(e *ecs.ECS, speed float64) *donburi.Entry {
	state := GetOrCreateMotionState(e)
	if entry, ok := components.Follower.First(e.World); ok {
		log.Printf("Warning: follower already mounted, reusing entity %v", entry.Entity())
		return entry
	}

	entry := factory.CreateFollower(e, state.Frames, speed)
	f := components.Follower.Get(entry)
	state.Follower = f.Node
	state.Resync = followerHandle{ecs: e}

	pointer := getOrCreatePointer(e)
	f.Listener = pointer.AddMoveListener(func(p motion.Point) {
		FollowerPointerMove(e, p)
	})

	// Start on the pointer rather than gliding in from the origin.
	if state.HasPointer && !state.Claimed {
		f.Motion.Snap(centerOn(state.Pointer, f.Node))
	}
	ResyncFollower(e, nil)
	return entry
}

// UnmountFollower removes the pointer subscription exactly once, stops the
// interpolator and withdraws the follower's handles from shared state.
func UnmountFollower(e *ecs.ECS) {
	entry, ok := components.Follower.First(e.World)
	if !ok {
		return
	}
	f := components.Follower.Get(entry)
	if f.Listener != 0 {
		if pointer, ok := getPointer(e); ok {
			pointer.RemoveMoveListener(f.Listener)
		}
		f.Listener = 0
	}
	f.Motion.Stop()
	f.Node.Detach()
	f.Resize = nil

	state := GetOrCreateMotionState(e)
	if state.Follower == f.Node {
		state.Follower = nil
		state.Resync = nil
	}
	e.World.Remove(entry.Entity())
}

// FollowerPointerMove records the raw pointer and, while no element holds
// the claim, centers the indicator on it.
func FollowerPointerMove(e *ecs.ECS, p motion.Point) {
	state := GetOrCreateMotionState(e)
	state.Pointer = motion.Sanitize(p)
	state.HasPointer = true

	if state.Claimed && !e.World.Valid(state.Owner) {
		dropStaleClaim(e, state)
	}
	if state.Claimed {
		return
	}
	retargetFollower(e, state)
}

// ResyncFollower applies the current authority's target immediately. With
// no claim that is the pointer (p, or the last known position when p is
// nil); with a claim it is whatever the owner last published.
func ResyncFollower(e *ecs.ECS, p *motion.Point) {
	state := GetOrCreateMotionState(e)
	if p != nil {
		state.Pointer = motion.Sanitize(*p)
		state.HasPointer = true
	}
	if state.Claimed {
		if f, ok := getFollower(e); ok && f.Node.Alive() {
			f.Motion.SetTarget(state.Target)
		}
		return
	}
	retargetFollower(e, state)
}

func retargetFollower(e *ecs.ECS, state *components.MotionStateData) {
	if !state.HasPointer {
		return
	}
	f, ok := getFollower(e)
	if !ok || !f.Node.Alive() {
		return
	}
	state.Target = centerOn(state.Pointer, f.Node)
	f.Motion.SetTarget(state.Target)
}

// centerOn returns the top-left corner that centers node on p.
func centerOn(p motion.Point, node *components.FollowerNode) motion.Point {
	half := node.Half()
	return motion.Pt(p.X-half.X, p.Y-half.Y)
}

func getFollower(e *ecs.ECS) (*components.FollowerData, bool) {
	entry, ok := components.Follower.First(e.World)
	if !ok {
		return nil, false
	}
	return components.Follower.Get(entry), true
}

// SetFollowerSize starts a width/height transition toward (w, h).
func SetFollowerSize(e *ecs.ECS, w, h float64) {
	f, ok := getFollower(e)
	if !ok || !f.Node.Alive() {
		return
	}
	node := f.Node
	if f.Resize == nil && node.Width == w && node.Height == h {
		return
	}

	duration := cfg.Follower.ResizeDuration
	if duration <= 0 {
		node.Width, node.Height = w, h
		f.Resize = nil
		return
	}
	f.Resize = &components.SizeTween{
		Width:  gween.New(float32(node.Width), float32(w), float32(duration), ease.OutCubic),
		Height: gween.New(float32(node.Height), float32(h), float32(duration), ease.OutCubic),
		ToW:    w,
		ToH:    h,
	}
}

// RestoreFollowerSize returns the indicator to its resting size.
func RestoreFollowerSize(e *ecs.ECS) {
	f, ok := getFollower(e)
	if !ok {
		return
	}
	SetFollowerSize(e, f.RestWidth, f.RestHeight)
}

// FollowerResizing reports whether a size transition is in progress.
func FollowerResizing(e *ecs.ECS) bool {
	f, ok := getFollower(e)
	return ok && f.Resize != nil
}

// UpdateFollowerSize advances the size transition and keeps the indicator
// centered on its current authority while it grows or shrinks.
func UpdateFollowerSize(e *ecs.ECS) {
	f, ok := getFollower(e)
	if !ok || f.Resize == nil || !f.Node.Alive() {
		return
	}

	dt := float32(1) / float32(max(cfg.C.TPS, 1))
	w, doneW := f.Resize.Width.Update(dt)
	h, doneH := f.Resize.Height.Update(dt)
	f.Node.Width, f.Node.Height = float64(w), float64(h)
	if doneW && doneH {
		f.Node.Width, f.Node.Height = f.Resize.ToW, f.Resize.ToH
		f.Resize = nil
	}

	state := GetOrCreateMotionState(e)
	if state.Claimed {
		republishOwner(e, state)
		return
	}
	retargetFollower(e, state)
}
