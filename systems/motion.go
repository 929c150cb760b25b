package systems

import (
	"github.com/automoto/magnetcursor/components"
	"github.com/automoto/magnetcursor/motion"
	"github.com/automoto/magnetcursor/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateMotionState returns the scene's shared motion state, creating it if needed
func GetOrCreateMotionState(e *ecs.ECS) *components.MotionStateData {
	entry, ok := components.MotionState.First(e.World)
	if !ok {
		entry = factory.CreateMotionState(e)
	}
	return components.MotionState.Get(entry)
}

// UpdateFrames runs one animation frame: every interpolator that asked for
// a frame steps exactly once. Must run AFTER pointer delivery so targets
// set by this tick's events are rendered this tick.
func UpdateFrames(e *ecs.ECS) {
	state := GetOrCreateMotionState(e)
	if state.Frames == nil {
		return
	}
	state.Frames.Tick()
}

// resync forces the follower to re-evaluate its target. Missing follower = no-op.
func resync(state *components.MotionStateData) {
	resyncTo(state, nil)
}

// resyncTo is resync with an optional new pointer position. Without a
// follower the position is still recorded for when one mounts.
func resyncTo(state *components.MotionStateData, p *motion.Point) {
	if state.Resync == nil {
		if p != nil {
			state.Pointer = motion.Sanitize(*p)
			state.HasPointer = true
		}
		return
	}
	state.Resync.Resync(p)
}
