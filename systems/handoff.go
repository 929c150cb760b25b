package systems

import (
	"log"

	"github.com/automoto/magnetcursor/components"
	"github.com/automoto/magnetcursor/motion"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Only the claim owner writes MotionStateData.Target while Claimed is set;
// otherwise only the follower does. Every function here that changes who
// may write is paired with a synchronous resync by its caller or itself, so
// no frame runs with a target that belongs to the previous writer.

// ClaimTarget hands the shared target to entry. A previous owner is demoted
// to Idle first, so at most one element ever holds the claim. The caller
// publishes its target and resyncs in the same step.
func ClaimTarget(e *ecs.ECS, entry *donburi.Entry) {
	state := GetOrCreateMotionState(e)
	entity := entry.Entity()
	if state.Claimed && state.Owner != entity {
		demote(e, state.Owner)
	}
	state.Claimed = true
	state.Owner = entity
}

// ReleaseTarget drops entity's claim and resyncs the follower onto the raw
// pointer. It reports false, and does nothing, if entity was not the owner.
func ReleaseTarget(e *ecs.ECS, entity donburi.Entity) bool {
	state := GetOrCreateMotionState(e)
	if !state.OwnedBy(entity) {
		return false
	}
	state.Claimed = false
	resync(state)
	return true
}

// ForceResetMouse clears any claim without waiting for a leave event, puts
// the indicator back to its resting size and resyncs it onto the pointer:
// p when given, otherwise the last known position. Use it after removing a
// magnetic element by any path other than UnmountMagnetic; zones left in
// the space by such a removal are swept.
func ForceResetMouse(e *ecs.ECS, p *motion.Point) {
	state := GetOrCreateMotionState(e)
	if state.Claimed {
		demote(e, state.Owner)
		state.Claimed = false
	}
	if pointer, ok := getPointer(e); ok {
		pointer.HasHovered = false
	}
	SweepOrphanedZones(e)
	RestoreFollowerSize(e)
	resyncTo(state, p)
}

// dropStaleClaim releases a claim whose owner entity no longer exists.
func dropStaleClaim(e *ecs.ECS, state *components.MotionStateData) {
	log.Printf("Warning: dropping stale claim held by removed entity %v", state.Owner)
	state.Claimed = false
	SweepOrphanedZones(e)
	RestoreFollowerSize(e)
}

// SweepOrphanedZones removes hit zones whose element was removed without
// UnmountMagnetic and stops their wobble. It returns how many it removed.
func SweepOrphanedZones(e *ecs.ECS) int {
	space, ok := getSpace(e)
	if !ok {
		return 0
	}
	var orphans []*resolv.Object
	for _, obj := range space.Objects() {
		ref, ok := obj.Data.(*components.ZoneRef)
		if !ok || e.World.Valid(ref.Entity) {
			continue
		}
		orphans = append(orphans, obj)
	}
	for _, obj := range orphans {
		ref := obj.Data.(*components.ZoneRef)
		ref.Wobble.Stop()
		ref.Node.Detach()
		space.Remove(obj)
	}
	return len(orphans)
}

// demote resets a (possibly already removed) element to Idle.
func demote(e *ecs.ECS, entity donburi.Entity) {
	if !e.World.Valid(entity) {
		return
	}
	entry := e.World.Entry(entity)
	if !entry.HasComponent(components.Magnetic) {
		return
	}
	m := components.Magnetic.Get(entry)
	m.State = components.MagneticIdle
	m.Pressed = false
	m.Wobble.SetTarget(motion.Point{})
}

// ClaimOwner returns the element holding the claim, if any.
func ClaimOwner(e *ecs.ECS) (*donburi.Entry, bool) {
	state := GetOrCreateMotionState(e)
	if !state.Claimed || !e.World.Valid(state.Owner) {
		return nil, false
	}
	return e.World.Entry(state.Owner), true
}
