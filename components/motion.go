package components

import (
	"github.com/automoto/magnetcursor/motion"
	"github.com/yohamta/donburi"
)

// Resyncer forces the follower to re-evaluate its target right now,
// outside the normal pointer-event cadence. Calls are synchronous: by the
// time Resync returns the follower's interpolator already chases the new
// target. A nil point re-uses the last known pointer position.
type Resyncer interface {
	Resync(p *motion.Point)
}

// MotionStateData is the page-wide state shared by the follower and every
// magnetic element. Exactly one instance lives per scene.
type MotionStateData struct {
	Target motion.Point // Where the follower is heading

	Pointer    motion.Point // Last raw pointer position
	HasPointer bool         // False until the first pointer event

	Claimed bool           // A magnetic element owns Target
	Owner   donburi.Entity // Claim holder; meaningful only while Claimed

	Follower *FollowerNode     // Written once by the follower on mount
	Resync   Resyncer          // Exposed by the follower on mount
	Frames   *motion.Scheduler // Animation-frame queue every interpolator uses
}

// OwnedBy reports whether entity currently holds the claim.
func (m *MotionStateData) OwnedBy(entity donburi.Entity) bool {
	return m.Claimed && m.Owner == entity
}

var MotionState = donburi.NewComponentType[MotionStateData]()
