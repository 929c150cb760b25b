package factory

import (
	"github.com/automoto/magnetcursor/archetypes"
	"github.com/automoto/magnetcursor/components"
	cfg "github.com/automoto/magnetcursor/config"
	"github.com/automoto/magnetcursor/motion"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateFollower spawns the indicator entity with its node and interpolator.
// frames may be nil for an indicator that is only stepped by hand.
func CreateFollower(ecs *ecs.ECS, frames *motion.Scheduler, speed float64) *donburi.Entry {
	follower := archetypes.Follower.Spawn(ecs)

	node := components.NewFollowerNode(cfg.Follower.Width, cfg.Follower.Height)
	ip := motion.NewInterpolator(frames, node, speed)
	ip.Epsilon = cfg.Motion.Epsilon

	components.Follower.SetValue(follower, components.FollowerData{
		Node:       node,
		Motion:     ip,
		RestWidth:  cfg.Follower.Width,
		RestHeight: cfg.Follower.Height,
	})
	return follower
}
