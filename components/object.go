package components

import (
	"github.com/automoto/magnetcursor/motion"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is an entity's hit zone in the resolv space
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// ZoneRef is the Data of a magnetic zone's resolv object. It outlives the
// entity so a zone left behind by a raw World.Remove can still be cleaned up.
type ZoneRef struct {
	Entity donburi.Entity
	Wobble *motion.Interpolator
	Node   *WobbleNode
}

// SpaceData is the resolv space magnetic zones are registered in
type SpaceData struct {
	*resolv.Space
	Width, Height float64        // Space bounds in pixels
	Probe         *resolv.Object // 1x1 object moved to the pointer for queries
}

var Space = donburi.NewComponentType[SpaceData]()
