package tags

import "github.com/yohamta/donburi"

var (
	Follower = donburi.NewTag().SetName("Follower")
	Magnetic = donburi.NewTag().SetName("Magnetic")
)

// Resolv tags for hit-testing
const (
	ResolvMagnetic = "magnetic"
	ResolvPointer  = "pointer"
)
