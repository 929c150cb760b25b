package components

import (
	"github.com/automoto/magnetcursor/motion"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// FollowerNode is the indicator's visual handle. The interpolator writes
// X/Y directly; renderers only read it.
type FollowerNode struct {
	X, Y          float64 // Top-left corner
	Width, Height float64 // Current rendered size
	attached      bool
}

// NewFollowerNode returns an attached node of the given size at the origin.
func NewFollowerNode(width, height float64) *FollowerNode {
	return &FollowerNode{Width: width, Height: height, attached: true}
}

func (n *FollowerNode) Alive() bool {
	return n != nil && n.attached
}

func (n *FollowerNode) Move(p motion.Point) {
	n.X, n.Y = p.X, p.Y
}

// Detach marks the node as gone; interpolators stop writing to it.
func (n *FollowerNode) Detach() {
	n.attached = false
}

// Half returns half the current rendered size.
func (n *FollowerNode) Half() motion.Point {
	return motion.Pt(n.Width/2, n.Height/2)
}

// SizeTween animates the indicator's width and height.
type SizeTween struct {
	Width  *gween.Tween
	Height *gween.Tween
	ToW    float64
	ToH    float64
}

// FollowerData owns the indicator: its node, its interpolator, and the
// size it returns to when no element holds the claim.
type FollowerData struct {
	Node       *FollowerNode
	Motion     *motion.Interpolator
	RestWidth  float64
	RestHeight float64
	Resize     *SizeTween // nil when the size is settled
	Listener   ListenerID // Pointer-move subscription; zero once removed
}

var Follower = donburi.NewComponentType[FollowerData]()
