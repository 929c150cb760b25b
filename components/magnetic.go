package components

import (
	"github.com/automoto/magnetcursor/motion"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// MagneticState is the per-element claim state machine
type MagneticState int

const (
	MagneticIdle     MagneticState = iota
	MagneticClaiming               // Holds the claim, pointer not yet registered inside
	MagneticActive                 // Holds the claim, pointer inside
)

func (s MagneticState) String() string {
	switch s {
	case MagneticClaiming:
		return "claiming"
	case MagneticActive:
		return "active"
	default:
		return "idle"
	}
}

// MagneticParams configures one magnetic element
type MagneticParams struct {
	OuterPadding float64 // Hover zone extends this far beyond the element box
	InnerPadding float64 // Element box extends this far beyond the content
	Offset       float64 // Max wobble displacement, in pixels
	Scale        float64 // Visual scale while hovered
	Speed        float64 // Wobble smoothing factor
	OnClick      func(entry *donburi.Entry)
}

// Content is whatever a magnetic element wraps.
type Content interface {
	Size() (w, h float64)
	Draw(screen *ebiten.Image, x, y float64)
}

// WobbleNode holds the element's own displacement toward the pointer.
type WobbleNode struct {
	Offset   motion.Point
	attached bool
}

func NewWobbleNode() *WobbleNode {
	return &WobbleNode{attached: true}
}

func (n *WobbleNode) Alive() bool {
	return n != nil && n.attached
}

func (n *WobbleNode) Move(p motion.Point) {
	n.Offset = p
}

func (n *WobbleNode) Detach() {
	n.attached = false
}

// MagneticData is the per-element state, created on mount and dropped on unmount
type MagneticData struct {
	Params  MagneticParams
	State   MagneticState
	Box     motion.Rect // Element box in screen space (content + inner padding)
	Wobble  *motion.Interpolator
	Node    *WobbleNode
	Content Content
	Pressed bool // Pointer went down inside and has not been released
	Order   int  // Mount order; later mounts sit on top for hit-testing
}

// Zone returns the hover zone: the element box grown by the outer padding.
func (m *MagneticData) Zone() motion.Rect {
	return m.Box.Inset(m.Params.OuterPadding)
}

var Magnetic = donburi.NewComponentType[MagneticData]()
