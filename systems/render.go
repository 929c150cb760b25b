package systems

import (
	"sort"

	"github.com/automoto/magnetcursor/components"
	cfg "github.com/automoto/magnetcursor/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice to avoid allocating every frame
var drawOrder []*components.MagneticData

// DrawMagnetics renders every magnetic element in mount order. An active
// element is scaled around its center and displaced by its wobble.
func DrawMagnetics(ecs *ecs.ECS, screen *ebiten.Image) {
	drawOrder = drawOrder[:0]
	components.Magnetic.Each(ecs.World, func(e *donburi.Entry) {
		drawOrder = append(drawOrder, components.Magnetic.Get(e))
	})
	sort.Slice(drawOrder, func(i, j int) bool {
		return drawOrder[i].Order < drawOrder[j].Order
	})

	for _, m := range drawOrder {
		drawMagnetic(screen, m)
	}
}

func drawMagnetic(screen *ebiten.Image, m *components.MagneticData) {
	box := m.Box
	fill := cfg.Magnetic.Color
	if m.State != components.MagneticIdle {
		fill = cfg.Magnetic.HoverColor
		if m.Params.Scale > 0 {
			c := box.Center()
			box.W *= m.Params.Scale
			box.H *= m.Params.Scale
			box.X = c.X - box.W/2
			box.Y = c.Y - box.H/2
		}
	}
	off := m.Node.Offset
	x, y := float32(box.X+off.X), float32(box.Y+off.Y)

	vector.FillRect(screen, x, y, float32(box.W), float32(box.H), fill, false)
	vector.StrokeRect(screen, x, y, float32(box.W), float32(box.H), float32(cfg.Magnetic.CornerInset), cfg.Magnetic.TextColor, false)

	if m.Content == nil {
		return
	}
	w, h := m.Content.Size()
	c := box.Center()
	m.Content.Draw(screen, c.X-w/2+off.X, c.Y-h/2+off.Y)
}

// DrawFollower renders the indicator from its node. Nothing is drawn once
// the node is detached.
func DrawFollower(ecs *ecs.ECS, screen *ebiten.Image) {
	f, ok := getFollower(ecs)
	if !ok || !f.Node.Alive() {
		return
	}
	node := f.Node
	state := GetOrCreateMotionState(ecs)

	if state.Claimed {
		vector.FillRect(screen, float32(node.X), float32(node.Y), float32(node.Width), float32(node.Height), cfg.Follower.ClaimedColor, false)
		vector.StrokeRect(screen, float32(node.X), float32(node.Y), float32(node.Width), float32(node.Height), 1, cfg.Follower.OutlineColor, false)
		return
	}

	r := min(node.Width, node.Height) / 2
	cx := node.X + node.Width/2
	cy := node.Y + node.Height/2
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(r), cfg.Follower.Color, true)
}
