package factory

import (
	"github.com/automoto/magnetcursor/archetypes"
	"github.com/automoto/magnetcursor/components"
	cfg "github.com/automoto/magnetcursor/config"
	"github.com/automoto/magnetcursor/motion"
	"github.com/automoto/magnetcursor/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var mountOrder int

// DefaultMagneticParams returns the configured element defaults.
func DefaultMagneticParams() components.MagneticParams {
	return components.MagneticParams{
		OuterPadding: cfg.Magnetic.OuterPadding,
		InnerPadding: cfg.Magnetic.InnerPadding,
		Offset:       cfg.Magnetic.Offset,
		Scale:        cfg.Magnetic.Scale,
		Speed:        cfg.Magnetic.Speed,
	}
}

// CreateMagnetic spawns a magnetic element whose content's top-left corner
// sits at (x, y). The element box is the content grown by InnerPadding and
// the resolv hit zone grows it again by OuterPadding.
func CreateMagnetic(ecs *ecs.ECS, frames *motion.Scheduler, x, y float64, content components.Content, params components.MagneticParams) *donburi.Entry {
	magnetic := archetypes.Magnetic.Spawn(ecs)

	var w, h float64
	if content != nil {
		w, h = content.Size()
	}
	box := motion.Rect{X: x, Y: y, W: w, H: h}.Inset(params.InnerPadding)

	node := components.NewWobbleNode()
	wobble := motion.NewInterpolator(frames, node, params.Speed)
	wobble.Epsilon = cfg.Motion.Epsilon

	mountOrder++
	data := components.MagneticData{
		Params:  params,
		Box:     box,
		Wobble:  wobble,
		Node:    node,
		Content: content,
		Order:   mountOrder,
	}
	components.Magnetic.SetValue(magnetic, data)

	// One pixel larger so the far edges, which count as inside, share a
	// cell with the probe.
	zone := data.Zone()
	object := resolv.NewObject(zone.X, zone.Y, zone.W+1, zone.H+1, tags.ResolvMagnetic)
	object.Data = &components.ZoneRef{
		Entity: magnetic.Entity(),
		Wobble: wobble,
		Node:   node,
	}
	components.Object.SetValue(magnetic, components.ObjectData{Object: object})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(object)
	}

	return magnetic
}
