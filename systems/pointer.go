package systems

import (
	"github.com/automoto/magnetcursor/components"
	cfg "github.com/automoto/magnetcursor/config"
	"github.com/automoto/magnetcursor/motion"
	"github.com/automoto/magnetcursor/systems/factory"
	"github.com/automoto/magnetcursor/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// EbitenPointer reads the mouse cursor through ebiten.
type EbitenPointer struct{}

func (EbitenPointer) Position() (motion.Point, bool) {
	x, y := ebiten.CursorPosition()
	if x < 0 || y < 0 || x >= cfg.C.Width || y >= cfg.C.Height {
		return motion.Point{}, false
	}
	return motion.Pt(float64(x), float64(y)), true
}

func (EbitenPointer) Down() bool {
	return ebiten.IsMouseButtonPressed(cfg.Input.PointerButton)
}

// UpdatePointer polls the pointer source and delivers move, enter, leave,
// down and up. Move listeners (the follower) hear about a move before any
// element does, so a leave in the same tick resyncs onto the new position.
func UpdatePointer(e *ecs.ECS) {
	pointer := getOrCreatePointer(e)
	if pointer.Source == nil {
		return
	}

	p, ok := pointer.Source.Position()
	down := pointer.Source.Down()
	if !ok {
		if pointer.HasHovered {
			leaveHovered(e, pointer)
		}
		releasePress(e, pointer, down)
		return
	}

	p = motion.Sanitize(p)
	moved := !pointer.HasLast || p != pointer.Last
	pointer.Last = p
	pointer.HasLast = true
	if moved {
		pointer.EmitMove(p)
	}

	hit, found := HitTest(e, p)
	switch {
	case found && pointer.HasHovered && hit == pointer.Hovered:
		if moved {
			MagneticPointerMove(e, e.World.Entry(hit), p)
		}
	default:
		if pointer.HasHovered {
			leaveHovered(e, pointer)
		}
		if found {
			pointer.Hovered = hit
			pointer.HasHovered = true
			MagneticPointerEnter(e, e.World.Entry(hit), p)
		}
	}

	if down && !pointer.Down && pointer.HasHovered {
		MagneticPointerDown(e, e.World.Entry(pointer.Hovered))
	}
	releasePress(e, pointer, down)
}

func leaveHovered(e *ecs.ECS, pointer *components.PointerData) {
	pointer.HasHovered = false
	if !e.World.Valid(pointer.Hovered) {
		return
	}
	entry := e.World.Entry(pointer.Hovered)
	if entry.HasComponent(components.Magnetic) {
		MagneticPointerLeave(e, entry)
	}
}

// releasePress delivers pointer-up to whichever element is pressed.
func releasePress(e *ecs.ECS, pointer *components.PointerData, down bool) {
	wasDown := pointer.Down
	pointer.Down = down
	if down || !wasDown {
		return
	}

	var pressed []donburi.Entity
	components.Magnetic.Each(e.World, func(entry *donburi.Entry) {
		if components.Magnetic.Get(entry).Pressed {
			pressed = append(pressed, entry.Entity())
		}
	})
	// OnClick may unmount elements, so iterate by entity and re-check.
	for _, entity := range pressed {
		if !e.World.Valid(entity) {
			continue
		}
		inside := pointer.HasHovered && pointer.Hovered == entity
		MagneticPointerUp(e, e.World.Entry(entity), inside)
	}
}

// HitTest returns the topmost magnetic element whose zone contains p.
func HitTest(e *ecs.ECS, p motion.Point) (donburi.Entity, bool) {
	var best donburi.Entity
	bestOrder := -1

	consider := func(entity donburi.Entity) {
		if !e.World.Valid(entity) {
			return
		}
		entry := e.World.Entry(entity)
		if !entry.HasComponent(components.Magnetic) {
			return
		}
		m := components.Magnetic.Get(entry)
		if m.Zone().Contains(p) && m.Order > bestOrder {
			best, bestOrder = entity, m.Order
		}
	}

	space, ok := getSpace(e)
	if !ok {
		components.Magnetic.Each(e.World, func(entry *donburi.Entry) {
			consider(entry.Entity())
		})
		return best, bestOrder >= 0
	}

	probe := space.Probe
	probe.X = clamp(p.X, 0, space.Width-1)
	probe.Y = clamp(p.Y, 0, space.Height-1)
	probe.Update()
	if check := probe.Check(0, 0, tags.ResolvMagnetic); check != nil {
		for _, obj := range check.ObjectsByTags(tags.ResolvMagnetic) {
			if ref, ok := obj.Data.(*components.ZoneRef); ok {
				consider(ref.Entity)
			}
		}
	}
	return best, bestOrder >= 0
}

func getSpace(e *ecs.ECS) (*components.SpaceData, bool) {
	entry, ok := components.Space.First(e.World)
	if !ok {
		return nil, false
	}
	space := components.Space.Get(entry)
	if space.Space == nil || space.Probe == nil {
		return nil, false
	}
	return space, true
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	return max(lo, min(hi, v))
}

func getOrCreatePointer(e *ecs.ECS) *components.PointerData {
	entry, ok := components.Pointer.First(e.World)
	if !ok {
		entry = factory.CreatePointer(e, nil)
	}
	return components.Pointer.Get(entry)
}

func getPointer(e *ecs.ECS) (*components.PointerData, bool) {
	entry, ok := components.Pointer.First(e.World)
	if !ok {
		return nil, false
	}
	return components.Pointer.Get(entry), true
}
