package factory

import (
	"github.com/automoto/magnetcursor/archetypes"
	"github.com/automoto/magnetcursor/components"
	"github.com/automoto/magnetcursor/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	probe := resolv.NewObject(0, 0, 1, 1, tags.ResolvPointer)
	spaceData.Add(probe)
	components.Space.SetValue(space, components.SpaceData{
		Space:  spaceData,
		Width:  float64(width),
		Height: float64(height),
		Probe:  probe,
	})
	return space
}
