package archetypes

import (
	"github.com/automoto/magnetcursor/components"
	cfg "github.com/automoto/magnetcursor/config"
	"github.com/automoto/magnetcursor/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	MotionState = newArchetype(
		components.MotionState,
	)
	Pointer = newArchetype(
		components.Pointer,
	)
	Input = newArchetype(
		components.Input,
	)
	Space = newArchetype(
		components.Space,
	)
	Follower = newArchetype(
		tags.Follower,
		components.Follower,
	)
	Magnetic = newArchetype(
		tags.Magnetic,
		components.Magnetic,
		components.Object,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
