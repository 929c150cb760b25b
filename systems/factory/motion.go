package factory

import (
	"github.com/automoto/magnetcursor/archetypes"
	"github.com/automoto/magnetcursor/components"
	"github.com/automoto/magnetcursor/motion"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateMotionState spawns the scene's shared motion state with a fresh frame queue.
func CreateMotionState(ecs *ecs.ECS) *donburi.Entry {
	state := archetypes.MotionState.Spawn(ecs)
	components.MotionState.SetValue(state, components.MotionStateData{
		Frames: motion.NewScheduler(),
	})
	return state
}

// CreatePointer spawns the pointer tracker reading from src.
func CreatePointer(ecs *ecs.ECS, src components.PointerSource) *donburi.Entry {
	pointer := archetypes.Pointer.Spawn(ecs)
	components.Pointer.SetValue(pointer, components.PointerData{Source: src})
	return pointer
}
