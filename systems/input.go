package systems

import (
	"github.com/automoto/magnetcursor/components"
	cfg "github.com/automoto/magnetcursor/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput polls keyboard shortcuts and updates the InputComponent.
// Must run BEFORE UpdateShortcuts in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
	}
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// Shortcuts are the scene-level callbacks keyboard actions can trigger
type Shortcuts struct {
	OnRespawn func()
	OnQuit    func()
}

// NewUpdateShortcuts creates the system that maps keyboard actions to cursor operations
func NewUpdateShortcuts(sc Shortcuts) ecs.System {
	return func(e *ecs.ECS) {
		input := getOrCreateInput(e)

		if GetAction(input, cfg.ActionToggleDebug).JustPressed {
			cfg.Debug.Overlay = !cfg.Debug.Overlay
		}
		if GetAction(input, cfg.ActionResetCursor).JustPressed {
			ForceResetMouse(e, nil)
			ShowMessage(e, "Cursor reset")
		}
		if GetAction(input, cfg.ActionRemoveHovered).JustPressed {
			if owner, ok := ClaimOwner(e); ok {
				name := describe(owner)
				RemoveClaimOwner(e)
				ShowMessage(e, "Removed "+name)
			}
		}
		if GetAction(input, cfg.ActionRespawn).JustPressed && sc.OnRespawn != nil {
			sc.OnRespawn()
		}
		if GetAction(input, cfg.ActionQuit).JustPressed && sc.OnQuit != nil {
			sc.OnQuit()
		}
	}
}
