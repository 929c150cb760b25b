package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical keyboard action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionToggleDebug
	ActionResetCursor
	ActionRemoveHovered
	ActionRespawn
	ActionQuit
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the keys bound to an action
type InputBinding struct {
	Keys []ebiten.Key
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// Mouse button that counts as the pointer being down
	PointerButton ebiten.MouseButton
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		PointerButton: ebiten.MouseButtonLeft,
		Bindings: map[ActionID]InputBinding{
			ActionToggleDebug: {
				Keys: []ebiten.Key{ebiten.KeyF3},
			},
			ActionResetCursor: {
				Keys: []ebiten.Key{ebiten.KeyR},
			},
			ActionRemoveHovered: {
				Keys: []ebiten.Key{ebiten.KeyDelete, ebiten.KeyBackspace},
			},
			ActionRespawn: {
				Keys: []ebiten.Key{ebiten.KeyN},
			},
			ActionQuit: {
				Keys: []ebiten.Key{ebiten.KeyEscape},
			},
		},
	}
}
