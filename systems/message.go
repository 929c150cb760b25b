package systems

import (
	"github.com/automoto/magnetcursor/components"
	cfg "github.com/automoto/magnetcursor/config"
	"github.com/automoto/magnetcursor/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// ShowMessage replaces the active toast with s.
func ShowMessage(ecs *ecs.ECS, s string) {
	state := getOrCreateMessageState(ecs)
	state.Text = s
	state.DisplayTimer = cfg.Message.DisplayDuration
}

// UpdateMessage counts down the active toast
func UpdateMessage(ecs *ecs.ECS) {
	state := getOrCreateMessageState(ecs)
	if state.DisplayTimer <= 0 {
		return
	}
	state.DisplayTimer--
	if state.DisplayTimer == 0 {
		state.Text = ""
	}
}

// DrawMessage renders the active toast at the top center of the screen
func DrawMessage(ecs *ecs.ECS, screen *ebiten.Image) {
	state := getOrCreateMessageState(ecs)
	if state.Text == "" || !fonts.Loaded(fonts.Bold) {
		return
	}
	face := fonts.Bold.Get()

	bounds := text.BoundString(face, state.Text) //nolint:staticcheck // TODO: migrate to text/v2
	textWidth := bounds.Dx()
	textHeight := bounds.Dy()

	padding := cfg.Message.BoxPadding
	boxWidth := float32(textWidth) + float32(padding)*2
	boxHeight := float32(textHeight) + float32(padding)*2

	screenWidth := float64(screen.Bounds().Dx())
	boxX := float32((screenWidth - float64(boxWidth)) / 2)
	boxY := float32(cfg.Message.TopMargin)

	vector.FillRect(screen, boxX, boxY, boxWidth, boxHeight, cfg.Message.BoxColor, false)

	textX := int(boxX + float32(padding))
	textY := int(boxY + float32(padding) + float32(textHeight))
	text.Draw(screen, state.Text, face, textX, textY, cfg.Message.TextColor) //nolint:staticcheck // TODO: migrate to text/v2
}

// ResetMessageState clears the active toast
func ResetMessageState(ecs *ecs.ECS) {
	state := getOrCreateMessageState(ecs)
	state.Text = ""
	state.DisplayTimer = 0
}

// getOrCreateMessageState returns the singleton MessageState component
func getOrCreateMessageState(ecs *ecs.ECS) *components.MessageStateData {
	entry, ok := components.MessageState.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.MessageState))
	}
	return components.MessageState.Get(entry)
}
