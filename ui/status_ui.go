package ui

import (
	"bytes"
	"fmt"

	cfg "github.com/automoto/magnetcursor/config"
	"github.com/automoto/magnetcursor/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font/gofont/goregular"
)

// StatusUI is the corner panel showing who the cursor follows, with
// buttons to reset the cursor and respawn the elements.
type StatusUI struct {
	UI  *ebitenui.UI
	ECS *ecs.ECS

	// Callbacks
	OnRemove  func()
	OnReset   func()
	OnRespawn func()

	followLabel   *widget.Label
	targetLabel   *widget.Label
	elementsLabel *widget.Label
	hintLabel     *widget.Label

	normalFace text.Face
	smallFace  text.Face
}

// NewStatusUI creates the status panel for the scene's world.
func NewStatusUI(e *ecs.ECS, onRemove, onReset, onRespawn func()) *StatusUI {
	sui := &StatusUI{
		ECS:       e,
		OnRemove:  onRemove,
		OnReset:   onReset,
		OnRespawn: onRespawn,
	}

	sui.loadFonts()
	sui.buildUI()

	return sui
}

func (sui *StatusUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	sui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   cfg.UI.FontSize,
	}
	sui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   cfg.UI.DebugFont,
	}
}

func (sui *StatusUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.UI.PanelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(4),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)

	sui.followLabel = widget.NewLabel(
		widget.LabelOpts.Text("following: pointer", &sui.normalFace, &widget.LabelColor{
			Idle: cfg.UI.LabelColor,
		}),
	)
	panel.AddChild(sui.followLabel)

	sui.targetLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &sui.smallFace, &widget.LabelColor{
			Idle: cfg.UI.HintColor,
		}),
	)
	panel.AddChild(sui.targetLabel)

	sui.elementsLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &sui.smallFace, &widget.LabelColor{
			Idle: cfg.UI.HintColor,
		}),
	)
	panel.AddChild(sui.elementsLabel)

	panel.AddChild(sui.buildButtonsContainer())

	sui.hintLabel = widget.NewLabel(
		widget.LabelOpts.Text("F3 debug  R reset  Del remove  N respawn", &sui.smallFace, &widget.LabelColor{
			Idle: cfg.UI.HintColor,
		}),
	)
	panel.AddChild(sui.hintLabel)

	rootContainer.AddChild(panel)

	sui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (sui *StatusUI) buildButtonsContainer() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)

	removeButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(110, 22)),
		widget.ButtonOpts.Image(sui.buttonImage()),
		widget.ButtonOpts.Text("Remove last", &sui.normalFace, sui.buttonTextColor()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if sui.OnRemove != nil {
				sui.OnRemove()
			}
		}),
	)
	container.AddChild(removeButton)

	resetButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(80, 22)),
		widget.ButtonOpts.Image(sui.buttonImage()),
		widget.ButtonOpts.Text("Reset", &sui.normalFace, sui.buttonTextColor()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if sui.OnReset != nil {
				sui.OnReset()
			}
		}),
	)
	container.AddChild(resetButton)

	respawnButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(80, 22)),
		widget.ButtonOpts.Image(sui.buttonImage()),
		widget.ButtonOpts.Text("Respawn", &sui.normalFace, sui.buttonTextColor()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if sui.OnRespawn != nil {
				sui.OnRespawn()
			}
		}),
	)
	container.AddChild(respawnButton)

	return container
}

func (sui *StatusUI) buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(cfg.UI.ButtonColor),
		Hover:    image.NewNineSliceColor(cfg.UI.ButtonHover),
		Pressed:  image.NewNineSliceColor(cfg.UI.ButtonPress),
		Disabled: image.NewNineSliceColor(cfg.UI.ButtonPress),
	}
}

func (sui *StatusUI) buttonTextColor() *widget.ButtonTextColor {
	return &widget.ButtonTextColor{
		Idle:    cfg.UI.LabelColor,
		Hover:   cfg.UI.LabelColor,
		Pressed: cfg.UI.HintColor,
	}
}

// UpdateUI refreshes the labels from the world.
func (sui *StatusUI) UpdateUI() {
	status := systems.Snapshot(sui.ECS)

	if sui.followLabel != nil {
		sui.followLabel.Label = status.String()
	}
	if sui.targetLabel != nil {
		sui.targetLabel.Label = fmt.Sprintf("target: %.1f, %.1f  frames: %d", status.Target.X, status.Target.Y, status.Pending)
	}
	if sui.elementsLabel != nil {
		state := "idle"
		switch {
		case !status.Mounted:
			state = "unmounted"
		case status.Moving:
			state = "moving"
		}
		sui.elementsLabel.Label = fmt.Sprintf("elements: %d  indicator: %s", status.Elements, state)
	}
}

// Update calls the UI's Update method and refreshes the labels
func (sui *StatusUI) Update() {
	sui.UI.Update()
	sui.UpdateUI()
}

func (sui *StatusUI) Draw(screen *ebiten.Image) {
	sui.UI.Draw(screen)
}
