package scenes

import (
	"sync"

	"github.com/automoto/magnetcursor/components"
	cfg "github.com/automoto/magnetcursor/config"
	"github.com/automoto/magnetcursor/fonts"
	"github.com/automoto/magnetcursor/systems"
	"github.com/automoto/magnetcursor/systems/factory"
	"github.com/automoto/magnetcursor/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// removableLabel marks the element that unmounts itself when clicked.
const removableLabel = "Remove me"

// ShowcaseScene is a grid of magnetic labels under a shared cursor indicator.
type ShowcaseScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	status       *ui.StatusUI
	once         sync.Once
}

func NewShowcaseScene(sc SceneChanger) *ShowcaseScene {
	return &ShowcaseScene{sceneChanger: sc}
}

func (ss *ShowcaseScene) Update() {
	ss.once.Do(ss.configure)
	ss.ecs.Update()
	ss.status.Update()
}

func (ss *ShowcaseScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Showcase.Background)

	if ss.ecs == nil {
		return
	}
	ss.ecs.Draw(screen)
	ss.status.Draw(screen)
}

func (ss *ShowcaseScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Pointer delivery happens before frames run so every target set this
	// tick is stepped and drawn this tick.
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.NewUpdateShortcuts(systems.Shortcuts{
		OnRespawn: ss.respawn,
		OnQuit:    ss.sceneChanger.Quit,
	}))
	ecs.AddSystem(systems.UpdatePointer)
	ecs.AddSystem(systems.UpdateFollowerSize)
	ecs.AddSystem(systems.UpdateFrames)
	ecs.AddSystem(systems.UpdateMessage)

	ecs.AddRenderer(cfg.Default, systems.DrawMagnetics)
	ecs.AddRenderer(cfg.Default, systems.DrawFollower)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawMessage)

	ss.ecs = ecs

	factory.CreateSpace(ecs, cfg.C.Width, cfg.C.Height, cfg.Space.CellWidth, cfg.Space.CellHeight)
	systems.GetOrCreateMotionState(ecs)
	factory.CreatePointer(ecs, systems.EbitenPointer{})

	ss.spawnElements()
	systems.MountFollower(ecs, cfg.Follower.Speed)

	ss.status = ui.NewStatusUI(ecs, ss.removeLast, ss.reset, ss.respawn)
}

func (ss *ShowcaseScene) spawnElements() {
	labels := cfg.Showcase.Labels
	cells := GridCells(len(labels), cfg.Showcase.Columns,
		cfg.Showcase.CellWidth, cfg.Showcase.CellHeight, cfg.Showcase.Gap,
		cfg.Showcase.TopY, float64(cfg.C.Width))

	face := fonts.Regular.Get()
	for i, label := range labels {
		content := ui.NewTextContent(label, face, cfg.Magnetic.TextColor)
		w, h := content.Size()

		params := factory.DefaultMagneticParams()
		if label == removableLabel {
			params.OnClick = func(entry *donburi.Entry) {
				systems.UnmountMagnetic(ss.ecs, entry)
				systems.ShowMessage(ss.ecs, "Removed "+label)
			}
		} else {
			params.OnClick = func(*donburi.Entry) {
				systems.ShowMessage(ss.ecs, "Clicked "+label)
			}
		}
		systems.MountMagnetic(ss.ecs, cells[i].X-w/2, cells[i].Y-h/2, content, params)
	}
}

func (ss *ShowcaseScene) removeLast() {
	if systems.RemoveNewestMagnetic(ss.ecs) {
		systems.ShowMessage(ss.ecs, "Removed last element")
	}
}

func (ss *ShowcaseScene) reset() {
	systems.ForceResetMouse(ss.ecs, nil)
	systems.ShowMessage(ss.ecs, "Cursor reset")
}

// respawn unmounts every element and lays the grid out again.
func (ss *ShowcaseScene) respawn() {
	var entities []donburi.Entity
	components.Magnetic.Each(ss.ecs.World, func(entry *donburi.Entry) {
		entities = append(entities, entry.Entity())
	})
	for _, entity := range entities {
		if ss.ecs.World.Valid(entity) {
			systems.UnmountMagnetic(ss.ecs, ss.ecs.World.Entry(entity))
		}
	}
	ss.spawnElements()
	systems.ShowMessage(ss.ecs, "Respawned")
}
