package main

import (
	"errors"
	"fmt"
	"image"
	"log"
	"os"

	"github.com/automoto/magnetcursor/config"
	"github.com/automoto/magnetcursor/fonts"
	"github.com/automoto/magnetcursor/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

var (
	configFile string
	debug      bool
	speed      float64
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
	quit   bool
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

// Quit ends the game loop after the current update
func (g *Game) Quit() {
	g.quit = true
}

func NewGame() (*Game, error) {
	if err := fonts.LoadDefaults(config.UI.FontSize+4, config.UI.DebugFont); err != nil {
		return nil, err
	}

	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewShowcaseScene(g)

	return g, nil
}

func (g *Game) Update() error {
	g.scene.Update()
	if g.quit {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "magnetcursor",
		Short: "smoothed cursor indicator with magnetic elements",
		RunE:  run,
	}
	rootCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "start with the debug overlay on")
	rootCmd.Flags().Float64Var(&speed, "speed", 0, "follower smoothing factor in (0, 1]")

	dumpCmd := &cobra.Command{
		Use:   "dump-config [path]",
		Short: "write the default configuration as yaml",
		Args:  cobra.MaximumNArgs(1),
		RunE:  dumpConfig,
	}
	rootCmd.AddCommand(dumpCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if configFile != "" {
		f, err := config.Load(configFile)
		switch {
		case errors.Is(err, os.ErrNotExist):
			log.Printf("Warning: config file %s not found, using defaults", configFile)
		case err != nil:
			return err
		default:
			f.Apply()
		}
	}
	if cmd.Flags().Changed("speed") {
		if speed <= 0 || speed > 1 {
			return fmt.Errorf("--speed %v: %w", speed, config.ErrSpeed)
		}
		config.Follower.Speed = speed
	}
	if debug {
		config.Debug.Overlay = true
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.C.TPS)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	game, err := NewGame()
	if err != nil {
		return err
	}
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
	return nil
}

func dumpConfig(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return config.Current().Write(cmd.OutOrStdout())
	}
	return config.Save(args[0], config.Current())
}
