package main

import (
	"errors"
	"flag"
	"os"

	"github.com/automoto/castlecrush/assets"
	"github.com/automoto/castlecrush/config"
	"github.com/automoto/castlecrush/fonts"
	"github.com/automoto/castlecrush/scenes"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
	Layout(outsideWidth, outsideHeight int) (int, int)
}

type Game struct {
	scene Scene
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return g.scene.Layout(width, height)
}

func main() {
	castle := flag.String("castle", "castle", "embedded castle layout to load; empty uses the built-in layout")
	ammo := flag.Int("ammo", 0, "shots per round (0 keeps the default)")
	level := flag.String("log-level", "info", "log level: debug, info, warn, error")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})
	if lvl, err := log.ParseLevel(*level); err == nil {
		logger.SetLevel(lvl)
	} else {
		logger.Warn("unknown log level, using info", "level", *level)
	}

	if err := fonts.LoadDefaults(); err != nil {
		logger.Warn("falling back to debug text", "err", err)
	}

	cfg := config.Default()
	if *ammo > 0 {
		cfg.Cannon.Ammo = *ammo
	}
	if *castle != "" {
		data, err := assets.LoadCastle(*castle)
		if err != nil {
			names, _ := assets.CastleNames()
			logger.Fatal("loading castle", "err", err, "available", names)
		}
		data.Apply(&cfg.Castle)
	}

	scene, err := scenes.NewCastleScene(cfg, logger)
	if err != nil {
		logger.Fatal("starting round", "err", err)
	}

	ebiten.SetWindowSize(cfg.Screen.Width, cfg.Screen.Height)
	ebiten.SetWindowTitle(cfg.Screen.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(&Game{scene: scene}); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal("game exited", "err", err)
	}
}
