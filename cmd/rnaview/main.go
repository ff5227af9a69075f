//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"rnalattice/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	game := app.New(cfg.XSize, cfg.YSize, cfg.ZSize, cfg.Density, cfg.BondEvery, cfg.Scale, cfg.HUDWidth, cfg.Seed, cfg.MovesPerSec)

	ebiten.SetWindowTitle("rnalattice")
	ebiten.SetWindowSize(cfg.XSize*cfg.Scale+cfg.HUDWidth, cfg.YSize*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
