//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"wireworld/internal/app"
	"wireworld/internal/core"
	_ "wireworld/internal/sims/wireworld"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}

	sim, err := factory(cfg.SimOptions())
	if err != nil {
		log.Fatalf("create %s: %v", cfg.Sim, err)
	}

	game := app.New(sim, cfg)
	size := sim.Size()
	log.Printf("%s: %dx%d cells, %d generations/s", sim.Name(), size.W, size.H, cfg.Steps)

	ebiten.SetWindowTitle(sim.Name() + " — " + cfg.Preset)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(game.WindowSize())

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
