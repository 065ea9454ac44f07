package main

import (
	"log"
	"strconv"
	"strings"
	"time"

	"wireworld/internal/core"
	"wireworld/internal/sims/wireworld"
	"wireworld/internal/tui"

	"github.com/integrii/flaggy"
)

func main() {
	cfg := wireworld.DefaultConfig()
	cfg.Width, cfg.Height = 60, 20
	interval := 100 * time.Millisecond

	flaggy.SetName("wireworld-tui")
	flaggy.SetDescription("Wireworld cellular automaton in the terminal")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.Int(&cfg.Width, "w", "width", "Width of the grid in cells")
	flaggy.Int(&cfg.Height, "y", "height", "Height of the grid in cells")
	flaggy.String(&cfg.Preset, "p", "preset", "Initial pattern ["+strings.Join(wireworld.PresetNames(), "|")+"]")
	flaggy.Duration(&interval, "i", "interval", "Interval between generations while running, for example 150ms")
	flaggy.Int64(&cfg.Seed, "s", "seed", "Seed for the random preset")
	flaggy.Parse()

	if _, ok := wireworld.Presets()[cfg.Preset]; !ok {
		flaggy.ShowHelpAndExit("unknown preset " + strconv.Quote(cfg.Preset))
	}

	factory, ok := core.Sims()["wireworld"]
	if !ok {
		log.Fatal("wireworld sim not registered")
	}
	sim, err := factory(map[string]string{
		"w":      strconv.Itoa(cfg.Width),
		"h":      strconv.Itoa(cfg.Height),
		"preset": cfg.Preset,
		"seed":   strconv.FormatInt(cfg.Seed, 10),
	})
	if err != nil {
		log.Fatalf("create wireworld: %v", err)
	}

	ui, err := tui.New(sim, tui.Options{Interval: interval, Seed: cfg.Seed})
	if err != nil {
		log.Fatal(err)
	}
	if err := ui.Start(); err != nil {
		log.Fatal(err)
	}
}
