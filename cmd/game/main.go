package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/Fire-Sense/internal/config"
	"github.com/Garsondee/Fire-Sense/internal/engine"
	"github.com/Garsondee/Fire-Sense/internal/game"
	"github.com/Garsondee/Fire-Sense/internal/logging"
)

func main() {
	var cfgFile string
	var levelArg string
	var seed int64
	var mute bool

	flag.StringVar(&cfgFile, "config", "", "optional config file (yaml, toml or json)")
	flag.StringVar(&levelArg, "level", "", "start straight into a level (1, 2, manual, suppression)")
	flag.Int64Var(&seed, "seed", 0, "spawn RNG seed, 0 for random")
	flag.BoolVar(&mute, "mute", false, "disable audio")
	flag.Parse()

	cfg, err := config.NewLoader(cfgFile).Load()
	if err != nil {
		log.Fatal(err)
	}
	logger := logging.New("fire-sense", cfg.Log.Level, os.Stderr)

	var level engine.Level
	if levelArg != "" {
		if level, err = engine.ParseLevel(levelArg); err != nil {
			logger.Fatal("bad -level", "err", err)
		}
	}

	g := game.New(game.Config{
		Level:  level,
		Audio:  cfg.Audio.Enabled && !mute,
		Volume: cfg.Audio.Volume,
		Seed:   seed,
		Logger: logger,
	})
	w, h := g.Size()
	ebiten.SetWindowTitle("Fire Sense")
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil {
		logger.Fatal("game exited", "err", err)
	}
}
