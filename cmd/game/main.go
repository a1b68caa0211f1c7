package main

import (
	"flag"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"

	"github.com/Garsondee/Ghost-Lanes/internal/config"
	"github.com/Garsondee/Ghost-Lanes/internal/game"
	"github.com/Garsondee/Ghost-Lanes/internal/logging"
)

func main() {
	var configPath string
	var seed int64
	flag.StringVar(&configPath, "config", "", "path to a ghostlanes TOML file")
	flag.Int64Var(&seed, "seed", 0, "puzzle seed (0 = time based)")
	flag.Parse()

	logger := logging.ConfigureRuntime("ghost-lanes")

	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", configPath).Msg("config")
		}
		cfg = loaded
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}

	g := game.New(cfg, logger)
	ebiten.SetWindowTitle("Ghost Lanes")
	ebiten.SetWindowSize(g.WindowSize())
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal().Err(err).Msg("run game")
	}
}
