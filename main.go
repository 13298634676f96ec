package main

import (
	"flag"
	"os"
	"time"

	"forage/config"
	"forage/experiments"
	"forage/game"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (defaults apply when empty)")
	agentKind := flag.String("agent", string(experiments.Expectimax), "Forager agent: expectimax or qlearning")
	episodes := flag.Int("episodes", 1, "Number of episodes to play")
	seed := flag.Uint64("seed", 0, "Seed for the first episode (overrides the config when set)")
	out := flag.String("out", "", "Directory for game and turn records (nothing is written when empty)")
	verbose := flag.Bool("v", false, "Log every search and weather cycle")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}
		cfg = loaded
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	kind, err := experiments.ParseKind(*agentKind)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid agent")
	}

	result, err := experiments.Run(cfg, kind, *episodes)
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}

	victories := 0
	for _, g := range result.Games {
		if g.Outcome == game.Victory.String() {
			victories++
		}
	}
	log.Info().Msgf("%d of %d episodes won", victories, len(result.Games))

	if *out == "" {
		return
	}
	dir, err := experiments.Save(result, *out, kind)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to store records")
	}
	log.Info().Msgf("records stored in %s", dir)
}
