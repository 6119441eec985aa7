package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"time"

	"penguins/experiments"
	"penguins/experiments/metrics"
	"penguins/searcher"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	duration := flag.Duration("time", time.Second, "Search time per move, 0 to rely on -iterations")
	iterations := flag.Int("iterations", 0, "Maximum search cycles per move, 0 for no cap")
	exploration := flag.Float64("exploration", searcher.DefaultExploration, "UCB1 exploration constant, must be positive")
	evaluator := flag.String("evaluator", searcher.HeuristicEvaluator, "Leaf evaluator: heuristic or playout")
	rollouts := flag.Int("rollouts", searcher.DefaultRollouts, "Random playouts per leaf for the playout evaluator")
	squash := flag.Float64("squash", searcher.DefaultSquash, "Score difference the heuristic maps to tanh(1)")
	distances := flag.String("distances", experiments.FloodDistances, "Heuristic distances: flood, dijkstra or slide")
	temperature := flag.Float64("temperature", 0, "Sample moves by visits^(1/temperature), 0 plays the most visited move")
	experiment := flag.String("experiment", "match", "What to run: match, exploration or evaluator")
	games := flag.Int("games", 10, "Games per match up")
	workers := flag.Int("workers", 0, "Games played at once, 0 for GOMAXPROCS")
	seed := flag.Uint64("seed", 0, "Seed for boards and playouts, 0 for a random seed per game")
	out := flag.String("out", "results", "Directory for CSV records")
	level := flag.String("level", "info", "Log level: trace, debug, info, warn or error")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	logLevel, err := zerolog.ParseLevel(*level)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(logLevel)

	var e experiments.Experiment
	switch *experiment {
	case "match":
		e, err = experiments.MatchExperiment(metrics.AgentConfig{
			ID:          1,
			Duration:    *duration,
			Episodes:    *iterations,
			Exploration: *exploration,
			Evaluator:   *evaluator,
			Rollouts:    *rollouts,
			Squash:      *squash,
			Distances:   *distances,
			Temperature: *temperature,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("invalid agent flags")
		}
	case "exploration":
		e = experiments.ExplorationExperiment()
	case "evaluator":
		e = experiments.EvaluatorExperiment()
	default:
		log.Fatal().Msgf("unknown experiment %q", *experiment)
	}
	e.Games = *games
	e.Workers = *workers
	e.Seed = *seed

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	dir, err := e.RunAndStore(ctx, *out)
	if err != nil {
		log.Fatal().Err(err).Msgf("%s experiment failed", e.Name)
	}
	log.Info().Msgf("results stored in %s", dir)
}
