package experiments

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"time"

	"penguins/engine"
	"penguins/experiments/metrics"
	"penguins/game"
	"penguins/searcher"
	"penguins/searcher/agent"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
	"lukechampine.com/frand"
)

const (
	NumGames   = 30 // Per match up
	TimeBudget = 100 * time.Millisecond
)

// A game draws its board from its seed and its agents from the next two.
const seedsPerGame = 3

// Experiment plays every match up NumGames times on random boards. The two
// agents of a match up take turns at starting.
type Experiment struct {
	Name     string
	Configs  []metrics.AgentConfig
	MatchUps [][2]metrics.AgentConfig
	Games    int    // Per match up, NumGames if 0
	Workers  int    // Games played at once, GOMAXPROCS if 0
	Seed     uint64 // Fixes every game's board and randomness, fresh seeds if 0
}

// MatchExperiment pairs challenger against a default agent with the same
// search budget. An AgentConfig cannot tell an unset exploration constant from
// zero, so the challenger's must be positive.
func MatchExperiment(challenger metrics.AgentConfig) (Experiment, error) {
	if challenger.Exploration <= 0 {
		return Experiment{}, fmt.Errorf("exploration must be positive, got %v", challenger.Exploration)
	}
	baseline := metrics.AgentConfig{ID: 0, Duration: challenger.Duration, Episodes: challenger.Episodes}
	if challenger.ID == baseline.ID {
		challenger.ID = baseline.ID + 1
	}
	return Experiment{
		Name:     "match",
		Configs:  []metrics.AgentConfig{baseline, challenger},
		MatchUps: [][2]metrics.AgentConfig{{baseline, challenger}},
	}, nil
}

// ExplorationExperiment pairs agents with different exploration constants
// against the default one.
func ExplorationExperiment() Experiment {
	baseline := metrics.AgentConfig{ID: 0, Duration: TimeBudget, Exploration: searcher.DefaultExploration}
	configs := []metrics.AgentConfig{
		{ID: 1, Duration: TimeBudget, Exploration: 0.5},
		{ID: 2, Duration: TimeBudget, Exploration: 1.0},
		{ID: 3, Duration: TimeBudget, Exploration: 2.0},
	}
	return Experiment{
		Name:     "exploration",
		Configs:  append(configs, baseline),
		MatchUps: againstBaseline(baseline, configs),
	}
}

// EvaluatorExperiment pairs playout and heuristic variants against the default
// flood fill heuristic.
func EvaluatorExperiment() Experiment {
	baseline := metrics.AgentConfig{ID: 0, Duration: TimeBudget, Evaluator: searcher.HeuristicEvaluator, Distances: FloodDistances}
	configs := []metrics.AgentConfig{
		{ID: 1, Duration: TimeBudget, Evaluator: searcher.PlayoutEvaluator, Rollouts: 1},
		{ID: 2, Duration: TimeBudget, Evaluator: searcher.PlayoutEvaluator, Rollouts: 4},
		{ID: 3, Duration: TimeBudget, Evaluator: searcher.HeuristicEvaluator, Distances: SlideDistances},
		{ID: 4, Duration: TimeBudget, Evaluator: searcher.HeuristicEvaluator, Squash: 4},
	}
	return Experiment{
		Name:     "evaluator",
		Configs:  append(configs, baseline),
		MatchUps: againstBaseline(baseline, configs),
	}
}

func againstBaseline(baseline metrics.AgentConfig, configs []metrics.AgentConfig) [][2]metrics.AgentConfig {
	matchUps := [][2]metrics.AgentConfig{}
	for _, config := range configs {
		matchUps = append(matchUps, [2]metrics.AgentConfig{baseline, config})
	}
	return matchUps
}

type gameResult struct {
	record metrics.GameRecord
	moves  []metrics.MoveMetric
}

// Run plays all games of the experiment and returns their records in game
// order. The first failing game cancels the rest.
func (e Experiment) Run(ctx context.Context) ([]metrics.GameRecord, []metrics.MoveRecord, error) {
	games := e.Games
	if games <= 0 {
		games = NumGames
	}
	workers := e.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	log.Info().Msgf("starting %s experiment with %d match ups of %d games...", e.Name, len(e.MatchUps), games)

	results := make([]gameResult, len(e.MatchUps)*games)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for mi, matchUp := range e.MatchUps {
		for i := 0; i < games; i++ {
			id := mi*games + i
			seed := e.Seed + seedsPerGame*uint64(id)
			if e.Seed == 0 {
				seed = frand.Uint64n(math.MaxUint64)
			}
			first, second := matchUp[0], matchUp[1]
			if i%2 == 1 {
				first, second = second, first
			}

			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				gameMetric, moves, err := runGame(ctx, first, second, seed)
				if err != nil {
					return fmt.Errorf("match up %d game %d: %w", mi+1, i+1, err)
				}
				results[id] = gameResult{
					record: metrics.GameRecord{ID: id + 1, Agent1: first.ID, Agent2: second.ID, GameMetric: gameMetric},
					moves:  moves,
				}
				log.Info().Msgf("completed match up %d of %d game %d of %d with winner: %q",
					mi+1, len(e.MatchUps), i+1, games, gameMetric.Winner)
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	gameRecords := make([]metrics.GameRecord, 0, len(results))
	moveRecords := []metrics.MoveRecord{}
	for _, result := range results {
		gameRecords = append(gameRecords, result.record)
		for _, mm := range result.moves {
			moveRecords = append(moveRecords, metrics.MoveRecord{Game: result.record.ID, MoveMetric: mm})
		}
	}

	log.Info().Msgf("completed %s experiment", e.Name)
	return gameRecords, moveRecords, nil
}

// RunAndStore runs the experiment and writes its CSV files below baseDir. It
// returns the directory written to.
func (e Experiment) RunAndStore(ctx context.Context, baseDir string) (string, error) {
	gameRecords, moveRecords, err := e.Run(ctx)
	if err != nil {
		return "", err
	}

	writer, err := metrics.NewWriter(baseDir, e.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err = writer.WriteAgentConfigs(e.Configs); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err = writer.WriteGameRecords(gameRecords); err != nil {
		return "", fmt.Errorf("failed to store game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err = writer.WriteMoveRecords(moveRecords); err != nil {
		return "", fmt.Errorf("failed to store move records: %w", err)
	}
	log.Info().Msg("stored move records")
	return writer.Dir(), nil
}

// runGame plays one game on a board drawn from seed; config1 starts. The game
// stops at the next move once ctx is done.
func runGame(ctx context.Context, config1, config2 metrics.AgentConfig, seed uint64) (metrics.GameMetric, []metrics.MoveMetric, error) {
	state := game.NewRandomState(rand.New(rand.NewSource(seed)))
	agent1, err := NewAgent(config1, rand.New(rand.NewSource(seed+1)))
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}
	agent2, err := NewAgent(config2, rand.New(rand.NewSource(seed+2)))
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}

	_, gameMetric, moveMetrics, err := engine.LocalEngine(state, [2]agent.Agent{agent1, agent2}).Run(ctx)
	gameMetric.Seed = seed
	return gameMetric, moveMetrics, err
}
