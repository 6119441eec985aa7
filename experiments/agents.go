package experiments

import (
	"fmt"

	"penguins/experiments/metrics"
	"penguins/game"
	"penguins/searcher"
	"penguins/searcher/agent"

	"golang.org/x/exp/rand"
)

// Distance functions selectable by AgentConfig.Distances.
const (
	FloodDistances    = "flood"
	DijkstraDistances = "dijkstra"
	SlideDistances    = "slide"
)

// NewMCTS builds the searcher an agent config describes. rng feeds the playout
// evaluator.
func NewMCTS(config metrics.AgentConfig, rng *rand.Rand) (*searcher.MCTS, error) {
	options := []searcher.Option{searcher.WithMetrics()}

	if config.Episodes > 0 {
		options = append(options, searcher.WithEpisodes(config.Episodes))
	}
	if config.Duration > 0 {
		options = append(options, searcher.WithDuration(config.Duration))
	}
	if config.Exploration < 0 {
		return nil, fmt.Errorf("agent %d has negative exploration %v", config.ID, config.Exploration)
	}
	if config.Exploration > 0 {
		options = append(options, searcher.WithExploration(config.Exploration))
	}

	switch config.Evaluator {
	case searcher.PlayoutEvaluator:
		options = append(options, searcher.WithEvaluator(searcher.NewPlayout(rng, config.Rollouts)))
	case searcher.HeuristicEvaluator, "":
		distances, err := parseDistances(config.Distances)
		if err != nil {
			return nil, err
		}
		options = append(options, searcher.WithEvaluator(searcher.NewHeuristic(config.Squash, distances)))
	default:
		return nil, fmt.Errorf("unknown evaluator %q", config.Evaluator)
	}

	if config.Episodes <= 0 && config.Duration <= 0 {
		return nil, fmt.Errorf("agent %d has neither episodes nor duration", config.ID)
	}
	return searcher.NewMCTS(options...), nil
}

// NewAgent returns a training agent for a positive temperature, otherwise an
// evaluation agent.
func NewAgent(config metrics.AgentConfig, rng *rand.Rand) (agent.Agent, error) {
	mcts, err := NewMCTS(config, rng)
	if err != nil {
		return nil, err
	}
	if config.Temperature > 0 {
		return agent.NewTrainingAgent(mcts, rng, config.Temperature), nil
	}
	return agent.NewEvaluationAgent(mcts), nil
}

func parseDistances(name string) (game.Distances, error) {
	switch name {
	case FloodDistances, "":
		return game.FloodFill, nil
	case DijkstraDistances:
		return game.Dijkstra(game.UnitCost), nil
	case SlideDistances:
		return game.Dijkstra(game.SlideLength), nil
	default:
		return nil, fmt.Errorf("unknown distances %q", name)
	}
}
