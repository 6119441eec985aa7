package engine

import (
	"context"
	"fmt"
	"time"

	"penguins/experiments/metrics"
	"penguins/game"
	"penguins/searcher/agent"

	"github.com/rs/zerolog/log"
)

type localEngine struct {
	state  game.State
	agents map[string]agent.Agent
	order  [2]string
}

// LocalEngine pits two agents against each other in-process. agents[0] plays
// the side to move in state.
func LocalEngine(state game.State, agents [2]agent.Agent) Engine {
	if agents[0] == nil || agents[1] == nil {
		panic("need two agents")
	}
	order := [2]string{state.Player(), state.Opponent()}
	return &localEngine{
		state:  state,
		agents: map[string]agent.Agent{order[0]: agents[0], order[1]: agents[1]},
		order:  order,
	}
}

// Run executes the entire game loop. Scores are reported starting player first.
func (e *localEngine) Run(ctx context.Context) (string, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.order[0],
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Debug().Msgf("player %s is starting", e.order[0])

	step := 0
	for !e.state.IsOver() {
		if err := ctx.Err(); err != nil {
			return "", gameMetric, moveMetrics, fmt.Errorf("game stopped after %d moves: %w", step, err)
		}
		if step >= MaxMoves {
			return "", gameMetric, moveMetrics, fmt.Errorf("game not over after %d moves", MaxMoves)
		}
		step++

		player := e.state.Player()
		move, searchMetric, err := e.agents[player].FindMove(e.state)
		if err != nil {
			return "", gameMetric, moveMetrics, fmt.Errorf("player %s failed to move at step %d: %w", player, step, err)
		}
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       player,
			Move:         move.String(),
			SearchMetric: searchMetric,
		})
		log.Debug().Int("step", step).Str("player", player).Str("move", move.String()).Msg("played")

		e.state = e.state.Play(move)
	}

	winner := ""
	switch game.Outcome(e.state, e.order[0]) {
	case 1:
		winner = e.order[0]
	case 0:
		winner = e.order[1]
	}
	gameMetric.Winner = winner
	gameMetric.Scores = [2]int{e.state.Score(e.order[0]), e.state.Score(e.order[1])}
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = step

	log.Debug().Msgf("game over after %d moves, scores %d:%d", step, gameMetric.Scores[0], gameMetric.Scores[1])
	return winner, gameMetric, moveMetrics, nil
}
