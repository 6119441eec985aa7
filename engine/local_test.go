package engine

import (
	"context"
	"errors"
	"testing"

	"penguins/experiments/metrics"
	"penguins/game"
	"penguins/searcher"
	"penguins/searcher/agent"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// firstMoveAgent always plays the first legal move.
type firstMoveAgent struct {
	calls int
}

func (a *firstMoveAgent) FindMove(state game.State) (game.Move, metrics.SearchMetric, error) {
	a.calls++
	return state.LegalMoves()[0], metrics.SearchMetric{Episodes: a.calls}, nil
}

// cancellingAgent plays the first legal move and cancels its game on its
// after-th call.
type cancellingAgent struct {
	firstMoveAgent
	after  int
	cancel context.CancelFunc
}

func (a *cancellingAgent) FindMove(state game.State) (game.Move, metrics.SearchMetric, error) {
	move, metric, err := a.firstMoveAgent.FindMove(state)
	if a.calls == a.after {
		a.cancel()
	}
	return move, metric, err
}

type failingAgent struct{}

func (failingAgent) FindMove(game.State) (game.Move, metrics.SearchMetric, error) {
	return nil, metrics.SearchMetric{}, errors.New("out of ideas")
}

func TestLocalEngine(t *testing.T) {
	t.Run("panics without two agents", func(t *testing.T) {
		require.Panics(t, func() {
			LocalEngine(game.NewRandomState(rand.New(rand.NewSource(1))), [2]agent.Agent{&firstMoveAgent{}, nil})
		})
	})

	t.Run("plays to the end", func(t *testing.T) {
		state := game.NewRandomState(rand.New(rand.NewSource(1)))
		one, two := &firstMoveAgent{}, &firstMoveAgent{}

		winner, gameMetric, moveMetrics, err := LocalEngine(state, [2]agent.Agent{one, two}).Run(context.Background())

		require.NoError(t, err)
		require.Equal(t, "ONE", gameMetric.StartingPlayer)
		require.Equal(t, winner, gameMetric.Winner)
		require.Len(t, moveMetrics, gameMetric.TotalMoves)
		require.Equal(t, one.calls+two.calls, gameMetric.TotalMoves, "Every move should come from an agent")
		require.GreaterOrEqual(t, gameMetric.TotalMoves, 2*game.PenguinsPerTeam, "Placement alone takes eight moves")

		switch {
		case gameMetric.Scores[0] > gameMetric.Scores[1]:
			require.Equal(t, "ONE", winner)
		case gameMetric.Scores[0] < gameMetric.Scores[1]:
			require.Equal(t, "TWO", winner)
		default:
			require.Empty(t, winner)
		}
		for i, mm := range moveMetrics {
			require.Equal(t, i+1, mm.Step)
			require.NotEmpty(t, mm.Move)
		}
	})

	t.Run("searching agents", func(t *testing.T) {
		state := game.NewRandomState(rand.New(rand.NewSource(2)))
		agents := [2]agent.Agent{
			agent.NewEvaluationAgent(searcher.NewMCTS(searcher.WithEpisodes(20), searcher.WithMetrics())),
			agent.NewEvaluationAgent(searcher.NewMCTS(searcher.WithEpisodes(20),
				searcher.WithEvaluator(searcher.NewPlayout(rand.New(rand.NewSource(3)), 1)), searcher.WithMetrics())),
		}

		_, gameMetric, moveMetrics, err := LocalEngine(state, agents).Run(context.Background())

		require.NoError(t, err)
		require.NotEmpty(t, moveMetrics)
		require.Equal(t, gameMetric.TotalMoves, len(moveMetrics))
		require.Equal(t, searcher.HeuristicEvaluator, moveMetrics[0].Evaluator)
		require.Positive(t, moveMetrics[0].Episodes)
	})

	t.Run("agent error stops the game", func(t *testing.T) {
		state := game.NewRandomState(rand.New(rand.NewSource(1)))

		_, _, moveMetrics, err := LocalEngine(state, [2]agent.Agent{&firstMoveAgent{}, failingAgent{}}).Run(context.Background())

		require.ErrorContains(t, err, "out of ideas")
		require.Len(t, moveMetrics, 1)
	})

	t.Run("cancelled before the first move", func(t *testing.T) {
		state := game.NewRandomState(rand.New(rand.NewSource(1)))
		one, two := &firstMoveAgent{}, &firstMoveAgent{}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, _, moveMetrics, err := LocalEngine(state, [2]agent.Agent{one, two}).Run(ctx)

		require.ErrorIs(t, err, context.Canceled)
		require.Empty(t, moveMetrics)
		require.Zero(t, one.calls+two.calls, "No agent should be asked for a move")
	})

	t.Run("cancelled between moves", func(t *testing.T) {
		state := game.NewRandomState(rand.New(rand.NewSource(1)))
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		one := &cancellingAgent{after: 3, cancel: cancel}

		_, _, moveMetrics, err := LocalEngine(state, [2]agent.Agent{one, &firstMoveAgent{}}).Run(ctx)

		require.ErrorIs(t, err, context.Canceled)
		require.Len(t, moveMetrics, 5, "The game should stop at the move after the cancel")
	})
}
