package searcher

import (
	"fmt"
	"math"

	"penguins/game"

	"golang.org/x/exp/rand"
)

// Evaluator turns a leaf state into a value in [Loss, Win] for perspective.
type Evaluator interface {
	Evaluate(state game.State, perspective string) float64
	Name() string
}

const (
	PlayoutEvaluator   = "playout"
	HeuristicEvaluator = "heuristic"
)

type playout struct {
	rng      *rand.Rand
	rollouts int
}

// NewPlayout returns an evaluator averaging uniformly random playouts to the
// end of the game. All randomness comes from rng.
func NewPlayout(rng *rand.Rand, rollouts int) Evaluator {
	if rng == nil {
		panic("playout needs a random source")
	}
	return &playout{rng: rng, rollouts: max(rollouts, 1)}
}

func (p *playout) Name() string { return PlayoutEvaluator }

func (p *playout) Evaluate(state game.State, perspective string) float64 {
	total := 0.0
	for i := 0; i < p.rollouts; i++ {
		total += p.rollout(state, perspective)
	}
	return total / float64(p.rollouts)
}

func (p *playout) rollout(state game.State, perspective string) float64 {
	for !state.IsOver() {
		moves := state.LegalMoves()
		if len(moves) == 0 {
			panic(fmt.Sprintf("no legal moves at a non-terminal state for %s", state.Player()))
		}
		state = state.Play(moves[p.rng.Intn(len(moves))])
	}
	return game.Outcome(state, perspective)
}

type heuristic struct {
	squash    float64
	distances game.Distances
}

// NewHeuristic returns an evaluator that estimates a position from material
// plus territory, the fish on fields a side reaches strictly before the other,
// squashed into [Loss, Win] by 0.5 + 0.5*tanh(score/squash). States that are
// not a game.Territory are judged on material alone.
func NewHeuristic(squash float64, distances game.Distances) Evaluator {
	if squash <= 0 {
		squash = DefaultSquash
	}
	if distances == nil {
		distances = game.FloodFill
	}
	return &heuristic{squash: squash, distances: distances}
}

func (h *heuristic) Name() string { return HeuristicEvaluator }

func (h *heuristic) Evaluate(state game.State, perspective string) float64 {
	if state.IsOver() {
		return game.Outcome(state, perspective)
	}

	opponent := game.Opponent(state, perspective)
	score := state.Score(perspective) - state.Score(opponent)
	if t, ok := state.(game.Territory); ok {
		own, other := game.Contested(t, perspective, h.distances)
		score += own - other
	}
	return 0.5 + 0.5*math.Tanh(float64(score)/h.squash)
}
