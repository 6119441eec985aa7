package agent

import (
	"math"

	"penguins/experiments/metrics"
	"penguins/game"
	"penguins/searcher"

	"github.com/samber/lo"
	"golang.org/x/exp/rand"
)

type trainingAgent struct {
	mcts        *searcher.MCTS
	rng         *rand.Rand
	temperature float64
	tree        *searcher.Node
}

// NewTrainingAgent returns a new agent for self-play during training. It
// samples among the root's children proportionally to visits^(1/temperature);
// a temperature of 0 plays the searcher's own choice.
func NewTrainingAgent(mcts *searcher.MCTS, rng *rand.Rand, temperature float64) Agent {
	if rng == nil {
		panic("training agent needs a random source")
	}
	return &trainingAgent{mcts: mcts, rng: rng, temperature: temperature}
}

func (a *trainingAgent) FindMove(state game.State) (game.Move, metrics.SearchMetric, error) {
	move, tree, metric, err := a.mcts.FindMove(state, a.tree)
	a.tree = tree
	if err != nil || a.temperature <= 0 {
		return move, metric, err
	}

	policy := adjustTemperature(visits(tree), a.temperature)
	if i := sample(policy, a.rng.Float64()); i >= 0 {
		move = tree.Children()[i].Move()
	}
	return move, metric, nil
}

func visits(root *searcher.Node) []float64 {
	return lo.Map(root.Children(), func(child *searcher.Node, _ int) float64 {
		return float64(child.Visits())
	})
}

// adjustTemperature turns visit counts into move probabilities. Counts are
// scaled by the largest one first, so the powers stay within [0, 1].
func adjustTemperature(visits []float64, temperature float64) []float64 {
	most := lo.Max(visits)
	if most <= 0 {
		return nil
	}
	exponent := 1.0 / temperature
	adjusted := lo.Map(visits, func(visit float64, _ int) float64 {
		return math.Pow(visit/most, exponent)
	})
	sum := lo.Sum(adjusted)
	if sum == 0 {
		return nil
	}
	for i := range adjusted {
		adjusted[i] /= sum
	}
	return adjusted
}

// sample picks an index of policy for a uniform draw in [0, 1), -1 if policy
// is empty.
func sample(policy []float64, draw float64) int {
	cumulative := 0.0
	last := -1
	for i, prob := range policy {
		if prob == 0 {
			continue
		}
		last = i
		cumulative += prob
		if draw < cumulative {
			return i
		}
	}
	return last // Rounding errors
}
