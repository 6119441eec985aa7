package agent

import (
	"penguins/experiments/metrics"
	"penguins/game"
	"penguins/searcher"
)

type evaluationAgent struct {
	mcts *searcher.MCTS
	tree *searcher.Node
}

// NewEvaluationAgent returns a new agent for actual game play during evaluation.
// It keeps the tree of its last search for the next request.
func NewEvaluationAgent(mcts *searcher.MCTS) Agent {
	return &evaluationAgent{mcts: mcts}
}

func (a *evaluationAgent) FindMove(state game.State) (game.Move, metrics.SearchMetric, error) {
	move, tree, metric, err := a.mcts.FindMove(state, a.tree)
	a.tree = tree
	return move, metric, err
}
