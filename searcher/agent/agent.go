package agent

import (
	"penguins/experiments/metrics"
	"penguins/game"
)

type Agent interface {
	// FindMove returns the agent's move for state and the metrics of the search
	// behind it (zero unless the searcher collects them).
	FindMove(state game.State) (game.Move, metrics.SearchMetric, error)
}
