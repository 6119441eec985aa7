package engine

import (
	"context"

	"penguins/experiments/metrics"
)

const MaxMoves = 1000

type Engine interface {
	// Run plays a game till it is over or MaxMoves is reached. ctx is checked
	// before every move.
	Run(ctx context.Context) (winner string, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
