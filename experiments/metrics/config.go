package metrics

import "time"

// AgentConfig describes one competitor in an experiment.
type AgentConfig struct {
	ID          int
	Duration    time.Duration
	Episodes    int
	Exploration float64 // 0 uses searcher.DefaultExploration
	Evaluator   string  // "heuristic" or "playout"
	Rollouts    int     // Playouts per leaf
	Squash      float64 // Heuristic squash constant
	Distances   string  // "flood", "dijkstra" or "slide"
	Temperature float64 // Training agent sampling temperature, 0 plays the robust child
}
