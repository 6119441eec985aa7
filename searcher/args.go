package searcher

// Hyperparameters for MCTS

const DefaultExploration = 1.41 // Exploration constant C, about sqrt(2)

const DefaultSquash = 10.0 // Score difference mapped to tanh(1) by the heuristic

const DefaultRollouts = 1 // Random playouts averaged per leaf

// Leaf values are win probabilities for the evaluating side
const (
	Win  = 1.0
	Loss = 0.0
	Draw = 0.5
)
