package searcher

import (
	"errors"
	"fmt"
	"time"

	"penguins/experiments/metrics"
	"penguins/game"

	"github.com/rs/zerolog/log"
)

// ErrGameOver is returned when a move is requested for a finished game.
var ErrGameOver = errors.New("game is over")

type Option func(mcts *MCTS)

// MCTS searches a single tree on the calling goroutine. It keeps no tree of its
// own between calls: FindMove hands the tree back to the caller, who passes it
// into the next call.
type MCTS struct {
	duration    time.Duration
	episodes    int
	exploration float64
	evaluator   Evaluator
	metrics     metrics.Collector
}

// WithDuration sets the time budget per move.
func WithDuration(duration time.Duration) Option {
	return func(m *MCTS) {
		if duration > 0 {
			m.duration = duration
		}
	}
}

// WithEpisodes caps the number of search cycles per move, independent of the
// clock.
func WithEpisodes(episodes int) Option {
	return func(m *MCTS) {
		if episodes > 0 {
			m.episodes = episodes
		}
	}
}

func WithExploration(c float64) Option {
	return func(m *MCTS) {
		if c >= 0 {
			m.exploration = c
		}
	}
}

func WithEvaluator(evaluator Evaluator) Option {
	return func(m *MCTS) {
		if evaluator != nil {
			m.evaluator = evaluator
		}
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMCTS(options ...Option) *MCTS {
	m := &MCTS{ // Default values
		exploration: DefaultExploration,
		evaluator:   NewHeuristic(DefaultSquash, game.FloodFill),
		metrics:     metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.episodes <= 0 && m.duration <= 0 {
		panic("Must specify search episodes or duration")
	}
	return m
}

// FindMove searches state and returns the robust child's move together with
// the tree to pass into the next call. tree may be nil; otherwise the
// position is looked up in it so earlier statistics carry over.
func (m *MCTS) FindMove(state game.State, tree *Node) (game.Move, *Node, metrics.SearchMetric, error) {
	if state.IsOver() {
		return nil, nil, metrics.SearchMetric{}, ErrGameOver
	}
	start := time.Now()

	m.metrics.Start(m.exploration, m.evaluator.Name())
	root, err := m.search(state, tree, start)
	if err != nil && tree != nil {
		// Never trust a tree a failed search has touched
		log.Warn().Err(err).Msg("search on the retained tree failed, retrying from a fresh root")
		m.metrics.Start(m.exploration, m.evaluator.Name())
		root, err = m.search(state, nil, start)
	}
	if err != nil {
		return nil, nil, m.metrics.Complete(0, false), err
	}

	best := root.bestChild()
	metric := m.metrics.Complete(root.visits, root.resolved)
	log.Debug().
		Str("player", state.Player()).
		Str("move", best.move.String()).
		Int("rootVisits", root.visits).
		Int("moveVisits", best.visits).
		Float64("value", root.winRate(best)).
		Bool("resolved", root.resolved).
		Dur("elapsed", time.Since(start)).
		Msg("found move")
	return best.move, root, metric, nil
}

// search builds the tree for state until the budget counted from start is
// spent or the root is resolved. The cycle evaluating a fresh root counts
// against the episode cap and the deadline; a reused root gets at least one
// cycle. Panics from the game or the tree come back as an error.
func (m *MCTS) search(state game.State, tree *Node, start time.Time) (root *Node, err error) {
	defer func() {
		if r := recover(); r != nil {
			root, err = nil, fmt.Errorf("search failed: %v", r)
		}
	}()

	root, episodes := m.prepareRoot(state, tree)
	perspective := state.Player()
	for !root.resolved {
		if m.episodes > 0 && episodes >= m.episodes {
			break
		}
		if episodes > 0 && m.duration > 0 && time.Since(start) >= m.duration {
			break
		}

		root.descend(m, perspective)
		m.metrics.AddEpisode()
		episodes++
	}
	return root, nil
}

// prepareRoot finds or creates the node for state and returns it with the
// number of cycles spent on it. A fresh root is evaluated once and expanded,
// so at least one expansion precedes any move choice.
func (m *MCTS) prepareRoot(state game.State, tree *Node) (*Node, int) {
	root := findRoot(tree, state)
	m.metrics.SetTreeReused(root != nil)
	if root == nil {
		log.Debug().Msg("position not found in retained tree, starting a fresh root")
		root = newNode(state, nil)
	} else {
		log.Debug().Int("visits", root.visits).Msg("reusing retained subtree")
	}

	episodes := 0
	if root.visits == 0 {
		root.descend(m, state.Player())
		m.metrics.AddEpisode()
		episodes++
	}
	if len(root.children) == 0 {
		root.expand()
	}
	return root, episodes
}
