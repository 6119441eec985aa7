package searcher

import (
	"fmt"
	"math"

	"penguins/game"

	"github.com/samber/lo"
)

// Node is one position of the search tree. A node exclusively owns its
// children, so dropping a node releases its whole subtree.
//
// rewards accumulates leaf values from the perspective of the side to move at
// the node's own position: an average near Win is good for that side.
type Node struct {
	state    game.State
	move     game.Move // Move that led here from the parent
	children []*Node
	rewards  float64
	visits   int
	resolved bool
}

func newNode(state game.State, move game.Move) *Node {
	return &Node{state: state, move: move}
}

func (n *Node) State() game.State { return n.state }
func (n *Node) Move() game.Move   { return n.move }
func (n *Node) Children() []*Node { return n.children }
func (n *Node) Visits() int       { return n.visits }
func (n *Node) Rewards() float64  { return n.rewards }

// Resolved reports whether the outcome below this node is fully known.
func (n *Node) Resolved() bool { return n.resolved }

// Value is the average reward for the side to move at this node, Draw before
// the first visit.
func (n *Node) Value() float64 {
	if n.visits == 0 {
		return Draw
	}
	return n.rewards / float64(n.visits)
}

// descend runs one select-expand-evaluate-backpropagate cycle below n and
// returns the leaf value from perspective's point of view.
func (n *Node) descend(m *MCTS, perspective string) float64 {
	var value float64
	if n.visits > 0 && !n.state.IsOver() {
		if len(n.children) == 0 {
			n.expand()
		}
		value = n.selectChild(m.exploration).descend(m, perspective)
	} else {
		if n.state.IsOver() {
			m.metrics.AddTerminalLeaf()
		}
		value = m.evaluator.Evaluate(n.state, perspective)
	}

	n.visits++
	n.rewards += relative(value, perspective, n.state.Player())
	if n.state.IsOver() || (len(n.children) > 0 && lo.EveryBy(n.children, (*Node).Resolved)) {
		n.resolved = true
	}
	return value
}

// expand adds one child per legal move, in the order the game lists them.
func (n *Node) expand() {
	moves := n.state.LegalMoves()
	if len(moves) == 0 {
		panic(fmt.Sprintf("no legal moves at a non-terminal state for %s", n.state.Player()))
	}
	n.children = lo.Map(moves, func(move game.Move, _ int) *Node {
		return newNode(n.state.Play(move), move)
	})
}

// selectChild picks the unresolved child maximizing UCB1 from the point of
// view of the side to move at n. Ties keep the earlier child.
func (n *Node) selectChild(exploration float64) *Node {
	policy := newUCB(exploration, n.visits)

	var best *Node
	maxScore := math.Inf(-1)
	for _, child := range n.children {
		if child.resolved {
			continue
		}
		score := policy.evaluate(n.winRate(child), child.visits)
		if best == nil || score > maxScore {
			maxScore = score
			best = child
		}
	}
	if best == nil {
		panic("node has no unresolved children")
	}
	return best
}

// winRate is child's average value seen by the side to move at n.
func (n *Node) winRate(child *Node) float64 {
	if child.visits == 0 {
		return Draw
	}
	return relative(child.Value(), child.state.Player(), n.state.Player())
}

// bestChild plays a proven win first. Resolved children are not selected again,
// so their visit counts say nothing about their strength. Otherwise it follows
// the robust child rule: most visits, then higher win rate for the side to
// move, then the earlier child.
func (n *Node) bestChild() *Node {
	if len(n.children) == 0 {
		panic("node has no children")
	}

	if win, ok := lo.Find(n.children, func(child *Node) bool {
		return child.resolved && n.winRate(child) == Win
	}); ok {
		return win
	}

	best := n.children[0]
	for _, child := range n.children[1:] {
		if child.visits > best.visits ||
			(child.visits == best.visits && n.winRate(child) > n.winRate(best)) {
			best = child
		}
	}
	return best
}

// relative converts a value held by side from into the value for side to.
func relative(value float64, from, to string) float64 {
	if from == to {
		return value
	}
	return 1 - value
}
