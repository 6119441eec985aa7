package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindRoot(t *testing.T) {
	g := drawGame(4, 2)
	start := newMockState(g)

	// root -> [A, B], A -> [A1, A2]
	newTree := func() *Node {
		root := newNode(start, nil)
		root.expand()
		root.visits, root.rewards = 10, 4
		a, b := root.children[0], root.children[1]
		a.visits, a.rewards = 6, 2
		b.visits, b.rewards = 3, 1
		a.expand()
		a.children[0].visits, a.children[0].rewards = 4, 3
		a.children[1].visits, a.children[1].rewards = 1, 1
		b.expand()
		return root
	}

	t.Run("nil tree", func(t *testing.T) {
		require.Nil(t, findRoot(nil, start))
	})

	t.Run("same position keeps the root", func(t *testing.T) {
		tree := newTree()
		require.Same(t, tree, findRoot(tree, start))
	})

	t.Run("child position", func(t *testing.T) {
		tree := newTree()
		b := tree.children[1]
		require.Same(t, b, findRoot(tree, b.state))
	})

	t.Run("grandchild keeps its own statistics", func(t *testing.T) {
		tree := newTree()
		a1 := tree.children[0].children[0]

		root := findRoot(tree, a1.state)

		require.Same(t, a1, root)
		require.Equal(t, 4, root.Visits(), "Should keep A1's visits, not A's or B's")
		require.Equal(t, 3.0, root.Rewards(), "Should keep A1's rewards")
		require.Empty(t, root.Children(), "A1's subtree should come along unchanged")
	})

	t.Run("unknown position", func(t *testing.T) {
		tree := newTree()
		far := start.Play(mockMove{0}).Play(mockMove{0}).Play(mockMove{0})
		require.Nil(t, findRoot(tree, far), "Positions beyond two plies should not match")
	})
}

func TestFindMoveReusesTree(t *testing.T) {
	g := drawGame(8, 2)
	m := NewMCTS(WithEpisodes(40), WithEvaluator(&fixedEvaluator{value: 0.5}), WithMetrics())
	start := newMockState(g)

	move, tree, _, err := m.FindMove(start, nil)
	require.NoError(t, err)

	ours := tree.children[0]
	for _, child := range tree.children {
		if child.move == move {
			ours = child
		}
	}
	require.NotEmpty(t, ours.children, "Chosen child should have been expanded")
	reply := ours.children[1]
	priorVisits := reply.visits
	priorRewards := reply.rewards

	next := start.Play(move).Play(reply.move)
	_, newTree, metric, err := m.FindMove(next, tree)
	require.NoError(t, err)

	require.Same(t, reply, newTree, "Should continue from the reply's node")
	require.True(t, metric.IsTreeReused)
	require.GreaterOrEqual(t, newTree.visits, priorVisits+40, "Should build on prior visits")
	require.GreaterOrEqual(t, newTree.rewards, priorRewards)
}
