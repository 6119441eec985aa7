package searcher

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewUCB(t *testing.T) {
	t.Run("panics with zero parent visits", func(t *testing.T) {
		require.Panics(t, func() {
			newUCB(DefaultExploration, 0)
		}, "Should panic when N is 0")
	})
}

func TestUCBEvaluate(t *testing.T) {
	t.Run("computing UCB1 value", func(t *testing.T) {
		policy := newUCB(1.41, 100)
		got := policy.evaluate(0.5, 10)

		expected := 0.5 + 1.41*math.Sqrt(math.Log(100)/10.0)
		require.InDelta(t, expected, got, 0.0001,
			"Should compute q + C*sqrt(ln(N)/n)")
	})

	t.Run("unvisited child is infinite", func(t *testing.T) {
		policy := newUCB(1.41, 100)

		require.True(t, math.IsInf(policy.evaluate(0.0, 0), 1),
			"Unvisited child should score +Inf")
	})

	t.Run("exploration term increases with parent visits", func(t *testing.T) {
		policy1 := newUCB(1.41, 100)
		policy2 := newUCB(1.41, 1000)

		require.Greater(t, policy2.evaluate(0.5, 10), policy1.evaluate(0.5, 10),
			"More parent visits should increase exploration term")
	})

	t.Run("exploration term decreases with child visits", func(t *testing.T) {
		policy := newUCB(1.41, 100)

		require.Greater(t, policy.evaluate(0.5, 10), policy.evaluate(0.5, 20),
			"More child visits should decrease exploration term")
	})

	t.Run("zero exploration is pure exploitation", func(t *testing.T) {
		policy := newUCB(0, 100)

		require.Equal(t, 0.3, policy.evaluate(0.3, 7), "Score should equal the win rate")
	})

	t.Run("single parent visit has no exploration bonus", func(t *testing.T) {
		policy := newUCB(1.41, 1)

		require.Equal(t, 0.6, policy.evaluate(0.6, 1), "ln(1) should cancel the bonus")
	})
}
