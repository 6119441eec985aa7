package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// A corridor along the top row: A on the left, B on the right.
const corridorBoard = `
A 1 2 3 4 3 2 B
 . . . . . . . .
. . . . . . . .
 . . . . . . . .
. . . . . . . .
 . . . . . . . .
. . . . . . . .
 . . . . . . . .
`

func TestFloodFill(t *testing.T) {
	gs := mustParse(t, corridorBoard, One)

	t.Run("single source", func(t *testing.T) {
		dist := FloodFill(gs, gs.Occupied("ONE"))
		require.Equal(t, 0, dist[CellAt(0, 0)])
		// every field of the corridor is a single slide away
		for x := 1; x <= 6; x++ {
			require.Equal(t, 1, dist[CellAt(x, 0)], "field %d", x)
		}
		require.Equal(t, Unreachable, dist[CellAt(7, 0)], "penguins block slides")
		require.Equal(t, Unreachable, dist[CellAt(0, 7)])
	})

	t.Run("multiple sources take the minimum", func(t *testing.T) {
		dist := FloodFill(gs, []Cell{CellAt(0, 0), CellAt(7, 0)})
		require.Equal(t, 0, dist[CellAt(7, 0)])
		require.Equal(t, 1, dist[CellAt(3, 0)])
	})
}

func TestDijkstra(t *testing.T) {
	t.Run("unit cost matches flood fill", func(t *testing.T) {
		rng := rand.New(rand.NewSource(3))
		for i := 0; i < 5; i++ {
			var s State = NewRandomState(rng)
			for j := 0; j < 12 && !s.IsOver(); j++ {
				moves := s.LegalMoves()
				s = s.Play(moves[rng.Intn(len(moves))])
			}
			gs := s.(GameState)
			for _, player := range []string{"ONE", "TWO"} {
				sources := gs.Occupied(player)
				require.Equal(t, FloodFill(gs, sources), Dijkstra(UnitCost)(gs, sources))
			}
		}
	})

	t.Run("slide length weighs long slides", func(t *testing.T) {
		gs := mustParse(t, corridorBoard, One)
		dist := Dijkstra(SlideLength)(gs, gs.Occupied("ONE"))
		for x := 1; x <= 6; x++ {
			require.Equal(t, x, dist[CellAt(x, 0)], "field %d", x)
		}
	})
}

func TestContested(t *testing.T) {
	gs := mustParse(t, corridorBoard, One)

	t.Run("flood fill", func(t *testing.T) {
		// both reach every corridor field in one slide: all ties
		own, other := Contested(gs, "ONE", FloodFill)
		require.Equal(t, 0, own)
		require.Equal(t, 0, other)
	})

	t.Run("slide length", func(t *testing.T) {
		// fields 1..3 are nearer to A, 4..6 nearer to B
		own, other := Contested(gs, "ONE", Dijkstra(SlideLength))
		require.Equal(t, 1+2+3, own)
		require.Equal(t, 4+3+2, other)

		own, other = Contested(gs, "TWO", Dijkstra(SlideLength))
		require.Equal(t, 4+3+2, own)
		require.Equal(t, 1+2+3, other)
	})
}

func TestHexDistance(t *testing.T) {
	require.Equal(t, 0, HexDistance(CellAt(3, 3), CellAt(3, 3)))
	require.Equal(t, 7, HexDistance(CellAt(0, 0), CellAt(7, 0)))
	require.Equal(t, 2, HexDistance(CellAt(0, 0), CellAt(1, 2)))
}
