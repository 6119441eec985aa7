package game

import "container/heap"

// Unreachable marks a cell no source can reach.
const Unreachable = -1

// Distances computes, for every cell of t, the minimum number of moves (or
// total move cost) needed to reach it from any of sources.
type Distances func(t Territory, sources []Cell) []int

// FloodFill is a multi-source breadth-first search over the move graph of t.
// Sources are at distance 0.
func FloodFill(t Territory, sources []Cell) []int {
	dist := unreached(t.Cells())
	queue := make([]Cell, 0, t.Cells())
	for _, s := range sources {
		if dist[s] != 0 {
			dist[s] = 0
			queue = append(queue, s)
		}
	}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, next := range t.Destinations(current) {
			if dist[next] == Unreachable {
				dist[next] = dist[current] + 1
				queue = append(queue, next)
			}
		}
	}
	return dist
}

// Dijkstra returns a Distances that weighs every move by cost. With a cost of 1
// per move it agrees with FloodFill.
func Dijkstra(cost func(from, to Cell) int) Distances {
	return func(t Territory, sources []Cell) []int {
		dist := unreached(t.Cells())
		pq := &cellQueue{}
		for _, s := range sources {
			dist[s] = 0
			heap.Push(pq, queuedCell{cell: s, dist: 0})
		}

		for pq.Len() > 0 {
			current := heap.Pop(pq).(queuedCell)
			if current.dist > dist[current.cell] {
				continue // stale entry
			}
			for _, next := range t.Destinations(current.cell) {
				d := current.dist + cost(current.cell, next)
				if dist[next] == Unreachable || d < dist[next] {
					dist[next] = d
					heap.Push(pq, queuedCell{cell: next, dist: d})
				}
			}
		}
		return dist
	}
}

// UnitCost weighs every move the same.
func UnitCost(from, to Cell) int {
	return 1
}

// SlideLength weighs a penguin move by the number of fields it crosses.
func SlideLength(from, to Cell) int {
	return HexDistance(from, to)
}

// HexDistance counts the steps between two cells of the odd-r hex grid.
func HexDistance(a, b Cell) int {
	aq, ar := cube(a)
	bq, br := cube(b)
	dq, dr := aq-bq, ar-br
	return (abs(dq) + abs(dr) + abs(dq+dr)) / 2
}

func cube(c Cell) (q, r int) {
	x, y := c.Coords()
	return x - (y-(y&1))/2, y
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Contested credits every cell to the side that reaches it in strictly fewer
// moves and sums the cells' values per side. Ties and cells neither side
// reaches are credited to nobody.
func Contested(t Territory, player string, distances Distances) (own, other int) {
	mine := distances(t, t.Occupied(player))
	theirs := distances(t, t.Occupied(Opponent(t, player)))
	for c := range mine {
		m, o := mine[c], theirs[c]
		switch {
		case m == Unreachable && o == Unreachable:
		case o == Unreachable || (m != Unreachable && m < o):
			own += t.Value(Cell(c))
		case m == Unreachable || o < m:
			other += t.Value(Cell(c))
		}
	}
	return own, other
}

func unreached(n int) []int {
	dist := make([]int, n)
	for i := range dist {
		dist[i] = Unreachable
	}
	return dist
}

type queuedCell struct {
	cell Cell
	dist int
}

type cellQueue []queuedCell

func (q cellQueue) Len() int           { return len(q) }
func (q cellQueue) Less(i, j int) bool { return q[i].dist < q[j].dist }
func (q cellQueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *cellQueue) Push(x any)        { *q = append(*q, x.(queuedCell)) }
func (q *cellQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}
