package searcher

import "math"

type ucb struct {
	exploration float64
	logN        float64
}

func newUCB(exploration float64, N int) ucb {
	if N == 0 {
		panic("N cannot be 0")
	}
	return ucb{exploration: exploration, logN: math.Log(float64(N))}
}

// evaluate scores a child with win rate q over n visits:
// UCB1 = q + C*sqrt(ln(N)/n). Unvisited children always come first.
func (u ucb) evaluate(q float64, n int) float64 {
	if n == 0 {
		return math.Inf(1)
	}
	return q + u.exploration*math.Sqrt(u.logN/float64(n))
}
