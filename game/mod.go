package game

// Any game that aims to be playable by the searcher implements State. The
// searcher only ever talks to a game through this contract.

type Move interface {
	String() string
}

// State should be immutable - operations on State always return a new copy
type State interface {
	// Player returns the side to move. It stays defined on terminal states.
	Player() string
	// Opponent returns the side not to move.
	Opponent() string
	// LegalMoves is finite and order-stable for equal states.
	LegalMoves() []Move
	Play(Move) State
	// IsOver reports a terminal state. A non-terminal state always has moves.
	IsOver() bool
	// Score is the material currently held by player.
	Score(player string) int
	Equal(State) bool
	// LastMove returns the move that produced this state, nil for an initial state.
	LastMove() Move
}

// Cell identifies one board field of a Territory.
type Cell int

// Territory is implemented by states whose board can be flood filled by the
// territory heuristic.
type Territory interface {
	State
	// Cells is the number of board fields; cells are numbered 0..Cells()-1.
	Cells() int
	// Occupied returns the cells holding player's pieces.
	Occupied(player string) []Cell
	// Destinations returns the cells a piece standing on from could move to.
	Destinations(from Cell) []Cell
	// Value is what a side gains by taking cell.
	Value(cell Cell) int
}

// Outcome scores a finished state from player's perspective: 1 for a win, 0 for
// a loss and 0.5 for a draw.
func Outcome(s State, player string) float64 {
	own, other := s.Score(player), s.Score(Opponent(s, player))
	switch {
	case own > other:
		return 1
	case own < other:
		return 0
	default:
		return 0.5
	}
}

// Opponent returns the side opposing player in s.
func Opponent(s State, player string) string {
	if s.Player() == player {
		return s.Opponent()
	}
	return s.Player()
}
