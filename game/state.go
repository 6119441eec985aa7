package game

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/exp/rand"
)

const (
	PenguinsPerTeam = 4
	MaxFish         = 4
)

// Team owns penguins. The zero value marks a field without a penguin.
type Team int8

const (
	NoTeam Team = iota
	One
	Two
)

func (t Team) String() string {
	switch t {
	case One:
		return "ONE"
	case Two:
		return "TWO"
	default:
		return "NONE"
	}
}

func (t Team) Opponent() Team {
	if t == One {
		return Two
	}
	return One
}

// ParseTeam is the inverse of Team.String.
func ParseTeam(player string) (Team, error) {
	switch player {
	case "ONE":
		return One, nil
	case "TWO":
		return Two, nil
	default:
		return NoTeam, fmt.Errorf("unknown team %q", player)
	}
}

// GameState is a position of the penguin game. It only holds arrays so it is
// copied by value and comparable.
type GameState struct {
	fish     [Cells]int8 // 0 is water, or ice under a penguin
	penguins [Cells]Team
	scores   [3]int  // indexed by Team
	placed   [3]int8 // indexed by Team
	current  Team
	over     bool
	turn     int
	last     GameMove
	hasLast  bool
}

// NewGameState returns the initial state for a board of fish counts. Team One
// starts.
func NewGameState(fish [Cells]int8) GameState {
	gs := GameState{fish: fish, current: One}
	for c, f := range gs.fish {
		if f < 0 || f > MaxFish {
			panic(fmt.Sprintf("invalid fish count %d on %v", f, Cell(c)))
		}
	}
	gs.settleTurn(One)
	return gs
}

// NewRandomState generates a point symmetric board, so neither team is favored
// by the layout, with enough single fish fields for every penguin.
func NewRandomState(rng *rand.Rand) GameState {
	var fish [Cells]int8
	for c := 0; c < Cells/2; c++ {
		f := int8(1 + rng.Intn(MaxFish))
		if rng.Intn(8) == 0 {
			f = 0
		}
		fish[c], fish[Cells-1-c] = f, f
	}
	for lo.Count(fish[:], 1) < 2*PenguinsPerTeam {
		c := rng.Intn(Cells / 2)
		fish[c], fish[Cells-1-c] = 1, 1
	}
	return NewGameState(fish)
}

// ParseState reads a board drawn as in Board: one row per line, fields
// separated by spaces, "." or a digit for fish, "A" and "B" for penguins of
// team One and Two. current is the team to move.
func ParseState(board string, current Team) (GameState, error) {
	var fish [Cells]int8
	var penguins [Cells]Team
	var placed [3]int8

	rows := lo.Filter(strings.Split(strings.TrimSpace(board), "\n"), func(row string, _ int) bool {
		return strings.TrimSpace(row) != ""
	})
	if len(rows) != Height {
		return GameState{}, fmt.Errorf("board has %d rows, want %d", len(rows), Height)
	}
	for y, row := range rows {
		fields := strings.Fields(row)
		if len(fields) != Width {
			return GameState{}, fmt.Errorf("row %d has %d fields, want %d", y, len(fields), Width)
		}
		for x, field := range fields {
			c := CellAt(x, y)
			switch field {
			case ".":
			case "A":
				penguins[c] = One
				placed[One]++
			case "B":
				penguins[c] = Two
				placed[Two]++
			default:
				if len(field) != 1 || field[0] < '0' || field[0] > '0'+MaxFish {
					return GameState{}, fmt.Errorf("invalid field %q at %v", field, c)
				}
				fish[c] = int8(field[0] - '0')
			}
		}
	}
	if placed[One] > PenguinsPerTeam || placed[Two] > PenguinsPerTeam {
		return GameState{}, fmt.Errorf("too many penguins: %d and %d", placed[One], placed[Two])
	}
	if current != One && current != Two {
		return GameState{}, fmt.Errorf("invalid team to move: %v", current)
	}

	gs := GameState{
		fish:     fish,
		penguins: penguins,
		placed:   placed,
		current:  current,
		turn:     int(placed[One] + placed[Two]),
	}
	gs.settleTurn(current)
	return gs, nil
}

// WithScores returns a copy of gs with the teams' collected fish set.
func (gs GameState) WithScores(one, two int) GameState {
	gs.scores[One] = one
	gs.scores[Two] = two
	return gs
}

func (gs GameState) Player() string {
	return gs.current.String()
}

func (gs GameState) Opponent() string {
	return gs.current.Opponent().String()
}

// Team returns the team to move.
func (gs GameState) Team() Team {
	return gs.current
}

// Turn counts the moves played so far.
func (gs GameState) Turn() int {
	return gs.turn
}

func (gs GameState) IsOver() bool {
	return gs.over
}

func (gs GameState) Score(player string) int {
	team, err := ParseTeam(player)
	if err != nil {
		panic(err)
	}
	return gs.scores[team]
}

func (gs GameState) LastMove() Move {
	if !gs.hasLast {
		return nil
	}
	return gs.last
}

// Equal compares positions; how a position was reached does not matter.
func (gs GameState) Equal(other State) bool {
	o, ok := other.(GameState)
	if !ok {
		return false
	}
	return gs.fish == o.fish &&
		gs.penguins == o.penguins &&
		gs.scores == o.scores &&
		gs.placed == o.placed &&
		gs.current == o.current &&
		gs.over == o.over
}

// LegalMoves returns all legal moves for the team to move, ordered by cell.
func (gs GameState) LegalMoves() []Move {
	if gs.over {
		return nil
	}
	return gs.movesOf(gs.current)
}

func (gs GameState) movesOf(team Team) []Move {
	if gs.placing(team) {
		free := lo.Filter(allCells, func(c Cell, _ int) bool { return gs.fish[c] == 1 })
		return lo.Map(free, func(c Cell, _ int) Move { return Place(c) })
	}
	var moves []Move
	for _, from := range gs.occupied(team) {
		for _, to := range gs.slides(from) {
			moves = append(moves, Slide(from, to))
		}
	}
	return moves
}

func (gs GameState) placing(team Team) bool {
	return gs.placed[team] < PenguinsPerTeam
}

// slides returns every cell a penguin on from can reach, direction by direction.
func (gs GameState) slides(from Cell) []Cell {
	var cells []Cell
	for d := Direction(0); d < numDirections; d++ {
		for c := from.Neighbor(d); c != NoCell && gs.fish[c] > 0; c = c.Neighbor(d) {
			cells = append(cells, c)
		}
	}
	return cells
}

func (gs GameState) hasMoves(team Team) bool {
	if gs.placing(team) {
		return lo.Contains(gs.fish[:], 1)
	}
	for _, from := range gs.occupied(team) {
		for d := Direction(0); d < numDirections; d++ {
			if c := from.Neighbor(d); c != NoCell && gs.fish[c] > 0 {
				return true
			}
		}
	}
	return false
}

func (gs GameState) occupied(team Team) []Cell {
	return lo.Filter(allCells, func(c Cell, _ int) bool { return gs.penguins[c] == team })
}

// Play applies move for the team to move. Illegal moves panic.
func (gs GameState) Play(move Move) State {
	gm, ok := move.(GameMove)
	if !ok {
		panic(fmt.Sprintf("unexpected move type %T", move))
	}
	if gs.over {
		panic("cannot play on a finished game")
	}
	if !gs.isLegal(gm) {
		panic(fmt.Sprintf("illegal move %v for %v", gm, gs.current))
	}

	next := gs
	if !gm.IsPlacement() {
		next.penguins[gm.From] = NoTeam
	} else {
		next.placed[gs.current]++
	}
	next.penguins[gm.To] = gs.current
	next.scores[gs.current] += int(gs.fish[gm.To])
	next.fish[gm.To] = 0
	next.last = gm
	next.hasLast = true
	next.turn++
	next.settleTurn(gs.current.Opponent())
	return next
}

func (gs GameState) isLegal(gm GameMove) bool {
	if gm.To < 0 || gm.To >= Cells {
		return false
	}
	if gm.IsPlacement() {
		return gs.placing(gs.current) && gs.fish[gm.To] == 1
	}
	if gs.placing(gs.current) || gm.From < 0 || gm.From >= Cells || gs.penguins[gm.From] != gs.current {
		return false
	}
	return lo.Contains(gs.slides(gm.From), gm.To)
}

// settleTurn hands the turn to preferred, skipping a team without moves, and
// ends the game once neither team can move.
func (gs *GameState) settleTurn(preferred Team) {
	switch {
	case gs.hasMoves(preferred):
		gs.current = preferred
	case gs.hasMoves(preferred.Opponent()):
		gs.current = preferred.Opponent()
	default:
		gs.current = preferred
		gs.over = true
	}
}

// Winner returns the team with more fish on a finished game, NoTeam otherwise
// or on a draw.
func (gs GameState) Winner() Team {
	if !gs.over || gs.scores[One] == gs.scores[Two] {
		return NoTeam
	}
	if gs.scores[One] > gs.scores[Two] {
		return One
	}
	return Two
}

// Territory

func (gs GameState) Cells() int {
	return Cells
}

func (gs GameState) Occupied(player string) []Cell {
	team, err := ParseTeam(player)
	if err != nil {
		panic(err)
	}
	return gs.occupied(team)
}

func (gs GameState) Destinations(from Cell) []Cell {
	return gs.slides(from)
}

func (gs GameState) Value(cell Cell) int {
	return int(gs.fish[cell])
}

// Board draws the fields, one row per line.
func (gs GameState) Board() string {
	var b strings.Builder
	for y := 0; y < Height; y++ {
		if y%2 == 1 {
			b.WriteByte(' ')
		}
		for x := 0; x < Width; x++ {
			if x > 0 {
				b.WriteByte(' ')
			}
			c := CellAt(x, y)
			switch {
			case gs.penguins[c] == One:
				b.WriteByte('A')
			case gs.penguins[c] == Two:
				b.WriteByte('B')
			case gs.fish[c] == 0:
				b.WriteByte('.')
			default:
				b.WriteByte(byte('0' + gs.fish[c]))
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (gs GameState) String() string {
	return fmt.Sprintf("%s%v to move, fish %d:%d", gs.Board(), gs.current, gs.scores[One], gs.scores[Two])
}

var allCells = lo.Map(make([]struct{}, Cells), func(_ struct{}, i int) Cell { return Cell(i) })
