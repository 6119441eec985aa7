package game

import "fmt"

// GameMove represents a move in the game. Placements have no origin.
type GameMove struct {
	From Cell
	To   Cell
}

// Place returns the move placing a penguin on to.
func Place(to Cell) GameMove {
	return GameMove{From: NoCell, To: to}
}

// Slide returns the move sliding the penguin on from to to.
func Slide(from, to Cell) GameMove {
	return GameMove{From: from, To: to}
}

func (gm GameMove) IsPlacement() bool {
	return gm.From == NoCell
}

func (gm GameMove) String() string {
	if gm.IsPlacement() {
		return fmt.Sprintf("place %v", gm.To)
	}
	return fmt.Sprintf("%v->%v", gm.From, gm.To)
}
