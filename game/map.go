package game

import "fmt"

// The ice floe is an 8x8 hex grid in "odd-r" layout: odd rows are shifted half
// a field to the right. Cells are numbered row by row.
const (
	Width  = 8
	Height = 8
	Cells  = Width * Height

	NoCell Cell = -1
)

// Direction is one of the six hex directions a penguin can slide in.
type Direction int

const (
	Right Direction = iota
	Left
	UpRight
	UpLeft
	DownRight
	DownLeft
	numDirections
)

var directionNames = [numDirections]string{"right", "left", "up-right", "up-left", "down-right", "down-left"}

func (d Direction) String() string {
	if d < 0 || d >= numDirections {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// offsets by row parity (even, odd) then direction, as {dx, dy}
var offsets = [2][numDirections][2]int{
	{{1, 0}, {-1, 0}, {0, -1}, {-1, -1}, {0, 1}, {-1, 1}},
	{{1, 0}, {-1, 0}, {1, -1}, {0, -1}, {1, 1}, {0, 1}},
}

// neighbors holds the adjacent cell per direction, NoCell past the board edge.
var neighbors = createMap()

func createMap() [Cells][numDirections]Cell {
	var m [Cells][numDirections]Cell
	for c := Cell(0); c < Cells; c++ {
		x, y := c.Coords()
		for d := Direction(0); d < numDirections; d++ {
			off := offsets[y%2][d]
			m[c][d] = CellAt(x+off[0], y+off[1])
		}
	}
	return m
}

// CellAt returns the cell at column x and row y, NoCell if off the board.
func CellAt(x, y int) Cell {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return NoCell
	}
	return Cell(y*Width + x)
}

// Coords returns the column and row of c.
func (c Cell) Coords() (x, y int) {
	return int(c) % Width, int(c) / Width
}

func (c Cell) String() string {
	if c == NoCell {
		return "-"
	}
	x, y := c.Coords()
	return fmt.Sprintf("(%d,%d)", x, y)
}

// Neighbor returns the cell adjacent to c in direction d.
func (c Cell) Neighbor(d Direction) Cell {
	if c < 0 || c >= Cells {
		return NoCell
	}
	return neighbors[c][d]
}
