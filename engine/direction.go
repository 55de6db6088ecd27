package engine

type Direction int

// Diagonal directions, in the order the diagonal walk visits them:
// row delta -1 before +1, and within each, col delta -1 before +1.
const (
	UpLeft Direction = iota
	UpRight
	DownLeft
	DownRight
)

var Diagonals = [4]Direction{UpLeft, UpRight, DownLeft, DownRight}

func DirToOffset(dir Direction) Coord {
	switch dir {
	case UpLeft:
		return Coord{Row: -1, Col: -1}
	case UpRight:
		return Coord{Row: -1, Col: 1}
	case DownLeft:
		return Coord{Row: 1, Col: -1}
	case DownRight:
		return Coord{Row: 1, Col: 1}
	}
	panic("invalid direction")
}

func (d Direction) String() string {
	switch d {
	case UpLeft:
		return "up-left"
	case UpRight:
		return "up-right"
	case DownLeft:
		return "down-left"
	case DownRight:
		return "down-right"
	default:
		return "unknown"
	}
}

// JumpOffsets are the eight (2,1)-pattern jumps, in result order.
var JumpOffsets = [8]Coord{
	{Row: 2, Col: 1},
	{Row: 1, Col: 2},
	{Row: -1, Col: 2},
	{Row: -2, Col: 1},
	{Row: -2, Col: -1},
	{Row: -1, Col: -2},
	{Row: 1, Col: -2},
	{Row: 2, Col: -1},
}
