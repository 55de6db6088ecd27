package engine

import "fmt"

// Coord is a (row, col) cell address. Row 0 is the top row.
type Coord struct {
	Row int
	Col int
}

func (c Coord) Add(offset Coord) Coord {
	return Coord{Row: c.Row + offset.Row, Col: c.Col + offset.Col}
}

// Scale multiplies both components by step, used to walk a direction.
func (c Coord) Scale(step int) Coord {
	return Coord{Row: c.Row * step, Col: c.Col * step}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}
