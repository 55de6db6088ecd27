package engine

import "sort"

// Board is the fixed grid plus its blocked cells. It is never mutated after
// NewBoard returns.
type Board struct {
	Rows    int
	Cols    int
	blocked map[Coord]struct{}
}

// NewBoard builds a board. Duplicate blocked cells collapse into one.
func NewBoard(rows, cols int, blocked []Coord) *Board {
	b := &Board{
		Rows:    rows,
		Cols:    cols,
		blocked: make(map[Coord]struct{}, len(blocked)),
	}

	for _, c := range blocked {
		b.blocked[c] = struct{}{}
	}

	return b
}

func (b *Board) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < b.Rows && c.Col >= 0 && c.Col < b.Cols
}

func (b *Board) IsBlocked(c Coord) bool {
	_, ok := b.blocked[c]
	return ok
}

// IsValid reports whether a piece may step onto (row, col): the cell must be
// on the board and not blocked.
func (b *Board) IsValid(row, col int) bool {
	c := Coord{Row: row, Col: col}
	return b.InBounds(c) && !b.IsBlocked(c)
}

// Blocked returns the blocked cells sorted by row, then column.
func (b *Board) Blocked() []Coord {
	cells := make([]Coord, 0, len(b.blocked))
	for c := range b.blocked {
		cells = append(cells, c)
	}

	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Row != cells[j].Row {
			return cells[i].Row < cells[j].Row
		}
		return cells[i].Col < cells[j].Col
	})

	return cells
}
