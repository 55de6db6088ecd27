package engine

/**
 * Move generation for the two pieces. Nothing here mutates the board or a
 * piece position: the results are the cells a piece could reach.
 */

// DiagonalMoves slides outward from (row, col) along each diagonal and stops
// at the first cell that is off the board or blocked. Results are grouped by
// direction (see Diagonals), nearest cell first.
func (b *Board) DiagonalMoves(row, col int) []Coord {
	var moves []Coord

	for _, dir := range Diagonals {
		moves = append(moves, b.DiagonalRay(row, col, dir)...)
	}

	return moves
}

// DiagonalRay is the part of DiagonalMoves that lies in direction dir.
func (b *Board) DiagonalRay(row, col int, dir Direction) []Coord {
	var moves []Coord

	from := Coord{Row: row, Col: col}
	offset := DirToOffset(dir)
	maxSteps := max(b.Rows, b.Cols)

	for step := 1; step <= maxSteps; step++ {
		dest := from.Add(offset.Scale(step))
		if !b.IsValid(dest.Row, dest.Col) {
			break
		}
		moves = append(moves, dest)
	}

	return moves
}

// JumpMoves applies each of JumpOffsets to (row, col) and keeps the landing
// cells that pass IsValid. Intervening cells are never inspected.
func (b *Board) JumpMoves(row, col int) []Coord {
	var moves []Coord

	from := Coord{Row: row, Col: col}

	for _, offset := range JumpOffsets {
		dest := from.Add(offset)
		if b.IsValid(dest.Row, dest.Col) {
			moves = append(moves, dest)
		}
	}

	return moves
}
