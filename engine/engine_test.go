package engine

import (
	"testing"

	"github.com/JONAHTHEKING/Buncha-chessboard/testutil"
)

func TestDiagonalMovesOpenBoard(t *testing.T) {
	b := NewBoard(8, 8, nil)

	want := []Coord{
		{2, 1}, {1, 0}, // up-left
		{2, 3}, {1, 4}, {0, 5}, // up-right
		{4, 1}, {5, 0}, // down-left
		{4, 3}, {5, 4}, {6, 5}, {7, 6}, // down-right
	}

	testutil.AssertEqual(t, b.DiagonalMoves(3, 2), want)
}

func TestDiagonalRay(t *testing.T) {
	b := NewBoard(8, 8, []Coord{{0, 5}})

	tests := []struct {
		dir  Direction
		name string
		want []Coord
	}{
		{UpLeft, "up-left", []Coord{{2, 1}, {1, 0}}},
		{UpRight, "up-right", []Coord{{2, 3}, {1, 4}}},
		{DownLeft, "down-left", []Coord{{4, 1}, {5, 0}}},
		{DownRight, "down-right", []Coord{{4, 3}, {5, 4}, {6, 5}, {7, 6}}},
	}

	var all []Coord
	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			testutil.AssertEqual(t, tt.dir.String(), tt.name)
			testutil.AssertEqual(t, b.DiagonalRay(3, 2, tt.dir), tt.want)
		})
		all = append(all, tt.want...)
	}

	testutil.AssertEqual(t, b.DiagonalMoves(3, 2), all)
}

func TestDiagonalMovesAdjacentBlock(t *testing.T) {
	open := NewBoard(8, 8, nil).DiagonalMoves(3, 2)
	blocked := NewBoard(8, 8, []Coord{{4, 3}}).DiagonalMoves(3, 2)

	var want []Coord
	for _, c := range open {
		if c.Row > 3 && c.Col > 2 {
			continue
		}
		want = append(want, c)
	}

	testutil.AssertEqual(t, blocked, want)
}

func TestDiagonalMovesStopAtFirstInvalid(t *testing.T) {
	tests := []struct {
		name    string
		blocked []Coord
		from    Coord
		want    []Coord
	}{
		{
			name:    "block mid diagonal",
			blocked: []Coord{{5, 4}},
			from:    Coord{3, 2},
			want:    []Coord{{2, 1}, {1, 0}, {2, 3}, {1, 4}, {0, 5}, {4, 1}, {5, 0}, {4, 3}},
		},
		{
			name: "corner",
			from: Coord{0, 0},
			want: []Coord{{1, 1}, {2, 2}, {3, 3}, {4, 4}, {5, 5}, {6, 6}, {7, 7}},
		},
		{
			name:    "boxed in",
			blocked: []Coord{{2, 2}, {2, 4}, {4, 2}, {4, 4}},
			from:    Coord{3, 3},
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoard(8, 8, tt.blocked)
			testutil.AssertEqual(t, b.DiagonalMoves(tt.from.Row, tt.from.Col), tt.want)
		})
	}
}

func TestDiagonalMovesNeverPassInvalidCell(t *testing.T) {
	b := NewBoard(8, 8, []Coord{{0, 3}, {2, 0}, {4, 3}, {2, 6}, {0, 7}, {6, 7}, {7, 1}})

	for row := 0; row < b.Rows; row++ {
		for col := 0; col < b.Cols; col++ {
			from := Coord{row, col}
			for _, dest := range b.DiagonalMoves(row, col) {
				dr := sign(dest.Row - row)
				dc := sign(dest.Col - col)
				for cur := from.Add(Coord{dr, dc}); cur != dest; cur = cur.Add(Coord{dr, dc}) {
					if !b.IsValid(cur.Row, cur.Col) {
						t.Errorf("from %v: move %v passes invalid cell %v", from, dest, cur)
					}
				}
				if !b.IsValid(dest.Row, dest.Col) {
					t.Errorf("from %v: move %v is not valid", from, dest)
				}
			}
		}
	}
}

func TestDiagonalMovesRectangularBoard(t *testing.T) {
	b := NewBoard(2, 6, nil)

	testutil.AssertEqual(t, b.DiagonalMoves(0, 0), []Coord{{1, 1}})
	testutil.AssertEqual(t, b.DiagonalMoves(1, 3), []Coord{{0, 2}, {0, 4}})
}

func TestJumpMovesEdge(t *testing.T) {
	b := NewBoard(8, 8, nil)

	testutil.AssertEqual(t, b.JumpMoves(6, 6), []Coord{{4, 7}, {4, 5}, {5, 4}, {7, 4}})
}

func TestJumpMovesOrder(t *testing.T) {
	b := NewBoard(8, 8, nil)

	want := []Coord{{5, 4}, {4, 5}, {2, 5}, {1, 4}, {1, 2}, {2, 1}, {4, 1}, {5, 2}}
	testutil.AssertEqual(t, b.JumpMoves(3, 3), want)
}

func TestJumpMovesIgnoreInterveningCells(t *testing.T) {
	// every neighbour of (3,3) is blocked; jumps land beyond them
	var ring []Coord
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr != 0 || dc != 0 {
				ring = append(ring, Coord{3 + dr, 3 + dc})
			}
		}
	}
	b := NewBoard(8, 8, ring)

	if got := len(b.JumpMoves(3, 3)); got != 8 {
		t.Errorf("len(JumpMoves(3,3)) = %d; want 8", got)
	}
}

func TestJumpMovesProperties(t *testing.T) {
	b := NewBoard(8, 8, []Coord{{0, 3}, {2, 0}, {4, 3}, {2, 6}, {0, 7}, {6, 7}, {7, 1}})

	for row := 0; row < b.Rows; row++ {
		for col := 0; col < b.Cols; col++ {
			moves := b.JumpMoves(row, col)
			if len(moves) > 8 {
				t.Errorf("JumpMoves(%d, %d) returned %d moves", row, col, len(moves))
			}
			for _, m := range moves {
				dr, dc := abs(m.Row-row), abs(m.Col-col)
				if !((dr == 1 && dc == 2) || (dr == 2 && dc == 1)) {
					t.Errorf("JumpMoves(%d, %d): %v is not a jump away", row, col, m)
				}
				if !b.IsValid(m.Row, m.Col) {
					t.Errorf("JumpMoves(%d, %d): %v is not valid", row, col, m)
				}
			}
		}
	}
}

func TestMovesAreIdempotent(t *testing.T) {
	b := NewBoard(8, 8, []Coord{{4, 3}, {7, 1}})

	testutil.AssertEqual(t, b.DiagonalMoves(3, 2), b.DiagonalMoves(3, 2))
	testutil.AssertEqual(t, b.JumpMoves(6, 6), b.JumpMoves(6, 6))
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
