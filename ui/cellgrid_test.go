package ui

import (
	"image"
	"testing"

	"github.com/JONAHTHEKING/Buncha-chessboard/engine"
	"github.com/JONAHTHEKING/Buncha-chessboard/testutil"
)

func TestRenderCellGrid(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	g := RenderCellGrid(defaultState(t), Sprites{Bishop: img, Horse: img})

	tests := []struct {
		name string
		cell engine.Coord
		want GridCell
	}{
		{"plain cell", engine.Coord{Row: 7, Col: 7}, GridCell{}},
		{"bishop", engine.Coord{Row: 3, Col: 2}, GridCell{Glyph: 'B'}},
		{"horse", engine.Coord{Row: 6, Col: 6}, GridCell{Glyph: 'H'}},
		{"blocked", engine.Coord{Row: 6, Col: 7}, GridCell{Background: BlockedColor, Border: BlockedBorder}},
		{"jump reach", engine.Coord{Row: 7, Col: 4}, GridCell{Background: JumpColor}},
		{"diagonal reach", engine.Coord{Row: 0, Col: 5}, GridCell{Background: DiagonalColor}},
		{"meeting point over jump reach", engine.Coord{Row: 4, Col: 5}, GridCell{Background: MeetingColor}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, *g.At(tt.cell), tt.want)
		})
	}

	testutil.AssertEqual(t, g.ColLabels, []string{"0", "1", "2", "3", "4", "5", "6", "7"})
	testutil.AssertEqual(t, g.RowLabels[7], "7")
}

func TestCellGridFillCoversGlyph(t *testing.T) {
	g := NewCellGrid(2, 2)
	c := engine.Coord{Row: 1, Col: 0}

	g.DrawSprite(c, engine.Horse, nil)
	g.FillCell(c, JumpColor)

	testutil.AssertEqual(t, *g.At(c), GridCell{Background: JumpColor})
}

func TestCellGridIgnoresOutside(t *testing.T) {
	g := NewCellGrid(2, 2)

	g.FillCell(engine.Coord{Row: 2, Col: 0}, JumpColor)
	g.StrokeCell(engine.Coord{Row: -1, Col: 0}, BlockedBorder, 2)
	g.DrawLabel(ColumnLabel, 5, LabelColor)

	if g.At(engine.Coord{Row: 2, Col: 0}) != nil {
		t.Error("At outside the grid returned a cell")
	}
	testutil.AssertEqual(t, g.ColLabels, []string{"", ""})
}
