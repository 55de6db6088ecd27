package ui

import (
	"image"
	"image/color"
	"strconv"

	"github.com/JONAHTHEKING/Buncha-chessboard/engine"
)

// GridCell is one board cell as seen by a character-cell view. A zero
// Background or Border means nothing was painted.
type GridCell struct {
	Background color.NRGBA
	Border     color.NRGBA
	Glyph      rune
}

// CellGrid is a Surface for views that draw whole characters per cell
// (terminal, styled text). Thin strokes are the character grid itself and
// are not recorded; only emphasis borders are.
type CellGrid struct {
	Rows      int
	Cols      int
	Cells     [][]GridCell
	RowLabels []string
	ColLabels []string
}

func NewCellGrid(rows, cols int) *CellGrid {
	g := &CellGrid{
		Rows:      rows,
		Cols:      cols,
		Cells:     make([][]GridCell, rows),
		RowLabels: make([]string, rows),
		ColLabels: make([]string, cols),
	}

	for i := range g.Cells {
		g.Cells[i] = make([]GridCell, cols)
	}

	return g
}

// RenderCellGrid runs a full render pass of state into a fresh grid.
func RenderCellGrid(state engine.State, sprites Sprites) *CellGrid {
	g := NewCellGrid(state.Board.Rows, state.Board.Cols)
	Render(g, Plan(state, sprites))
	return g
}

func (g *CellGrid) At(c engine.Coord) *GridCell {
	if c.Row < 0 || c.Row >= g.Rows || c.Col < 0 || c.Col >= g.Cols {
		return nil
	}
	return &g.Cells[c.Row][c.Col]
}

// FillCell paints over whatever the cell held, glyph included.
func (g *CellGrid) FillCell(c engine.Coord, fill color.NRGBA) {
	if cell := g.At(c); cell != nil {
		cell.Background = fill
		cell.Glyph = 0
	}
}

func (g *CellGrid) StrokeCell(c engine.Coord, stroke color.NRGBA, width int) {
	if width < blockedStrokeWidth {
		return
	}
	if cell := g.At(c); cell != nil {
		cell.Border = stroke
	}
}

func (g *CellGrid) DrawSprite(c engine.Coord, p engine.Piece, _ image.Image) {
	if cell := g.At(c); cell != nil {
		cell.Glyph = PieceGlyph(p)
	}
}

func (g *CellGrid) DrawLabel(kind OpKind, index int, _ color.NRGBA) {
	switch kind {
	case ColumnLabel:
		if index < g.Cols {
			g.ColLabels[index] = strconv.Itoa(index)
		}
	case RowLabel:
		if index < g.Rows {
			g.RowLabels[index] = strconv.Itoa(index)
		}
	}
}

// PieceGlyph is the letter used for a piece where no image can be shown.
func PieceGlyph(p engine.Piece) rune {
	if p == engine.Horse {
		return 'H'
	}
	return 'B'
}
