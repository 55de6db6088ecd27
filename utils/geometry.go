package utils

import (
	"image"

	"github.com/JONAHTHEKING/Buncha-chessboard/engine"
)

// LabelGutter is the width, in px or dp, of the label strips above and left
// of the board.
const LabelGutter = 20

// StrokeOverhang is how far the widest cell border reaches past the board's
// right and bottom edges.
const StrokeOverhang = 2

// Grid maps board cells to pixel rectangles. Origin is the top-left corner of
// cell (0,0); the label gutters sit above and to the left of it.
type Grid struct {
	Rows     int
	Cols     int
	CellSize int
	Origin   image.Point
}

// NewGrid places the board below a label row and right of a label column,
// each gutter being gutter pixels wide.
func NewGrid(rows, cols, cellSize, gutter int) Grid {
	return Grid{
		Rows:     rows,
		Cols:     cols,
		CellSize: cellSize,
		Origin:   image.Point{X: gutter, Y: gutter},
	}
}

func (g Grid) CellRect(c engine.Coord) image.Rectangle {
	topLeft := g.Origin.Add(image.Point{X: c.Col * g.CellSize, Y: c.Row * g.CellSize})
	return image.Rectangle{Min: topLeft, Max: topLeft.Add(image.Point{X: g.CellSize, Y: g.CellSize})}
}

// Bounds covers the board cells only.
func (g Grid) Bounds() image.Rectangle {
	return image.Rectangle{
		Min: g.Origin,
		Max: g.Origin.Add(image.Point{X: g.Cols * g.CellSize, Y: g.Rows * g.CellSize}),
	}
}

// Size covers the board plus the label gutters and the stroke overhang on the
// far edges.
func (g Grid) Size() image.Point {
	return g.Bounds().Max.Add(image.Point{X: StrokeOverhang, Y: StrokeOverhang})
}

// ColumnLabelRect is the gutter slot above column col.
func (g Grid) ColumnLabelRect(col int) image.Rectangle {
	x := g.Origin.X + col*g.CellSize
	return image.Rect(x, 0, x+g.CellSize, g.Origin.Y)
}

// RowLabelRect is the gutter slot left of row.
func (g Grid) RowLabelRect(row int) image.Rectangle {
	y := g.Origin.Y + row*g.CellSize
	return image.Rect(0, y, g.Origin.X, y+g.CellSize)
}

// Center returns the middle of r, rounded down.
func Center(r image.Rectangle) image.Point {
	return image.Point{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}

// BorderRects returns four strips of the given width centered on the edges
// of r: top, bottom, left, right.
func BorderRects(r image.Rectangle, width int) [4]image.Rectangle {
	lo := width / 2
	hi := width - lo

	return [4]image.Rectangle{
		image.Rect(r.Min.X-lo, r.Min.Y-lo, r.Max.X+hi, r.Min.Y+hi),
		image.Rect(r.Min.X-lo, r.Max.Y-lo, r.Max.X+hi, r.Max.Y+hi),
		image.Rect(r.Min.X-lo, r.Min.Y-lo, r.Min.X+hi, r.Max.Y+hi),
		image.Rect(r.Max.X-lo, r.Min.Y-lo, r.Max.X+hi, r.Max.Y+hi),
	}
}
