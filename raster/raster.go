// Package raster renders the board into an in-memory image, for PNG export.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"strconv"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/JONAHTHEKING/Buncha-chessboard/engine"
	"github.com/JONAHTHEKING/Buncha-chessboard/ui"
	"github.com/JONAHTHEKING/Buncha-chessboard/utils"
)

// Canvas is a ui.Surface backed by an RGBA image.
type Canvas struct {
	Image *image.RGBA
	Grid  utils.Grid
	face  font.Face
}

func NewCanvas(rows, cols, cellSize int) *Canvas {
	grid := utils.NewGrid(rows, cols, cellSize, utils.LabelGutter)
	img := image.NewRGBA(image.Rectangle{Max: grid.Size()})
	draw.Draw(img, img.Bounds(), image.NewUniform(ui.BackgroundColor), image.Point{}, draw.Src)

	return &Canvas{Image: img, Grid: grid, face: basicfont.Face7x13}
}

// Render draws a full pass of state onto a new canvas.
func Render(state engine.State, sprites ui.Sprites, cellSize int) *Canvas {
	c := NewCanvas(state.Board.Rows, state.Board.Cols, cellSize)
	ui.Render(c, ui.Plan(state, sprites))
	return c
}

func (c *Canvas) fill(r image.Rectangle, col color.NRGBA) {
	draw.Draw(c.Image, r.Intersect(c.Image.Bounds()), image.NewUniform(col), image.Point{}, draw.Over)
}

func (c *Canvas) FillCell(cell engine.Coord, fill color.NRGBA) {
	c.fill(c.Grid.CellRect(cell), fill)
}

func (c *Canvas) StrokeCell(cell engine.Coord, stroke color.NRGBA, width int) {
	for _, r := range utils.BorderRects(c.Grid.CellRect(cell), width) {
		c.fill(r, stroke)
	}
}

// DrawSprite scales img into the cell, preserving its aspect ratio.
func (c *Canvas) DrawSprite(cell engine.Coord, _ engine.Piece, img image.Image) {
	dst := fitRect(c.Grid.CellRect(cell), img.Bounds().Size())
	draw.CatmullRom.Scale(c.Image, dst, img, img.Bounds(), draw.Over, nil)
}

func (c *Canvas) DrawLabel(kind ui.OpKind, index int, fg color.NRGBA) {
	slot := c.Grid.ColumnLabelRect(index)
	if kind == ui.RowLabel {
		slot = c.Grid.RowLabelRect(index)
	}

	text := strconv.Itoa(index)
	d := &font.Drawer{Dst: c.Image, Src: image.NewUniform(fg), Face: c.face}

	width := d.MeasureString(text).Ceil()
	metrics := c.face.Metrics()
	height := (metrics.Ascent + metrics.Descent).Ceil()

	center := utils.Center(slot)
	d.Dot = fixed.P(center.X-width/2, center.Y-height/2+metrics.Ascent.Ceil())
	d.DrawString(text)
}

// fitRect centers the largest rectangle with src's aspect ratio inside r.
func fitRect(r image.Rectangle, src image.Point) image.Rectangle {
	if src.X <= 0 || src.Y <= 0 {
		return image.Rectangle{}
	}

	w, h := r.Dx(), r.Dy()
	if src.X*h > src.Y*w {
		h = src.Y * w / src.X
	} else {
		w = src.X * h / src.Y
	}

	topLeft := r.Min.Add(image.Point{X: (r.Dx() - w) / 2, Y: (r.Dy() - h) / 2})
	return image.Rectangle{Min: topLeft, Max: topLeft.Add(image.Point{X: w, Y: h})}
}

func (c *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.Image)
}

// WriteFile encodes the canvas as PNG at path.
func (c *Canvas) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err := c.EncodePNG(f); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}

	return f.Close()
}
