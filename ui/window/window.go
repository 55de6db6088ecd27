// Package window shows the board in a gioui desktop window.
package window

import (
	"image"
	"image/color"
	"io/fs"
	"log"
	"os"
	"strconv"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/JONAHTHEKING/Buncha-chessboard/engine"
	"github.com/JONAHTHEKING/Buncha-chessboard/ui"
	"github.com/JONAHTHEKING/Buncha-chessboard/utils"
)

// ui constants
const labelGutterDp = unit.Dp(utils.LabelGutter)
const strokeOverhangDp = unit.Dp(utils.StrokeOverhang)
const labelTextSize = unit.Sp(16)

type UI struct {
	state    engine.State
	cellSize unit.Dp
	theme    *material.Theme

	sprites  ui.Sprites
	imageOps map[engine.Piece]paint.ImageOp
	loaded   chan ui.SpriteLoaded
}

func New(state engine.State, cellSizeDp int) *UI {
	theme := material.NewTheme()
	theme.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))

	return &UI{
		state:    state,
		cellSize: unit.Dp(cellSizeDp),
		theme:    theme,
		imageOps: make(map[engine.Piece]paint.ImageOp),
		loaded:   make(chan ui.SpriteLoaded, len(engine.Pieces)),
	}
}

// windowSize is the board plus the label gutters and the border overhang, in
// dp.
func (w *UI) windowSize() (unit.Dp, unit.Dp) {
	width := unit.Dp(w.state.Board.Cols)*w.cellSize + labelGutterDp + strokeOverhangDp
	height := unit.Dp(w.state.Board.Rows)*w.cellSize + labelGutterDp + strokeOverhangDp
	return width, height
}

func (w *UI) grid(gtx layout.Context) utils.Grid {
	return utils.NewGrid(w.state.Board.Rows, w.state.Board.Cols, gtx.Dp(w.cellSize), gtx.Dp(labelGutterDp))
}

// collectSprites applies finished loads. It runs on the event loop only, so
// render state never has a second writer.
func (w *UI) collectSprites() {
	for {
		select {
		case r := <-w.loaded:
			w.sprites.Apply(r)
			if r.Err == nil {
				w.imageOps[r.Piece] = paint.NewImageOp(r.Image)
			}
		default:
			return
		}
	}
}

func (w *UI) draw(window *app.Window) error {
	var ops op.Ops

	for {
		switch e := window.Event().(type) {
		case app.DestroyEvent:
			return e.Err
		case app.FrameEvent:
			w.collectSprites()

			gtx := app.NewContext(&ops, e)

			paint.Fill(gtx.Ops, ui.BackgroundColor)

			ui.Render(w.surface(gtx), ui.Plan(w.state, w.sprites))

			e.Frame(gtx.Ops)
		}
	}
}

func (w *UI) surface(gtx layout.Context) *gioSurface {
	return &gioSurface{
		gtx:      gtx,
		grid:     w.grid(gtx),
		theme:    w.theme,
		imageOps: w.imageOps,
	}
}

func (w *UI) run(window *app.Window, fsys fs.FS, names map[engine.Piece]string) error {
	ui.LoadSpritesAsync(fsys, names, func(r ui.SpriteLoaded) {
		w.loaded <- r
		window.Invalidate()
	})

	return w.draw(window)
}

// RunUI opens the board window and blocks until it is closed.
func RunUI(state engine.State, cellSizeDp int, fsys fs.FS, names map[engine.Piece]string) {
	w := New(state, cellSizeDp)

	if w.state.Board.Rows <= 0 || w.state.Board.Cols <= 0 {
		log.Fatalf("Invalid board dimensions: %d, %d", w.state.Board.Rows, w.state.Board.Cols)
	}

	go func() {
		window := new(app.Window)

		width, height := w.windowSize()
		window.Option(
			app.Title("Chessboard"),
			app.Size(width, height),
		)

		err := w.run(window, fsys, names)
		if err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}

// gioSurface draws one frame's ops into a gio operation list.
type gioSurface struct {
	gtx      layout.Context
	grid     utils.Grid
	theme    *material.Theme
	imageOps map[engine.Piece]paint.ImageOp
}

func (s *gioSurface) FillCell(c engine.Coord, fill color.NRGBA) {
	drawRect(s.gtx, s.grid.CellRect(c), fill)
}

func (s *gioSurface) StrokeCell(c engine.Coord, stroke color.NRGBA, width int) {
	px := s.gtx.Dp(unit.Dp(width))
	for _, r := range utils.BorderRects(s.grid.CellRect(c), px) {
		drawRect(s.gtx, r, stroke)
	}
}

// imageOp returns the cached op for p, uploading img on first use.
func (s *gioSurface) imageOp(p engine.Piece, img image.Image) paint.ImageOp {
	imgOp, ok := s.imageOps[p]
	if !ok {
		imgOp = paint.NewImageOp(img)
		s.imageOps[p] = imgOp
	}
	return imgOp
}

func (s *gioSurface) DrawSprite(c engine.Coord, p engine.Piece, img image.Image) {
	imgOp := s.imageOp(p, img)

	r := s.grid.CellRect(c)
	stack := op.Offset(r.Min).Push(s.gtx.Ops)
	defer stack.Pop()

	gtx := s.gtx
	gtx.Constraints = layout.Exact(r.Size())
	widget.Image{Src: imgOp, Fit: widget.Contain}.Layout(gtx)
}

func (s *gioSurface) DrawLabel(kind ui.OpKind, index int, fg color.NRGBA) {
	r := s.grid.ColumnLabelRect(index)
	if kind == ui.RowLabel {
		r = s.grid.RowLabelRect(index)
	}

	stack := op.Offset(r.Min).Push(s.gtx.Ops)
	defer stack.Pop()

	gtx := s.gtx
	gtx.Constraints = layout.Exact(r.Size())

	label := material.Label(s.theme, labelTextSize, strconv.Itoa(index))
	label.Color = fg
	label.Alignment = text.Middle
	layout.Center.Layout(gtx, label.Layout)
}

func drawRect(gtx layout.Context, r image.Rectangle, c color.NRGBA) {
	if r.Dx() < 0 || r.Dy() < 0 {
		panic("Invalid negative width or height")
	}

	if r.Empty() {
		return
	}

	paint.FillShape(gtx.Ops, c, clip.Rect(r).Op())
}
