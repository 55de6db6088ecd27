// Package term shows the board in a terminal.
package term

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/gdamore/tcell/v2"

	"github.com/JONAHTHEKING/Buncha-chessboard/engine"
	"github.com/JONAHTHEKING/Buncha-chessboard/ui"
)

// Each board cell takes cellWidth terminal columns. The board starts below
// the column labels and right of the row labels.
const (
	cellWidth   = 2
	labelWidth  = 3
	labelHeight = 1
)

var ErrTooSmall = errors.New("terminal too small for board")

type View struct {
	screen tcell.Screen
	grid   *ui.CellGrid
}

func NewView(screen tcell.Screen, grid *ui.CellGrid) *View {
	return &View{screen: screen, grid: grid}
}

func toColor(c color.NRGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// CellOrigin is the screen position of the left column of cell c.
func CellOrigin(c engine.Coord) (x, y int) {
	return labelWidth + c.Col*cellWidth, labelHeight + c.Row
}

func (v *View) Draw() {
	v.screen.Clear()

	base := tcell.StyleDefault.
		Background(toColor(ui.BackgroundColor)).
		Foreground(toColor(ui.LabelColor))

	for col, label := range v.grid.ColLabels {
		x, _ := CellOrigin(engine.Coord{Col: col})
		v.puts(x, 0, label, base)
	}
	for row, label := range v.grid.RowLabels {
		_, y := CellOrigin(engine.Coord{Row: row})
		v.puts(0, y, fmt.Sprintf("%*s", labelWidth-1, label), base)
	}

	for row := 0; row < v.grid.Rows; row++ {
		for col := 0; col < v.grid.Cols; col++ {
			c := engine.Coord{Row: row, Col: col}
			v.drawCell(c, *v.grid.At(c), base)
		}
	}

	v.screen.Show()
}

func (v *View) drawCell(c engine.Coord, cell ui.GridCell, base tcell.Style) {
	style := base
	if cell.Background.A > 0 {
		style = style.Background(toColor(cell.Background))
	}

	left, right := ' ', ' '
	switch {
	case cell.Glyph != 0:
		left = cell.Glyph
	case cell.Border.A > 0:
		style = style.Foreground(toColor(cell.Border))
		left, right = '[', ']'
	}

	x, y := CellOrigin(c)
	v.screen.SetContent(x, y, left, nil, style)
	v.screen.SetContent(x+1, y, right, nil, style)
}

func (v *View) puts(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		v.screen.SetContent(x+i, y, r, nil, style)
	}
}

// Run draws the board and waits for q, Esc or Ctrl-C. It fails with
// ErrTooSmall when the screen cannot hold the whole board.
func (v *View) Run() error {
	width, height := Size(v.grid)
	if w, h := v.screen.Size(); w < width || h < height {
		return fmt.Errorf("%w: have %dx%d, need %dx%d", ErrTooSmall, w, h, width, height)
	}

	v.Draw()

	for {
		switch ev := v.screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			v.screen.Sync()
			v.Draw()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				return nil
			}
		}
	}
}

// Show opens the terminal screen and runs a view of grid on it.
func Show(grid *ui.CellGrid) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()

	return NewView(screen, grid).Run()
}

// Size is the screen area the board needs, labels included.
func Size(grid *ui.CellGrid) (width, height int) {
	return labelWidth + grid.Cols*cellWidth, labelHeight + grid.Rows
}

