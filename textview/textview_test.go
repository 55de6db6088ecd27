package textview

import (
	"image"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/JONAHTHEKING/Buncha-chessboard/config"
	"github.com/JONAHTHEKING/Buncha-chessboard/testutil"
	"github.com/JONAHTHEKING/Buncha-chessboard/ui"
)

func defaultGrid(t *testing.T) *ui.CellGrid {
	t.Helper()
	state, err := config.Default().State()
	testutil.AssertNoError(t, err)

	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	return ui.RenderCellGrid(state, ui.Sprites{Bishop: img, Horse: img})
}

func TestRenderLayout(t *testing.T) {
	out := Render(defaultGrid(t))
	lines := strings.Split(ansi.Strip(out), "\n")

	testutil.AssertEqual(t, len(lines), 9)
	for i, line := range lines {
		if got := len([]rune(line)); got != labelWidth+8*cellWidth {
			t.Errorf("line %d width = %d; want %d: %q", i, got, labelWidth+8*cellWidth, line)
		}
	}

	testutil.AssertEqual(t, lines[0], "   0 1 2 3 4 5 6 7 ")
	testutil.AssertEqual(t, lines[4][:labelWidth], " 3 ")
}

func TestRenderCells(t *testing.T) {
	lines := strings.Split(ansi.Strip(Render(defaultGrid(t))), "\n")

	cell := func(row, col int) string {
		start := labelWidth + col*cellWidth
		return lines[row+1][start : start+cellWidth]
	}

	testutil.AssertEqual(t, cell(3, 2), "B ")
	testutil.AssertEqual(t, cell(6, 6), "H ")
	testutil.AssertEqual(t, cell(6, 7), "[]")
	testutil.AssertEqual(t, cell(7, 1), "[]")
	testutil.AssertEqual(t, cell(4, 5), "  ")
}

func TestCellTextStyles(t *testing.T) {
	text, style := cellText(ui.GridCell{Background: ui.JumpColor})
	testutil.AssertEqual(t, text, "  ")
	if style.GetBackground() != ui.JumpColor {
		t.Errorf("background = %v; want %v", style.GetBackground(), ui.JumpColor)
	}

	text, style = cellText(ui.GridCell{Background: ui.BlockedColor, Border: ui.BlockedBorder})
	testutil.AssertEqual(t, text, "[]")
	if style.GetForeground() != ui.BlockedBorder {
		t.Errorf("foreground = %v; want %v", style.GetForeground(), ui.BlockedBorder)
	}
}
