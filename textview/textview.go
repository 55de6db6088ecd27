// Package textview prints the board once as styled terminal text.
package textview

import (
	"io"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/JONAHTHEKING/Buncha-chessboard/ui"
)

const (
	cellWidth  = 2
	labelWidth = 3
)

var (
	baseStyle = lipgloss.NewStyle().
			Background(ui.BackgroundColor).
			Foreground(ui.LabelColor)
	labelStyle = lipgloss.NewStyle().Foreground(ui.LabelColor)
)

func cellText(cell ui.GridCell) (string, lipgloss.Style) {
	style := baseStyle
	if cell.Background.A > 0 {
		style = style.Background(cell.Background)
	}

	switch {
	case cell.Glyph != 0:
		return string(cell.Glyph) + " ", style
	case cell.Border.A > 0:
		return "[]", style.Foreground(cell.Border)
	}
	return strings.Repeat(" ", cellWidth), style
}

// Render lays out the grid with its labels.
func Render(grid *ui.CellGrid) string {
	header := []string{strings.Repeat(" ", labelWidth)}
	for _, label := range grid.ColLabels {
		header = append(header, labelStyle.Width(cellWidth).Render(label))
	}

	lines := []string{lipgloss.JoinHorizontal(lipgloss.Top, header...)}

	for row, cells := range grid.Cells {
		parts := []string{
			labelStyle.Width(labelWidth - 1).Align(lipgloss.Right).Render(grid.RowLabels[row]) + " ",
		}
		for _, cell := range cells {
			text, style := cellText(cell)
			parts = append(parts, style.Render(text))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, parts...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// Print writes the rendered grid to w, downsampling colors to what w
// supports.
func Print(w io.Writer, grid *ui.CellGrid) error {
	_, err := lipgloss.Fprintln(w, Render(grid))
	return err
}
