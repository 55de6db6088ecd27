package ui

import (
	"fmt"
	"image"
	"image/color"

	"github.com/JONAHTHEKING/Buncha-chessboard/engine"
)

// Surface is anything a render pass can draw on.
type Surface interface {
	FillCell(c engine.Coord, fill color.NRGBA)
	StrokeCell(c engine.Coord, stroke color.NRGBA, width int)
	DrawSprite(c engine.Coord, p engine.Piece, img image.Image)
	DrawLabel(kind OpKind, index int, fg color.NRGBA)
}

// Render replays ops onto s in order.
func Render(s Surface, ops []DrawOp) {
	for _, op := range ops {
		switch op.Kind {
		case FillCell:
			s.FillCell(op.Cell, op.Color)
		case StrokeCell:
			s.StrokeCell(op.Cell, op.Color, op.Width)
		case DrawSprite:
			s.DrawSprite(op.Cell, op.Piece, op.Image)
		case ColumnLabel, RowLabel:
			s.DrawLabel(op.Kind, op.Index, op.Color)
		default:
			panic(fmt.Sprintf("Invalid op kind: %d", op.Kind))
		}
	}
}
