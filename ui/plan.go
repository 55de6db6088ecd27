package ui

import (
	"image"
	"image/color"

	"github.com/JONAHTHEKING/Buncha-chessboard/engine"
)

type OpKind int

const (
	FillCell OpKind = iota
	StrokeCell
	DrawSprite
	ColumnLabel
	RowLabel
)

// DrawOp is one drawing step of a render pass.
type DrawOp struct {
	Layer Layer
	Kind  OpKind
	Cell  engine.Coord
	Color color.NRGBA
	Width int

	// Piece and Image are set for DrawSprite.
	Piece engine.Piece
	Image image.Image

	// Index is the row or column number for labels.
	Index int
}

// Sprites holds the piece images. An entry stays nil until its image has
// loaded, and the piece is simply not drawn until then.
type Sprites struct {
	Bishop image.Image
	Horse  image.Image
}

func (s *Sprites) Get(p engine.Piece) image.Image {
	if p == engine.Horse {
		return s.Horse
	}
	return s.Bishop
}

func (s *Sprites) Set(p engine.Piece, img image.Image) {
	if p == engine.Horse {
		s.Horse = img
		return
	}
	s.Bishop = img
}

// Plan lays out one render pass for state. Reachable cells are recomputed on
// every call.
func Plan(state engine.State, sprites Sprites) []DrawOp {
	board := state.Board
	ops := make([]DrawOp, 0, board.Rows*board.Cols+board.Rows+board.Cols)

	for col := 0; col < board.Cols; col++ {
		ops = append(ops, DrawOp{Layer: LabelLayer, Kind: ColumnLabel, Index: col, Color: LabelColor})
	}
	for row := 0; row < board.Rows; row++ {
		ops = append(ops, DrawOp{Layer: LabelLayer, Kind: RowLabel, Index: row, Color: LabelColor})
	}

	for row := 0; row < board.Rows; row++ {
		for col := 0; col < board.Cols; col++ {
			ops = append(ops, DrawOp{
				Layer: GridLayer,
				Kind:  StrokeCell,
				Cell:  engine.Coord{Row: row, Col: col},
				Color: GridColor,
				Width: gridStrokeWidth,
			})
		}
	}

	for _, p := range engine.Pieces {
		img := sprites.Get(p)
		if img == nil {
			continue
		}
		ops = append(ops, DrawOp{Layer: SpriteLayer, Kind: DrawSprite, Cell: state.Position(p), Piece: p, Image: img})
	}

	for _, c := range board.Blocked() {
		if !board.InBounds(c) {
			continue
		}
		ops = append(ops,
			DrawOp{Layer: BlockedLayer, Kind: FillCell, Cell: c, Color: BlockedColor},
			DrawOp{Layer: BlockedLayer, Kind: StrokeCell, Cell: c, Color: BlockedBorder, Width: blockedStrokeWidth},
		)
	}

	ops = appendFills(ops, JumpLayer, state.Reachable(engine.Horse), JumpColor)
	ops = appendFills(ops, DiagonalLayer, state.Reachable(engine.Bishop), DiagonalColor)

	if state.HasMeetingPoint() {
		ops = append(ops, DrawOp{Layer: MeetingLayer, Kind: FillCell, Cell: state.MeetingPoint, Color: MeetingColor})
	}

	return ops
}

func appendFills(ops []DrawOp, layer Layer, cells []engine.Coord, c color.NRGBA) []DrawOp {
	for _, cell := range cells {
		ops = append(ops, DrawOp{Layer: layer, Kind: FillCell, Cell: cell, Color: c})
	}
	return ops
}
