package ui

import "fmt"

// Layer orders the draw passes. Later layers paint over earlier ones.
type Layer int

const (
	LabelLayer Layer = iota
	GridLayer
	SpriteLayer
	BlockedLayer
	JumpLayer
	DiagonalLayer
	MeetingLayer
)

func (l Layer) String() string {
	switch l {
	case LabelLayer:
		return "Label"
	case GridLayer:
		return "Grid"
	case SpriteLayer:
		return "Sprite"
	case BlockedLayer:
		return "Blocked"
	case JumpLayer:
		return "Jump"
	case DiagonalLayer:
		return "Diagonal"
	case MeetingLayer:
		return "Meeting"
	default:
		panic(fmt.Sprintf("Invalid layer: %d", l))
	}
}
