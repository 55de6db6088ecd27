package engine

type Piece int

const (
	// Bishop slides along diagonals.
	Bishop Piece = iota
	// Horse jumps in the (2,1) pattern.
	Horse
)

var Pieces = [2]Piece{Bishop, Horse}

func (p Piece) String() string {
	switch p {
	case Bishop:
		return "bishop"
	case Horse:
		return "horse"
	default:
		return "unknown"
	}
}
