package engine

import "fmt"

// MeetingPoint is the fixed highlighted cell. It is not derived from either
// piece's reachable cells.
var MeetingPoint = Coord{Row: 4, Col: 5}

// State is everything a render pass needs. Positions are set once and never
// moved.
type State struct {
	Board        *Board
	BishopPos    Coord
	HorsePos     Coord
	MeetingPoint Coord
}

// NewState checks the setup and returns the session state.
func NewState(board *Board, bishop, horse Coord) (State, error) {
	if board.Rows <= 0 || board.Cols <= 0 {
		return State{}, fmt.Errorf("board %dx%d: %w", board.Rows, board.Cols, ErrInvalidConfig)
	}

	if err := checkPlacement(board, Bishop, bishop); err != nil {
		return State{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := checkPlacement(board, Horse, horse); err != nil {
		return State{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return State{
		Board:        board,
		BishopPos:    bishop,
		HorsePos:     horse,
		MeetingPoint: MeetingPoint,
	}, nil
}

func checkPlacement(board *Board, p Piece, pos Coord) error {
	if !board.InBounds(pos) {
		return fmt.Errorf("%s at %v on %dx%d board: %w", p, pos, board.Rows, board.Cols, ErrOutOfBounds)
	}
	if board.IsBlocked(pos) {
		return fmt.Errorf("%s at %v: %w", p, pos, ErrBlockedCell)
	}
	return nil
}

func (s State) Position(p Piece) Coord {
	if p == Horse {
		return s.HorsePos
	}
	return s.BishopPos
}

// Reachable returns the cells piece p could move to from its position.
func (s State) Reachable(p Piece) []Coord {
	pos := s.Position(p)

	switch p {
	case Bishop:
		return s.Board.DiagonalMoves(pos.Row, pos.Col)
	case Horse:
		return s.Board.JumpMoves(pos.Row, pos.Col)
	default:
		panic(fmt.Sprintf("invalid piece: %d", p))
	}
}

// HasMeetingPoint reports whether the meeting point lies on the board.
func (s State) HasMeetingPoint() bool {
	return s.Board.InBounds(s.MeetingPoint)
}
