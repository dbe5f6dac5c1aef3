package game

// Piece marks a board cell.
type Piece int8

const (
	Empty  Piece = iota // 0
	First               // 1
	Second              // 2
)

const (
	FirstMarker  = 'X'
	SecondMarker = 'O'
	EmptyMarker  = ' '
)

// Next returns the opponent of p. Empty has no opponent.
func (p Piece) Next() Piece {
	switch p {
	case First:
		return Second
	case Second:
		return First
	default:
		return Empty
	}
}

func (p Piece) Occupied() bool {
	return p != Empty
}

func (p Piece) Rune() rune {
	switch p {
	case First:
		return FirstMarker
	case Second:
		return SecondMarker
	default:
		return EmptyMarker
	}
}

// parsePiece is lenient: anything that is not a player marker is empty.
func parsePiece(b byte) Piece {
	switch b {
	case FirstMarker:
		return First
	case SecondMarker:
		return Second
	default:
		return Empty
	}
}

func (p Piece) String() string {
	switch p {
	case First:
		return "First"
	case Second:
		return "Second"
	default:
		return "Empty"
	}
}
