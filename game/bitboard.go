package game

// Bitboard encodes a position as occupancy masks in the lane layout: bit col*(Rows+1) + row.
// Masks are relative to the player to move, so playing a move swaps them.
type Bitboard struct {
	current  uint64 // pieces of the player to move
	opponent uint64 // pieces of the player who just moved
	heights  uint64 // per lane, the bit of the lowest open cell
	moves    int
}

// StartBitboard returns the empty board with the first player to move.
func StartBitboard() Bitboard {
	return Bitboard{heights: bottomMask}
}

// EncodeBitboard parses rows like EncodeArray. A column is filled bottom-up and stops at its first empty cell.
func EncodeBitboard(rows []string) Bitboard {
	var first, second, heights uint64
	moves := 0
	for c := 0; c < Cols; c++ {
		cell := cellBit(0, c)
		for r := 0; r < Rows; r++ {
			row := rowAt(rows, r)
			if c >= len(row) {
				break
			}
			piece := parsePiece(row[c])
			if !piece.Occupied() {
				break
			}
			if piece == First {
				first |= cell
			} else {
				second |= cell
			}
			moves++
			cell <<= 1
		}
		heights |= cell
	}

	b := Bitboard{current: first, opponent: second, heights: heights, moves: moves}
	if moves&1 == 1 {
		b.current, b.opponent = second, first
	}
	return b
}

func (b Bitboard) PlayMove(col int) (Bitboard, bool) {
	if col < 0 || col >= Cols {
		return Bitboard{}, false
	}

	move := b.heights & (laneMask << (col * laneBits))
	if move&playableMask == 0 { // Height bit reached the sentinel
		return Bitboard{}, false
	}

	return Bitboard{
		current:  b.opponent,
		opponent: b.current | move,
		heights:  b.heights + move,
		moves:    b.moves + 1,
	}, true
}

func (b Bitboard) NextStates() []Bitboard {
	next := make([]Bitboard, 0, Cols)
	for _, col := range DefaultMoveOrder {
		if child, ok := b.PlayMove(col); ok {
			next = append(next, child)
		}
	}
	return next
}

// vertical, diagonal, horizontal, anti-diagonal
var shifts = [4]int{1, laneBits - 1, laneBits, laneBits + 1}

// IsWin reports whether the player who just moved has four in a row.
func (b Bitboard) IsWin() bool {
	for _, shift := range shifts {
		run := b.opponent
		for i := 0; i < 3; i++ {
			run &= run >> shift
		}
		if run != 0 {
			return true
		}
	}
	return false
}

func (b Bitboard) BoardFull() bool {
	return b.moves == BoardSize
}

func (b Bitboard) MovesMade() int {
	return b.moves
}

func (b Bitboard) MaxEval() int {
	return maxEval(b.moves)
}

func (b Bitboard) Player() Piece {
	return playerAfter(b.moves)
}

func (b Bitboard) Key() Key {
	first := b.current
	if b.Player() == Second {
		first = b.opponent
	}
	return Key{First: first, Occupied: b.current | b.opponent}
}

func (b Bitboard) PieceAt(row, col int) Piece {
	bit := cellBit(row, col)
	switch {
	case b.current&bit != 0:
		return b.Player()
	case b.opponent&bit != 0:
		return b.Player().Next()
	default:
		return Empty
	}
}

func (b Bitboard) Decode() []string {
	return decode(b.PieceAt)
}

func (b Bitboard) String() string {
	return render(b.Decode())
}
