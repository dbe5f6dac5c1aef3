package game

import "errors"

const (
	Rows      = 6
	Cols      = 7
	BoardSize = Rows * Cols
)

// DefaultMoveOrder lists columns center-out. Search node counts depend on it.
var DefaultMoveOrder = [Cols]int{3, 2, 4, 1, 5, 0, 6}

// Each column occupies a lane of Rows+1 bits; the top bit of a lane is a sentinel that no piece ever occupies.
const (
	laneBits  = Rows + 1
	boardBits = Cols * laneBits
	laneMask  = uint64(1)<<laneBits - 1
	// bottomMask has the lowest bit of every lane set
	bottomMask = uint64(0b0000001_0000001_0000001_0000001_0000001_0000001_0000001)
	// playableMask has the Rows playable bits of every lane set
	playableMask = uint64(0b0111111_0111111_0111111_0111111_0111111_0111111_0111111)
)

func cellBit(row, col int) uint64 {
	return uint64(1) << (col*laneBits + row)
}

// Key identifies a board exactly: the first player's pieces and all occupied cells in the lane layout.
// Boards that are equal have equal keys in either encoding, regardless of the order the moves were played in.
type Key struct {
	First    uint64
	Occupied uint64
}

// State should be immutable - operations on State always return a new copy
type State[S any] interface {
	PlayMove(col int) (S, bool)
	NextStates() []S
	IsWin() bool
	BoardFull() bool
	MovesMade() int
	MaxEval() int
	Player() Piece
	Key() Key
	Decode() []string
	String() string
}

// Encoding bundles the constructors of one State implementation.
type Encoding[S State[S]] struct {
	Name   string
	Start  func() S
	Encode func(rows []string) S
}

var ErrUnknownEncoding = errors.New("unknown encoding")

var (
	ArrayEncoding    = Encoding[ArrayState]{Name: "array", Start: StartArray, Encode: EncodeArray}
	BitboardEncoding = Encoding[Bitboard]{Name: "bitboard", Start: StartBitboard, Encode: EncodeBitboard}

	EncodingNames = []string{ArrayEncoding.Name, BitboardEncoding.Name}
)

func maxEval(movesMade int) int {
	return (BoardSize + 1 - movesMade) >> 1
}

func playerAfter(movesMade int) Piece {
	if movesMade&1 == 0 {
		return First
	}
	return Second
}

// rowAt returns the string describing row r counted from the bottom, or "" when rows is too short.
func rowAt(rows []string, r int) string {
	i := Rows - 1 - r
	if i >= len(rows) {
		return ""
	}
	return rows[i]
}

func decode(pieceAt func(row, col int) Piece) []string {
	rows := make([]string, 0, Rows)
	for r := Rows - 1; r >= 0; r-- {
		line := make([]rune, Cols)
		for c := 0; c < Cols; c++ {
			line[c] = pieceAt(r, c).Rune()
		}
		rows = append(rows, string(line))
	}
	return rows
}

func render(rows []string) string {
	size := 0
	for _, row := range rows {
		size += len(row) + 1
	}
	b := make([]byte, 0, size)
	for _, row := range rows {
		b = append(b, row...)
		b = append(b, '\n')
	}
	return string(b)
}
