package game

// ArrayState keeps one Piece per cell. It is the reference encoding: simple, and slower than Bitboard.
type ArrayState struct {
	board     [BoardSize]Piece // column-major: index col*Rows + row, row 0 at the bottom
	player    Piece            // player to move
	lastMove  int              // board index of the most recent move, -1 when no move was played
	movesMade int
	key       Key // maintained incrementally by PlayMove
}

// StartArray returns the empty board with the first player to move.
func StartArray() ArrayState {
	return ArrayState{
		player:   First,
		lastMove: -1,
	}
}

// EncodeArray parses rows, row 0 being the topmost board row. Parsing is lenient: characters other than
// the player markers are empty cells, a short row stops filling that column, and missing rows are empty.
// Cells are kept where they are given, so pieces floating above an empty cell are tolerated.
func EncodeArray(rows []string) ArrayState {
	s := StartArray()
	for c := 0; c < Cols; c++ {
		for r := 0; r < Rows; r++ {
			row := rowAt(rows, r)
			if c >= len(row) {
				break
			}
			piece := parsePiece(row[c])
			if !piece.Occupied() {
				continue
			}
			s.board[boardIndex(r, c)] = piece
			s.movesMade++
			s.key = s.key.with(piece, cellBit(r, c))
		}
	}
	s.player = playerAfter(s.movesMade)
	return s
}

func boardIndex(row, col int) int {
	return col*Rows + row
}

func (k Key) with(piece Piece, bit uint64) Key {
	k.Occupied |= bit
	if piece == First {
		k.First |= bit
	}
	return k
}

// PlayMove drops a piece for the player to move into col, scanning up from the bottom of the column.
func (s ArrayState) PlayMove(col int) (ArrayState, bool) {
	if col < 0 || col >= Cols {
		return ArrayState{}, false
	}

	cell := boardIndex(0, col)
	for s.board[cell].Occupied() {
		cell++
		if cell%Rows == 0 { // Column is full
			return ArrayState{}, false
		}
	}

	next := s
	next.board[cell] = s.player
	next.player = s.player.Next()
	next.lastMove = cell
	next.movesMade++
	next.key = s.key.with(s.player, cellBit(cell%Rows, col))
	return next, true
}

func (s ArrayState) NextStates() []ArrayState {
	next := make([]ArrayState, 0, Cols)
	for _, col := range DefaultMoveOrder {
		if child, ok := s.PlayMove(col); ok {
			next = append(next, child)
		}
	}
	return next
}

// vertical, horizontal and the two diagonals as (row, col) steps
var directions = [4][2]int{{1, 0}, {0, 1}, {1, -1}, {1, 1}}

// IsWin reports whether the piece placed by the last move completes four in a row.
func (s ArrayState) IsWin() bool {
	if s.lastMove < 0 {
		return false
	}

	row, col := s.lastMove%Rows, s.lastMove/Rows
	piece := s.player.Next()
	for _, d := range directions {
		count := 0
		for _, sign := range [2]int{1, -1} {
			dr, dc := sign*d[0], sign*d[1]
			for r, c := row+dr, col+dc; r >= 0 && r < Rows && c >= 0 && c < Cols; r, c = r+dr, c+dc {
				if s.board[boardIndex(r, c)] != piece {
					break
				}
				count++
			}
		}
		if count >= 3 {
			return true
		}
	}
	return false
}

func (s ArrayState) BoardFull() bool {
	return s.movesMade == BoardSize
}

func (s ArrayState) MovesMade() int {
	return s.movesMade
}

func (s ArrayState) MaxEval() int {
	return maxEval(s.movesMade)
}

func (s ArrayState) Player() Piece {
	return s.player
}

func (s ArrayState) Key() Key {
	return s.key
}

func (s ArrayState) PieceAt(row, col int) Piece {
	return s.board[boardIndex(row, col)]
}

func (s ArrayState) Decode() []string {
	return decode(s.PieceAt)
}

func (s ArrayState) String() string {
	return render(s.Decode())
}
