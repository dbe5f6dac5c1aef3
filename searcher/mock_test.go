package searcher

import (
	"connect4/game"
	"fmt"
)

// mockState is a hand-built game tree. Hooks run when the search touches a state.
type mockState struct {
	id       uint64
	moves    int
	win      bool
	full     bool
	children []*mockState
	onMoves  func()
	onNext   func()
	onWin    func()
}

func (m *mockState) PlayMove(col int) (*mockState, bool) {
	if col < 0 || col >= len(m.children) {
		return nil, false
	}
	return m.children[col], true
}

func (m *mockState) NextStates() []*mockState {
	if m.onNext != nil {
		m.onNext()
	}
	return m.children
}

func (m *mockState) IsWin() bool {
	if m.onWin != nil {
		m.onWin()
	}
	return m.win
}

func (m *mockState) BoardFull() bool {
	return m.full
}

func (m *mockState) MovesMade() int {
	if m.onMoves != nil {
		m.onMoves()
	}
	return m.moves
}

func (m *mockState) MaxEval() int {
	return (game.BoardSize + 1 - m.moves) >> 1
}

func (m *mockState) Player() game.Piece {
	if m.moves%2 == 0 {
		return game.First
	}
	return game.Second
}

func (m *mockState) Key() game.Key {
	return game.Key{First: m.id, Occupied: m.id}
}

func (m *mockState) Decode() []string {
	return nil
}

func (m *mockState) String() string {
	return fmt.Sprintf("mock state %d", m.id)
}
