package engine

import "connect4/game"

// Agent picks the next state of a game. It returns false when it has no move to offer.
type Agent[S game.State[S]] interface {
	FindMove(state S) (S, bool)
}

type Outcome[S game.State[S]] struct {
	Winner  game.Piece // Empty for a draw
	Plies   int
	History []S // start state first
}
