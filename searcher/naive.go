package searcher

import (
	"connect4/game"
	"context"
)

// Naive searches the full tree with alpha-beta pruning and no memory between branches.
type Naive[S game.State[S]] struct{}

func NewNaive[S game.State[S]]() *Naive[S] {
	return &Naive[S]{}
}

func (n *Naive[S]) EvaluatePosition(state S) Result {
	s := newSearch[S](context.Background(), nil, 0)
	eval := s.naive(state, WorstEval, BestEval)
	return Result{Eval: eval, StatesEvaluated: s.statesEvaluated}
}
