package searcher

import (
	"connect4/game"
	"context"
)

const cachedMaxDepth = game.BoardSize

// Cached keeps alpha and beta bounds per position for the duration of one call.
type Cached[S game.State[S]] struct {
	maxCachedDepth int
}

func NewCached[S game.State[S]](options ...Option) *Cached[S] {
	c := newConfig(cachedMaxDepth, options)
	return &Cached[S]{maxCachedDepth: c.maxCachedDepth}
}

func (c *Cached[S]) EvaluatePosition(state S) Result {
	s := newSearch[S](context.Background(), newLocalCache(), c.maxCachedDepth)
	eval, _ := s.cached(state, WorstEval, BestEval) // Never cancelled
	return Result{Eval: eval, StatesEvaluated: s.statesEvaluated}
}
