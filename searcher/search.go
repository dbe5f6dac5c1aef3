package searcher

import (
	"connect4/game"
	"context"
)

// search carries everything one goroutine needs for one top-level call.
type search[S game.State[S]] struct {
	ctx             context.Context // cancelled to stop a helper
	cache           boundCache
	maxCachedDepth  int
	statesEvaluated int
}

func newSearch[S game.State[S]](ctx context.Context, cache boundCache, maxCachedDepth int) *search[S] {
	return &search[S]{
		ctx:            ctx,
		cache:          cache,
		maxCachedDepth: maxCachedDepth,
	}
}

// naive is fail-soft negamax with alpha-beta pruning.
func (s *search[S]) naive(state S, alpha, beta int) int {
	s.statesEvaluated++

	if state.BoardFull() {
		return Draw
	}

	children := state.NextStates()
	for _, child := range children {
		if child.IsWin() {
			return state.MaxEval()
		}
	}

	for _, child := range children {
		alpha = max(alpha, -s.naive(child, -beta, -alpha))
		if alpha >= beta {
			return alpha
		}
	}
	return alpha
}

// cached is naive plus bound caching above the depth ceiling. It returns false once s.ctx is cancelled,
// unwinding the recursion without a value.
func (s *search[S]) cached(state S, alpha, beta int) (int, bool) {
	select {
	case <-s.ctx.Done():
		return 0, false
	default:
	}

	if state.MovesMade() > s.maxCachedDepth {
		return s.naive(state, alpha, beta), true
	}

	s.statesEvaluated++

	if state.BoardFull() {
		return Draw, true
	}

	key := state.Key()
	alpha = max(alpha, s.cache.alpha(key))
	beta = min(beta, s.cache.beta(key))
	if alpha >= beta { // Window closed by known bounds, nothing new to store
		return alpha, true
	}

	children := state.NextStates()
	for _, child := range children {
		if child.IsWin() {
			return state.MaxEval(), true
		}
		// A child's upper bound is a lower bound for this state
		alpha = max(alpha, -s.cache.beta(child.Key()))
	}
	if alpha >= beta {
		return alpha, true
	}

	for _, child := range children {
		eval, ok := s.cached(child, -beta, -alpha)
		if !ok {
			return 0, false
		}
		alpha = max(alpha, -eval)
		if alpha >= beta {
			s.cache.storeAlpha(key, alpha)
			return alpha, true
		}
	}

	s.cache.storeBeta(key, alpha)
	return alpha, true
}
