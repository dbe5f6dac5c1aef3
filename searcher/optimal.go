package searcher

import (
	"connect4/game"
	"context"
)

// OptimalNextState returns the child of state with the best evaluation for the player to move. Ties go to the
// child generated first. It returns false when state has no legal move.
func OptimalNextState[S game.State[S]](state S, options ...Option) (S, bool) {
	children := state.NextStates()
	if len(children) == 0 {
		var none S
		return none, false
	}

	for _, child := range children {
		if child.IsWin() {
			return child, true
		}
	}

	c := newConfig(cachedMaxDepth, options)
	s := newSearch[S](context.Background(), newLocalCache(), c.maxCachedDepth)

	// Every child beats the initial bound, so the first child is always a candidate
	best, bestEval := children[0], WorstEval-1
	for _, child := range children {
		childEval, _ := s.cached(child, -BestEval, -bestEval)
		if eval := -childEval; eval > bestEval {
			best, bestEval = child, eval
		}
	}
	return best, true
}
