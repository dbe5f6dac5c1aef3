package engine

import (
	"connect4/game"
	"connect4/searcher"

	"github.com/samber/lo"
	"golang.org/x/exp/rand"
)

// SolverAgent plays the move with the best exact evaluation.
type SolverAgent[S game.State[S]] struct {
	options []searcher.Option
}

func NewSolverAgent[S game.State[S]](options ...searcher.Option) *SolverAgent[S] {
	return &SolverAgent[S]{options: options}
}

func (a *SolverAgent[S]) FindMove(state S) (S, bool) {
	return searcher.OptimalNextState(state, a.options...)
}

// EvaluationAgent scores every child with an engine and plays the best one. Ties go to the first child.
type EvaluationAgent[S game.State[S]] struct {
	engine searcher.Engine[S]
}

func NewEvaluationAgent[S game.State[S]](engine searcher.Engine[S]) *EvaluationAgent[S] {
	return &EvaluationAgent[S]{engine: engine}
}

func (a *EvaluationAgent[S]) FindMove(state S) (S, bool) {
	children := state.NextStates()
	if len(children) == 0 {
		var none S
		return none, false
	}

	if win, ok := lo.Find(children, func(child S) bool { return child.IsWin() }); ok {
		return win, true
	}

	best, bestEval := children[0], searcher.WorstEval-1
	for _, child := range children {
		// Child evaluations are from the opponent's perspective
		if eval := -a.engine.EvaluatePosition(child).Eval; eval > bestEval {
			best, bestEval = child, eval
		}
	}
	return best, true
}

// RandomAgent plays a uniformly random legal move.
type RandomAgent[S game.State[S]] struct {
	rng *rand.Rand
}

func NewRandomAgent[S game.State[S]](seed uint64) *RandomAgent[S] {
	return &RandomAgent[S]{rng: rand.New(rand.NewSource(seed))}
}

func (a *RandomAgent[S]) FindMove(state S) (S, bool) {
	children := state.NextStates()
	if len(children) == 0 {
		var none S
		return none, false
	}
	return children[a.rng.Intn(len(children))], true
}
