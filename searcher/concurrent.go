package searcher

import (
	"connect4/game"
	"context"
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

const concurrentMaxDepth = 35

// Concurrent runs the full window search on the calling goroutine while one helper per root child probes a
// narrow window. All goroutines share one cache, so helper bounds narrow the windows of the main search.
type Concurrent[S game.State[S]] struct {
	maxCachedDepth int
	probeWindow    int
}

func NewConcurrent[S game.State[S]](options ...Option) *Concurrent[S] {
	c := newConfig(concurrentMaxDepth, options)
	return &Concurrent[S]{
		maxCachedDepth: c.maxCachedDepth,
		probeWindow:    c.probeWindow,
	}
}

// helperPanic carries a recovered helper panic to the goroutine that joins the helpers.
type helperPanic struct {
	value any
	stack []byte
}

func (p *helperPanic) Error() string {
	return fmt.Sprintf("helper panicked: %v\n%s", p.value, p.stack)
}

func (c *Concurrent[S]) EvaluatePosition(state S) Result {
	result, _ := c.evaluate(state)
	return result
}

// evaluate also reports the states evaluated by helpers alone.
func (c *Concurrent[S]) evaluate(state S) (Result, int) {
	cache := newSharedCache()
	children := state.NextStates()

	// Each helper owns its termination token
	g := errgroup.Group{}
	cancels := make([]context.CancelFunc, len(children))
	counts := make([]int, len(children))
	defer func() { // Stop helpers even if the main search panics
		for _, cancel := range cancels {
			cancel()
		}
	}()

	for i, child := range children {
		helperCtx, cancel := context.WithCancel(context.Background())
		cancels[i] = cancel

		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = &helperPanic{value: r, stack: debug.Stack()}
				}
			}()
			log.Trace().Int("helper", i).Msg("helper starting")

			s := newSearch[S](helperCtx, cache, c.maxCachedDepth)
			eval, ok := s.cached(child, -c.probeWindow, c.probeWindow)
			counts[i] = s.statesEvaluated

			log.Trace().Int("helper", i).Bool("completed", ok).Int("eval", eval).Int("states", s.statesEvaluated).
				Msg("helper exiting")
			return nil
		})
	}

	s := newSearch[S](context.Background(), cache, c.maxCachedDepth)
	eval, _ := s.cached(state, WorstEval, BestEval) // Never cancelled

	for _, cancel := range cancels {
		cancel()
	}
	if err := g.Wait(); err != nil {
		var p *helperPanic
		if errors.As(err, &p) {
			log.Error().Msg(p.Error())
			panic(p.value)
		}
		panic(err)
	}

	helperStates := lo.Sum(counts)
	log.Debug().Int("helpers", len(children)).Int("eval", eval).Int("main_states", s.statesEvaluated).
		Int("helper_states", helperStates).Int("cached_bounds", cache.size()).Msg("concurrent search joined")

	return Result{Eval: eval, StatesEvaluated: s.statesEvaluated + helperStates}, helperStates
}
