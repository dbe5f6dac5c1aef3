package searcher

import (
	"connect4/game"
	"errors"
	"fmt"
)

// Evaluations are from the perspective of the player to move
const (
	WorstEval = -18
	Draw      = 0
	BestEval  = 18
)

const (
	NaiveName      = "naive"
	CachedName     = "cached"
	ConcurrentName = "concurrent"
)

var ErrUnknownEngine = errors.New("unknown engine")

// Names lists the engines New can build.
var Names = []string{NaiveName, CachedName, ConcurrentName}

type Result struct {
	Eval            int
	StatesEvaluated int
}

type Engine[S game.State[S]] interface {
	EvaluatePosition(state S) Result
}

type Option func(c *config)

type config struct {
	maxCachedDepth int
	probeWindow    int
}

// WithMaxCachedDepth sets the deepest ply whose bounds are cached. Deeper states are searched without a cache.
func WithMaxCachedDepth(depth int) Option {
	return func(c *config) {
		if depth >= 0 {
			c.maxCachedDepth = depth
		}
	}
}

// WithProbeWindow sets the half width of the window searched by concurrent helpers.
func WithProbeWindow(window int) Option {
	return func(c *config) {
		if window > 0 {
			c.probeWindow = window
		}
	}
}

func newConfig(maxCachedDepth int, options []Option) config {
	c := config{ // Default values
		maxCachedDepth: maxCachedDepth,
		probeWindow:    1,
	}
	for _, option := range options {
		option(&c)
	}
	return c
}

// New builds the engine registered under name.
func New[S game.State[S]](name string, options ...Option) (Engine[S], error) {
	switch name {
	case NaiveName:
		return NewNaive[S](), nil
	case CachedName:
		return NewCached[S](options...), nil
	case ConcurrentName:
		return NewConcurrent[S](options...), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, name)
	}
}
