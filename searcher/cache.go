package searcher

import (
	"connect4/game"

	"github.com/puzpuzpuz/xsync/v3"
)

// boundCache remembers bounds found earlier in the same top-level call. Bounds only ever tighten a search
// window; a miss returns the widest bound.
type boundCache interface {
	alpha(key game.Key) int
	beta(key game.Key) int
	storeAlpha(key game.Key, bound int)
	storeBeta(key game.Key, bound int)
}

// localCache is owned by a single goroutine.
type localCache struct {
	alphas map[game.Key]int8 // lower bounds from cutoffs
	betas  map[game.Key]int8 // upper bounds from exhaustive searches
}

func newLocalCache() *localCache {
	return &localCache{
		alphas: make(map[game.Key]int8),
		betas:  make(map[game.Key]int8),
	}
}

func (c *localCache) alpha(key game.Key) int {
	if bound, ok := c.alphas[key]; ok {
		return int(bound)
	}
	return WorstEval
}

func (c *localCache) beta(key game.Key) int {
	if bound, ok := c.betas[key]; ok {
		return int(bound)
	}
	return BestEval
}

func (c *localCache) storeAlpha(key game.Key, bound int) {
	c.alphas[key] = int8(bound)
}

func (c *localCache) storeBeta(key game.Key, bound int) {
	c.betas[key] = int8(bound)
}

// sharedCache is read and written by every goroutine of a concurrent search. Each load and store is atomic
// per key and the last write wins; nothing orders updates across keys or across the two maps.
type sharedCache struct {
	alphas *xsync.MapOf[game.Key, int8]
	betas  *xsync.MapOf[game.Key, int8]
}

func newSharedCache() *sharedCache {
	return &sharedCache{
		alphas: xsync.NewMapOf[game.Key, int8](),
		betas:  xsync.NewMapOf[game.Key, int8](),
	}
}

func (c *sharedCache) alpha(key game.Key) int {
	if bound, ok := c.alphas.Load(key); ok {
		return int(bound)
	}
	return WorstEval
}

func (c *sharedCache) beta(key game.Key) int {
	if bound, ok := c.betas.Load(key); ok {
		return int(bound)
	}
	return BestEval
}

func (c *sharedCache) storeAlpha(key game.Key, bound int) {
	c.alphas.Store(key, int8(bound))
}

func (c *sharedCache) storeBeta(key game.Key, bound int) {
	c.betas.Store(key, int8(bound))
}

func (c *sharedCache) size() int {
	return c.alphas.Size() + c.betas.Size()
}
