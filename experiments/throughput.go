package experiments

import (
	"connect4/experiments/metrics"
	"time"

	"github.com/samber/lo"
)

type Throughput struct {
	Engine          string
	Encoding        string
	Positions       int
	StatesEvaluated int
	Duration        time.Duration
	StatesPerSecond float64
}

// Summarize totals records per engine and encoding, in the order they first appear.
func Summarize(records []metrics.Record) []Throughput {
	type pair struct{ engine, encoding string }
	groups := lo.GroupBy(records, func(r metrics.Record) pair {
		return pair{r.Engine, r.Encoding}
	})
	order := lo.Uniq(lo.Map(records, func(r metrics.Record, _ int) pair {
		return pair{r.Engine, r.Encoding}
	}))

	return lo.Map(order, func(p pair, _ int) Throughput {
		group := groups[p]
		total := metrics.SearchMetric{
			Positions:       lo.SumBy(group, func(r metrics.Record) int { return r.Positions }),
			StatesEvaluated: lo.SumBy(group, func(r metrics.Record) int { return r.StatesEvaluated }),
			Duration:        lo.SumBy(group, func(r metrics.Record) time.Duration { return r.Duration }),
		}
		return Throughput{
			Engine:          p.engine,
			Encoding:        p.encoding,
			Positions:       total.Positions,
			StatesEvaluated: total.StatesEvaluated,
			Duration:        total.Duration,
			StatesPerSecond: total.StatesPerSecond(),
		}
	})
}
