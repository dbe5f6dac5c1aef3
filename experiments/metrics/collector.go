package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Engine          string
	Encoding        string
	Depth           int
	Positions       int
	StatesEvaluated int
	Duration        time.Duration
}

// StatesPerSecond is zero when no time was measured.
func (m SearchMetric) StatesPerSecond() float64 {
	if m.Duration <= 0 {
		return 0
	}
	return float64(m.StatesEvaluated) / m.Duration.Seconds()
}

type Collector interface {
	Start(engine, encoding string, depth int)
	AddPosition(statesEvaluated int)
	Complete() SearchMetric
}

type collector struct {
	engine          string
	encoding        string
	depth           int
	startTime       time.Time
	positions       atomic.Int64
	statesEvaluated atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(engine, encoding string, depth int) {
	m.startTime = time.Now()
	m.engine = engine
	m.encoding = encoding
	m.depth = depth
	m.positions.Store(0)
	m.statesEvaluated.Store(0)
}

func (m *collector) AddPosition(statesEvaluated int) {
	m.positions.Add(1)
	m.statesEvaluated.Add(int64(statesEvaluated))
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Engine:          m.engine,
		Encoding:        m.encoding,
		Depth:           m.depth,
		Positions:       int(m.positions.Load()),
		StatesEvaluated: int(m.statesEvaluated.Load()),
		Duration:        time.Since(m.startTime),
	}
}
