package experiments

import (
	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/positions"
	"connect4/searcher"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func seedPositions(t *testing.T, depths ...int) string {
	t.Helper()
	dir := t.TempDir()
	rng := rand.New(rand.NewSource(1))
	for _, depth := range depths {
		require.NoError(t, positions.Seed(dir, depth, 3, rng, game.StartBitboard()))
	}
	return dir
}

func TestRun(t *testing.T) {
	positionsDir := seedPositions(t, 32, 34)
	root := t.TempDir()

	records, err := Run("agreement", root, positionsDir, []int{32, 34}, Configs)
	require.NoError(t, err)
	require.Len(t, records, len(Configs)*2, "Should record every config at every depth")

	for i, record := range records {
		require.Equal(t, i+1, record.ID)
		require.Equal(t, 3, record.Positions)
		require.Positive(t, record.StatesEvaluated)
	}
	require.Equal(t, searcher.NaiveName, records[0].Engine)
	require.Equal(t, game.ArrayEncoding.Name, records[0].Encoding)
	require.Equal(t, 34, records[1].Depth)

	runs, err := os.ReadDir(filepath.Join(root, "agreement"))
	require.NoError(t, err)
	require.Len(t, runs, 1)
	require.FileExists(t, filepath.Join(root, "agreement", runs[0].Name(), "records.csv"))
	require.FileExists(t, filepath.Join(root, "agreement", runs[0].Name(), "configs.csv"))
}

func TestRunErrors(t *testing.T) {
	positionsDir := seedPositions(t, 34)

	t.Run("unknown encoding", func(t *testing.T) {
		_, err := Run("bad", t.TempDir(), positionsDir, []int{34}, []metrics.Config{{ID: 1, Engine: "naive", Encoding: "hex"}})
		require.ErrorIs(t, err, game.ErrUnknownEncoding)
	})

	t.Run("unknown engine", func(t *testing.T) {
		_, err := Run("bad", t.TempDir(), positionsDir, []int{34}, []metrics.Config{{ID: 1, Engine: "mcts", Encoding: "array"}})
		require.ErrorIs(t, err, searcher.ErrUnknownEngine)
	})

	t.Run("missing positions", func(t *testing.T) {
		_, err := Run("bad", t.TempDir(), positionsDir, []int{33}, Configs[:1])
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestBenchmarkAppliesCacheDepth(t *testing.T) {
	dir := seedPositions(t, 33)
	config := metrics.Config{ID: 1, Engine: searcher.CachedName, Encoding: game.BitboardEncoding.Name, MaxCachedDepth: 1}
	uncached, err := benchmark(config, dir, 33, metrics.NewCollector())
	require.NoError(t, err)

	naive, err := benchmark(metrics.Config{Engine: searcher.NaiveName, Encoding: game.BitboardEncoding.Name}, dir, 33, metrics.NewCollector())
	require.NoError(t, err)
	require.Equal(t, naive.StatesEvaluated, uncached.StatesEvaluated, "Cache ceiling below the positions should search like naive")
}

func TestSummarize(t *testing.T) {
	records := []metrics.Record{
		{SearchMetric: metrics.SearchMetric{Engine: "cached", Encoding: "array", Positions: 2, StatesEvaluated: 100, Duration: time.Second}},
		{SearchMetric: metrics.SearchMetric{Engine: "naive", Encoding: "array", Positions: 2, StatesEvaluated: 50, Duration: time.Second}},
		{SearchMetric: metrics.SearchMetric{Engine: "cached", Encoding: "array", Positions: 3, StatesEvaluated: 300, Duration: time.Second}},
	}

	summary := Summarize(records)
	require.Len(t, summary, 2, "Should group by engine and encoding")
	require.Equal(t, "cached", summary[0].Engine, "Should keep the order of first appearance")
	require.Equal(t, 5, summary[0].Positions)
	require.Equal(t, 400, summary[0].StatesEvaluated)
	require.Equal(t, 2*time.Second, summary[0].Duration)
	require.Equal(t, 200.0, summary[0].StatesPerSecond)
	require.Equal(t, 50.0, summary[1].StatesPerSecond)
}
