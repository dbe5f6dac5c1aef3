package experiments

import (
	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/positions"
	"connect4/searcher"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Configs compares every engine on every encoding.
var Configs = []metrics.Config{
	{ID: 1, Engine: searcher.NaiveName, Encoding: game.ArrayEncoding.Name},
	{ID: 2, Engine: searcher.NaiveName, Encoding: game.BitboardEncoding.Name},
	{ID: 3, Engine: searcher.CachedName, Encoding: game.ArrayEncoding.Name},
	{ID: 4, Engine: searcher.CachedName, Encoding: game.BitboardEncoding.Name},
	{ID: 5, Engine: searcher.ConcurrentName, Encoding: game.ArrayEncoding.Name},
	{ID: 6, Engine: searcher.ConcurrentName, Encoding: game.BitboardEncoding.Name},
}

// Run evaluates the position files of every depth with every config and writes the records under root.
func Run(name, root, positionsDir string, depths []int, configs []metrics.Config) ([]metrics.Record, error) {
	records := []metrics.Record{}

	log.Info().Msgf("starting %s experiment...", name)

	for ci, config := range configs {
		log.Info().Msgf("starting config %d of %d: %+v...", ci+1, len(configs), config)

		for _, depth := range depths {
			metric, err := benchmark(config, positionsDir, depth, metrics.NewCollector())
			if err != nil {
				return nil, fmt.Errorf("failed to run config %d at depth %d: %w", config.ID, depth, err)
			}
			records = append(records, metrics.Record{
				ID:           len(records) + 1,
				Config:       config.ID,
				SearchMetric: metric,
			})

			log.Info().Int("depth", depth).Int("positions", metric.Positions).Int("states", metric.StatesEvaluated).
				Dur("duration", metric.Duration).Msgf("completed config %d", config.ID)
		}
	}

	log.Info().Msgf("completed %s experiment", name)
	for _, t := range Summarize(records) {
		log.Info().Msgf("%s/%s: %.0f states per second over %d positions", t.Engine, t.Encoding, t.StatesPerSecond,
			t.Positions)
	}

	// Store experiment metadata
	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return nil, fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteConfigs(configs)
	if err != nil {
		return nil, fmt.Errorf("failed to store configs: %w", err)
	}
	log.Info().Msg("stored configs")

	// Store experiment results
	err = writer.WriteRecords(records)
	if err != nil {
		return nil, fmt.Errorf("failed to store records: %w", err)
	}
	log.Info().Msgf("stored records in %s", writer.Dir())

	return records, nil
}

func benchmark(config metrics.Config, dir string, depth int, collector metrics.Collector) (metrics.SearchMetric, error) {
	switch config.Encoding {
	case game.ArrayEncoding.Name:
		return evaluate(config, game.ArrayEncoding, dir, depth, collector)
	case game.BitboardEncoding.Name:
		return evaluate(config, game.BitboardEncoding, dir, depth, collector)
	default:
		return metrics.SearchMetric{}, fmt.Errorf("%w: %q", game.ErrUnknownEncoding, config.Encoding)
	}
}

func evaluate[S game.State[S]](config metrics.Config, enc game.Encoding[S], dir string, depth int, collector metrics.Collector) (metrics.SearchMetric, error) {
	states, err := positions.Read(dir, depth, enc.Encode)
	if err != nil {
		return metrics.SearchMetric{}, err
	}

	options := []searcher.Option{}
	if config.MaxCachedDepth > 0 {
		options = append(options, searcher.WithMaxCachedDepth(config.MaxCachedDepth))
	}
	engine, err := searcher.New[S](config.Engine, options...)
	if err != nil {
		return metrics.SearchMetric{}, err
	}

	collector.Start(config.Engine, enc.Name, depth)
	for _, state := range states {
		result := engine.EvaluatePosition(state)
		collector.AddPosition(result.StatesEvaluated)
	}
	return collector.Complete(), nil
}
