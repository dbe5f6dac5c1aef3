package main

import (
	"connect4/engine"
	"connect4/experiments"
	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/meta"
	"connect4/positions"
	"connect4/searcher"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/exp/rand"
)

const all = "all"

type config struct {
	mode     string
	engine   string
	encoding string
	board    string
	dir      string
	depth    int
	minDepth int
	maxDepth int
	seed     uint64
	count    int
}

func main() {
	c := config{}
	flag.StringVar(&c.mode, "mode", "evaluate", "evaluate, play, generate or bench")
	flag.StringVar(&c.engine, "engine", searcher.ConcurrentName, "naive, cached or concurrent; all to bench every engine")
	flag.StringVar(&c.encoding, "encoding", game.BitboardEncoding.Name, "array or bitboard; all to bench every encoding")
	flag.StringVar(&c.board, "board", "", "file of boards to evaluate or play from, 6 lines each; - for stdin")
	flag.StringVar(&c.dir, "dir", meta.POSITIONS_DIR, "directory of position files")
	flag.IntVar(&c.depth, "depth", meta.DEFAULT_DEPTH, "depth of the position file to evaluate when no board is given")
	flag.IntVar(&c.minDepth, "min-depth", meta.MIN_DEPTH, "shallowest depth to generate or bench")
	flag.IntVar(&c.maxDepth, "max-depth", meta.MAX_DEPTH, "deepest depth to generate or bench")
	flag.Uint64Var(&c.seed, "seed", meta.SEED, "random seed")
	flag.IntVar(&c.count, "count", meta.SEED_POSITIONS, "number of positions to seed at the shallowest depth")
	debug := flag.Bool("debug", false, "log search details")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	if err := run(c); err != nil {
		log.Fatal().Err(err).Msgf("%s failed", c.mode)
	}
}

func run(c config) error {
	if c.mode == "bench" {
		return bench(c)
	}

	switch c.encoding {
	case game.ArrayEncoding.Name:
		return runWith(c, game.ArrayEncoding)
	case game.BitboardEncoding.Name:
		return runWith(c, game.BitboardEncoding)
	default:
		return fmt.Errorf("%w: %q", game.ErrUnknownEncoding, c.encoding)
	}
}

func runWith[S game.State[S]](c config, enc game.Encoding[S]) error {
	switch c.mode {
	case "evaluate":
		return evaluate(c, enc)
	case "play":
		return play(c, enc)
	case "generate":
		return generate(c, enc)
	default:
		return fmt.Errorf("unknown mode %q", c.mode)
	}
}

// readBoards reads the -board file, or stdin for "-".
func readBoards[S game.State[S]](c config, enc game.Encoding[S]) ([]S, error) {
	var r io.Reader = os.Stdin
	if c.board != "-" {
		f, err := os.Open(c.board)
		if err != nil {
			return nil, fmt.Errorf("failed to open board file: %w", err)
		}
		defer f.Close()
		r = f
	}

	boards, err := positions.Parse(r)
	if err != nil {
		return nil, err
	}
	return lo.Map(boards, func(board []string, _ int) S { return enc.Encode(board) }), nil
}

func evaluate[S game.State[S]](c config, enc game.Encoding[S]) error {
	e, err := searcher.New[S](c.engine)
	if err != nil {
		return err
	}

	var states []S
	if c.board == "" {
		states, err = positions.Read(c.dir, c.depth, enc.Encode)
	} else {
		states, err = readBoards(c, enc)
	}
	if err != nil {
		return err
	}

	for i, state := range states {
		start := time.Now()
		result := e.EvaluatePosition(state)
		fmt.Printf("%s\nposition %d: eval %d, %d states evaluated in %s\n",
			state, i+1, result.Eval, result.StatesEvaluated, time.Since(start))
	}
	return nil
}

func play[S game.State[S]](c config, enc game.Encoding[S]) error {
	e, err := searcher.New[S](c.engine)
	if err != nil {
		return err
	}

	start := enc.Start()
	if c.board != "" {
		states, err := readBoards(c, enc)
		if err != nil {
			return err
		}
		if len(states) == 0 {
			return fmt.Errorf("no board in %s", c.board)
		}
		start = states[0]
	}

	local := engine.Local[S](engine.NewEvaluationAgent(e), engine.NewRandomAgent[S](c.seed))
	outcome := local.Run(start)
	fmt.Printf("%s\nwinner after %d plies: %s\n", outcome.History[len(outcome.History)-1], outcome.Plies, outcome.Winner)
	return nil
}

func generate[S game.State[S]](c config, enc game.Encoding[S]) error {
	rng := rand.New(rand.NewSource(c.seed))
	err := positions.Seed(c.dir, c.minDepth, c.count, rng, enc.Start())
	if err != nil {
		return err
	}

	advance := func(state S) (S, bool) {
		return searcher.OptimalNextState(state)
	}
	for depth := c.minDepth + 1; depth <= c.maxDepth; depth++ {
		if err := positions.Generate(c.dir, depth, enc.Encode, advance); err != nil {
			return err
		}
	}
	return nil
}

func bench(c config) error {
	configs := lo.Filter(experiments.Configs, func(cfg metrics.Config, _ int) bool {
		return (c.engine == all || c.engine == cfg.Engine) && (c.encoding == all || c.encoding == cfg.Encoding)
	})
	if len(configs) == 0 {
		return fmt.Errorf("no benchmark config for engine %q and encoding %q", c.engine, c.encoding)
	}

	_, err := experiments.Run("bench", meta.EXPERIMENTS_DIR, c.dir, lo.RangeFrom(c.minDepth, c.maxDepth-c.minDepth+1), configs)
	return err
}
