package positions

import (
	"bufio"
	"connect4/game"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/exp/rand"
)

// maxAttempts bounds the random playouts tried per requested position
const maxAttempts = 100

// FileName names the file holding positions with depth moves made.
func FileName(depth int) string {
	return fmt.Sprintf("positions%d", depth)
}

// Parse reads boards as consecutive blocks of game.Rows lines. A trailing partial block is ignored.
func Parse(r io.Reader) ([][]string, error) {
	lines := []string{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read positions: %w", err)
	}

	boards := lo.Chunk(lines, game.Rows)
	return lo.Filter(boards, func(board []string, _ int) bool {
		return len(board) == game.Rows
	}), nil
}

// Read loads the positions file for depth from dir.
func Read[S game.State[S]](dir string, depth int, encode func(rows []string) S) ([]S, error) {
	path := filepath.Join(dir, FileName(depth))
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open positions file: %w", err)
	}
	defer f.Close()

	boards, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return lo.Map(boards, func(board []string, _ int) S {
		return encode(board)
	}), nil
}

// Write emits every state as game.Rows lines.
func Write[S game.State[S]](w io.Writer, states []S) error {
	bw := bufio.NewWriter(w)
	for _, state := range states {
		if _, err := bw.WriteString(state.String()); err != nil {
			return fmt.Errorf("failed to write position: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush positions: %w", err)
	}
	return nil
}

// WriteFile replaces the positions file for depth in dir, creating dir when needed.
func WriteFile[S game.State[S]](dir string, depth int, states []S) error {
	err := os.MkdirAll(dir, 0755)
	if err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	path := filepath.Join(dir, FileName(depth))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create positions file: %w", err)
	}
	if err := Write(f, states); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close positions file: %w", err)
	}
	return nil
}

// Random plays plies random moves from start, never choosing a move that wins on the spot.
// It returns false when every legal move wins or the board fills up first.
func Random[S game.State[S]](rng *rand.Rand, start S, plies int) (S, bool) {
	state := start
	for ply := 0; ply < plies; ply++ {
		quiet := lo.Filter(state.NextStates(), func(child S, _ int) bool {
			return !child.IsWin()
		})
		if len(quiet) == 0 {
			return state, false
		}
		state = quiet[rng.Intn(len(quiet))]
	}
	return state, true
}

// Seed writes count random positions with depth moves made.
func Seed[S game.State[S]](dir string, depth, count int, rng *rand.Rand, start S) error {
	states := make([]S, 0, count)
	for attempt := 0; len(states) < count && attempt < count*maxAttempts; attempt++ {
		if state, ok := Random(rng, start, depth); ok {
			states = append(states, state)
		}
	}
	if len(states) < count {
		return fmt.Errorf("failed to seed positions at depth %d: found %d of %d", depth, len(states), count)
	}

	log.Info().Int("depth", depth).Int("positions", len(states)).Msg("seeded positions")
	return WriteFile(dir, depth, states)
}

// Generate advances every position of depth-1 by one move and writes the result as depth.
// Positions without a legal move are dropped.
func Generate[S game.State[S]](dir string, depth int, encode func(rows []string) S, advance func(state S) (S, bool)) error {
	if depth < 1 {
		return fmt.Errorf("failed to generate positions: depth %d has no predecessor", depth)
	}

	previous, err := Read(dir, depth-1, encode)
	if err != nil {
		return err
	}

	states := make([]S, 0, len(previous))
	for i, state := range previous {
		next, ok := advance(state)
		if !ok {
			log.Warn().Int("depth", depth-1).Int("position", i).Msg("position has no legal move")
			continue
		}
		states = append(states, next)
	}

	log.Info().Int("depth", depth).Int("positions", len(states)).Msg("generated positions")
	return WriteFile(dir, depth, states)
}
