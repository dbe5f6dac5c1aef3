package positions

import (
	"bytes"
	"connect4/game"
	"connect4/searcher"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestParse(t *testing.T) {
	t.Run("groups lines into boards", func(t *testing.T) {
		board := strings.Repeat("       \n", game.Rows-1) + "X      \n"
		boards, err := Parse(strings.NewReader(board + board))

		require.NoError(t, err)
		require.Len(t, boards, 2, "Should read one board per block of lines")
		require.Equal(t, "X      ", boards[1][game.Rows-1])
	})

	t.Run("ignores a trailing partial block", func(t *testing.T) {
		board := strings.Repeat("       \n", game.Rows)
		boards, err := Parse(strings.NewReader(board + "XO\n"))

		require.NoError(t, err)
		require.Len(t, boards, 1, "Partial block should be dropped")
	})

	t.Run("empty input", func(t *testing.T) {
		boards, err := Parse(strings.NewReader(""))
		require.NoError(t, err)
		require.Empty(t, boards)
	})
}

func TestWriteRead(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	states := []game.Bitboard{}
	for len(states) < 10 {
		if state, ok := Random(rng, game.StartBitboard(), 20); ok {
			states = append(states, state)
		}
	}

	t.Run("writer output parses back", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, states))
		require.Equal(t, len(states)*game.Rows, strings.Count(buf.String(), "\n"))

		boards, err := Parse(&buf)
		require.NoError(t, err)
		require.Len(t, boards, len(states))
		for i, board := range boards {
			require.Equal(t, states[i].Decode(), board)
		}
	})

	t.Run("file round trip", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested")
		require.NoError(t, WriteFile(dir, 20, states))
		require.FileExists(t, filepath.Join(dir, "positions20"))

		read, err := Read(dir, 20, game.EncodeBitboard)
		require.NoError(t, err)
		require.Equal(t, states, read, "Should read back the states that were written")

		arrays, err := Read(dir, 20, game.EncodeArray)
		require.NoError(t, err)
		for i, array := range arrays {
			require.Equal(t, states[i].Key(), array.Key(), "Encodings should read the same boards")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Read(t.TempDir(), 7, game.EncodeBitboard)
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 50; i++ {
		state, ok := Random(rng, game.StartArray(), 30)
		if !ok {
			continue
		}
		require.Equal(t, 30, state.MovesMade(), "Should play exactly the requested moves")
		require.Equal(t, game.EncodeBitboard(state.Decode()).Key(), state.Key())
	}

	t.Run("same seed same positions", func(t *testing.T) {
		a, okA := Random(rand.New(rand.NewSource(5)), game.StartBitboard(), 25)
		b, okB := Random(rand.New(rand.NewSource(5)), game.StartBitboard(), 25)
		require.Equal(t, okA, okB)
		require.Equal(t, a, b)
	})

	t.Run("never plays a winning move", func(t *testing.T) {
		start := game.StartBitboard()
		for _, col := range []int{0, 1, 0, 1, 0, 1} {
			start, _ = start.PlayMove(col)
		}
		for seed := uint64(0); seed < 20; seed++ {
			state, ok := Random(rand.New(rand.NewSource(seed)), start, 1)
			require.True(t, ok)
			require.False(t, state.IsWin(), "Random move should not complete four")
		}
	})
}

func TestSeedAndGenerate(t *testing.T) {
	dir := t.TempDir()
	rng := rand.New(rand.NewSource(9))
	require.NoError(t, Seed(dir, 34, 5, rng, game.StartBitboard()))

	seeded, err := Read(dir, 34, game.EncodeBitboard)
	require.NoError(t, err)
	require.Len(t, seeded, 5)

	t.Run("advances every position one move", func(t *testing.T) {
		first := func(state game.Bitboard) (game.Bitboard, bool) {
			children := state.NextStates()
			if len(children) == 0 {
				return game.Bitboard{}, false
			}
			return children[0], true
		}
		require.NoError(t, Generate(dir, 35, game.EncodeBitboard, first))

		generated, err := Read(dir, 35, game.EncodeBitboard)
		require.NoError(t, err)
		require.Len(t, generated, len(seeded))
		for i, state := range generated {
			require.Equal(t, 35, state.MovesMade())
			require.Equal(t, seeded[i].NextStates()[0].Key(), state.Key())
		}
	})

	advance := func(state game.Bitboard) (game.Bitboard, bool) {
		return searcher.OptimalNextState(state)
	}

	t.Run("advances with the optimal move", func(t *testing.T) {
		require.NoError(t, Generate(dir, 36, game.EncodeBitboard, advance))

		generated, err := Read(dir, 36, game.EncodeBitboard)
		require.NoError(t, err)
		for _, state := range generated {
			require.Equal(t, 36, state.MovesMade())
		}
	})

	t.Run("drops positions without moves", func(t *testing.T) {
		none := func(state game.Bitboard) (game.Bitboard, bool) { return game.Bitboard{}, false }
		require.NoError(t, Generate(dir, 35, game.EncodeBitboard, none))

		generated, err := Read(dir, 35, game.EncodeBitboard)
		require.NoError(t, err)
		require.Empty(t, generated)
	})

	t.Run("missing predecessor", func(t *testing.T) {
		err := Generate(dir, 10, game.EncodeBitboard, advance)
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}
