package experiments

import (
	"path/filepath"
	"testing"

	"forage/config"
	"forage/experiments/metrics"
	"forage/game"

	"github.com/stretchr/testify/require"
)

func smallConfig() config.Config {
	cfg := config.Default()
	cfg.Board.Rows = 6
	cfg.Board.Cols = 6
	cfg.Board.Home = game.Pos{Row: 2, Col: 2}
	cfg.Board.Flowers = 8
	cfg.Search.Depth = 1
	cfg.MaxTurns = 15
	return cfg
}

func TestRun(t *testing.T) {
	for _, kind := range []Kind{Expectimax, QLearning} {
		t.Run(string(kind), func(t *testing.T) {
			result, err := Run(smallConfig(), kind, 2)
			require.NoError(t, err)
			require.Len(t, result.Games, 2)

			turns := 0
			for i, g := range result.Games {
				require.Equal(t, i+1, g.ID)
				require.Equal(t, string(kind), g.Agent)
				require.Equal(t, smallConfig().Seed+uint64(i), g.Seed)
				turns += g.Turns
			}
			require.Len(t, result.Turns, turns)
		})
	}

	t.Run("greedy adversary", func(t *testing.T) {
		cfg := smallConfig()
		cfg.Adversary.Policy = config.GreedyPolicy
		result, err := Run(cfg, Expectimax, 1)
		require.NoError(t, err)
		require.Len(t, result.Games, 1)
	})

	t.Run("bad input", func(t *testing.T) {
		_, err := Run(smallConfig(), Kind("random"), 1)
		require.Error(t, err)
		_, err = Run(smallConfig(), Expectimax, 0)
		require.Error(t, err)

		cfg := smallConfig()
		cfg.Goal = 0
		_, err = Run(cfg, Expectimax, 1)
		require.Error(t, err)
	})
}

func TestParseKind(t *testing.T) {
	kind, err := ParseKind("qlearning")
	require.NoError(t, err)
	require.Equal(t, QLearning, kind)

	_, err = ParseKind("mcts")
	require.Error(t, err)
}

func TestSave(t *testing.T) {
	result, err := Run(smallConfig(), Expectimax, 1)
	require.NoError(t, err)

	dir, err := Save(result, t.TempDir(), Expectimax)
	require.NoError(t, err)
	require.FileExists(t, filepath.Join(dir, metrics.GameRecordsFile))

	turns, err := metrics.ReadTurnRecords(filepath.Join(dir, metrics.TurnRecordsFile))
	require.NoError(t, err)
	require.Equal(t, result.Turns, turns)
}
