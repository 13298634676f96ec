package config

import (
	"os"
	"path/filepath"
	"testing"

	"forage/game"

	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	require.Equal(t, game.DefaultGoal, cfg.Goal)
	require.Equal(t, game.DefaultAdversary(), cfg.Adversary.Adversary)
	require.Equal(t, MinimizingPolicy, cfg.Adversary.Policy)
}

func TestParse(t *testing.T) {
	t.Run("overrides keep unset defaults", func(t *testing.T) {
		cfg, err := Parse([]byte(`
goal: 60
board:
  rows: 6
  cols: 6
  home: {row: 1, col: 2}
adversary:
  policy: greedy
  max_obstacles: 2
search:
  depth: 1
  weights:
    home_nectar: 20
`))
		require.NoError(t, err)
		require.Equal(t, 60, cfg.Goal)
		require.Equal(t, game.Pos{Row: 1, Col: 2}, cfg.Board.Home)
		require.Equal(t, 6, cfg.Board.Rows)
		require.Equal(t, Default().Board.Flowers, cfg.Board.Flowers)
		require.Equal(t, GreedyPolicy, cfg.Adversary.Policy)
		require.Equal(t, 2, cfg.Adversary.MaxObstacles)
		require.Equal(t, 2, cfg.Adversary.PesticideRadius)
		require.Equal(t, 1, cfg.Search.Depth)
		require.Equal(t, 20.0, cfg.Search.Weights.HomeNectar)
		require.Equal(t, game.DefaultWeights().Density, cfg.Search.Weights.Density)
	})

	t.Run("invalid values are rejected", func(t *testing.T) {
		invalid := []string{
			"goal: 0",
			"board: {home: {row: 20, col: 0}}",
			"adversary: {policy: random}",
			"weather: {adverse_prob: 0.6, favorable_prob: 0.6}",
			"learning: {alpha: 1.5}",
			"search: {depth: -1}",
			"planner: {noise: -1}",
			"forager: {capacity: 0}",
		}
		for _, doc := range invalid {
			_, err := Parse([]byte(doc))
			require.Error(t, err, doc)
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Parse([]byte("goal: [1, 2"))
		require.Error(t, err)
	})
}

func TestLoad(t *testing.T) {
	t.Run("from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "forage.yaml")
		require.NoError(t, os.WriteFile(path, []byte("max_turns: 42\nseed: 7\n"), 0o644))

		cfg, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, 42, cfg.MaxTurns)
		require.Equal(t, uint64(7), cfg.Seed)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.ErrorContains(t, err, "missing.yaml")
	})
}
