package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "expectimax")
	require.NoError(t, err)
	require.DirExists(t, w.Dir())

	t.Run("game records as csv", func(t *testing.T) {
		start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		records := []GameRecord{
			{ID: 1, GameMetric: GameMetric{Agent: "expectimax", Seed: 3, Outcome: "victory", Turns: 40, HomeNectar: 100, StartTime: start, EndTime: start.Add(time.Second), Duration: time.Second}},
			{ID: 2, GameMetric: GameMetric{Agent: "expectimax", Seed: 4, Outcome: "forager_dead", Turns: 12}},
		}
		require.NoError(t, w.WriteGameRecords(records))

		f, err := os.Open(filepath.Join(w.Dir(), GameRecordsFile))
		require.NoError(t, err)
		defer f.Close()
		rows, err := csv.NewReader(f).ReadAll()
		require.NoError(t, err)

		require.Len(t, rows, 3, "Header plus one row per game")
		require.Equal(t, "outcome", rows[0][3])
		require.Equal(t, []string{"1", "expectimax", "3", "victory", "40", "100"}, rows[1][:6])
		require.Equal(t, "forager_dead", rows[2][3])
	})

	t.Run("turn records as parquet", func(t *testing.T) {
		moves := []MoveMetric{
			{Turn: 1, Action: "collect(2,3)", Applied: true, Value: 812.5, SearchMetric: SearchMetric{Depth: 2, RootActions: 8, MinNodes: 8, Leaves: 120, Clones: 128, Duration: 3 * time.Millisecond}},
			{Turn: 2, Action: "rest", Applied: true, Value: 790},
		}
		var records []TurnRecord
		for _, m := range moves {
			records = append(records, NewTurnRecord(1, "expectimax", m))
		}
		require.NoError(t, w.WriteTurnRecords(records))

		path := filepath.Join(w.Dir(), TurnRecordsFile)
		require.NoFileExists(t, path+".tmp")
		got, err := ReadTurnRecords(path)
		require.NoError(t, err)
		require.Equal(t, records, got)
		require.Equal(t, int32(128), got[0].Nodes)
		require.Equal(t, int64(3000), got[0].DurationUs)
	})
}

func TestCollector(t *testing.T) {
	t.Run("counts every node kind", func(t *testing.T) {
		c := NewCollector()
		c.Start(3, 5)
		c.AddMax()
		c.AddMin()
		c.AddMin()
		c.AddChance()
		c.AddLeaf()
		c.AddClone()
		c.SetBestValue(42)

		m := c.Complete()
		require.Equal(t, 3, m.Depth)
		require.Equal(t, 5, m.RootActions)
		require.Equal(t, 5, m.Nodes())
		require.Equal(t, 1, m.Clones)
		require.Equal(t, 42.0, m.BestValue)
	})

	t.Run("dummy collector records nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start(3, 5)
		c.AddMax()
		require.Equal(t, SearchMetric{}, c.Complete())
	})
}
