package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"
	"github.com/pkg/errors"
)

const (
	GameRecordsFile = "game_records.csv"
	TurnRecordsFile = "turn_records.parquet"
)

type GameRecord struct {
	ID int
	GameMetric
}

// TurnRecord is one row of the per-turn parquet output.
type TurnRecord struct {
	Game        int32   `parquet:"game"`
	Turn        int32   `parquet:"turn"`
	Agent       string  `parquet:"agent,dict"`
	Action      string  `parquet:"action,dict"`
	Applied     bool    `parquet:"applied"`
	Value       float64 `parquet:"value"`
	Depth       int32   `parquet:"depth"`
	RootActions int32   `parquet:"root_actions"`
	Nodes       int32   `parquet:"nodes"`
	Leaves      int32   `parquet:"leaves"`
	Clones      int32   `parquet:"clones"`
	BestValue   float64 `parquet:"best_value"`
	DurationUs  int64   `parquet:"duration_us"`
}

func NewTurnRecord(game int, agent string, m MoveMetric) TurnRecord {
	return TurnRecord{
		Game:        int32(game),
		Turn:        int32(m.Turn),
		Agent:       agent,
		Action:      m.Action,
		Applied:     m.Applied,
		Value:       m.Value,
		Depth:       int32(m.Depth),
		RootActions: int32(m.RootActions),
		Nodes:       int32(m.Nodes()),
		Leaves:      int32(m.Leaves),
		Clones:      int32(m.Clones),
		BestValue:   m.BestValue,
		DurationUs:  m.Duration.Microseconds(),
	}
}

type Writer struct {
	baseDir string
}

// NewWriter creates root/name/<timestamp> to hold one experiment's output.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405.000Z")
	baseDir := filepath.Join(root, name, timestamp)
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to create directory")
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	path := filepath.Join(w.baseDir, GameRecordsFile)
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "failed to create game records file")
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	header := []string{"id", "agent", "seed", "outcome", "turns", "home_nectar", "obstacles", "flowers", "start_time", "end_time", "duration"}
	if err := writer.Write(header); err != nil {
		return errors.Wrap(err, "failed to write game records header")
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.ID),
			record.Agent,
			strconv.FormatUint(record.Seed, 10),
			record.Outcome,
			strconv.Itoa(record.Turns),
			strconv.Itoa(record.HomeNectar),
			strconv.Itoa(record.Obstacles),
			strconv.Itoa(record.Flowers),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
		}
		if err := writer.Write(row); err != nil {
			return errors.Wrap(err, "failed to write game record row")
		}
	}

	writer.Flush()
	return errors.Wrap(writer.Error(), "failed to flush game records")
}

// WriteTurnRecords writes zstd-compressed parquet through a temp file that is
// renamed into place.
func (w *Writer) WriteTurnRecords(records []TurnRecord) error {
	outPath := filepath.Join(w.baseDir, TurnRecordsFile)
	tmpPath := outPath + ".tmp"
	_ = os.Remove(tmpPath)

	if err := parquet.WriteFile(tmpPath, records,
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}),
		parquet.KeyValueMetadata("schema", "forage_turn_v1"),
	); err != nil {
		return errors.Wrap(err, "write parquet")
	}

	if err := os.Rename(tmpPath, outPath); err != nil {
		return errors.Wrap(err, "rename parquet")
	}
	return nil
}

func ReadTurnRecords(path string) ([]TurnRecord, error) {
	records, err := parquet.ReadFile[TurnRecord](path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	return records, nil
}
