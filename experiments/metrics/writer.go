package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type Config struct {
	ID             int
	Engine         string
	Encoding       string
	MaxCachedDepth int // 0 keeps the engine default
}

type Record struct {
	ID     int
	Config int // Config.ID
	SearchMetric
}

type Writer struct {
	baseDir string
}

func NewWriter(root, name string) (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteConfigs(configs []Config) error {
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			config.Engine,
			config.Encoding,
			strconv.Itoa(config.MaxCachedDepth),
		})
	}
	return w.write("configs.csv", []string{"id", "engine", "encoding", "max_cached_depth"}, rows)
}

func (w *Writer) WriteRecords(records []Record) error {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Config),
			record.Engine,
			record.Encoding,
			strconv.Itoa(record.Depth),
			strconv.Itoa(record.Positions),
			strconv.Itoa(record.StatesEvaluated),
			record.Duration.String(),
			strconv.FormatFloat(record.StatesPerSecond(), 'f', 0, 64),
		})
	}
	header := []string{"id", "config", "engine", "encoding", "depth", "positions", "states_evaluated", "duration",
		"states_per_second"}
	return w.write("records.csv", header, rows)
}

func (w *Writer) write(name string, header []string, rows [][]string) error {
	// Create a file
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	// Write header
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}

	// Write each row
	for _, row := range rows {
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write %s row: %w", name, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", name, err)
	}
	return nil
}
