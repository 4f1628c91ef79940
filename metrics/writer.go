package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type Writer struct {
	baseDir string
}

func NewWriter() (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join("runs", timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) WriteDecisionRecords(records []DecisionRecord) error {
	path := filepath.Join(w.baseDir, "decision_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create decision records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"step", "action", "horizon", "node_budget", "nodes_expanded", "leaves_scored", "budget_exhausted", "duration"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write decision records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.Step),
			record.Action,
			strconv.Itoa(record.Horizon),
			strconv.Itoa(record.NodeBudget),
			strconv.Itoa(record.NodesExpanded),
			strconv.Itoa(record.LeavesScored),
			strconv.FormatBool(record.BudgetExhausted),
			record.Duration.String(),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write decision record row: %w", err)
		}
	}

	return nil
}
