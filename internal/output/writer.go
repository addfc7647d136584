// Package output persists corpus artifacts: the train/validation JSONL
// files and a human-readable inspection sample.
package output

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"

	"github.com/cosmoos/voicegen/internal/corpus"
)

type Writer struct {
	outputDir string
}

func NewWriter(outputDir string) *Writer {
	return &Writer{outputDir: outputDir}
}

// WriteSplit writes both partitions. Returns the paths of the files written.
func (w *Writer) WriteSplit(split corpus.Split) ([]string, error) {
	if err := os.MkdirAll(w.outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	trainPath := filepath.Join(w.outputDir, "train.jsonl")
	if err := writeJSONL(trainPath, split.Train); err != nil {
		return nil, err
	}
	validPath := filepath.Join(w.outputDir, "valid.jsonl")
	if err := writeJSONL(validPath, split.Valid); err != nil {
		return nil, err
	}
	return []string{trainPath, validPath}, nil
}

func writeJSONL(path string, records []corpus.Record) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	bw := bufio.NewWriter(file)
	for _, rec := range records {
		line, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("failed to marshal record: %w", err)
		}
		bw.Write(line)
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// WriteSample writes pre-encoding examples as indented JSON so the template
// output can be eyeballed without decoding the wire grammar.
func (w *Writer) WriteSample(examples []corpus.Example) (string, error) {
	if err := os.MkdirAll(w.outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(w.outputDir, "examples_raw.json")
	data, err := json.MarshalIndent(examples, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal sample: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return "", fmt.Errorf("failed to write sample: %w", err)
	}
	return path, nil
}
