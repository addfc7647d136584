package output

import (
	"bufio"
	"os"
	"path/filepath"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cosmoos/voicegen/internal/corpus"
)

func makeRecords(n int) []corpus.Record {
	records := make([]corpus.Record, 0, n)
	for i := 0; i < n; i++ {
		records = append(records, corpus.Wrap(corpus.Pair{Input: "Go home", Output: "<call>"}))
	}
	return records
}

func countLines(t *testing.T, path string) int {
	t.Helper()
	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	count := 0
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)
	for scanner.Scan() {
		count++
		var rec corpus.Record
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &rec))
		assert.Len(t, rec.Messages, 3)
	}
	require.NoError(t, scanner.Err())
	return count
}

func TestWriteSplit(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(filepath.Join(dir, "out"))

	split := corpus.Split{Train: makeRecords(9), Valid: makeRecords(1)}
	files, err := w.WriteSplit(split)
	require.NoError(t, err)
	require.Len(t, files, 2)

	assert.Equal(t, 9, countLines(t, files[0]))
	assert.Equal(t, 1, countLines(t, files[1]))
}

func TestWriteSplit_EmptyValid(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir)

	files, err := w.WriteSplit(corpus.Split{Train: makeRecords(3)})
	require.NoError(t, err)
	assert.Equal(t, 0, countLines(t, files[1]))
}

func TestWriteSample(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir)

	examples := []corpus.Example{
		{Input: "Go home", Raw: &corpus.RawExample{Action: corpus.VerbNavigate, Destination: "home"}},
		{Input: "Stop deep work", Call: &corpus.Call{Name: "stop_deep_work"}},
	}
	path, err := w.WriteSample(examples)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "examples_raw.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var parsed []map[string]any
	require.NoError(t, json.Unmarshal(data, &parsed))
	require.Len(t, parsed, 2)
	assert.Equal(t, "Go home", parsed[0]["input"])
	assert.NotNil(t, parsed[0]["output"])
}
