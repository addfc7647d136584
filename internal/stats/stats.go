// Package stats reports on generated corpus files by querying them with
// DuckDB's read_json instead of re-parsing JSONL by hand.
package stats

import (
	"database/sql"
	"fmt"

	"github.com/cosmoos/voicegen/internal/db"
)

type Reporter struct {
	db *sql.DB
}

func NewReporter() (*Reporter, error) {
	database, err := db.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return &Reporter{db: database}, nil
}

func (r *Reporter) Close() error {
	return r.db.Close()
}

// FileReport summarizes one corpus file.
type FileReport struct {
	Path           string
	Records        int
	WellFormed     int
	FunctionCounts []FunctionCount
}

// FunctionCount is how many records end in a call to one function.
type FunctionCount struct {
	Name  string
	Count int
}

// Report scans one JSONL corpus file. Records are well-formed when they
// carry the full three-turn conversation.
func (r *Reporter) Report(path string) (*FileReport, error) {
	report := &FileReport{Path: path}

	query := fmt.Sprintf(`
		SELECT
			COUNT(*) as total,
			COUNT(*) FILTER (WHERE len(messages) = 3) as well_formed
		FROM read_json('%s',
			format = 'newline_delimited',
			union_by_name = true,
			ignore_errors = true
		)
	`, path)
	if err := r.db.QueryRow(query).Scan(&report.Records, &report.WellFormed); err != nil {
		return nil, fmt.Errorf("failed to count records in %s: %w", path, err)
	}

	counts, err := r.functionCounts(path)
	if err != nil {
		return nil, err
	}
	report.FunctionCounts = counts

	return report, nil
}

// functionCounts groups records by the function name in the model turn.
func (r *Reporter) functionCounts(path string) ([]FunctionCount, error) {
	query := fmt.Sprintf(`
		SELECT
			regexp_extract(messages[3].content, 'call:(\w+)', 1) as func,
			COUNT(*) as count
		FROM read_json('%s',
			format = 'newline_delimited',
			union_by_name = true,
			ignore_errors = true
		)
		WHERE len(messages) = 3
		GROUP BY func
		ORDER BY count DESC, func
	`, path)
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query function counts: %w", err)
	}
	defer rows.Close()

	var counts []FunctionCount
	for rows.Next() {
		var fc FunctionCount
		if err := rows.Scan(&fc.Name, &fc.Count); err != nil {
			continue
		}
		counts = append(counts, fc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return counts, nil
}
