// Package db hands out an in-memory DuckDB handle with the JSON extension
// loaded, ready for read_json over corpus files.
package db

import (
	"database/sql"
	"fmt"

	_ "github.com/marcboeker/go-duckdb"
)

// Open opens a fresh in-memory database. Callers own the handle and close
// it when done; stats runs are one-shot so there is no shared instance.
func Open() (*sql.DB, error) {
	conn, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, fmt.Errorf("failed to open DuckDB: %w", err)
	}

	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)

	for _, stmt := range []string{"INSTALL json", "LOAD json"} {
		if _, err := conn.Exec(stmt); err != nil {
			conn.Close()
			return nil, fmt.Errorf("failed to run %q: %w", stmt, err)
		}
	}

	return conn, nil
}
