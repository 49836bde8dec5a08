package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite" // SQLite driver

	"mihorario/internal/horario"
)

// stateKey is the single row the selection list lives under, kept for
// compatibility with exports from the web version.
const stateKey = "seleccionadas"

// SQLite persists the selection list as one JSON document in a
// key-value state table.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens or creates the database at path and runs the
// migration.
func OpenSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS state (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)
	`
	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating state table: %w", err)
	}
	return nil
}

// Load restores the selection list. A missing row or a value that no
// longer decodes yields an empty list, never an error: a corrupt state
// row resets the schedule instead of locking the user out.
func (s *SQLite) Load() ([]horario.Selection, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM state WHERE key = ?`, stateKey).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying state: %w", err)
	}

	var selections []horario.Selection
	if err := json.Unmarshal([]byte(value), &selections); err != nil {
		return nil, nil
	}
	return selections, nil
}

// Save writes the full selection list, replacing the previous value.
// The list is stored as a JSON array so insertion order survives the
// round trip.
func (s *SQLite) Save(selections []horario.Selection) error {
	if selections == nil {
		selections = []horario.Selection{}
	}
	value, err := json.Marshal(selections)
	if err != nil {
		return fmt.Errorf("encoding selections: %w", err)
	}

	query := `
		INSERT INTO state (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`
	if _, err := s.db.Exec(query, stateKey, string(value)); err != nil {
		return fmt.Errorf("writing state: %w", err)
	}
	return nil
}

// Close releases database resources.
func (s *SQLite) Close() error {
	return s.db.Close()
}
