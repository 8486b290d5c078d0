package dataset

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	_ "modernc.org/sqlite"
)

// Store persists labeled datasets in a SQLite file, one catalogued dataset
// per id. It is meant for experiment bookkeeping: build once, reload the
// exact same examples later without re-running the generator.
//
// The schema is two tables: datasets (id, size, created_at) and examples
// (dataset_id, ord, seq JSON, label), with ord preserving dataset order.
type Store struct {
	db *sql.DB
}

// Info describes one catalogued dataset.
type Info struct {
	ID        string
	Size      int
	CreatedAt time.Time
}

// OpenStore opens (or creates) the SQLite file at path and ensures the
// schema exists. Close the store when done.
func OpenStore(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("dataset: store path is required")
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("OpenStore: %w", err)
	}
	if err := createTables(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("OpenStore: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

func createTables(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS datasets (
			id         TEXT PRIMARY KEY,
			size       INTEGER NOT NULL,
			created_at TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS examples (
			dataset_id TEXT    NOT NULL REFERENCES datasets(id) ON DELETE CASCADE,
			ord        INTEGER NOT NULL,
			seq        TEXT    NOT NULL,
			label      REAL    NOT NULL,
			PRIMARY KEY (dataset_id, ord)
		);
	`)
	return err
}

// Save persists d under the given id, replacing any previous dataset with
// that id. An empty id gets a fresh UUID. Returns the id actually used.
// The write is transactional: either the whole dataset lands or none of it.
func (s *Store) Save(ctx context.Context, id string, d Dataset) (string, error) {
	if id == "" {
		id = uuid.NewString()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("Save: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO datasets (id, size, created_at)
		VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			size = excluded.size,
			created_at = excluded.created_at
	`, id, len(d), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return "", fmt.Errorf("Save: %w", err)
	}

	// Replace rather than merge: stale rows from a larger prior dataset
	// must not survive an upsert.
	if _, err = tx.ExecContext(ctx, `DELETE FROM examples WHERE dataset_id = ?`, id); err != nil {
		return "", fmt.Errorf("Save: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO examples (dataset_id, ord, seq, label) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("Save: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for ord, ex := range d {
		payload, err := json.Marshal(ex.Seq)
		if err != nil {
			return "", fmt.Errorf("Save: example %d: %w", ord, err)
		}
		if _, err = stmt.ExecContext(ctx, id, ord, string(payload), ex.Label); err != nil {
			return "", fmt.Errorf("Save: example %d: %w", ord, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return "", fmt.Errorf("Save: %w", err)
	}
	return id, nil
}

// Load returns the dataset stored under id in its original order.
// The boolean is false when no dataset with that id exists.
func (s *Store) Load(ctx context.Context, id string) (Dataset, bool, error) {
	var size int
	err := s.db.QueryRowContext(ctx, `SELECT size FROM datasets WHERE id = ?`, id).Scan(&size)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("Load: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT seq, label FROM examples WHERE dataset_id = ? ORDER BY ord`, id)
	if err != nil {
		return nil, false, fmt.Errorf("Load: %w", err)
	}
	defer func() { _ = rows.Close() }()

	ds := make(Dataset, 0, size)
	for rows.Next() {
		var payload string
		var label float64
		if err = rows.Scan(&payload, &label); err != nil {
			return nil, false, fmt.Errorf("Load: %w", err)
		}
		var seq []int
		if err = json.Unmarshal([]byte(payload), &seq); err != nil {
			return nil, false, fmt.Errorf("Load: dataset %s: %v: %w", id, err, ErrBadRecord)
		}
		ds = append(ds, Example{Seq: seq, Label: label})
	}
	if err = rows.Err(); err != nil {
		return nil, false, fmt.Errorf("Load: %w", err)
	}
	return ds, true, nil
}

// List returns the catalogue of stored datasets, newest first.
func (s *Store) List(ctx context.Context) ([]Info, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, size, created_at FROM datasets ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var infos []Info
	for rows.Next() {
		var info Info
		var created string
		if err = rows.Scan(&info.ID, &info.Size, &created); err != nil {
			return nil, fmt.Errorf("List: %w", err)
		}
		if info.CreatedAt, err = time.Parse(time.RFC3339, created); err != nil {
			return nil, fmt.Errorf("List: dataset %s: %w", info.ID, err)
		}
		infos = append(infos, info)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	return infos, nil
}
