package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/cognicore/cubegen/pkg/cubegen/cube"
	"github.com/cognicore/cubegen/pkg/cubegen/dataset"
	"github.com/cognicore/cubegen/pkg/cubegen/internalerr"
	"github.com/cognicore/cubegen/pkg/cubegen/store"
)

// sqliteStore implements the Store interface using SQLite
type sqliteStore struct {
	db *sql.DB
}

// OpenSQLite opens a SQLite database with WAL mode enabled. Failures to open
// or initialise the database wrap internalerr.ErrStoreUnavailable.
func OpenSQLite(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, unavailable(path, err)
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, unavailable(path, err)
	}

	// Enable foreign keys
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, unavailable(path, err)
	}

	// Initialize schema
	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, unavailable(path, err)
	}

	return &sqliteStore{db: db}, nil
}

func unavailable(path string, err error) error {
	return fmt.Errorf("%w: %s: %v", internalerr.ErrStoreUnavailable, path, err)
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS datasets (
	id TEXT PRIMARY KEY,
	name TEXT,
	version INTEGER NOT NULL DEFAULT 0,
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS examples (
	dataset_id TEXT NOT NULL,
	position INTEGER NOT NULL,
	prompt_text TEXT NOT NULL,
	object_json TEXT NOT NULL,
	rating REAL,
	created_at TEXT NOT NULL,
	PRIMARY KEY(dataset_id, position),
	FOREIGN KEY(dataset_id) REFERENCES datasets(id) ON DELETE CASCADE
);
`

	_, err := db.ExecContext(ctx, schema)
	return err
}

// SaveDataset inserts or replaces a dataset together with all its examples
func (s *sqliteStore) SaveDataset(ctx context.Context, d *dataset.Dataset) error {
	if d == nil || d.ID == "" {
		return fmt.Errorf("save dataset: %w", internalerr.ErrInvalidInput)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	const stmt = `
INSERT INTO datasets (id, name, version, created_at, updated_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	name=excluded.name,
	version=excluded.version,
	created_at=excluded.created_at,
	updated_at=excluded.updated_at;
`
	if _, err := tx.ExecContext(ctx, stmt,
		d.ID, d.Name, d.Version, formatTime(d.CreatedAt), formatTime(d.UpdatedAt),
	); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM examples WHERE dataset_id = ?`, d.ID); err != nil {
		return err
	}
	for i, ex := range d.Examples {
		if err := insertExample(ctx, tx, d.ID, i, ex); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// AppendExample adds an example at the end of an existing dataset
func (s *sqliteStore) AppendExample(ctx context.Context, datasetID string, ex dataset.Example, version int, updatedAt time.Time) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE datasets SET version = ?, updated_at = ? WHERE id = ?`,
		version, formatTime(updatedAt), datasetID,
	)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return fmt.Errorf("dataset %s: %w", datasetID, internalerr.ErrNotFound)
	}

	var next int
	if err := tx.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(position) + 1, 0) FROM examples WHERE dataset_id = ?`, datasetID,
	).Scan(&next); err != nil {
		return err
	}
	if err := insertExample(ctx, tx, datasetID, next, ex); err != nil {
		return err
	}

	return tx.Commit()
}

func insertExample(ctx context.Context, tx *sql.Tx, datasetID string, position int, ex dataset.Example) error {
	obj, err := json.Marshal(ex.Object)
	if err != nil {
		return fmt.Errorf("encode example object: %w", err)
	}
	var rating sql.NullFloat64
	if ex.Rating != nil {
		rating = sql.NullFloat64{Float64: *ex.Rating, Valid: true}
	}
	_, err = tx.ExecContext(ctx, `
INSERT INTO examples (dataset_id, position, prompt_text, object_json, rating, created_at)
VALUES (?, ?, ?, ?, ?, ?)`,
		datasetID, position, ex.PromptText, string(obj), rating, formatTime(ex.CreatedAt),
	)
	return err
}

// LoadDataset returns a dataset by ID
func (s *sqliteStore) LoadDataset(ctx context.Context, id string) (*dataset.Dataset, bool, error) {
	var (
		d                  dataset.Dataset
		createdAt, updated string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, version, created_at, updated_at FROM datasets WHERE id = ?`, id,
	).Scan(&d.ID, &d.Name, &d.Version, &createdAt, &updated)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	d.CreatedAt = parseTime(createdAt)
	d.UpdatedAt = parseTime(updated)

	examples, err := s.loadExamples(ctx, id)
	if err != nil {
		return nil, false, err
	}
	d.Examples = examples
	return &d, true, nil
}

// LatestDataset returns the most recently updated dataset
func (s *sqliteStore) LatestDataset(ctx context.Context) (*dataset.Dataset, bool, error) {
	var id string
	err := s.db.QueryRowContext(ctx,
		`SELECT id FROM datasets ORDER BY updated_at DESC LIMIT 1`,
	).Scan(&id)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return s.LoadDataset(ctx, id)
}

// DeleteDataset removes a dataset and, via cascade, its examples
func (s *sqliteStore) DeleteDataset(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM datasets WHERE id = ?`, id)
	return err
}

// ListDatasets returns summaries, most recently updated first
func (s *sqliteStore) ListDatasets(ctx context.Context) ([]store.DatasetInfo, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT d.id, d.name, d.version, d.created_at, d.updated_at, COUNT(e.position)
FROM datasets d
LEFT JOIN examples e ON e.dataset_id = d.id
GROUP BY d.id
ORDER BY d.updated_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.DatasetInfo
	for rows.Next() {
		var (
			info               store.DatasetInfo
			createdAt, updated string
		)
		if err := rows.Scan(&info.ID, &info.Name, &info.Version, &createdAt, &updated, &info.Examples); err != nil {
			return nil, err
		}
		info.CreatedAt = parseTime(createdAt)
		info.UpdatedAt = parseTime(updated)
		out = append(out, info)
	}
	return out, rows.Err()
}

func (s *sqliteStore) loadExamples(ctx context.Context, datasetID string) ([]dataset.Example, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT prompt_text, object_json, rating, created_at
FROM examples
WHERE dataset_id = ?
ORDER BY position`, datasetID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	examples := []dataset.Example{}
	for rows.Next() {
		var (
			ex        dataset.Example
			objJSON   string
			rating    sql.NullFloat64
			createdAt string
		)
		if err := rows.Scan(&ex.PromptText, &objJSON, &rating, &createdAt); err != nil {
			return nil, err
		}
		var obj cube.Object
		if err := json.Unmarshal([]byte(objJSON), &obj); err != nil {
			return nil, fmt.Errorf("decode example object: %w", err)
		}
		ex.Object = obj
		if rating.Valid {
			ex.Rating = dataset.Rating(rating.Float64)
		}
		ex.CreatedAt = parseTime(createdAt)
		examples = append(examples, ex)
	}
	return examples, rows.Err()
}

// timeLayout is fixed-width so that text ordering matches time ordering.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
