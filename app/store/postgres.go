package store

import (
	"database/sql"
)

// PostgresKV persists each collection as one JSONB document in a two-column
// table, keyed by collection name. The documents keep the exact shapes the
// records marshal to, so the table contents stay portable.
type PostgresKV struct {
	db *sql.DB
}

// NewPostgresKV prepares the backing table and returns the backend.
func NewPostgresKV(db *sql.DB) (*PostgresKV, error) {
	query := `CREATE TABLE IF NOT EXISTS collections (
		name TEXT PRIMARY KEY,
		data JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`
	if _, err := db.Exec(query); err != nil {
		return nil, err
	}
	return &PostgresKV{db: db}, nil
}

// Load returns the stored document for a collection, or nil if the
// collection has never been written.
func (p *PostgresKV) Load(name string) ([]byte, error) {
	var data []byte
	err := p.db.QueryRow(`SELECT data FROM collections WHERE name = $1`, name).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Save upserts the document for a collection.
func (p *PostgresKV) Save(name string, data []byte) error {
	query := `INSERT INTO collections (name, data, updated_at) VALUES ($1, $2, NOW())
	          ON CONFLICT (name) DO UPDATE SET data = EXCLUDED.data, updated_at = NOW()`
	_, err := p.db.Exec(query, name, data)
	return err
}
