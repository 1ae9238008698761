package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // driver SQLite puro Go
)

// Open abre (o crea) la base local y asegura el esquema del almacén
// clave/valor. Acepta ":memory:" para tests.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	if dsn != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dsn), 0o755); err != nil {
			return nil, fmt.Errorf("crear directorio del almacén: %w", err)
		}
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("abrir almacén local: %w", err)
	}
	if err := ensureSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func ensureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS local_store (
			key   TEXT PRIMARY KEY,
			value BLOB NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("inicializar esquema local_store: %w", err)
	}
	return nil
}
