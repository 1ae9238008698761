package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tu-usuario/angelart-catalog/internal/domain/repository"
)

var _ repository.KV = (*KVRepo)(nil)

// KVRepo implementación del puerto KV sobre SQLite local. Cada clave guarda
// un valor serializado completo; Set es un upsert atómico.
type KVRepo struct {
	db *sql.DB
}

// NewKVRepository construye el adaptador de persistencia local.
func NewKVRepository(db *sql.DB) *KVRepo {
	return &KVRepo{db: db}
}

// Get devuelve el valor de la clave, o (nil, nil) si no existe.
func (r *KVRepo) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, `SELECT value FROM local_store WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get local_store[%s]: %w", key, err)
	}
	return value, nil
}

// Set sobrescribe el valor completo de la clave.
func (r *KVRepo) Set(ctx context.Context, key string, value []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO local_store (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("set local_store[%s]: %w", key, err)
	}
	return nil
}

// Delete elimina la clave; no falla si no existe.
func (r *KVRepo) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM local_store WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("delete local_store[%s]: %w", key, err)
	}
	return nil
}
