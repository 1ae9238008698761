package repository

import "context"

// KV es el puerto hacia el almacén local clave/valor (el análogo de
// localStorage). Lecturas y escrituras son de valor completo: no hay
// actualizaciones parciales bajo una misma clave.
type KV interface {
	// Get devuelve el valor de la clave, o (nil, nil) si no existe.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set sobrescribe el valor completo de la clave.
	Set(ctx context.Context, key string, value []byte) error
	// Delete elimina la clave. No es error si no existe.
	Delete(ctx context.Context, key string) error
}
