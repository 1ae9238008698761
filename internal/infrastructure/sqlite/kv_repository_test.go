package sqlite

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestSetAndGet_RoundTrip(t *testing.T) {
	r := NewKVRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "angelArtWorld_products", []byte(`[{"id":"1"}]`)))

	v, err := r.Get(ctx, "angelArtWorld_products")
	require.NoError(t, err)
	require.Equal(t, []byte(`[{"id":"1"}]`), v)
}

func TestGet_ClaveAusente_DevuelveNilNil(t *testing.T) {
	r := NewKVRepository(setupDB(t))

	v, err := r.Get(context.Background(), "ausente")
	require.NoError(t, err)
	require.Nil(t, v) // contrato: (nil, nil) si no hay fila
}

func TestSet_UpsertSobrescribe(t *testing.T) {
	r := NewKVRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "k", []byte("viejo")))
	require.NoError(t, r.Set(ctx, "k", []byte("nuevo")))

	v, err := r.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("nuevo"), v)
}

func TestDelete_EliminaYEsIdempotente(t *testing.T) {
	r := NewKVRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "k", []byte("v")))
	require.NoError(t, r.Delete(ctx, "k"))

	v, err := r.Get(ctx, "k")
	require.NoError(t, err)
	require.Nil(t, v)

	// borrar una clave inexistente no es error
	require.NoError(t, r.Delete(ctx, "k"))
}
