package admin_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/angelart-catalog/internal/application/admin"
	"github.com/tu-usuario/angelart-catalog/internal/application/auth"
	"github.com/tu-usuario/angelart-catalog/internal/application/catalog"
	"github.com/tu-usuario/angelart-catalog/internal/application/dto"
	"github.com/tu-usuario/angelart-catalog/internal/domain"
	"github.com/tu-usuario/angelart-catalog/pkg/logger"

	"github.com/tu-usuario/angelart-catalog/internal/infrastructure/sqlite"
)

const adminEmail = "sharmaashmit2327@gmail.com"

type fixture struct {
	store      *catalog.Store
	gate       *auth.Gate
	controller *admin.Controller
}

func setup(t *testing.T) *fixture {
	t.Helper()
	db, err := sqlite.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	kv := sqlite.NewKVRepository(db)
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	store := catalog.NewStore(kv, log)
	gate := auth.NewGate(kv, adminEmail, log)
	return &fixture{
		store:      store,
		gate:       gate,
		controller: admin.NewController(store, gate),
	}
}

func (f *fixture) login(t *testing.T) {
	t.Helper()
	_, err := f.gate.AttemptLogin(context.Background(), adminEmail, "pw1")
	require.NoError(t, err)
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

// Toda operación estando LoggedOut debe rechazarse con ErrUnauthorized y
// dejar el catálogo almacenado intacto.
func TestOperaciones_SinSesion_Unauthorized(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	_, err := f.controller.Create(ctx, dto.CreateProductRequest{Name: "X", SKU: "X-1", Category: "x"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = f.controller.Update(ctx, "1", dto.UpdateProductRequest{Stock: intPtr(1)})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	assert.ErrorIs(t, f.controller.Delete(ctx, "1"), domain.ErrUnauthorized)

	_, err = f.controller.List(ctx)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = f.controller.Dashboard(ctx)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	products, err := f.store.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 4, "nada debe haber mutado el catálogo sembrado")
}

// Create asigna un id fresco, añade al final y persiste.
func TestCreate_AsignaIDYPersiste(t *testing.T) {
	f := setup(t)
	f.login(t)
	ctx := context.Background()

	created, err := f.controller.Create(ctx, dto.CreateProductRequest{
		Name:         "Linen Canvas Roll",
		SKU:          "CAN-002",
		Category:     "canvases",
		CategoryName: "Professional Canvases",
		Stock:        40,
		MinStock:     10,
		Unit:         "rolls",
		Icon:         "layers",
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.NotEmpty(t, created.ID)

	products, err := f.store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, products, 5)
	assert.Equal(t, created.ID, products[4].ID, "el producto nuevo va al final del catálogo")

	for _, p := range products[:4] {
		assert.NotEqual(t, p.ID, created.ID, "el id nuevo no colisiona con los existentes")
	}
}

func TestCreate_StockNegativo_Invalido(t *testing.T) {
	f := setup(t)
	f.login(t)

	_, err := f.controller.Create(context.Background(), dto.CreateProductRequest{
		Name: "X", SKU: "X-1", Category: "x", Stock: -1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Update mezcla solo los campos presentes del patch.
func TestUpdate_MezclaParcial(t *testing.T) {
	f := setup(t)
	f.login(t)
	ctx := context.Background()

	updated, err := f.controller.Update(ctx, "1", dto.UpdateProductRequest{
		Stock: intPtr(3),
	})
	require.NoError(t, err)
	assert.Equal(t, 3, updated.Stock)
	assert.Equal(t, "Premium Cotton Canvas", updated.Name, "los campos ausentes del patch no cambian")
	assert.Equal(t, "CAN-001", updated.SKU)

	updated, err = f.controller.Update(ctx, "1", dto.UpdateProductRequest{
		Name: strPtr("Premium Cotton Canvas XL"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Premium Cotton Canvas XL", updated.Name)
	assert.Equal(t, 3, updated.Stock, "la mezcla anterior quedó persistida")
}

func TestUpdate_IDInexistente_NotFound(t *testing.T) {
	f := setup(t)
	f.login(t)

	_, err := f.controller.Update(context.Background(), "no-existe", dto.UpdateProductRequest{Stock: intPtr(1)})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Delete de un id inexistente falla con NotFound y deja el catálogo igual.
func TestDelete_IDInexistente_NoOp(t *testing.T) {
	f := setup(t)
	f.login(t)
	ctx := context.Background()

	before, err := f.store.Load(ctx)
	require.NoError(t, err)

	assert.ErrorIs(t, f.controller.Delete(ctx, "no-existe"), domain.ErrNotFound)

	after, err := f.store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after, "el catálogo almacenado no debe cambiar")
}

func TestDelete_EliminaYPersiste(t *testing.T) {
	f := setup(t)
	f.login(t)
	ctx := context.Background()

	require.NoError(t, f.controller.Delete(ctx, "2"))

	products, err := f.store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, products, 3)
	for _, p := range products {
		assert.NotEqual(t, "2", p.ID)
	}
	// El orden relativo de los restantes se conserva.
	assert.Equal(t, []string{"1", "3", "4"}, []string{products[0].ID, products[1].ID, products[2].ID})
}

// El dashboard se recalcula completo tras cada mutación; los agregados no
// pueden divergir de la fuente de verdad.
func TestDashboard_RecalculoTrasMutacion(t *testing.T) {
	f := setup(t)
	f.login(t)
	ctx := context.Background()

	summary, err := f.controller.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, summary.TotalProducts)
	assert.Equal(t, 1, summary.LowStock, "el set de grafito viene sembrado bajo su umbral")
	assert.Equal(t, 0, summary.OutOfStock)
	assert.Equal(t, 4, summary.Categories)

	// Agotar un producto y verificar que el agregado se recalcula.
	_, err = f.controller.Update(ctx, "1", dto.UpdateProductRequest{Stock: intPtr(0)})
	require.NoError(t, err)

	summary, err = f.controller.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, summary.TotalProducts)
	assert.Equal(t, 1, summary.OutOfStock)

	// Borrar el agotado: los contadores vuelven a bajar.
	require.NoError(t, f.controller.Delete(ctx, "1"))
	summary, err = f.controller.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.TotalProducts)
	assert.Equal(t, 0, summary.OutOfStock)
	assert.Equal(t, 3, summary.Categories)
}

// El logout cierra el gate para el controlador aunque el snapshot esté cacheado.
func TestDashboard_TrasLogout_Unauthorized(t *testing.T) {
	f := setup(t)
	f.login(t)
	ctx := context.Background()

	_, err := f.controller.Dashboard(ctx)
	require.NoError(t, err)

	require.NoError(t, f.gate.Logout(ctx))
	f.controller.Invalidate()

	_, err = f.controller.Dashboard(ctx)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
