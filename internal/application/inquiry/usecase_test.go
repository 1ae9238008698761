package inquiry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/angelart-catalog/internal/application/dto"
	"github.com/tu-usuario/angelart-catalog/internal/application/inquiry"
	"github.com/tu-usuario/angelart-catalog/internal/domain"
	"github.com/tu-usuario/angelart-catalog/internal/infrastructure/sqlite"
	"github.com/tu-usuario/angelart-catalog/pkg/logger"
)

func setupUseCase(t *testing.T) *inquiry.UseCase {
	t.Helper()
	db, err := sqlite.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	log := logger.New(logger.Config{Env: "production", Level: "error"})
	return inquiry.NewUseCase(sqlite.NewKVRepository(db), log)
}

// Las consultas se acumulan en orden de llegada.
func TestSubmit_AcumulaEnOrden(t *testing.T) {
	uc := setupUseCase(t)
	ctx := context.Background()

	first, err := uc.Submit(ctx, dto.SubmitInquiryRequest{Name: "Ana", Email: "ana@x.com", Message: "¿Tienen lienzos de lino?"})
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	assert.Positive(t, first.Timestamp)

	second, err := uc.Submit(ctx, dto.SubmitInquiryRequest{Name: "Luis", Email: "luis@x.com", Message: "Precio de pigmentos al por mayor"})
	require.NoError(t, err)

	items, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, first.ID, items[0].ID)
	assert.Equal(t, second.ID, items[1].ID)
}

func TestSubmit_SinEmailOMensaje_Invalido(t *testing.T) {
	uc := setupUseCase(t)
	ctx := context.Background()

	_, err := uc.Submit(ctx, dto.SubmitInquiryRequest{Name: "Ana", Message: "hola"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Submit(ctx, dto.SubmitInquiryRequest{Name: "Ana", Email: "ana@x.com"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestList_SinConsultas_ListaVacia(t *testing.T) {
	uc := setupUseCase(t)

	items, err := uc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}
