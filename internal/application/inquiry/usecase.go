// Package inquiry recibe las consultas del formulario de contacto del
// storefront y las acumula en el almacén local.
package inquiry

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/angelart-catalog/internal/application/dto"
	"github.com/tu-usuario/angelart-catalog/internal/domain"
	"github.com/tu-usuario/angelart-catalog/internal/domain/entity"
	"github.com/tu-usuario/angelart-catalog/internal/domain/repository"
	"github.com/tu-usuario/angelart-catalog/pkg/logger"
)

// InquiriesKey clave bajo la que se acumula la lista de consultas.
const InquiriesKey = "inquiries"

// UseCase caso de uso de consultas: alta pública y listado para el panel.
type UseCase struct {
	kv  repository.KV
	log *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(kv repository.KV, log *logger.Logger) *UseCase {
	return &UseCase{kv: kv, log: log}
}

// Submit añade la consulta al final de la lista persistida (lectura y
// reescritura del valor completo, como el resto del almacén).
func (uc *UseCase) Submit(ctx context.Context, in dto.SubmitInquiryRequest) (*entity.Inquiry, error) {
	if in.Email == "" || in.Message == "" {
		return nil, domain.ErrInvalidInput
	}
	inquiries, err := uc.list(ctx)
	if err != nil {
		return nil, err
	}
	inq := entity.Inquiry{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Email:     in.Email,
		Message:   in.Message,
		Timestamp: time.Now().UnixMilli(),
	}
	inquiries = append(inquiries, inq)
	raw, err := json.Marshal(inquiries)
	if err != nil {
		return nil, fmt.Errorf("serializar consultas: %w", err)
	}
	if err := uc.kv.Set(ctx, InquiriesKey, raw); err != nil {
		return nil, fmt.Errorf("guardar consultas: %w", err)
	}
	uc.log.Info().Str("email", inq.Email).Msg("consulta recibida")
	return &inq, nil
}

// List devuelve todas las consultas en orden de llegada.
func (uc *UseCase) List(ctx context.Context) ([]entity.Inquiry, error) {
	return uc.list(ctx)
}

func (uc *UseCase) list(ctx context.Context) ([]entity.Inquiry, error) {
	raw, err := uc.kv.Get(ctx, InquiriesKey)
	if err != nil {
		return nil, fmt.Errorf("leer consultas: %w", err)
	}
	if raw == nil {
		return []entity.Inquiry{}, nil
	}
	var inquiries []entity.Inquiry
	if err := json.Unmarshal(raw, &inquiries); err != nil {
		uc.log.Warn().Err(err).Msg("lista de consultas corrupta, se parte de una lista vacía")
		return []entity.Inquiry{}, nil
	}
	return inquiries, nil
}
