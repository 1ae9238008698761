package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/angelart-catalog/internal/application/dto"
	"github.com/tu-usuario/angelart-catalog/internal/application/inquiry"
	"github.com/tu-usuario/angelart-catalog/internal/domain"
)

// InquiryHandler maneja el formulario de contacto y su listado.
type InquiryHandler struct {
	uc *inquiry.UseCase
}

// NewInquiryHandler construye el handler.
func NewInquiryHandler(uc *inquiry.UseCase) *InquiryHandler {
	return &InquiryHandler{uc: uc}
}

// Submit godoc
// @Summary      Enviar una consulta
// @Tags         inquiries
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SubmitInquiryRequest  true  "name, email, message"
// @Success      201   {object}  entity.Inquiry
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inquiries [post]
func (h *InquiryHandler) Submit(c *fiber.Ctx) error {
	var in dto.SubmitInquiryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Submit(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y message son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar consultas recibidas
// @Tags         inquiries
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.InquiryListResponse
// @Router       /api/admin/inquiries [get]
func (h *InquiryHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.InquiryListResponse{Items: items})
}
