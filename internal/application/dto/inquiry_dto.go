package dto

import "github.com/tu-usuario/angelart-catalog/internal/domain/entity"

// SubmitInquiryRequest entrada del formulario de contacto del storefront.
type SubmitInquiryRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

// InquiryListResponse listado de consultas recibidas (solo administración).
type InquiryListResponse struct {
	Items []entity.Inquiry `json:"items"`
}
