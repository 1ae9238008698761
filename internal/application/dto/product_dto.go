package dto

// CreateProductRequest entrada para crear un producto. Los nombres de campo
// siguen la forma persistida del catálogo (camelCase).
type CreateProductRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=200"`
	SKU          string `json:"sku" validate:"required,min=1,max=100"`
	Category     string `json:"category" validate:"required"`
	CategoryName string `json:"categoryName"`
	Description  string `json:"description"`
	Stock        int    `json:"stock" validate:"min=0"`
	MinStock     int    `json:"minStock" validate:"min=0"`
	Unit         string `json:"unit"`
	Icon         string `json:"icon"`
}

// UpdateProductRequest entrada para actualizar un producto. Solo los campos
// presentes (no nil) se mezclan sobre el registro existente.
type UpdateProductRequest struct {
	Name         *string `json:"name" validate:"omitempty,min=1,max=200"`
	SKU          *string `json:"sku" validate:"omitempty,min=1,max=100"`
	Category     *string `json:"category"`
	CategoryName *string `json:"categoryName"`
	Description  *string `json:"description"`
	Stock        *int    `json:"stock" validate:"omitempty,min=0"`
	MinStock     *int    `json:"minStock" validate:"omitempty,min=0"`
	Unit         *string `json:"unit"`
	Icon         *string `json:"icon"`
}
