package dto

import (
	"github.com/tu-usuario/angelart-catalog/internal/domain/entity"
)

// ProductView un producto con su badge de stock ya derivado.
type ProductView struct {
	entity.Product
	Status StatusView `json:"status"`
}

// StatusView etiqueta y clase de estilo del badge de stock.
type StatusView struct {
	Label string `json:"label"`
	Class string `json:"class"`
}

// CategoryCard tarjeta de categoría del storefront: nombre del grupo,
// producto representativo (icono/descripción) y los productos en orden.
type CategoryCard struct {
	Key            string        `json:"key"`
	Name           string        `json:"name"`
	Representative *ProductView  `json:"representative"`
	Products       []ProductView `json:"products"`
	Count          int           `json:"count"`
}

// StorefrontResponse respuesta de GET /api/storefront: las tarjetas en el
// orden de primera aparición de cada categoría en el catálogo.
type StorefrontResponse struct {
	Categories []CategoryCard `json:"categories"`
}
