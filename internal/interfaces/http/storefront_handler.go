package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/angelart-catalog/internal/application/catalog"
	"github.com/tu-usuario/angelart-catalog/internal/application/dto"
	"github.com/tu-usuario/angelart-catalog/internal/domain/entity"
)

// StorefrontHandler sirve la vista pública del catálogo: las tarjetas por
// categoría con sus badges de stock, tal como las consume la grilla.
type StorefrontHandler struct {
	store *catalog.Store
}

// NewStorefrontHandler construye el handler.
func NewStorefrontHandler(store *catalog.Store) *StorefrontHandler {
	return &StorefrontHandler{store: store}
}

// Get godoc
// @Summary      Catálogo agrupado por categoría
// @Tags         storefront
// @Produce      json
// @Success      200  {object}  dto.StorefrontResponse
// @Router       /api/storefront [get]
func (h *StorefrontHandler) Get(c *fiber.Ctx) error {
	products, err := h.store.Load(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	groups := catalog.GroupByCategory(products)
	cards := make([]dto.CategoryCard, 0, len(groups))
	for _, g := range groups {
		card := dto.CategoryCard{
			Key:      g.Key,
			Name:     g.Name,
			Products: toProductViews(g.Products),
			Count:    len(g.Products),
		}
		if rep := catalog.Representative(g); rep != nil {
			view := toProductView(*rep)
			card.Representative = &view
		}
		cards = append(cards, card)
	}
	return c.JSON(dto.StorefrontResponse{Categories: cards})
}

func toProductView(p entity.Product) dto.ProductView {
	status := catalog.StockStatus(p)
	return dto.ProductView{
		Product: p,
		Status:  dto.StatusView{Label: status.Label, Class: status.Class},
	}
}

func toProductViews(products []entity.Product) []dto.ProductView {
	views := make([]dto.ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, toProductView(p))
	}
	return views
}
