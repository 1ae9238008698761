// Package catalog contiene el almacén del catálogo de productos y las
// derivaciones puras de vista (agrupación por categoría, estado de stock).
package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tu-usuario/angelart-catalog/internal/domain/entity"
	"github.com/tu-usuario/angelart-catalog/internal/domain/repository"
	"github.com/tu-usuario/angelart-catalog/pkg/logger"
)

// CatalogKey es la clave bajo la que se persiste el catálogo completo.
// Se conserva el nombre histórico del almacén del storefront.
const CatalogKey = "angelArtWorld_products"

// Store es el dueño exclusivo de la representación durable del catálogo.
// El catálogo se lee y escribe siempre completo (read-modify-write);
// nunca hay escrituras parciales observables.
type Store struct {
	kv  repository.KV
	log *logger.Logger
}

// NewStore construye el almacén del catálogo.
func NewStore(kv repository.KV, log *logger.Logger) *Store {
	return &Store{kv: kv, log: log}
}

// Load devuelve el catálogo persistido. En el primer acceso siembra el
// juego de productos por defecto y lo persiste. Si el valor persistido no
// parsea, registra la condición y devuelve los defaults sin re-persistir:
// el fallo nunca se propaga al consumidor.
func (s *Store) Load(ctx context.Context) ([]entity.Product, error) {
	raw, err := s.kv.Get(ctx, CatalogKey)
	if err != nil {
		return nil, fmt.Errorf("leer catálogo: %w", err)
	}
	if raw == nil {
		// Primera visita: sembrar el catálogo por defecto.
		defaults := DefaultProducts()
		if err := s.Save(ctx, defaults); err != nil {
			return nil, fmt.Errorf("sembrar catálogo: %w", err)
		}
		s.log.Info().Int("products", len(defaults)).Msg("catálogo sembrado con los productos por defecto")
		return defaults, nil
	}
	var products []entity.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		s.log.Warn().Err(err).Msg("catálogo persistido corrupto, usando productos por defecto")
		return DefaultProducts(), nil
	}
	return products, nil
}

// Save sobrescribe el catálogo persistido completo bajo una sola clave.
func (s *Store) Save(ctx context.Context, products []entity.Product) error {
	raw, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("serializar catálogo: %w", err)
	}
	if err := s.kv.Set(ctx, CatalogKey, raw); err != nil {
		return fmt.Errorf("guardar catálogo: %w", err)
	}
	return nil
}

// DefaultProducts devuelve una copia fresca del juego inicial: cuatro
// productos en cuatro categorías distintas. El set de grafito queda bajo
// su propio umbral para ejercitar el estado "Low Stock".
func DefaultProducts() []entity.Product {
	return []entity.Product{
		{
			ID:           "1",
			Name:         "Premium Cotton Canvas",
			SKU:          "CAN-001",
			Category:     "canvases",
			CategoryName: "Professional Canvases",
			Description:  "Triple-primed, museum-quality cotton canvas. Perfect surface tension for oils and acrylics.",
			Stock:        150,
			MinStock:     20,
			Unit:         "rolls",
			Icon:         "layers",
		},
		{
			ID:           "2",
			Name:         "Kolinsky Sable Brush Set",
			SKU:          "BRU-001",
			Category:     "brushes",
			CategoryName: "Fine Art Brushes",
			Description:  "Hand-crafted brushes from premium Kolinsky sable hair. Exceptional spring and control.",
			Stock:        85,
			MinStock:     15,
			Unit:         "sets",
			Icon:         "brush",
		},
		{
			ID:           "3",
			Name:         "Artist Grade Oil Pigments",
			SKU:          "PIG-001",
			Category:     "pigments",
			CategoryName: "Pigments & Oils",
			Description:  "Highly concentrated pigments with superior lightfastness. Rich, vibrant colors.",
			Stock:        220,
			MinStock:     30,
			Unit:         "tubes",
			Icon:         "palette",
		},
		{
			ID:           "4",
			Name:         "Professional Graphite Set",
			SKU:          "SKE-001",
			Category:     "sketching",
			CategoryName: "Sketching Tools",
			Description:  "Premium graphite pencils ranging from 9H to 9B. Smooth, consistent laydown.",
			Stock:        5,
			MinStock:     10,
			Unit:         "sets",
			Icon:         "pen-tool",
		},
	}
}
