// Package admin contiene el controlador de administración: CRUD del
// catálogo detrás del SessionGate, más los agregados del dashboard.
package admin

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/tu-usuario/angelart-catalog/internal/application/auth"
	"github.com/tu-usuario/angelart-catalog/internal/application/catalog"
	"github.com/tu-usuario/angelart-catalog/internal/application/dto"
	"github.com/tu-usuario/angelart-catalog/internal/domain"
	"github.com/tu-usuario/angelart-catalog/internal/domain/entity"
)

// Controller muta el catálogo a través del CatalogStore. Toda operación
// consulta primero el SessionGate: ninguna ruta de código puede mutar el
// catálogo estando LoggedOut.
//
// El mutex conserva la semántica read-modify-write de catálogo completo
// cuando el servidor atiende varias peticiones a la vez: una sola mutación
// lógica en vuelo, como en el origen de un solo hilo.
type Controller struct {
	store *catalog.Store
	gate  *auth.Gate

	mu       sync.Mutex
	snapshot *dto.DashboardResponse // agregados cacheados; nil = invalidado
}

// NewController construye el controlador.
func NewController(store *catalog.Store, gate *auth.Gate) *Controller {
	return &Controller{store: store, gate: gate}
}

// requireSession devuelve ErrUnauthorized si el gate no reporta LoggedIn.
func (c *Controller) requireSession(ctx context.Context) error {
	session, err := c.gate.CheckSession(ctx)
	if err != nil {
		return err
	}
	if session == nil {
		return domain.ErrUnauthorized
	}
	return nil
}

// List devuelve el catálogo completo para la tabla del panel.
func (c *Controller) List(ctx context.Context) ([]entity.Product, error) {
	if err := c.requireSession(ctx); err != nil {
		return nil, err
	}
	return c.store.Load(ctx)
}

// Create asigna un id nuevo y único, añade el producto al final del
// catálogo y lo persiste. Devuelve el registro creado.
func (c *Controller) Create(ctx context.Context, in dto.CreateProductRequest) (*entity.Product, error) {
	if err := c.requireSession(ctx); err != nil {
		return nil, err
	}
	if in.Stock < 0 || in.MinStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	products, err := c.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	product := entity.Product{
		ID:           uuid.New().String(),
		Name:         in.Name,
		SKU:          in.SKU,
		Category:     in.Category,
		CategoryName: in.CategoryName,
		Description:  in.Description,
		Stock:        in.Stock,
		MinStock:     in.MinStock,
		Unit:         in.Unit,
		Icon:         in.Icon,
	}
	products = append(products, product)
	if err := c.store.Save(ctx, products); err != nil {
		return nil, err
	}
	c.snapshot = nil
	return &product, nil
}

// Update mezcla los campos presentes del patch sobre el registro existente
// y persiste el catálogo completo. ErrNotFound si el id no existe.
func (c *Controller) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*entity.Product, error) {
	if err := c.requireSession(ctx); err != nil {
		return nil, err
	}
	if (in.Stock != nil && *in.Stock < 0) || (in.MinStock != nil && *in.MinStock < 0) {
		return nil, domain.ErrInvalidInput
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	products, err := c.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID != id {
			continue
		}
		p := &products[i]
		if in.Name != nil {
			p.Name = *in.Name
		}
		if in.SKU != nil {
			p.SKU = *in.SKU
		}
		if in.Category != nil {
			p.Category = *in.Category
		}
		if in.CategoryName != nil {
			p.CategoryName = *in.CategoryName
		}
		if in.Description != nil {
			p.Description = *in.Description
		}
		if in.Stock != nil {
			p.Stock = *in.Stock
		}
		if in.MinStock != nil {
			p.MinStock = *in.MinStock
		}
		if in.Unit != nil {
			p.Unit = *in.Unit
		}
		if in.Icon != nil {
			p.Icon = *in.Icon
		}
		if err := c.store.Save(ctx, products); err != nil {
			return nil, err
		}
		c.snapshot = nil
		updated := *p
		return &updated, nil
	}
	return nil, domain.ErrNotFound
}

// Delete elimina el producto y persiste. ErrNotFound si el id no existe;
// en ese caso el catálogo almacenado queda intacto.
func (c *Controller) Delete(ctx context.Context, id string) error {
	if err := c.requireSession(ctx); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	products, err := c.store.Load(ctx)
	if err != nil {
		return err
	}
	for i := range products {
		if products[i].ID != id {
			continue
		}
		products = append(products[:i], products[i+1:]...)
		if err := c.store.Save(ctx, products); err != nil {
			return err
		}
		c.snapshot = nil
		return nil
	}
	return domain.ErrNotFound
}

// Dashboard devuelve los agregados del panel, recalculándolos completos
// desde el catálogo si el snapshot cacheado fue invalidado.
func (c *Controller) Dashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	if err := c.requireSession(ctx); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.snapshot != nil {
		out := *c.snapshot
		return &out, nil
	}
	products, err := c.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	summary := dto.DashboardResponse{TotalProducts: len(products)}
	for _, p := range products {
		switch catalog.StockStatus(p).Label {
		case catalog.StatusLowStock:
			summary.LowStock++
		case catalog.StatusOutOfStock:
			summary.OutOfStock++
		}
	}
	summary.Categories = len(catalog.GroupByCategory(products))
	c.snapshot = &summary
	out := summary
	return &out, nil
}

// Invalidate descarta el snapshot cacheado. Se invoca en las transiciones
// de sesión: login y logout son puntos de reinicio duro del estado derivado.
func (c *Controller) Invalidate() {
	c.mu.Lock()
	c.snapshot = nil
	c.mu.Unlock()
}
