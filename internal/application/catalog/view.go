package catalog

import "github.com/tu-usuario/angelart-catalog/internal/domain/entity"

// Etiquetas de estado de stock. Tres estados, sin más variantes.
const (
	StatusInStock    = "In Stock"
	StatusLowStock   = "Low Stock"
	StatusOutOfStock = "Out of Stock"
)

// StatusInfo etiqueta de stock más su clase de estilo para el badge.
type StatusInfo struct {
	Label string `json:"label"`
	Class string `json:"class"`
}

// CategoryGroup agrupa los productos de una clave de categoría en el orden
// en que aparecen en el catálogo.
type CategoryGroup struct {
	Key      string           `json:"key"`
	Name     string           `json:"name"`
	Products []entity.Product `json:"products"`
}

// StockStatus deriva el estado de stock de un producto. Regla, en orden de
// prioridad: stock == 0 -> Out of Stock; stock <= minStock -> Low Stock;
// si no -> In Stock. Función pura.
func StockStatus(p entity.Product) StatusInfo {
	switch {
	case p.Stock == 0:
		return StatusInfo{Label: StatusOutOfStock, Class: "bg-red-900/30 text-red-400 border-red-700"}
	case p.Stock <= p.MinStock:
		return StatusInfo{Label: StatusLowStock, Class: "bg-yellow-900/30 text-yellow-400 border-yellow-700"}
	default:
		return StatusInfo{Label: StatusInStock, Class: "bg-green-900/30 text-green-400 border-green-700"}
	}
}

// GroupByCategory recorre el catálogo una sola vez y agrupa por clave de
// categoría preservando el orden de primera aparición, tanto de los grupos
// como de los productos dentro de cada grupo. El nombre del grupo es el
// categoryName del primer producto visto; discrepancias posteriores se
// ignoran en silencio.
func GroupByCategory(products []entity.Product) []CategoryGroup {
	groups := make([]CategoryGroup, 0)
	index := make(map[string]int)
	for _, p := range products {
		i, ok := index[p.Category]
		if !ok {
			index[p.Category] = len(groups)
			groups = append(groups, CategoryGroup{
				Key:      p.Category,
				Name:     p.CategoryName,
				Products: []entity.Product{p},
			})
			continue
		}
		groups[i].Products = append(groups[i].Products, p)
	}
	return groups
}

// Representative devuelve el primer producto del grupo: el que la tarjeta
// de categoría usa como icono y descripción. Nil si el grupo está vacío.
func Representative(g CategoryGroup) *entity.Product {
	if len(g.Products) == 0 {
		return nil
	}
	return &g.Products[0]
}
