package entity

// Product representa un artículo del catálogo de materiales de arte.
// Los tags JSON conservan la forma exacta con la que el catálogo se
// serializa en el almacén local (camelCase), de modo que cualquier
// superficie de render pueda consumirlo sin re-mapeos.
type Product struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	SKU          string `json:"sku"`
	Category     string `json:"category"`     // clave de agrupación
	CategoryName string `json:"categoryName"` // etiqueta humana de la categoría
	Description  string `json:"description"`
	Stock        int    `json:"stock"`    // cantidad actual, >= 0
	MinStock     int    `json:"minStock"` // umbral de reposición, >= 0
	Unit         string `json:"unit"`     // ej: "rolls", "sets", "tubes"
	Icon         string `json:"icon"`     // nombre simbólico del glifo representativo
}
