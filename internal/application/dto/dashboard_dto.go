package dto

// DashboardResponse agregados del panel de administración. Se recalculan
// completos desde el catálogo persistido tras cada mutación; nunca se
// parchean incrementalmente, para que no puedan divergir de la fuente de
// verdad.
type DashboardResponse struct {
	TotalProducts int `json:"totalProducts"`
	LowStock      int `json:"lowStock"`
	OutOfStock    int `json:"outOfStock"`
	Categories    int `json:"categories"`
}
