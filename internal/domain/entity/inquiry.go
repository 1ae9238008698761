package entity

// Inquiry es una consulta enviada desde el formulario de contacto del
// storefront. Se acumulan en una lista bajo una sola clave del almacén.
type Inquiry struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Message   string `json:"message"`
	Timestamp int64  `json:"timestamp"` // epoch en milisegundos
}
