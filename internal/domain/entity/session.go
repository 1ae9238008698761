package entity

// Session prueba que el administrador está autorizado en este almacén local.
// Timestamp es epoch en milisegundos (momento de creación de la sesión).
// Se registra pero no se compara contra el reloj: no hay expiración.
type Session struct {
	Email      string `json:"email"`
	IsLoggedIn bool   `json:"isLoggedIn"`
	Timestamp  int64  `json:"timestamp"`
}
