package dto

import "github.com/tu-usuario/angelart-catalog/internal/domain/entity"

// LoginRequest entrada para iniciar sesión de administrador.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida de un login exitoso. El token es solo transporte;
// el estado de sesión autoritativo es el registro persistido.
type LoginResponse struct {
	Token   string         `json:"token"`
	Session entity.Session `json:"session"`
}

// SessionResponse estado observable del gate de sesión.
type SessionResponse struct {
	LoggedIn bool            `json:"loggedIn"`
	Session  *entity.Session `json:"session,omitempty"`
}
