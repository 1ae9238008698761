package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/angelart-catalog/internal/application/admin"
	"github.com/tu-usuario/angelart-catalog/internal/application/auth"
	"github.com/tu-usuario/angelart-catalog/internal/application/dto"
	"github.com/tu-usuario/angelart-catalog/internal/domain"
	"github.com/tu-usuario/angelart-catalog/pkg/jwt"
)

// JWTConfig parámetros de emisión de tokens para el handler de auth.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthHandler maneja login, logout y consulta de sesión.
type AuthHandler struct {
	gate       *auth.Gate
	controller *admin.Controller
	jwtCfg     JWTConfig
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(gate *auth.Gate, controller *admin.Controller, jwtCfg JWTConfig) *AuthHandler {
	return &AuthHandler{gate: gate, controller: controller, jwtCfg: jwtCfg}
}

// Login godoc
// @Summary      Iniciar sesión de administrador
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y password son requeridos"})
	}
	session, err := h.gate.AttemptLogin(c.Context(), in.Email, in.Password)
	if err != nil {
		if errors.Is(err, domain.ErrWrongEmail) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "WRONG_EMAIL", Message: "email no autorizado"})
		}
		if errors.Is(err, domain.ErrWrongPassword) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "WRONG_PASSWORD", Message: "password incorrecto"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	token, err := jwt.Generate(h.jwtCfg.Secret, session.Email, h.jwtCfg.Issuer, h.jwtCfg.ExpMinutes)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	// La transición de sesión es un punto de reinicio duro del estado
	// derivado: se descarta cualquier agregado cacheado.
	h.controller.Invalidate()
	return c.JSON(dto.LoginResponse{Token: token, Session: *session})
}

// Logout godoc
// @Summary      Cerrar la sesión de administrador
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      204  "sesión eliminada"
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.gate.Logout(c.Context()); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	h.controller.Invalidate()
	return c.SendStatus(fiber.StatusNoContent)
}

// Session godoc
// @Summary      Estado actual del gate de sesión
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.SessionResponse
// @Router       /api/auth/session [get]
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	session, err := h.gate.CheckSession(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.SessionResponse{LoggedIn: session != nil, Session: session})
}
