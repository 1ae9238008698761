package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/angelart-catalog/internal/application/auth"
	"github.com/tu-usuario/angelart-catalog/internal/application/dto"
	"github.com/tu-usuario/angelart-catalog/pkg/jwt"
)

// Locals key para el email del administrador en Fiber.
const LocalAdminEmail = "admin_email"

// AuthMiddleware valida el Bearer Token JWT y además consulta el
// SessionGate: el token es solo transporte, la sesión persistida manda.
// Un token válido con la sesión cerrada (logout en otro cliente) es 401.
func AuthMiddleware(jwtSecret string, gate *auth.Gate) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		email, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		session, err := gate.CheckSession(c.Context())
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		if session == nil || session.Email != email {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "NO_SESSION", Message: "sesión de administrador cerrada"})
		}
		c.Locals(LocalAdminEmail, email)
		return c.Next()
	}
}

// GetAdminEmail devuelve el email del contexto (después del middleware de auth).
func GetAdminEmail(c *fiber.Ctx) string {
	v := c.Locals(LocalAdminEmail)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
