package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/angelart-catalog/internal/application/admin"
	"github.com/tu-usuario/angelart-catalog/internal/application/auth"
	"github.com/tu-usuario/angelart-catalog/internal/application/catalog"
	"github.com/tu-usuario/angelart-catalog/internal/application/inquiry"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Catalog   *catalog.Store
	Admin     *admin.Controller
	Gate      *auth.Gate
	Inquiries *inquiry.UseCase
	JWT       JWTConfig
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Storefront e inquiries (público)
	storefrontHandler := NewStorefrontHandler(deps.Catalog)
	api.Get("/storefront", storefrontHandler.Get)

	inquiryHandler := NewInquiryHandler(deps.Inquiries)
	api.Post("/inquiries", inquiryHandler.Submit)

	// Auth (login y estado públicos; logout requiere Bearer Token)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.Gate, deps.Admin, deps.JWT)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/session", authHandler.Session)
	authGroup.Post("/logout", AuthMiddleware(deps.JWT.Secret, deps.Gate), authHandler.Logout)

	// Panel de administración (protegido)
	adminGroup := api.Group("/admin", AuthMiddleware(deps.JWT.Secret, deps.Gate))
	adminHandler := NewAdminHandler(deps.Admin)
	adminGroup.Get("/products", adminHandler.List)
	adminGroup.Post("/products", adminHandler.Create)
	adminGroup.Put("/products/:id", adminHandler.Update)
	adminGroup.Delete("/products/:id", adminHandler.Delete)
	adminGroup.Get("/dashboard", adminHandler.Dashboard)
	adminGroup.Get("/inquiries", inquiryHandler.List)
}
