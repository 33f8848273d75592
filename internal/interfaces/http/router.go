package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bill-automation-api/internal/application/auth"
	"github.com/jhoicas/bill-automation-api/internal/application/billing"
	"github.com/jhoicas/bill-automation-api/internal/application/usecase"
	"github.com/jhoicas/bill-automation-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	UserUC      *usecase.UserUseCase
	CompanyUC   *usecase.CompanyUseCase
	SignatureUC *usecase.SignatureUseCase
	CustomerUC  *billing.CustomerUseCase
	GenerateUC  *billing.GenerateBillUseCase
	SequenceUC  *billing.SequenceUseCase
	HistoryUC   *billing.HistoryUseCase

	JWTSecret        string
	DefaultCompanyID string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.UserUC)
	api.Post("/auth/login", authHandler.Login)
	api.Post("/auth/logout", authHandler.Logout)
	api.Get("/auth/status", OptionalAuth(deps.JWTSecret), authHandler.Status)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	adminOnly := RequireRole(entity.RoleAdmin)
	protected.Post("/auth/register", adminOnly, authHandler.Register)
	protected.Get("/users", adminOnly, authHandler.ListUsers)

	// Empresas y firma
	companyHandler := NewCompanyHandler(deps.CompanyUC, deps.SignatureUC, deps.DefaultCompanyID)
	protected.Get("/companies", companyHandler.List)
	protected.Get("/company", companyHandler.Get)
	protected.Put("/company", companyHandler.Update)
	protected.Post("/company/select", companyHandler.Select)
	protected.Get("/company/signature", companyHandler.GetSignature)
	protected.Post("/upload-signature", companyHandler.UploadSignature)

	// Clientes
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers := protected.Group("/customers")
	customers.Get("/", customerHandler.List)
	customers.Post("/", customerHandler.Create)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	// Facturas
	billHandler := NewBillHandler(deps.GenerateUC, deps.SequenceUC, deps.HistoryUC, deps.DefaultCompanyID)
	protected.Post("/generate-bill", billHandler.Generate)
	bills := protected.Group("/bills")
	bills.Get("/", billHandler.List)
	bills.Get("/last", billHandler.Last)
	bills.Get("/next-number", billHandler.NextNumber)
	bills.Get("/export", billHandler.Export)
	bills.Get("/:id", billHandler.Get)
}
