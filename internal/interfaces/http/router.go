package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/contratafacil/contratafacil-api/internal/application/auth"
	"github.com/contratafacil/contratafacil-api/internal/application/usecase"
	"github.com/contratafacil/contratafacil-api/internal/infrastructure/qr"
	"github.com/contratafacil/contratafacil-api/pkg/config"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	BusinessUC  *usecase.BusinessUseCase
	CandidateUC *usecase.CandidateUseCase
	ApplyUC     *usecase.ApplyUseCase
	QR          *qr.Generator
	Session     config.SessionConfig
	App         config.AppConfig
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público, salvo /me). Logout no pasa por el middleware: revocar
	// con cookie ausente o vencida igualmente responde 200 y limpia la cookie.
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.Session)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Delete("/logout", authHandler.Logout)

	// Perfil público del negocio y su código QR
	businessHandler := NewBusinessHandler(deps.BusinessUC, deps.QR, deps.App.PublicBaseURL)
	business := api.Group("/business")
	business.Get("/:slug", businessHandler.PublicBySlug)
	business.Get("/:slug/qr", businessHandler.QRBySlug)

	// Formulario de postulación (público)
	applyHandler := NewApplyHandler(deps.ApplyUC)
	api.Post("/candidates", applyHandler.Submit)

	// Rutas protegidas (requieren cookie de sesión)
	protected := api.Group("/", AuthMiddleware(deps.AuthUC, deps.Session.CookieName))

	protected.Get("/auth/me", authHandler.Me)
	protected.Patch("/business/config", businessHandler.UpdateConfig)

	// Panel de candidatos (protegido)
	candidates := protected.Group("/candidates")
	candidateHandler := NewCandidateHandler(deps.CandidateUC)
	candidates.Get("/", candidateHandler.List)
	candidates.Get("/export", candidateHandler.ExportCSV)
	candidates.Get("/export/pdf", candidateHandler.ExportPDF)
	candidates.Patch("/:id", candidateHandler.Update)
	candidates.Delete("/:id", candidateHandler.Delete)
	candidates.Delete("/", candidateHandler.DeleteAll)
}
