package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/facturador/internal/application/billing"
	"github.com/jhoicas/facturador/internal/domain/validation"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	SessionUC *billing.SessionUseCase
	ExportUC  *billing.ExportUseCase
	Validator *validation.Validator
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	sessionHandler := NewSessionHandler(deps.SessionUC)
	exportHandler := NewExportHandler(deps.ExportUC)
	validationHandler := NewValidationHandler(deps.Validator)

	// Utilidades sin sesión
	api.Post("/lines/preview", sessionHandler.Preview)
	api.Post("/validations", validationHandler.Validate)
	api.Get("/postal-codes/:cp/province", validationHandler.Province)
	api.Get("/provinces", validationHandler.Provinces)

	// Sesiones de facturación
	sessions := api.Group("/sessions")
	requireSession := RequireSession(deps.SessionUC)
	sessions.Post("/", sessionHandler.Create)
	sessions.Get("/:id", requireSession, sessionHandler.Get)
	sessions.Delete("/:id", requireSession, sessionHandler.Delete)
	sessions.Post("/:id/reset", requireSession, sessionHandler.Reset)
	sessions.Post("/:id/lines", requireSession, sessionHandler.AddLine)
	sessions.Patch("/:id/lines/:lineId", requireSession, sessionHandler.UpdateLine)
	sessions.Delete("/:id/lines/:lineId", requireSession, sessionHandler.RemoveLine)
	sessions.Post("/:id/captcha", requireSession, sessionHandler.NewCaptcha)
	sessions.Post("/:id/submit", requireSession, sessionHandler.Submit)
	sessions.Get("/:id/pdf", requireSession, exportHandler.PDF)
	sessions.Get("/:id/xml", requireSession, exportHandler.XML)
}
