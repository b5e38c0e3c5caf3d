package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/facturador/internal/application/billing"
	"github.com/jhoicas/facturador/internal/application/dto"
)

// SessionHandler maneja las peticiones HTTP de una factura en edición.
type SessionHandler struct {
	uc *billing.SessionUseCase
}

// NewSessionHandler construye el handler.
func NewSessionHandler(uc *billing.SessionUseCase) *SessionHandler {
	return &SessionHandler{uc: uc}
}

// Create abre una sesión con una línea por defecto.
// POST /api/sessions
func (h *SessionHandler) Create(c *fiber.Ctx) error {
	sess, err := h.uc.Create()
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(sess)
}

// Get devuelve líneas, totales y captcha.
// GET /api/sessions/:id
func (h *SessionHandler) Get(c *fiber.Ctx) error {
	sess, err := h.uc.Get(GetSessionID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(sess)
}

// Delete cierra la sesión.
// DELETE /api/sessions/:id
func (h *SessionHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetSessionID(c)); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Reset empieza una factura nueva.
// POST /api/sessions/:id/reset
func (h *SessionHandler) Reset(c *fiber.Ctx) error {
	sess, err := h.uc.Reset(GetSessionID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(sess)
}

// AddLine añade una línea por defecto.
// POST /api/sessions/:id/lines
func (h *SessionHandler) AddLine(c *fiber.Ctx) error {
	res, err := h.uc.AddLine(GetSessionID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(res)
}

// UpdateLine modifica los campos enviados de una línea.
// PATCH /api/sessions/:id/lines/:lineId
func (h *SessionHandler) UpdateLine(c *fiber.Ctx) error {
	lineID, err := c.ParamsInt("lineId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "lineId debe ser un entero"})
	}
	var in dto.UpdateLineRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	res, err := h.uc.UpdateLine(GetSessionID(c), lineID, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(res)
}

// RemoveLine elimina una línea; un ID inexistente no cambia nada.
// DELETE /api/sessions/:id/lines/:lineId
func (h *SessionHandler) RemoveLine(c *fiber.Ctx) error {
	lineID, err := c.ParamsInt("lineId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "lineId debe ser un entero"})
	}
	sess, err := h.uc.RemoveLine(GetSessionID(c), lineID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(sess)
}

// NewCaptcha genera otra pregunta.
// POST /api/sessions/:id/captcha
func (h *SessionHandler) NewCaptcha(c *fiber.Ctx) error {
	res, err := h.uc.NewCaptcha(GetSessionID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(res)
}

// Submit valida y acepta la factura. Responde 422 con los errores por campo si no es válida.
// POST /api/sessions/:id/submit
func (h *SessionHandler) Submit(c *fiber.Ctx) error {
	var in dto.SubmitInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	sum, err := h.uc.Submit(GetSessionID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(sum)
}

// Preview calcula importe, cuota y total de una línea sin sesión.
// POST /api/lines/preview
func (h *SessionHandler) Preview(c *fiber.Ctx) error {
	var in dto.PreviewLineRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	return c.JSON(h.uc.Preview(in))
}
