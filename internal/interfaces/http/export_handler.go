package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/facturador/internal/application/billing"
)

// ExportHandler descarga la factura aceptada en PDF o XML.
type ExportHandler struct {
	uc *billing.ExportUseCase
}

// NewExportHandler construye el handler.
func NewExportHandler(uc *billing.ExportUseCase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

// PDF GET /api/sessions/:id/pdf
func (h *ExportHandler) PDF(c *fiber.Ctx) error {
	body, filename, err := h.uc.DownloadPDF(c.UserContext(), GetSessionID(c))
	if err != nil {
		return writeError(c, err)
	}
	return sendAttachment(c, body, filename, "application/pdf")
}

// XML GET /api/sessions/:id/xml
func (h *ExportHandler) XML(c *fiber.Ctx) error {
	body, filename, err := h.uc.DownloadXML(c.UserContext(), GetSessionID(c))
	if err != nil {
		return writeError(c, err)
	}
	return sendAttachment(c, body, filename, "application/xml; charset=utf-8")
}

func sendAttachment(c *fiber.Ctx, body []byte, filename, contentType string) error {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(body)
}
