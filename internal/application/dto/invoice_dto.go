package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineItemResponse línea de factura con sus importes derivados.
type LineItemResponse struct {
	ID          int             `json:"id"`
	Quantity    int             `json:"cantidad"`
	Description string          `json:"descripcion"`
	UnitPrice   decimal.Decimal `json:"precio"`
	TaxRate     int             `json:"iva"`
	TaxAmount   decimal.Decimal `json:"importe_iva"`
	NetAmount   decimal.Decimal `json:"importe"`
	GrossAmount decimal.Decimal `json:"total"`
}

// TotalsResponse bases y cuotas por tramo de IVA y total de la factura.
type TotalsResponse struct {
	Base21 decimal.Decimal `json:"base21"`
	Base10 decimal.Decimal `json:"base10"`
	Base4  decimal.Decimal `json:"base4"`
	IVA21  decimal.Decimal `json:"iva21"`
	IVA10  decimal.Decimal `json:"iva10"`
	IVA4   decimal.Decimal `json:"iva4"`
	Total  decimal.Decimal `json:"total"`
}

// CaptchaResponse pregunta del captcha (suma de dos cifras).
type CaptchaResponse struct {
	Question string `json:"pregunta"`
}

// SessionResponse estado de una sesión de facturación.
type SessionResponse struct {
	ID        string             `json:"id"`
	Lines     []LineItemResponse `json:"lineas"`
	Totals    TotalsResponse     `json:"totales"`
	Captcha   CaptchaResponse    `json:"captcha"`
	Submitted bool               `json:"enviada"`
}

// UpdateLineRequest body para PATCH /api/sessions/:id/lines/:lineId.
// Los campos ausentes no se modifican.
type UpdateLineRequest struct {
	Quantity    *int             `json:"cantidad"`
	Description *string          `json:"descripcion"`
	UnitPrice   *decimal.Decimal `json:"precio"`
	TaxRate     *int             `json:"iva"`
}

// LineResponse línea añadida o actualizada y totales recalculados.
type LineResponse struct {
	Line   LineItemResponse `json:"linea"`
	Totals TotalsResponse   `json:"totales"`
}

// PreviewLineRequest body para POST /api/lines/preview. Ausentes: 0, 0 e IVA 21.
type PreviewLineRequest struct {
	Quantity  *int             `json:"cantidad"`
	UnitPrice *decimal.Decimal `json:"precio"`
	TaxRate   *int             `json:"iva"`
}

// PreviewLineResponse importes calculados de una línea.
type PreviewLineResponse struct {
	NetAmount   decimal.Decimal `json:"importe"`
	TaxAmount   decimal.Decimal `json:"importe_iva"`
	GrossAmount decimal.Decimal `json:"total"`
}

// ClientDataRequest datos de cabecera. La provincia no se envía: se deriva del CP.
type ClientDataRequest struct {
	Number     string `json:"numero"`
	Name       string `json:"nombre"`
	Date       string `json:"fecha"`
	PostalCode string `json:"cp"`
	Locality   string `json:"localidad"`
	Document   string `json:"documento"`
	Phone      string `json:"telefono"`
	Email      string `json:"email"`
}

// SubmitInvoiceRequest body para POST /api/sessions/:id/submit.
type SubmitInvoiceRequest struct {
	Client  ClientDataRequest `json:"cliente"`
	Captcha string            `json:"captcha"`
}

// ClientDataResponse cabecera con la provincia derivada.
type ClientDataResponse struct {
	Number       string `json:"numero"`
	Name         string `json:"nombre"`
	Date         string `json:"fecha"`
	PostalCode   string `json:"cp"`
	Province     string `json:"provincia"`
	Locality     string `json:"localidad"`
	Document     string `json:"documento"`
	DocumentType string `json:"tipo_documento"`
	Phone        string `json:"telefono"`
	Email        string `json:"email"`
}

// InvoiceSummaryResponse resumen de la factura aceptada.
type InvoiceSummaryResponse struct {
	SessionID   string             `json:"session_id"`
	Client      ClientDataResponse `json:"cliente"`
	Lines       []LineItemResponse `json:"lineas"`
	Totals      TotalsResponse     `json:"totales"`
	SubmittedAt time.Time          `json:"enviada_en"`
}

// ValidationErrorResponse cuerpo 422 con los errores etiquetados y sus mensajes.
type ValidationErrorResponse struct {
	Code     string          `json:"code"`
	Message  string          `json:"message"`
	Errors   map[string]bool `json:"errors"`
	Messages []string        `json:"messages"`
	Captcha  CaptchaResponse `json:"captcha"`
}
