package billing

import (
	"sync"
	"time"

	"github.com/jhoicas/facturador/internal/domain/entity"
	"github.com/jhoicas/facturador/internal/domain/invoice"
	"github.com/jhoicas/facturador/pkg/nif"
)

// Session una factura en edición. Cada sesión tiene su propio motor de cálculo.
type Session struct {
	ID        string
	Engine    *invoice.Engine
	CreatedAt time.Time
	LastSeen  time.Time

	mu      sync.Mutex
	captcha Captcha
	summary *InvoiceSummary
}

// NewSession crea una sesión con una factura vacía y el captcha dado.
func NewSession(id string, captcha Captcha, now time.Time) *Session {
	return &Session{
		ID:        id,
		Engine:    invoice.New(),
		CreatedAt: now,
		LastSeen:  now,
		captcha:   captcha,
	}
}

// Captcha pregunta vigente.
func (s *Session) Captcha() Captcha {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.captcha
}

// Summary último resumen aceptado, o nil si aún no se ha enviado la factura.
func (s *Session) Summary() *InvoiceSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.summary
}

// InvoiceSummary factura aceptada: cabecera con provincia, líneas y totales.
type InvoiceSummary struct {
	SessionID    string
	Client       entity.ClientData
	DocumentType nif.DocumentType
	Lines        []entity.LineItem
	Totals       entity.InvoiceTotals
	SubmittedAt  time.Time
}
