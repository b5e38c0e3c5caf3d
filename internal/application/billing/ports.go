package billing

import (
	"context"
)

// SessionStore guarda las sesiones de facturación activas.
// Save devuelve domain.ErrSessionLimit si no caben más sesiones;
// Get y Delete devuelven domain.ErrNotFound si la sesión no existe o caducó.
type SessionStore interface {
	Save(s *Session) error
	Get(id string) (*Session, error)
	Delete(id string) error
	Len() int
}

// SummaryPDFGenerator genera el PDF del resumen de una factura aceptada.
type SummaryPDFGenerator interface {
	GenerateSummaryPDF(ctx context.Context, summary *InvoiceSummary, issuer Issuer) ([]byte, error)
}

// SummaryXMLBuilder serializa el resumen de una factura aceptada a XML.
type SummaryXMLBuilder interface {
	BuildSummaryXML(summary *InvoiceSummary, issuer Issuer) ([]byte, error)
}

// Issuer datos del emisor que aparecen en los documentos exportados.
type Issuer struct {
	Name    string
	NIF     string
	Address string
}
