package billing

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/facturador/internal/domain/invoice"
)

// ExportUseCase genera el PDF y el XML de la última factura aceptada de una sesión.
type ExportUseCase struct {
	sessions *SessionUseCase
	pdf      SummaryPDFGenerator
	xml      SummaryXMLBuilder
	issuer   Issuer
}

// NewExportUseCase construye el caso de uso inyectando sus dependencias.
func NewExportUseCase(sessions *SessionUseCase, pdf SummaryPDFGenerator, xml SummaryXMLBuilder, issuer Issuer) *ExportUseCase {
	return &ExportUseCase{sessions: sessions, pdf: pdf, xml: xml, issuer: issuer}
}

// DownloadPDF devuelve el PDF y su nombre de fichero.
//
// Retorna:
//   - domain.ErrNotFound si la sesión no existe.
//   - domain.ErrConflict si la factura no se ha enviado todavía.
func (uc *ExportUseCase) DownloadPDF(ctx context.Context, sessionID string) (pdfBytes []byte, filename string, err error) {
	sum, err := uc.summary(sessionID)
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err = uc.pdf.GenerateSummaryPDF(ctx, sum, uc.issuer)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	return pdfBytes, fileName(sum, "pdf"), nil
}

// DownloadXML devuelve el XML del resumen y su nombre de fichero. Mismos errores que DownloadPDF.
func (uc *ExportUseCase) DownloadXML(_ context.Context, sessionID string) (xmlBytes []byte, filename string, err error) {
	sum, err := uc.summary(sessionID)
	if err != nil {
		return nil, "", err
	}
	xmlBytes, err = uc.xml.BuildSummaryXML(sum, uc.issuer)
	if err != nil {
		return nil, "", fmt.Errorf("xml: generación fallida: %w", err)
	}
	return xmlBytes, fileName(sum, "xml"), nil
}

// summary último resumen aceptado, comprobado antes de exportarlo.
func (uc *ExportUseCase) summary(sessionID string) (*InvoiceSummary, error) {
	sum, err := uc.sessions.Summary(sessionID)
	if err != nil {
		return nil, err
	}
	if err := invoice.VerifyTotals(sum.Lines, sum.Totals); err != nil {
		return nil, fmt.Errorf("exportar factura: %w", err)
	}
	return sum, nil
}

// fileName factura_<numero>.<ext>, con el número reducido a letras, cifras, '-' y '_'.
func fileName(sum *InvoiceSummary, ext string) string {
	number := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return -1
	}, sum.Client.Number)
	if number == "" {
		number = sum.SessionID
	}
	return fmt.Sprintf("factura_%s.%s", number, ext)
}
