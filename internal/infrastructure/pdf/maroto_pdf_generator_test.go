package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appbilling "github.com/jhoicas/facturador/internal/application/billing"
	"github.com/jhoicas/facturador/internal/domain/entity"
	"github.com/jhoicas/facturador/internal/domain/invoice"
	"github.com/jhoicas/facturador/pkg/nif"
)

func TestFormatEuro(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "0,00 €"},
		{"4.41", "4,41 €"},
		{"1234.5", "1.234,50 €"},
		{"1000000", "1.000.000,00 €"},
		{"-0.4", "-0,40 €"},
		{"-12345.678", "-12.345,68 €"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatEuro(decimal.RequireFromString(tt.in)), tt.in)
	}
}

func TestGenerateSummaryPDF(t *testing.T) {
	e := invoice.New()
	_, err := e.UpdateLine(invoice.LinePatch{ID: 0, Description: ptr("Reparación"), UnitPrice: dec("120")})
	require.NoError(t, err)
	snap := e.Snapshot()

	summary := &appbilling.InvoiceSummary{
		SessionID: "s1",
		Client: entity.ClientData{
			Number: "F-7", Name: "Ana Pérez", Date: "01/10/2026",
			PostalCode: "28013", Province: "Madrid", Locality: "Madrid",
			Document: "12345678Z", Phone: "612345678", Email: "ana@example.com",
		},
		DocumentType: nif.DocumentDNI,
		Lines:        snap.Lines,
		Totals:       snap.Totals,
		SubmittedAt:  time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC),
	}
	issuer := appbilling.Issuer{Name: "Facturas Levante S.L.", NIF: "B12345674", Address: "C/ Colón 1, Valencia"}

	out, err := NewMarotoPDFGenerator().GenerateSummaryPDF(context.Background(), summary, issuer)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
	assert.Equal(t, "nif=B12345674&numserie=F-7&fecha=01/10/2026&importe=145.20", qrContent(summary, issuer))
}

func ptr(s string) *string { return &s }

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}
