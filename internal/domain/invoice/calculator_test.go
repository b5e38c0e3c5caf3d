package invoice_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/facturador/internal/domain/entity"
	"github.com/jhoicas/facturador/internal/domain/invoice"
)

func intPtr(v int) *int { return &v }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// assertDecimal compara por valor: "2.10" y "2.1" son iguales.
func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	w := decimal.RequireFromString(want)
	assert.True(t, w.Equal(got), "esperado %s, obtenido %s", want, got.String())
}

func TestComputeLineDerived(t *testing.T) {
	tests := []struct {
		name      string
		in        invoice.LineInput
		wantNet   string
		wantTax   string
		wantGross string
	}{
		{"IVA general", invoice.LineInput{Quantity: intPtr(2), UnitPrice: decPtr("10.50"), TaxRate: intPtr(21)}, "21", "4.41", "25.41"},
		{"IVA reducido", invoice.LineInput{Quantity: intPtr(3), UnitPrice: decPtr("100"), TaxRate: intPtr(10)}, "300", "30", "330"},
		{"IVA superreducido", invoice.LineInput{Quantity: intPtr(1), UnitPrice: decPtr("0.99"), TaxRate: intPtr(4)}, "0.99", "0.0396", "1.0296"},
		{"cantidad cero", invoice.LineInput{Quantity: intPtr(0), UnitPrice: decPtr("50"), TaxRate: intPtr(21)}, "0", "0", "0"},
		{"cantidad negativa sin rechazo", invoice.LineInput{Quantity: intPtr(-2), UnitPrice: decPtr("5"), TaxRate: intPtr(10)}, "-10", "-1", "-11"},
		{"todo omitido", invoice.LineInput{}, "0", "0", "0"},
		{"IVA omitido toma 21", invoice.LineInput{Quantity: intPtr(1), UnitPrice: decPtr("100")}, "100", "21", "121"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := invoice.ComputeLineDerived(tt.in)
			assertDecimal(t, tt.wantNet, got.Net)
			assertDecimal(t, tt.wantTax, got.Tax)
			assertDecimal(t, tt.wantGross, got.Gross)
			assert.True(t, got.Gross.Equal(got.Net.Add(got.Tax)), "total = importe + cuota")
		})
	}
}

func line(id, qty int, price string, rate int) entity.LineItem {
	p := decimal.RequireFromString(price)
	a := invoice.ComputeLineDerived(invoice.LineInput{Quantity: &qty, UnitPrice: &p, TaxRate: &rate})
	return entity.LineItem{
		ID: id, Quantity: qty, UnitPrice: p, TaxRate: rate,
		NetAmount: a.Net, TaxAmount: a.Tax, GrossAmount: a.Gross,
	}
}

func TestComputeTotals_PorTramo(t *testing.T) {
	lines := []entity.LineItem{
		line(0, 2, "10", 21),
		line(1, 1, "100", 10),
		line(2, 4, "2.5", 4),
		line(3, 1, "50", 21),
	}
	totals := invoice.ComputeTotals(lines)

	assertDecimal(t, "70", totals.Net(21))
	assertDecimal(t, "14.7", totals.Tax(21))
	assertDecimal(t, "100", totals.Net(10))
	assertDecimal(t, "10", totals.Tax(10))
	assertDecimal(t, "10", totals.Net(4))
	assertDecimal(t, "0.4", totals.Tax(4))
	assertDecimal(t, "205.1", totals.GrandTotal)
	assert.Equal(t, [3]int{21, 10, 4}, [3]int{totals.Brackets[0].Rate, totals.Brackets[1].Rate, totals.Brackets[2].Rate})
}

func TestComputeTotals_TipoFueraDeTramoNoSuma(t *testing.T) {
	lines := []entity.LineItem{
		line(0, 1, "100", 21),
		line(1, 1, "100", 7),
		line(2, 1, "100", 0),
	}
	totals := invoice.ComputeTotals(lines)

	assertDecimal(t, "121", totals.GrandTotal) // solo cuenta la línea al 21%
	assertDecimal(t, "0", totals.Net(10))
	assertDecimal(t, "0", totals.Net(4))
	assertDecimal(t, "0", totals.Net(7)) // 7 no es un tramo
}

func TestComputeTotals_LeyDeSumaIdempotenteYConmutativa(t *testing.T) {
	lines := []entity.LineItem{
		line(0, 3, "19.99", 21),
		line(1, 7, "0.33", 10),
		line(2, 11, "1.01", 4),
		line(3, 5, "3.3", 21),
	}
	first := invoice.ComputeTotals(lines)
	second := invoice.ComputeTotals(lines)
	assert.True(t, first.GrandTotal.Equal(second.GrandTotal))
	for i := range first.Brackets {
		assert.True(t, first.Brackets[i].Net.Equal(second.Brackets[i].Net))
		assert.True(t, first.Brackets[i].Tax.Equal(second.Brackets[i].Tax))
	}

	reversed := []entity.LineItem{lines[3], lines[2], lines[1], lines[0]}
	assert.True(t, first.GrandTotal.Equal(invoice.ComputeTotals(reversed).GrandTotal))

	sum := decimal.Zero
	for _, l := range lines {
		sum = sum.Add(l.NetAmount).Add(l.TaxAmount)
	}
	assert.True(t, sum.Equal(first.GrandTotal), "total = Σ importes + Σ cuotas")
}

func TestComputeTotals_SinLineas(t *testing.T) {
	totals := invoice.ComputeTotals(nil)
	assert.True(t, totals.GrandTotal.IsZero())
	assert.Equal(t, 21, totals.Brackets[0].Rate)
}
