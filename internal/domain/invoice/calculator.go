// Package invoice contiene el motor de cálculo de la factura: importes por
// línea y totales agrupados por tramo de IVA.
package invoice

import (
	"github.com/jhoicas/facturador/internal/domain/entity"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// LineInput campos de entrada de una línea. Un campo nil toma el valor por
// defecto: cantidad 0, precio 0, IVA 21.
type LineInput struct {
	Quantity  *int
	UnitPrice *decimal.Decimal
	TaxRate   *int
}

// LineAmounts importes derivados de una línea.
type LineAmounts struct {
	Net   decimal.Decimal
	Tax   decimal.Decimal
	Gross decimal.Decimal
}

// ComputeLineDerived calcula los importes de una línea (servicio de dominio).
// Importe = Cantidad * Precio; CuotaIVA = Importe * IVA / 100; Total = Importe + CuotaIVA.
// No rechaza valores negativos: la validación es responsabilidad del llamador.
func ComputeLineDerived(in LineInput) LineAmounts {
	quantity := 0
	if in.Quantity != nil {
		quantity = *in.Quantity
	}
	price := decimal.Zero
	if in.UnitPrice != nil {
		price = *in.UnitPrice
	}
	rate := entity.TaxRateGeneral
	if in.TaxRate != nil {
		rate = *in.TaxRate
	}

	net := decimal.NewFromInt(int64(quantity)).Mul(price)
	tax := net.Mul(decimal.NewFromInt(int64(rate))).Div(hundred)
	return LineAmounts{Net: net, Tax: tax, Gross: net.Add(tax)}
}

// applyDerived rellena los campos derivados de line a partir de sus campos de entrada.
func applyDerived(line entity.LineItem) entity.LineItem {
	amounts := ComputeLineDerived(LineInput{
		Quantity:  &line.Quantity,
		UnitPrice: &line.UnitPrice,
		TaxRate:   &line.TaxRate,
	})
	line.NetAmount = amounts.Net
	line.TaxAmount = amounts.Tax
	line.GrossAmount = amounts.Gross
	return line
}

// ComputeTotals agrega las líneas por tramo de IVA en una sola pasada.
// Las líneas con un tipo fuera de {21, 10, 4} no suman en ningún tramo.
// El total es la suma de las seis cifras por tramo.
func ComputeTotals(lines []entity.LineItem) entity.InvoiceTotals {
	totals := entity.ZeroTotals()
	for _, l := range lines {
		for i := range totals.Brackets {
			b := &totals.Brackets[i]
			if b.Rate == l.TaxRate {
				b.Net = b.Net.Add(l.NetAmount)
				b.Tax = b.Tax.Add(l.TaxAmount)
				break
			}
		}
	}
	grand := decimal.Zero
	for _, b := range totals.Brackets {
		grand = grand.Add(b.Net).Add(b.Tax)
	}
	totals.GrandTotal = grand
	return totals
}
