package entity

import "github.com/shopspring/decimal"

// Tipos de IVA admitidos (general, reducido, superreducido).
const (
	TaxRateGeneral      = 21
	TaxRateReduced      = 10
	TaxRateSuperReduced = 4
)

// TaxRates tramos de IVA en el orden en que se presentan los totales.
var TaxRates = [3]int{TaxRateGeneral, TaxRateReduced, TaxRateSuperReduced}

// IsValidTaxRate indica si rate es uno de los tramos de IVA.
func IsValidTaxRate(rate int) bool {
	for _, r := range TaxRates {
		if r == rate {
			return true
		}
	}
	return false
}

// LineItem representa una línea de factura.
// NetAmount, TaxAmount y GrossAmount se derivan siempre de Quantity, UnitPrice y TaxRate.
type LineItem struct {
	ID          int
	Quantity    int
	Description string
	UnitPrice   decimal.Decimal
	TaxRate     int
	NetAmount   decimal.Decimal
	TaxAmount   decimal.Decimal
	GrossAmount decimal.Decimal
}

// NewDefaultLine línea vacía con los valores por defecto del formulario.
func NewDefaultLine(id int) LineItem {
	return LineItem{
		ID:          id,
		Quantity:    1,
		UnitPrice:   decimal.Zero,
		TaxRate:     TaxRateGeneral,
		NetAmount:   decimal.Zero,
		TaxAmount:   decimal.Zero,
		GrossAmount: decimal.Zero,
	}
}
