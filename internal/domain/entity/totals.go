package entity

import "github.com/shopspring/decimal"

// BracketTotal base imponible y cuota de IVA de un tramo.
type BracketTotal struct {
	Rate int
	Net  decimal.Decimal
	Tax  decimal.Decimal
}

// InvoiceTotals totales de la factura agrupados por tramo de IVA (21, 10, 4).
type InvoiceTotals struct {
	Brackets   [3]BracketTotal
	GrandTotal decimal.Decimal
}

// ZeroTotals totales de una factura sin importes.
func ZeroTotals() InvoiceTotals {
	var t InvoiceTotals
	for i, rate := range TaxRates {
		t.Brackets[i] = BracketTotal{Rate: rate, Net: decimal.Zero, Tax: decimal.Zero}
	}
	t.GrandTotal = decimal.Zero
	return t
}

// Net base imponible del tramo rate (cero si rate no es un tramo).
func (t InvoiceTotals) Net(rate int) decimal.Decimal {
	if b, ok := t.bracket(rate); ok {
		return b.Net
	}
	return decimal.Zero
}

// Tax cuota de IVA del tramo rate (cero si rate no es un tramo).
func (t InvoiceTotals) Tax(rate int) decimal.Decimal {
	if b, ok := t.bracket(rate); ok {
		return b.Tax
	}
	return decimal.Zero
}

func (t InvoiceTotals) bracket(rate int) (BracketTotal, bool) {
	for _, b := range t.Brackets {
		if b.Rate == rate {
			return b, true
		}
	}
	return BracketTotal{}, false
}
