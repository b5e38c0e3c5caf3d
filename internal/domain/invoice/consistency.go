package invoice

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/facturador/internal/domain/entity"
)

// ErrInconsistentTotals los importes guardados no coinciden con los recalculados.
var ErrInconsistentTotals = errors.New("totales incoherentes con las líneas")

// VerifyTotals comprueba que los importes de cada línea y los totales por tramo
// coinciden con lo que se obtiene al recalcularlos desde cantidad, precio y tipo.
func VerifyTotals(lines []entity.LineItem, totals entity.InvoiceTotals) error {
	var errs []error

	for _, l := range lines {
		want := applyDerived(l)
		if !l.NetAmount.Equal(want.NetAmount) || !l.TaxAmount.Equal(want.TaxAmount) || !l.GrossAmount.Equal(want.GrossAmount) {
			errs = append(errs, fmt.Errorf("línea %d: importes (%s, %s, %s) esperados (%s, %s, %s)",
				l.ID, l.NetAmount, l.TaxAmount, l.GrossAmount, want.NetAmount, want.TaxAmount, want.GrossAmount))
		}
	}

	expected := ComputeTotals(lines)
	for _, rate := range entity.TaxRates {
		if !totals.Net(rate).Equal(expected.Net(rate)) {
			errs = append(errs, fmt.Errorf("base %d%% (%s) no coincide con la suma de líneas (%s)", rate, totals.Net(rate), expected.Net(rate)))
		}
		if !totals.Tax(rate).Equal(expected.Tax(rate)) {
			errs = append(errs, fmt.Errorf("cuota %d%% (%s) no coincide con la suma de líneas (%s)", rate, totals.Tax(rate), expected.Tax(rate)))
		}
	}

	sum := decimal.Zero
	for _, b := range totals.Brackets {
		sum = sum.Add(b.Net).Add(b.Tax)
	}
	if !totals.GrandTotal.Equal(sum) {
		errs = append(errs, fmt.Errorf("total (%s) no coincide con bases + cuotas (%s)", totals.GrandTotal, sum))
	}

	if len(errs) > 0 {
		return errors.Join(append([]error{ErrInconsistentTotals}, errs...)...)
	}
	return nil
}
