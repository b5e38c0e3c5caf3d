package validation_test

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/facturador/internal/domain/entity"
	"github.com/jhoicas/facturador/internal/domain/validation"
)

var madrid = mustLoad("Europe/Madrid")

func mustLoad(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

// fixedValidator validador con "hoy" = 15/10/2026 a las 18:30 en Madrid.
func fixedValidator() *validation.Validator {
	now := time.Date(2026, time.October, 15, 18, 30, 0, 0, madrid)
	return validation.New(
		validation.WithLocation(madrid),
		validation.WithClock(func() time.Time { return now }),
	)
}

func TestIsPhone(t *testing.T) {
	assert.True(t, validation.IsPhone("612345678"))
	assert.True(t, validation.IsPhone("712345678"))
	assert.True(t, validation.IsPhone("912345678"))

	assert.False(t, validation.IsPhone("512345678"), "primer dígito no admitido")
	assert.False(t, validation.IsPhone("812345678"))
	assert.False(t, validation.IsPhone("61234567"), "8 dígitos")
	assert.False(t, validation.IsPhone("6123456789"))
	assert.False(t, validation.IsPhone("61234567a"))
	assert.False(t, validation.IsPhone(""))
}

func TestIsDate(t *testing.T) {
	v := fixedValidator()
	tests := []struct {
		value string
		want  bool
	}{
		{"29/02/2024", true},  // bisiesto
		{"29/02/2023", false}, // no bisiesto
		{"31/02/2024", false},
		{"31/04/2024", false},
		{"15/10/2026", true},  // hoy
		{"16/10/2026", false}, // mañana
		{"14/10/2026", true},
		{"01/01/1990", true},
		{"00/01/2020", false},
		{"32/01/2020", false},
		{"10/13/2020", false},
		{"10/00/2020", false},
		{"1/1/2020", false},
		{"2020-01-10", false},
		{"10-01-2020", false},
		{"aa/01/2020", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, v.IsDate(tt.value))
		})
	}
}

func TestIsDate_HoyYMananaConRelojReal(t *testing.T) {
	v := validation.New()
	now := time.Now()
	assert.True(t, v.IsDate(now.Format("02/01/2006")))
	assert.False(t, v.IsDate(now.AddDate(0, 0, 1).Format("02/01/2006")))
}

func TestCheck_ErroresEtiquetados(t *testing.T) {
	v := fixedValidator()
	errs := v.Check(map[string]string{
		validation.FieldDocument:   "12345678A",
		validation.FieldPhone:      "612345678",
		validation.FieldPostalCode: "00999",
		validation.FieldDate:       "",
	})
	assert.Equal(t, validation.FieldErrors{"documento": true, "cp": true}, errs)

	assert.True(t, v.Check(map[string]string{"documento": "X1234567L"}).Empty())
}

func TestProvinceFor(t *testing.T) {
	assert.Equal(t, "Álava", validation.ProvinceFor("01000"))
	assert.Empty(t, validation.ProvinceFor("00999"), "código fuera de rango: sin provincia")
	assert.Empty(t, validation.ProvinceFor("53000"))
}

func validClient() entity.ClientData {
	return entity.ClientData{
		Number:     "F-001",
		Name:       "Ana Pérez",
		Date:       "01/10/2026",
		PostalCode: "28013",
		Locality:   "Madrid",
		Document:   "12345678Z",
		Phone:      "612345678",
		Email:      "ana@example.com",
	}
}

func TestValidateClient(t *testing.T) {
	v := fixedValidator()
	require.True(t, v.ValidateClient(validClient()).Empty())

	c := validClient()
	c.Number = "12345678"
	c.Name = "A"
	c.Date = "16/10/2026"
	c.PostalCode = "53000"
	c.Locality = strings.Repeat("x", 21)
	c.Document = "A58818500"
	c.Phone = "512345678"
	c.Email = "no-es-email"
	errs := v.ValidateClient(c)
	for _, f := range []string{"numero", "nombre", "fecha", "cp", "localidad", "documento", "telefono", "email"} {
		assert.True(t, errs[f], f)
	}

	empty := v.ValidateClient(entity.ClientData{})
	assert.Len(t, empty, 8, "todos los campos son obligatorios")
}

func TestValidate_MensajesEnOrden(t *testing.T) {
	v := fixedValidator()
	c := validClient()
	c.Phone = ""
	c.Number = ""

	report := v.Validate(c, []entity.LineItem{entity.NewDefaultLine(0)})
	assert.False(t, report.Valid())
	assert.Equal(t, []string{
		"Número de factura inválido (1-7 caracteres)",
		"Teléfono inválido (9 dígitos, empieza por 6, 7 o 9)",
		"Debe haber al menos una línea de factura válida",
	}, report.Messages())

	err := report.Err()
	require.Error(t, err)
	assert.ErrorIs(t, err, validation.ErrInvalidInvoice)
	assert.Contains(t, err.Error(), "Teléfono inválido")
}

func TestValidate_SinErrores(t *testing.T) {
	v := fixedValidator()
	l := entity.NewDefaultLine(0)
	l.Description = "Consultoría"
	report := v.Validate(validClient(), []entity.LineItem{l})
	assert.True(t, report.Valid())
	assert.NoError(t, report.Err())
	assert.Empty(t, report.Messages())
}

func TestValidateLine(t *testing.T) {
	ok := entity.LineItem{Quantity: 3, Description: "Café", UnitPrice: decimal.RequireFromString("1.20"), TaxRate: 10}
	assert.True(t, validation.ValidateLine(ok).Empty())

	bad := entity.LineItem{Quantity: 1000, Description: " ", UnitPrice: decimal.RequireFromString("-1"), TaxRate: 7}
	assert.Equal(t, validation.FieldErrors{"cantidad": true, "descripcion": true, "precio": true, "iva": true},
		validation.ValidateLine(bad))

	zero := ok
	zero.Quantity = 0
	assert.True(t, validation.ValidateLine(zero)["cantidad"])
}

func TestDescriptionLen_NormalizaNFC(t *testing.T) {
	decomposed := "Cafe\u0301" // tilde combinada
	assert.Equal(t, 4, validation.DescriptionLen(decomposed))

	long := entity.LineItem{Quantity: 1, Description: strings.Repeat("é", 51), TaxRate: 21}
	assert.True(t, validation.ValidateLine(long)["descripcion"])
	long.Description = strings.Repeat("é", 50)
	assert.False(t, validation.ValidateLine(long)["descripcion"], "50 caracteres tras normalizar")
}

func TestHasValidLine(t *testing.T) {
	assert.False(t, validation.HasValidLine(nil))
	assert.False(t, validation.HasValidLine([]entity.LineItem{entity.NewDefaultLine(0)}), "sin descripción")

	l := entity.NewDefaultLine(1)
	l.Description = "Hora de trabajo"
	assert.True(t, validation.HasValidLine([]entity.LineItem{entity.NewDefaultLine(0), l}))

	l.Quantity = 0
	assert.False(t, validation.HasValidLine([]entity.LineItem{l}))
}
