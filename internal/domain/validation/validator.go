// Package validation reúne las reglas de formato y rango de los datos de la
// factura: teléfono, fecha, código postal y documento de identidad, además de
// las reglas de cabecera y de línea que se aplican antes de enviar la factura.
package validation

import (
	"strconv"
	"strings"
	"time"

	"github.com/jhoicas/facturador/pkg/nif"
	"github.com/jhoicas/facturador/pkg/postal"
)

// Nombres de campo usados como etiqueta de error ({"documento": true}).
const (
	FieldNumber      = "numero"
	FieldName        = "nombre"
	FieldDate        = "fecha"
	FieldPostalCode  = "cp"
	FieldLocality    = "localidad"
	FieldDocument    = "documento"
	FieldPhone       = "telefono"
	FieldEmail       = "email"
	FieldCaptcha     = "captcha"
	FieldLines       = "lineas"
	FieldQuantity    = "cantidad"
	FieldDescription = "descripcion"
	FieldUnitPrice   = "precio"
	FieldTaxRate     = "iva"
)

// FieldErrors errores etiquetados por campo, al estilo de los validadores de formularios.
type FieldErrors map[string]bool

// Empty indica si no hay errores.
func (f FieldErrors) Empty() bool { return len(f) == 0 }

// Validator aplica las reglas de validación. No guarda estado salvo el reloj
// usado para comparar fechas con el día actual; es seguro usarlo en paralelo.
type Validator struct {
	now func() time.Time
	loc *time.Location
}

// Option configura un Validator.
type Option func(*Validator)

// WithClock sustituye el reloj (útil en tests).
func WithClock(now func() time.Time) Option {
	return func(v *Validator) {
		if now != nil {
			v.now = now
		}
	}
}

// WithLocation zona horaria en la que se calcula "hoy".
func WithLocation(loc *time.Location) Option {
	return func(v *Validator) {
		if loc != nil {
			v.loc = loc
		}
	}
}

// New construye un Validator con reloj del sistema y zona horaria local.
func New(opts ...Option) *Validator {
	v := &Validator{now: time.Now, loc: time.Local}
	for _, o := range opts {
		o(v)
	}
	return v
}

// IsPhone teléfono español: 9 dígitos, el primero 6, 7 o 9.
func IsPhone(value string) bool {
	if len(value) != 9 || !isDigits(value) {
		return false
	}
	switch value[0] {
	case '6', '7', '9':
		return true
	}
	return false
}

// IsDate valida una fecha DD/MM/YYYY existente en el calendario y no posterior a hoy.
func (v *Validator) IsDate(value string) bool {
	if len(value) != 10 {
		return false
	}
	parts := strings.Split(value, "/")
	if len(parts) != 3 || len(parts[0]) != 2 || len(parts[1]) != 2 || len(parts[2]) != 4 {
		return false
	}
	if !isDigits(parts[0]) || !isDigits(parts[1]) || !isDigits(parts[2]) {
		return false
	}
	day, _ := strconv.Atoi(parts[0])
	month, _ := strconv.Atoi(parts[1])
	year, _ := strconv.Atoi(parts[2])
	if day < 1 || day > 31 || month < 1 || month > 12 {
		return false
	}

	// time.Date normaliza 31/02 a marzo: si no coincide, la fecha no existe.
	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, v.loc)
	if date.Day() != day || int(date.Month()) != month || date.Year() != year {
		return false
	}
	return !date.After(v.today())
}

// today medianoche del día actual en la zona del validador.
func (v *Validator) today() time.Time {
	n := v.now().In(v.loc)
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, v.loc)
}

// Valid aplica la regla de formato de field a value. Los campos sin regla de
// formato se consideran válidos.
func (v *Validator) Valid(field, value string) bool {
	switch field {
	case FieldDocument:
		return nif.IsDocument(value)
	case FieldPhone:
		return IsPhone(value)
	case FieldPostalCode:
		return postal.IsPostalCode(value)
	case FieldDate:
		return v.IsDate(value)
	default:
		return true
	}
}

// Check valida varios campos a la vez. Un valor vacío no produce error: la
// obligatoriedad es una regla aparte.
func (v *Validator) Check(fields map[string]string) FieldErrors {
	errs := FieldErrors{}
	for field, value := range fields {
		if value == "" {
			continue
		}
		if !v.Valid(field, value) {
			errs[field] = true
		}
	}
	return errs
}

// ProvinceFor provincia que corresponde al código postal, solo si este es válido.
func ProvinceFor(cp string) string {
	if !postal.IsPostalCode(cp) {
		return ""
	}
	return postal.Province(cp)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
