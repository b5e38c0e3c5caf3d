package validation

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/asaskevich/govalidator"
	"github.com/jhoicas/facturador/internal/domain/entity"
	"github.com/shopspring/decimal"
	"golang.org/x/text/unicode/norm"
)

// ErrInvalidInvoice agrupa los errores de validación de la factura.
var ErrInvalidInvoice = errors.New("factura inválida")

// Límites de los campos de cabecera y de línea.
const (
	MaxNumberLen      = 7
	MinNameLen        = 2
	MaxNameLen        = 200
	MinLocalityLen    = 2
	MaxLocalityLen    = 20
	MinQuantity       = 1
	MaxQuantity       = 999
	MaxDescriptionLen = 50
)

// messages texto mostrado al usuario por cada campo, en el orden del formulario.
var messages = []struct {
	field string
	text  string
}{
	{FieldNumber, "Número de factura inválido (1-7 caracteres)"},
	{FieldName, "Nombre inválido (2-200 caracteres)"},
	{FieldDate, "Fecha inválida (formato DD/MM/YYYY, no puede ser posterior a hoy)"},
	{FieldPostalCode, "Código postal inválido"},
	{FieldLocality, "Localidad inválida (2-20 caracteres)"},
	{FieldDocument, "Documento de identidad inválido (DNI/NIE/CIF)"},
	{FieldPhone, "Teléfono inválido (9 dígitos, empieza por 6, 7 o 9)"},
	{FieldEmail, "Email inválido"},
	{FieldCaptcha, "Captcha incorrecto"},
	{FieldLines, "Debe haber al menos una línea de factura válida"},
}

// Report resultado de validar la factura completa.
type Report struct {
	Errors FieldErrors
}

// Valid indica si no hay errores.
func (r Report) Valid() bool { return r.Errors.Empty() }

// Messages mensajes de error en el orden del formulario.
func (r Report) Messages() []string {
	out := make([]string, 0, len(r.Errors))
	for _, m := range messages {
		if r.Errors[m.field] {
			out = append(out, m.text)
		}
	}
	return out
}

// Err devuelve nil si no hay errores; si los hay, ErrInvalidInvoice junto con cada mensaje.
func (r Report) Err() error {
	if r.Valid() {
		return nil
	}
	errs := []error{ErrInvalidInvoice}
	for _, m := range r.Messages() {
		errs = append(errs, errors.New(m))
	}
	return errors.Join(errs...)
}

// ValidateClient aplica las reglas de cabecera. Todos los campos son obligatorios.
func (v *Validator) ValidateClient(c entity.ClientData) FieldErrors {
	errs := FieldErrors{}
	if !lengthBetween(c.Number, 1, MaxNumberLen) {
		errs[FieldNumber] = true
	}
	if !lengthBetween(c.Name, MinNameLen, MaxNameLen) {
		errs[FieldName] = true
	}
	if blank(c.Date) || !v.IsDate(c.Date) {
		errs[FieldDate] = true
	}
	if blank(c.PostalCode) || !v.Valid(FieldPostalCode, c.PostalCode) {
		errs[FieldPostalCode] = true
	}
	if !lengthBetween(c.Locality, MinLocalityLen, MaxLocalityLen) {
		errs[FieldLocality] = true
	}
	if blank(c.Document) || !v.Valid(FieldDocument, c.Document) {
		errs[FieldDocument] = true
	}
	if blank(c.Phone) || !IsPhone(c.Phone) {
		errs[FieldPhone] = true
	}
	if blank(c.Email) || !govalidator.IsEmail(c.Email) {
		errs[FieldEmail] = true
	}
	return errs
}

// Validate valida cabecera y líneas de la factura.
func (v *Validator) Validate(c entity.ClientData, lines []entity.LineItem) Report {
	errs := v.ValidateClient(c)
	if !HasValidLine(lines) {
		errs[FieldLines] = true
	}
	return Report{Errors: errs}
}

// ValidateLine reglas de una línea: cantidad 1-999, descripción obligatoria de
// hasta 50 caracteres, precio no negativo e IVA 21, 10 o 4.
func ValidateLine(l entity.LineItem) FieldErrors {
	errs := FieldErrors{}
	if l.Quantity < MinQuantity || l.Quantity > MaxQuantity {
		errs[FieldQuantity] = true
	}
	if blank(l.Description) || DescriptionLen(l.Description) > MaxDescriptionLen {
		errs[FieldDescription] = true
	}
	if l.UnitPrice.LessThan(decimal.Zero) {
		errs[FieldUnitPrice] = true
	}
	if !entity.IsValidTaxRate(l.TaxRate) {
		errs[FieldTaxRate] = true
	}
	return errs
}

// IsLineComplete indica si la línea tiene descripción y cantidad positiva.
func IsLineComplete(l entity.LineItem) bool {
	return l.Quantity > 0 && !blank(l.Description)
}

// HasValidLine indica si al menos una línea tiene cantidad positiva,
// descripción y precio no negativo.
func HasValidLine(lines []entity.LineItem) bool {
	for _, l := range lines {
		if IsLineComplete(l) && !l.UnitPrice.LessThan(decimal.Zero) {
			return true
		}
	}
	return false
}

// DescriptionLen longitud en caracteres tras normalizar a NFC, de modo que
// "é" cuente uno aunque llegue descompuesta.
func DescriptionLen(s string) int {
	return utf8.RuneCountInString(norm.NFC.String(s))
}

func lengthBetween(s string, lo, hi int) bool {
	if blank(s) {
		return false
	}
	n := utf8.RuneCountInString(s)
	return n >= lo && n <= hi
}

func blank(s string) bool { return strings.TrimSpace(s) == "" }
