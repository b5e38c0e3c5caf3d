package nif

import (
	"fmt"
	"strings"
)

const (
	// cifOrganizations letras de tipo de organización admitidas (sin I, O, T ni Ñ).
	cifOrganizations = "ABCDEFGHJKLMNPQRSUVW"
	// cifControlLetters letra de control equivalente a cada dígito 0-9.
	cifControlLetters = "JABCDEFGHI"
	// cifNumericOnly organizaciones cuyo carácter de control es siempre un dígito.
	cifNumericOnly = "ABEH"
	// cifLetterOnly organizaciones cuyo carácter de control es siempre una letra.
	cifLetterOnly = "KPQS"
)

// ComputeCIFControl calcula el dígito y la letra de control de los 7 dígitos
// centrales de un CIF.
//
// Posiciones pares (0, 2, 4, 6): se duplica el dígito y se suman las cifras del
// resultado. Posiciones impares: se suma el dígito. El control es
// (10 - suma%10) % 10 y su letra equivalente cifControlLetters[control].
func ComputeCIFControl(digits string) (digit byte, letter byte, err error) {
	if len(digits) != 7 || !allDigits(digits) {
		return 0, 0, fmt.Errorf("nif: el CIF requiere 7 dígitos centrales, se recibió %q", digits)
	}
	var sum int
	for i := 0; i < 7; i++ {
		n := int(digits[i] - '0')
		if i%2 == 0 {
			d := n * 2
			sum += d/10 + d%10
		} else {
			sum += n
		}
	}
	control := (10 - sum%10) % 10
	return byte('0' + control), cifControlLetters[control], nil
}

// IsCIF indica si value es un CIF válido. Admite minúsculas y espacios alrededor.
func IsCIF(value string) bool {
	cif := strings.ToUpper(strings.TrimSpace(value))
	if len(cif) != 9 {
		return false
	}
	org := cif[0]
	if strings.IndexByte(cifOrganizations, org) < 0 {
		return false
	}
	control := cif[8]
	if !(control >= '0' && control <= '9') && !(control >= 'A' && control <= 'J') {
		return false
	}
	digit, letter, err := ComputeCIFControl(cif[1:8])
	if err != nil {
		return false
	}
	switch {
	case strings.IndexByte(cifNumericOnly, org) >= 0:
		return control == digit
	case strings.IndexByte(cifLetterOnly, org) >= 0:
		return control == letter
	default:
		return control == digit || control == letter
	}
}
