// Package nif implementa los algoritmos de control de los documentos de
// identificación fiscal españoles: DNI, NIE y CIF.
package nif

import (
	"fmt"
	"strings"
)

// dniLetters tabla oficial de letras de control (Ministerio del Interior).
// La letra es dniLetters[numero % 23].
const dniLetters = "TRWAGMYFPDXBNJZSQVHLCKE"

// ComputeDNILetter calcula la letra de control para un número de 8 dígitos.
func ComputeDNILetter(digits string) (byte, error) {
	if len(digits) != 8 || !allDigits(digits) {
		return 0, fmt.Errorf("nif: el número del DNI debe tener 8 dígitos, se recibió %q", digits)
	}
	return dniLetters[digitsMod23(digits)], nil
}

// IsDNI indica si value es un DNI válido: 8 dígitos seguidos de la letra de
// control correcta (sin distinguir mayúsculas/minúsculas).
func IsDNI(value string) bool {
	if len(value) != 9 {
		return false
	}
	expected, err := ComputeDNILetter(value[:8])
	if err != nil {
		return false
	}
	return strings.ToUpper(value[8:]) == string(expected)
}

func digitsMod23(digits string) int {
	var n int
	for i := 0; i < len(digits); i++ {
		n = n*10 + int(digits[i]-'0')
	}
	return n % 23
}

// allDigits solo acepta dígitos ASCII; unicode.IsDigit admitiría otros sistemas numéricos.
func allDigits(s string) bool {
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
