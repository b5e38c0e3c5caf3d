package nif

// niePrefixes sustitución de la letra inicial del NIE por un dígito.
var niePrefixes = map[byte]byte{'X': '0', 'Y': '1', 'Z': '2'}

// IsNIE indica si value es un NIE válido: X, Y o Z + 7 dígitos + letra de control.
// La letra inicial se sustituye por 0, 1 o 2 y se aplica el algoritmo del DNI
// sobre el número resultante de 8 dígitos.
func IsNIE(value string) bool {
	if len(value) != 9 {
		return false
	}
	prefix, ok := niePrefixes[upperASCII(value[0])]
	if !ok {
		return false
	}
	control := upperASCII(value[8])
	if control < 'A' || control > 'Z' {
		return false
	}
	expected, err := ComputeDNILetter(string(prefix) + value[1:8])
	if err != nil {
		return false
	}
	return control == expected
}

// upperASCII pasa a mayúscula solo letras ASCII; cualquier otro byte se
// devuelve tal cual, de modo que el índice sobre value sigue siendo válido.
func upperASCII(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}
