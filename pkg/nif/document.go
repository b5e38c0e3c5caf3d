package nif

// DocumentType tipo de documento de identidad reconocido.
type DocumentType string

const (
	DocumentDNI DocumentType = "DNI"
	DocumentNIE DocumentType = "NIE"
	DocumentCIF DocumentType = "CIF"
)

// Classify devuelve el tipo del documento válido o "" si ninguno lo acepta.
// Los formatos son excluyentes por el primer carácter, así que el orden
// DNI → NIE → CIF no introduce ambigüedad.
func Classify(value string) DocumentType {
	switch {
	case IsDNI(value):
		return DocumentDNI
	case IsNIE(value):
		return DocumentNIE
	case IsCIF(value):
		return DocumentCIF
	default:
		return ""
	}
}

// IsDocument indica si value es un DNI, NIE o CIF válido.
func IsDocument(value string) bool {
	return Classify(value) != ""
}
