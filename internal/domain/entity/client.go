package entity

// ClientData cabecera de la factura (datos del cliente).
// Province no se edita: se deriva del código postal.
type ClientData struct {
	Number     string
	Name       string
	Date       string // DD/MM/YYYY
	PostalCode string
	Province   string
	Locality   string
	Document   string // DNI, NIE o CIF
	Phone      string
	Email      string
}
