package dto

// ValidateFieldsRequest campos a validar, por nombre ("documento", "telefono", "cp", "fecha").
type ValidateFieldsRequest map[string]string

// ValidateFieldsResponse resultado de la validación de campos sueltos.
type ValidateFieldsResponse struct {
	Valid        bool            `json:"valid"`
	Errors       map[string]bool `json:"errors"`
	Province     string          `json:"provincia,omitempty"`
	DocumentType string          `json:"tipo_documento,omitempty"`
}

// ProvinceResponse provincia de un código postal.
type ProvinceResponse struct {
	PostalCode string `json:"cp"`
	Valid      bool   `json:"valid"`
	Province   string `json:"provincia"`
}
