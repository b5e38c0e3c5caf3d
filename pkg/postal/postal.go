// Package postal valida códigos postales españoles y resuelve la provincia a
// partir de sus dos primeras cifras.
package postal

import (
	"sort"
	"strconv"
	"strings"
)

// Rango oficial de códigos postales (01000 Álava – 52999 Melilla).
const (
	MinCode = 1000
	MaxCode = 52999
)

// IsPostalCode indica si value tiene exactamente 5 dígitos y está dentro del
// rango oficial. Se ignoran los espacios alrededor.
func IsPostalCode(value string) bool {
	cp := strings.TrimSpace(value)
	if len(cp) != 5 {
		return false
	}
	for i := 0; i < len(cp); i++ {
		if cp[i] < '0' || cp[i] > '9' {
			return false
		}
	}
	n, err := strconv.Atoi(cp)
	if err != nil {
		return false
	}
	return n >= MinCode && n <= MaxCode
}

// Province devuelve la provincia asociada al prefijo de dos cifras del código
// postal, o "" si el prefijo no está en la tabla (incluidos "00" y > "52").
func Province(cp string) string {
	cp = strings.TrimSpace(cp)
	if len(cp) < 2 {
		return ""
	}
	return provinces[cp[:2]]
}

// ProvinceEntry par prefijo/provincia.
type ProvinceEntry struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Provinces devuelve la tabla completa ordenada por prefijo.
func Provinces() []ProvinceEntry {
	out := make([]ProvinceEntry, 0, len(provinces))
	for code, name := range provinces {
		out = append(out, ProvinceEntry{Code: code, Name: name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}
