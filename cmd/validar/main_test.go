package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/facturador/internal/domain/validation"
)

func TestCheck_Documentos(t *testing.T) {
	in := strings.NewReader("12345678Z\n\n  X1234567L  \nA58818501\n12345678A\n")
	var out bytes.Buffer

	st, err := check(in, &out, validation.FieldDocument, validation.New())
	require.NoError(t, err)
	assert.Equal(t, stats{valid: 3, invalid: 1}, st)
	assert.Equal(t,
		"12345678Z\tOK\tDNI\nX1234567L\tOK\tNIE\nA58818501\tOK\tCIF\n12345678A\tERROR\t\n",
		out.String())
}

func TestCheck_CodigosPostalesLatin1(t *testing.T) {
	// la segunda línea lleva una eñe codificada en ISO-8859-1
	raw := []byte("28013\n0\xf1999\n")
	in := transform.NewReader(bytes.NewReader(raw), charmap.ISO8859_1.NewDecoder())
	var out bytes.Buffer

	st, err := check(in, &out, validation.FieldPostalCode, validation.New())
	require.NoError(t, err)
	assert.Equal(t, stats{valid: 1, invalid: 1}, st)
	assert.Equal(t, "28013\tOK\tMadrid\n0ñ999\tERROR\t\n", out.String())
}

func TestCheck_Fechas(t *testing.T) {
	now := time.Date(2026, 10, 15, 8, 0, 0, 0, time.UTC)
	v := validation.New(validation.WithLocation(time.UTC), validation.WithClock(func() time.Time { return now }))
	var out bytes.Buffer

	st, err := check(strings.NewReader("15/10/2026\n16/10/2026\n"), &out, validation.FieldDate, v)
	require.NoError(t, err)
	assert.Equal(t, stats{valid: 1, invalid: 1}, st)
}
