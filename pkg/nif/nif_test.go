package nif_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/facturador/pkg/nif"
)

func TestComputeDNILetter(t *testing.T) {
	cases := map[string]byte{
		"12345678": 'Z', // 12345678 % 23 = 14
		"00000000": 'T',
		"99999999": 'R',
		"87654321": 'X',
	}
	for digits, want := range cases {
		got, err := nif.ComputeDNILetter(digits)
		require.NoError(t, err, digits)
		assert.Equal(t, string(want), string(got), digits)
	}

	_, err := nif.ComputeDNILetter("1234567")
	assert.Error(t, err, "7 dígitos no es un número de DNI")
	_, err = nif.ComputeDNILetter("1234567A")
	assert.Error(t, err)
}

func TestIsDNI(t *testing.T) {
	assert.True(t, nif.IsDNI("12345678Z"))
	assert.True(t, nif.IsDNI("12345678z"), "la letra no distingue mayúsculas")
	assert.True(t, nif.IsDNI("00000000T"))

	assert.False(t, nif.IsDNI("12345678A"), "letra de control incorrecta")
	assert.False(t, nif.IsDNI(""))
	assert.False(t, nif.IsDNI("1234567Z"))
	assert.False(t, nif.IsDNI("123456789Z"))
	assert.False(t, nif.IsDNI("1234567XZ"))
	assert.False(t, nif.IsDNI("X1234567L"), "un NIE no es un DNI")
}

func TestIsNIE(t *testing.T) {
	assert.True(t, nif.IsNIE("X1234567L"), "X→0: 01234567 % 23 = 19 → L")
	assert.True(t, nif.IsNIE("x1234567l"))
	assert.True(t, nif.IsNIE("Y1234567X"))
	assert.True(t, nif.IsNIE("Z1234567R"))

	assert.False(t, nif.IsNIE("X1234567A"))
	assert.False(t, nif.IsNIE("W1234567L"), "solo X, Y o Z")
	assert.False(t, nif.IsNIE("X123456L"))
	assert.False(t, nif.IsNIE("X12345678"), "el control debe ser una letra")
	assert.False(t, nif.IsNIE(""))
}

func TestDocumentos_EntradaMultibyteNoEntraEnPanico(t *testing.T) {
	// ı y ſ ocupan 2 bytes y se convierten en I y S (1 byte) al pasar a mayúsculas.
	for _, in := range []string{"X123456ı", "X123456ſ", "ſ123456L", "1234567ı"} {
		require.Len(t, in, 9, in)
		assert.NotPanics(t, func() { assert.False(t, nif.IsNIE(in)) }, in)
		assert.NotPanics(t, func() { assert.False(t, nif.IsDocument(in)) }, in)
		assert.NotPanics(t, func() { assert.Empty(t, nif.Classify(in)) }, in)
	}
}

func TestComputeCIFControl(t *testing.T) {
	digit, letter, err := nif.ComputeCIFControl("5881850")
	require.NoError(t, err)
	assert.Equal(t, byte('1'), digit)
	assert.Equal(t, byte('A'), letter)

	digit, letter, err = nif.ComputeCIFControl("0000000")
	require.NoError(t, err)
	assert.Equal(t, byte('0'), digit)
	assert.Equal(t, byte('J'), letter)

	_, _, err = nif.ComputeCIFControl("588185")
	assert.Error(t, err)
}

func TestIsCIF(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"A58818501", true},
		{"a58818501", true},
		{" A58818501 ", true},
		{"A58818500", false}, // dígito incorrecto
		{"A5881850A", false}, // A exige control numérico
		{"B12345674", true},
		{"P5881850A", true},  // P exige letra
		{"P58818501", false}, // P no admite dígito
		{"Q1234567D", true},
		{"G58818501", true}, // resto: dígito o letra
		{"G5881850A", true},
		{"G5881850B", false},
		{"I58818501", false}, // I no es organización válida
		{"T58818501", false},
		{"A5881850", false},
		{"A58818S01", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, nif.IsCIF(tt.value))
		})
	}
}

func TestClassify(t *testing.T) {
	assert.Equal(t, nif.DocumentDNI, nif.Classify("12345678Z"))
	assert.Equal(t, nif.DocumentNIE, nif.Classify("X1234567L"))
	assert.Equal(t, nif.DocumentCIF, nif.Classify("A58818501"))
	assert.Equal(t, nif.DocumentType(""), nif.Classify("12345678A"))

	assert.True(t, nif.IsDocument("A58818501"))
	assert.False(t, nif.IsDocument("hola"))
}
