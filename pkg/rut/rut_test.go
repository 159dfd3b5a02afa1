package rut_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ferreteria-api/pkg/rut"
)

func TestClean(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"", ""},
		{"12.345.678-5", "123456785"},
		{" 12 345 678 k ", "12345678K"},
		{"abc", ""},
		{"1234567890", "123456789"},
		{"6-k", "6K"},
		{"ñ1é2", "12"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, rut.Clean(tc.in), "Clean(%q)", tc.in)
	}
}

func TestClean_Idempotente(t *testing.T) {
	inputs := []string{"", "k", "12.345.678-k", "99.999.999.999-9", "--..--", "1a2b3c4d5e6f7g8h9i", "K1K2K3"}
	for _, in := range inputs {
		once := rut.Clean(in)
		assert.Equal(t, once, rut.Clean(once), "Clean no es idempotente para %q", in)
	}
}

// Vectores conocidos del módulo 11.
func TestCheckDigit(t *testing.T) {
	cases := []struct {
		body, want string
	}{
		{"12345678", "5"},
		{"11111111", "1"},
		{"22222222", "2"},
		{"6", "K"},
		{"62", "0"},
		{"0", "0"},
		{"", ""},
		{"..", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, rut.CheckDigit(tc.body), "CheckDigit(%q)", tc.body)
	}
}

func TestFormat(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"", ""},
		{"1", "1"},
		{"12", "1-2"},
		{"1234", "123-4"},
		{"12345", "1.234-5"},
		{"123456785", "12.345.678-5"},
		{"12.345.678-k", "12.345.678-K"},
		{"1234567890", "12.345.678-9"},
		// no recalcula el dígito verificador mientras se escribe
		{"12345678-6", "12.345.678-6"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, rut.Format(tc.in), "Format(%q)", tc.in)
	}
}

func TestFormatDigits(t *testing.T) {
	assert.Equal(t, "12.345.678-5", rut.FormatDigits("12345678"))
	assert.Equal(t, "12.345.678-5", rut.FormatDigits("12.345.678"))
	assert.Equal(t, "6-K", rut.FormatDigits("6"))
	assert.Equal(t, "", rut.FormatDigits(""))
}

func TestIsValid(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"12345678-5", true},
		{"12.345.678-5", true},
		{"12345678-6", false},
		{"6-k", true},
		{"6-K", true},
		{"62-0", true},
		{"5", false},
		{"", false},
		{"1K2-3", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, rut.IsValid(tc.in), "IsValid(%q)", tc.in)
	}
}

func TestIsValid_CuerpoConDigitoCalculado(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		n := 1 + rng.Intn(8)
		var b strings.Builder
		for j := 0; j < n; j++ {
			b.WriteByte(byte('0' + rng.Intn(10)))
		}
		body := b.String()
		dv := rut.CheckDigit(body)
		assert.True(t, rut.IsValid(body+dv), "cuerpo %q con dv %q", body, dv)
		assert.True(t, strings.HasSuffix(rut.FormatDigits(body), "-"+dv), "FormatDigits(%q)", body)
	}
}

func TestBody(t *testing.T) {
	assert.Equal(t, "12345678", rut.Body("12.345.678-5"))
	assert.Equal(t, "12", rut.Body("0012-3"))
	assert.Equal(t, "", rut.Body("0-0"))
	assert.Equal(t, "", rut.Body("5"))
	assert.True(t, rut.IsEmpty("00.000.000-0"))
	assert.False(t, rut.IsEmpty("6-K"))
}

func TestParse(t *testing.T) {
	r, err := rut.Parse("12345678-5")
	require.NoError(t, err)
	assert.Equal(t, "12.345.678-5", r.String())
	assert.Equal(t, "12345678-5", r.Compact())
	assert.Equal(t, int64(12345678), r.Number())
	assert.Equal(t, "5", r.DV())

	_, err = rut.Parse("12345678-6")
	assert.ErrorIs(t, err, rut.ErrInvalid)

	_, err = rut.Parse("0-0")
	assert.ErrorIs(t, err, rut.ErrEmpty)
}

func TestFromNumber(t *testing.T) {
	r, err := rut.FromNumber(12345678)
	require.NoError(t, err)
	assert.Equal(t, "12.345.678-5", r.String())

	_, err = rut.FromNumber(0)
	assert.ErrorIs(t, err, rut.ErrEmpty)

	_, err = rut.FromNumber(123456789)
	assert.ErrorIs(t, err, rut.ErrInvalid)

	assert.True(t, rut.RUT{}.IsZero())
	assert.Equal(t, "", rut.RUT{}.String())
}
