package phone_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ferreteria-api/pkg/phone"
)

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"9 1234 5678":     "+56912345678",
		"+56 9 1234 5678": "+56912345678",
		"56912345678":     "+56912345678",
		"12345678":        "+56912345678",
		"(2) 2345 6789":   "+56223456789",
	}
	for in, want := range cases {
		got, err := phone.Normalize(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, in := range []string{"", "123", "012345678", "+1 555 123 4567"} {
		_, err := phone.Normalize(in)
		assert.ErrorIs(t, err, phone.ErrInvalid, in)
	}
}

func TestDisplay(t *testing.T) {
	assert.Equal(t, "+56 9 1234 5678", phone.Display("+56912345678"))
	assert.Equal(t, "abc", phone.Display("abc"))
}
