//go:build unit

package guest_test

import (
	"strings"
	"testing"

	"dozzze-checkout/internal/domain/guest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDetails(mutate func(*[6]string)) guest.Details {
	fields := [6]string{"Maria Dolores", "maria@example.com", "+34 600 123 456", "Calle Mayor 1", "28013", "Late arrival"}
	if mutate != nil {
		mutate(&fields)
	}
	return guest.NewDetails(fields[0], fields[1], fields[2], fields[3], fields[4], fields[5])
}

func TestDetailsValidate(t *testing.T) {
	t.Run("complete details pass", func(t *testing.T) {
		d := validDetails(nil)
		assert.Nil(t, d.Validate())
		assert.True(t, d.IsComplete())
	})

	t.Run("all failures are reported at once", func(t *testing.T) {
		d := guest.NewDetails("x", "not-an-email", "123", "", "abc", "")
		fe := d.Validate()
		require.NotNil(t, fe)
		assert.Contains(t, fe, "name")
		assert.Contains(t, fe, "email")
		assert.Contains(t, fe, "phone")
		assert.Contains(t, fe, "postal_code")
	})

	cases := []struct {
		name   string
		field  int
		value  string
		errKey string
	}{
		{name: "name too short", field: 0, value: "Jo", errKey: "name"},
		{name: "name with digits", field: 0, value: "Maria 123", errKey: "name"},
		{name: "email without at", field: 1, value: "not-an-email", errKey: "email"},
		{name: "email without tld", field: 1, value: "a@b", errKey: "email"},
		{name: "phone too short", field: 2, value: "1234567", errKey: "phone"},
		{name: "phone with letters", field: 2, value: "phone123456", errKey: "phone"},
		{name: "postal with letters", field: 4, value: "2801E", errKey: "postal_code"},
		{name: "postal too long", field: 4, value: "12345678901", errKey: "postal_code"},
		{name: "remarks too long", field: 5, value: strings.Repeat("a", guest.MaxRemarksLength+1), errKey: "remarks"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := validDetails(func(f *[6]string) { f[tc.field] = tc.value })
			fe := d.Validate()
			require.NotNil(t, fe)
			assert.Contains(t, fe, tc.errKey)
			assert.Len(t, fe, 1)
		})
	}

	t.Run("boundary acceptances", func(t *testing.T) {
		ok := []struct {
			name  string
			field int
			value string
		}{
			{name: "minimal email", field: 1, value: "a@b.co"},
			{name: "empty postal code", field: 4, value: ""},
			{name: "max length remarks", field: 5, value: strings.Repeat("a", guest.MaxRemarksLength)},
			{name: "phone with separators", field: 2, value: "(+34) 600-123.456"},
		}
		for _, tc := range ok {
			t.Run(tc.name, func(t *testing.T) {
				d := validDetails(func(f *[6]string) { f[tc.field] = tc.value })
				assert.Nil(t, d.Validate())
			})
		}
	})

	t.Run("fields are trimmed", func(t *testing.T) {
		d := guest.NewDetails("  Maria Dolores  ", " maria@example.com ", " +34 600 123 456 ", "", "", "")
		assert.Equal(t, "Maria Dolores", d.Name())
		assert.Nil(t, d.Validate())
	})
}

func TestFieldErrorsMessage(t *testing.T) {
	fe := guest.FieldErrors{"email": "invalid email address"}
	assert.Contains(t, fe.Error(), "email: invalid email address")
}
