package validators_test

import (
	"strings"
	"testing"

	"bitwise74/social-api/validators"

	"github.com/stretchr/testify/assert"
)

func TestPasswordValidator(t *testing.T) {
	cases := []struct {
		name     string
		password string
		want     error
	}{
		{"valid", "Password123", nil},
		{"exactly 8 chars", "12345678", nil},
		{"empty", "", validators.ErrPasswordEmpty},
		{"too short", "1234567", validators.ErrPasswordTooShort},
		{"too long", strings.Repeat("a", 256), validators.ErrPasswordTooLong},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, validators.PasswordValidator(tc.password))
		})
	}
}
