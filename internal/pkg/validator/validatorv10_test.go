package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupForm struct {
	FullName string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,password"`
	OTPCode  string `validate:"required,len=6,numeric"`
}

func TestV10ValidatorValidate(t *testing.T) {
	v, err := NewV10Validator()
	require.NoError(t, err)

	t.Run("valid", func(t *testing.T) {
		err := v.Validate(signupForm{
			FullName: "Jane Doe",
			Email:    "jane@example.com",
			Password: "secret1",
			OTPCode:  "123456",
		})
		assert.NoError(t, err)
	})

	t.Run("invalid fields", func(t *testing.T) {
		err := v.Validate(signupForm{
			FullName: "",
			Email:    "not-an-email",
			Password: "short",
			OTPCode:  "12ab56",
		})
		require.Error(t, err)

		var verr V10ValidationError
		require.ErrorAs(t, err, &verr)

		assert.Contains(t, verr, "full_name")
		assert.Contains(t, verr, "email")
		assert.Contains(t, verr, "password")
		assert.Contains(t, verr, "otp_code")
		assert.Equal(t, "Password must be 6-72 characters", verr["password"])
	})

	t.Run("password boundaries", func(t *testing.T) {
		base := signupForm{FullName: "Jane", Email: "jane@example.com", OTPCode: "123456"}

		base.Password = "123456"
		assert.NoError(t, v.Validate(base))

		base.Password = "12345"
		assert.Error(t, v.Validate(base))

		base.Password = strings.Repeat("a", 72)
		assert.NoError(t, v.Validate(base))

		base.Password = strings.Repeat("a", 73)
		assert.Error(t, v.Validate(base))

		// 25 runes but 100 bytes, over what bcrypt accepts.
		base.Password = strings.Repeat("\U0001F512", 25)
		assert.Error(t, v.Validate(base))
	})
}

func TestToLowerSnake(t *testing.T) {
	cases := map[string]string{
		"FullName":   "full_name",
		"OTPCode":    "otp_code",
		"userID":     "user_id",
		"HTTPServer": "http_server",
		"Email":      "email",
		"":           "",
	}

	for in, want := range cases {
		assert.Equal(t, want, toLowerSnake(in), in)
	}
}
