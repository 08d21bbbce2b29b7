package checkout_test

import (
	"testing"

	"github.com/aaravmahajanofficial/storefront-gateway/internal/checkout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm() checkout.Form {
	return checkout.Form{
		FullName:        "Nguyen Van A",
		Email:           "a@b.com",
		Phone:           "0912345678",
		ShippingAddress: "1 Lang Ha, Ha Noi",
	}
}

func TestValidate(t *testing.T) {

	t.Run("Valid Form", func(t *testing.T) {
		result := validForm().Validate()

		assert.True(t, result.Valid)
		assert.Empty(t, result.Errors)
	})

	t.Run("Missing Full Name Only", func(t *testing.T) {
		form := validForm()
		form.FullName = ""
		form.ShippingAddress = "x"

		result := form.Validate()

		require.False(t, result.Valid)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, checkout.CodeRequired, result.Errors[checkout.FieldFullName].Code)
	})

	t.Run("Whitespace Counts As Empty", func(t *testing.T) {
		form := validForm()
		form.FullName = "   "
		form.ShippingAddress = "\t\n"

		result := form.Validate()

		require.False(t, result.Valid)
		assert.Equal(t, checkout.CodeRequired, result.Errors[checkout.FieldFullName].Code)
		assert.Equal(t, checkout.CodeRequired, result.Errors[checkout.FieldShippingAddress].Code)
	})

	t.Run("Bad Email And Short Phone", func(t *testing.T) {
		form := checkout.Form{
			FullName:        "A",
			Email:           "bad",
			Phone:           "123",
			ShippingAddress: "x",
		}

		result := form.Validate()

		require.False(t, result.Valid)
		require.Len(t, result.Errors, 2)
		assert.Equal(t, checkout.CodeInvalidFormat, result.Errors[checkout.FieldEmail].Code)
		assert.Equal(t, checkout.CodeInvalidFormat, result.Errors[checkout.FieldPhone].Code)
	})

	t.Run("Phone Formatting Characters Stripped", func(t *testing.T) {
		form := validForm()
		form.Phone = "(091) 234-5678"

		result := form.Validate()

		assert.True(t, result.Valid, "10 digits after stripping must pass")
	})

	t.Run("Phone Too Long", func(t *testing.T) {
		form := validForm()
		form.Phone = "1234567890123456"

		result := form.Validate()

		require.False(t, result.Valid)
		assert.Equal(t, checkout.CodeInvalidFormat, result.Errors[checkout.FieldPhone].Code)
	})

	t.Run("Empty Email Is Required Not Invalid", func(t *testing.T) {
		form := validForm()
		form.Email = ""

		result := form.Validate()

		require.False(t, result.Valid)
		assert.Equal(t, checkout.CodeRequired, result.Errors[checkout.FieldEmail].Code)
	})
}
