package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testAddress struct {
	City string `validate:"required"`
}

type testForm struct {
	Name    string      `validate:"required,min=2"`
	Email   string      `validate:"omitempty,email"`
	Address testAddress `validate:"required"`
}

func TestValidateSuccess(t *testing.T) {
	v := New()

	errs := v.Validate(&testForm{
		Name:    "Maria",
		Email:   "maria@example.com",
		Address: testAddress{City: "São Paulo"},
	})
	assert.Nil(t, errs)
}

func TestValidateCollectsFieldErrors(t *testing.T) {
	v := New()

	errs := v.Validate(&testForm{Email: "not-an-email", Address: testAddress{City: "x"}})
	require.NotNil(t, errs)

	assert.Equal(t, "is required", errs["name"])
	assert.Equal(t, "must be a valid email", errs["email"])
}

func TestValidateDotJoinsNestedFields(t *testing.T) {
	v := New()

	errs := v.Validate(&testForm{Name: "Maria"})
	require.NotNil(t, errs)
	assert.Equal(t, "is required", errs["address.city"])
}

func TestValidateMinMessage(t *testing.T) {
	v := New()

	errs := v.Validate(&testForm{Name: "M", Address: testAddress{City: "x"}})
	require.NotNil(t, errs)
	assert.Equal(t, "must be at least 2 characters long", errs["name"])
}

func TestValidateNonStructDoesNotPanic(t *testing.T) {
	v := New()

	assert.NotPanics(t, func() {
		errs := v.Validate("not a struct")
		assert.NotNil(t, errs)
	})
}
