package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

type phoneFixture struct {
	Phone string `validate:"valid_phone"`
}

type nameFixture struct {
	Name string `validate:"valid_name"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	RegisterValidators(v)
	return v
}

func TestValidPhone(t *testing.T) {
	v := newValidator()

	assert.NoError(t, v.Struct(phoneFixture{Phone: "+14155550123"}))
	assert.NoError(t, v.Struct(phoneFixture{Phone: "5550123"}))
	assert.NoError(t, v.Struct(phoneFixture{Phone: ""})) // optional
	assert.Error(t, v.Struct(phoneFixture{Phone: "555-0123"}))
	assert.Error(t, v.Struct(phoneFixture{Phone: "12345"}))
}

func TestValidName(t *testing.T) {
	v := newValidator()

	assert.NoError(t, v.Struct(nameFixture{Name: "Ada Lovelace"}))
	assert.NoError(t, v.Struct(nameFixture{Name: "O'Brien-Smith"}))
	assert.Error(t, v.Struct(nameFixture{Name: "drop; table users"}))
}
