package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var personSchema = map[string]any{
	"type":                 "object",
	"additionalProperties": false,
	"required":             []any{"name", "age"},
	"properties": map[string]any{
		"name": map[string]any{"type": "string"},
		"age":  map[string]any{"type": "number", "minimum": 0.0},
	},
}

func TestValidate_Valid(t *testing.T) {
	err := Validate(personSchema, map[string]any{"name": "Kim", "age": 31.0})
	assert.NoError(t, err)
}

func TestValidate_MissingRequiredField(t *testing.T) {
	err := Validate(personSchema, map[string]any{"name": "Kim"})
	require.Error(t, err)

	ve, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	require.NotEmpty(t, ve.Errors)
	assert.Equal(t, "required", ve.Errors[0].Keyword)
	assert.NotEmpty(t, ve.Errors[0].Message)
}

func TestValidate_WrongTypeAndExtraKey(t *testing.T) {
	err := Validate(personSchema, map[string]any{"name": 12.0, "age": -1.0, "extra": true})
	require.Error(t, err)

	ve, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.GreaterOrEqual(t, len(ve.Errors), 2)
}

func TestValidateBytes(t *testing.T) {
	err := ValidateBytes(personSchema, []byte(`{"name":"Lee","age":5}`))
	assert.NoError(t, err)

	err = ValidateBytes(personSchema, []byte(`{"age":"five"}`))
	require.Error(t, err)
	assert.NotEmpty(t, FieldErrors(err))
}

func TestFieldErrors_NonValidationError(t *testing.T) {
	assert.Nil(t, FieldErrors(assert.AnError))
	assert.Nil(t, FieldErrors(nil))
}
