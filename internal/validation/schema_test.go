package validation

import (
	"encoding/json"
	"testing"

	"github.com/deppfellow/product-service/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectAll() Options { return Options{AbortEarly: false} }

func TestProductSchemaValid(t *testing.T) {
	body := map[string]any{
		"name":  "Widget",
		"price": json.Number("9.99"),
		"color": "red",
	}

	assert.NoError(t, ProductSchema.Validate(body, collectAll()))
}

func TestProductSchemaAcceptsZeroPrice(t *testing.T) {
	body := map[string]any{"name": "Free sample", "price": float64(0)}

	assert.NoError(t, ProductSchema.Validate(body, collectAll()))
}

func TestProductSchemaMissingPrice(t *testing.T) {
	err := ProductSchema.Validate(map[string]any{"name": "Widget"}, collectAll())

	var failures CustomValidationErrors
	require.ErrorAs(t, err, &failures)
	require.Len(t, failures, 1)
	assert.Equal(t, "price", failures[0].Field)
	assert.Contains(t, failures[0].Message, "price")
}

func TestProductSchemaCollectsAllErrors(t *testing.T) {
	err := ProductSchema.Validate(map[string]any{}, collectAll())

	var failures CustomValidationErrors
	require.ErrorAs(t, err, &failures)
	assert.Equal(t, CustomValidationErrors{
		{Field: "name", Message: "name is a required field"},
		{Field: "price", Message: "price is a required field"},
	}, failures)
}

func TestProductSchemaAbortEarly(t *testing.T) {
	err := ProductSchema.Validate(map[string]any{}, Options{AbortEarly: true})

	var failures CustomValidationErrors
	require.ErrorAs(t, err, &failures)
	require.Len(t, failures, 1)
	assert.Equal(t, "name", failures[0].Field)
}

func TestProductSchemaTypeMismatch(t *testing.T) {
	body := map[string]any{"name": json.Number("42"), "price": "cheap"}

	err := ProductSchema.Validate(body, collectAll())

	var failures CustomValidationErrors
	require.ErrorAs(t, err, &failures)
	require.Len(t, failures, 2)
	assert.Equal(t, "name must be a `string` type, but the final value was: `42`.", failures[0].Message)
	assert.Equal(t, "price must be a `number` type, but the final value was: `\"cheap\"`.", failures[1].Message)
}

func TestProductSchemaNullAndEmpty(t *testing.T) {
	body := map[string]any{"name": "", "price": nil}

	err := ProductSchema.Validate(body, collectAll())

	var failures CustomValidationErrors
	require.ErrorAs(t, err, &failures)
	assert.Equal(t, CustomValidationErrors{
		{Field: "name", Message: "name is a required field"},
		{Field: "price", Message: "price is a required field"},
	}, failures)
}

func TestToHTTPError(t *testing.T) {
	err := ToHTTPError(ProductSchema.Validate(map[string]any{"name": "Widget"}, collectAll()))

	var httpErr *errs.Error
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, errs.KindValidation, httpErr.Kind)
	assert.Equal(t, []string{"price is a required field"}, httpErr.Messages())
}

func TestToHTTPErrorPassthrough(t *testing.T) {
	assert.NoError(t, ToHTTPError(nil))

	other := assert.AnError
	assert.Same(t, other, ToHTTPError(other))
}

func TestToHTTPErrorKeepsFieldOrder(t *testing.T) {
	err := ToHTTPError(ProductSchema.Validate(map[string]any{}, collectAll()))

	var httpErr *errs.Error
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, []errs.FieldError{
		{Field: "name", Message: "name is a required field"},
		{Field: "price", Message: "price is a required field"},
	}, httpErr.Fields)
}

func TestProductSchemaEmptyStringIsMissing(t *testing.T) {
	body := map[string]any{"name": "", "price": json.Number("1")}

	err := ProductSchema.Validate(body, Options{AbortEarly: true})

	var failures CustomValidationErrors
	require.ErrorAs(t, err, &failures)
	assert.Equal(t, CustomValidationErrors{
		{Field: "name", Message: "name is a required field"},
	}, failures)
}
