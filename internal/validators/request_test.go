package validators

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/MKhiriev/go-marketplace/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func fields(t *testing.T, err error) []models.FieldError {
	t.Helper()
	vErr, ok := AsValidationError(err)
	require.True(t, ok, "expected *ValidationError, got %v", err)
	return vErr.Fields
}

func TestRequestValidator_Signup(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	valid := models.SignupRequest{Username: "ann", Email: "ann@example.com", Password: "secret1", Role: "buyer"}
	require.NoError(t, v.Validate(ctx, valid))
	require.NoError(t, v.Validate(ctx, &valid))

	err := v.Validate(ctx, models.SignupRequest{Email: "nope", Password: "123", Role: "admin"})
	assert.Equal(t, []models.FieldError{
		{Field: "username", Message: "Username is required"},
		{Field: "email", Message: "Invalid email address"},
		{Field: "password", Message: "Password must be at least 6 characters long"},
		{Field: "role", Message: "Role must be buyer or seller"},
	}, fields(t, err))
}

func TestRequestValidator_Login(t *testing.T) {
	v := NewRequestValidator()

	err := v.Validate(context.Background(), models.LoginRequest{Email: "ann@example.com"})
	assert.Equal(t, []models.FieldError{
		{Field: "password", Message: "Password is required"},
	}, fields(t, err))
}

func TestRequestValidator_ProductCreate(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	tests := []struct {
		name       string
		req        models.ProductCreateRequest
		wantFields []string
	}{
		{
			name: "valid",
			req:  models.ProductCreateRequest{Name: "Phone", Category: "tech", Price: 10, Discount: 5},
		},
		{
			name:       "missing name and category",
			req:        models.ProductCreateRequest{Price: 10},
			wantFields: []string{"name", "category"},
		},
		{
			name:       "zero price",
			req:        models.ProductCreateRequest{Name: "Phone", Category: "tech"},
			wantFields: []string{"price"},
		},
		{
			name:       "discount out of range",
			req:        models.ProductCreateRequest{Name: "Phone", Category: "tech", Price: 1, Discount: 101},
			wantFields: []string{"discount"},
		},
		{
			name:       "negative discount",
			req:        models.ProductCreateRequest{Name: "Phone", Category: "tech", Price: 1, Discount: -1},
			wantFields: []string{"discount"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.req)
			if tt.wantFields == nil {
				assert.NoError(t, err)
				return
			}

			var got []string
			for _, f := range fields(t, err) {
				got = append(got, f.Field)
			}
			assert.Equal(t, tt.wantFields, got)
		})
	}
}

func TestRequestValidator_ProductUpdate(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.ProductUpdateRequest{}))
	assert.NoError(t, v.Validate(ctx, models.ProductUpdateRequest{Price: ptr(3.5), Discount: ptr(0.0)}))

	err := v.Validate(ctx, models.ProductUpdateRequest{Name: ptr(""), Price: ptr(-1.0)})
	assert.Equal(t, []models.FieldError{
		{Field: "name", Message: "Invalid name"},
		{Field: "price", Message: "Price must be a positive number"},
	}, fields(t, err))
}

func TestRequestValidator_AddToCart(t *testing.T) {
	v := NewRequestValidator()

	err := v.Validate(context.Background(), models.AddToCartRequest{})
	assert.Equal(t, "productId", fields(t, err)[0].Field)
	assert.Equal(t, "Product ID must be an integer", fields(t, err)[0].Message)
}

func TestRequestValidator_DefaultMessage(t *testing.T) {
	type plain struct {
		Count int `json:"count" validate:"gte=1"`
	}

	err := NewRequestValidator().Validate(context.Background(), plain{})
	assert.Equal(t, []models.FieldError{
		{Field: "count", Message: "count must be greater than or equal to 1"},
	}, fields(t, err))
}

func TestRequestValidator_UnsupportedType(t *testing.T) {
	v := NewRequestValidator()

	assert.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), (*models.LoginRequest)(nil)), ErrUnsupportedType)
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Fields: []models.FieldError{
		{Field: "id", Message: "Product ID must be an integer"},
		{Field: "name", Message: "Invalid name"},
	}}
	assert.Equal(t, "validation failed: id: Product ID must be an integer; name: Invalid name", err.Error())

	single := NewFieldError("id", "bad")
	assert.Len(t, single.Fields, 1)
}

func TestDecodeError(t *testing.T) {
	t.Run("wrong type uses the field message", func(t *testing.T) {
		var req models.AddToCartRequest
		err := json.Unmarshal([]byte(`{"productId":"abc"}`), &req)
		require.Error(t, err)

		vErr := DecodeError(&req, err)
		require.Len(t, vErr.Fields, 1)
		assert.Equal(t, "productId", vErr.Fields[0].Field)
		assert.Equal(t, "Product ID must be an integer", vErr.Fields[0].Message)
	})

	t.Run("wrong type without message", func(t *testing.T) {
		var req models.ProductCreateRequest
		err := json.Unmarshal([]byte(`{"description":5}`), &req)
		require.Error(t, err)

		vErr := DecodeError(&req, err)
		assert.Equal(t, "description has an invalid type", vErr.Fields[0].Message)
	})

	t.Run("syntax error", func(t *testing.T) {
		var req models.LoginRequest
		err := json.Unmarshal([]byte(`{"email":`), &req)
		require.Error(t, err)

		vErr := DecodeError(&req, err)
		assert.Equal(t, "body", vErr.Fields[0].Field)
	})
}
