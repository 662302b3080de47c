package validator

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Email   string `json:"email" validate:"required,email"`
	Status  string `json:"status" validate:"omitempty,order_status"`
	Filter  string `query:"filter" validate:"order_filter"`
	Payment string `json:"payment_method" validate:"omitempty,payment_method"`
	Role    string `json:"role" validate:"omitempty,role"`
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New()

	tests := []struct {
		name           string
		input          sample
		expectedFields []string
	}{
		{name: "valid", input: sample{Email: "a@example.com", Status: "packed", Filter: "ongoing", Payment: "upi", Role: "shop_owner"}},
		{name: "empty filter allowed", input: sample{Email: "a@example.com"}},
		{name: "bad email", input: sample{Email: "nope"}, expectedFields: []string{"email"}},
		{
			name:           "unknown enums",
			input:          sample{Email: "a@example.com", Status: "lost", Filter: "someday", Payment: "barter", Role: "root"},
			expectedFields: []string{"status", "filter", "payment_method", "role"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.input)
			if len(tt.expectedFields) == 0 {
				assert.NoError(t, err)

				return
			}

			var validationErr *ValidationError
			require.True(t, errors.As(err, &validationErr))
			fields := make([]string, 0, len(validationErr.Fields))
			for _, f := range validationErr.Fields {
				fields = append(fields, f.Field)
			}
			assert.Equal(t, tt.expectedFields, fields)
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Fields: []FieldError{
		{Field: "name", Rule: "required"},
		{Field: "name", Rule: "max", Param: "100"},
	}}

	assert.Equal(t, "name must satisfy required; name must satisfy max=100", err.Error())
}
