// Copyright (c) 2026 Randfin. All rights reserved.

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randfin/randfin/internal/platform/apperr"
	"github.com/randfin/randfin/internal/platform/validate"
)

/*
TestValidator_Required tests the mandatory field validation logic.
*/
func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		value    string
		hasError bool
	}{
		{"valid_string", "name", "Randfin", false},
		{"empty_string", "name", "", true},
		{"whitespace_only", "name", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required(tt.field, tt.value)

			if tt.hasError {
				assert.True(t, v.HasErrors())
				err := v.Err()
				require.NotNil(t, err)

				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, "VALIDATION_ERROR", ae.Code)
				assert.Equal(t, tt.field, ae.Details[0].Field)
			} else {
				assert.False(t, v.HasErrors())
				assert.Nil(t, v.Err())
			}
		})
	}
}

/*
TestValidator_Email checks the email format validation rule.
*/
func TestValidator_Email(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		isValid bool
	}{
		{"valid_email", "admin@randfin.co.za", true},
		{"invalid_format", "invalid-email", false},
		{"missing_domain", "admin@", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Email("email", tt.email)

			if tt.isValid {
				assert.False(t, v.HasErrors())
			} else {
				assert.True(t, v.HasErrors())
			}
		})
	}
}

/*
TestValidator_Slug checks the URL slug format rule.
*/
func TestValidator_Slug(t *testing.T) {
	tests := []struct {
		name    string
		slug    string
		isValid bool
	}{
		{"simple", "tax", true},
		{"hyphenated", "how-transfer-duty-works", true},
		{"with_digits", "budget-2026", true},
		{"uppercase", "Tax-Guide", false},
		{"spaces", "tax guide", false},
		{"leading_hyphen", "-tax", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Slug("slug", tt.slug)

			assert.Equal(t, !tt.isValid, v.HasErrors())
		})
	}
}

/*
TestValidator_UUID checks the UUID format rule, case-insensitively.
*/
func TestValidator_UUID(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		isValid bool
	}{
		{"lowercase", "0192a1b2-3c4d-7e5f-8a9b-0c1d2e3f4a5b", true},
		{"uppercase", "0192A1B2-3C4D-7E5F-8A9B-0C1D2E3F4A5B", true},
		{"too_short", "0192a1b2-3c4d", false},
		{"not_a_uuid", "hello-world", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.UUID("id", tt.value)

			assert.Equal(t, !tt.isValid, v.HasErrors())
		})
	}
}

/*
TestValidator_OneOf checks the enum membership rule.
*/
func TestValidator_OneOf(t *testing.T) {
	v := &validate.Validator{}
	v.OneOf("direction", "add", "add", "remove")
	assert.False(t, v.HasErrors())

	v2 := &validate.Validator{}
	v2.OneOf("direction", "sideways", "add", "remove")
	assert.True(t, v2.HasErrors())
}

/*
TestValidator_NumericRules checks NonNegative, Positive and Range.
*/
func TestValidator_NumericRules(t *testing.T) {
	t.Run("non_negative", func(t *testing.T) {
		v := &validate.Validator{}
		v.NonNegative("amount", 0).NonNegative("income", 499000)
		assert.False(t, v.HasErrors())

		v2 := &validate.Validator{}
		v2.NonNegative("amount", -1)
		assert.True(t, v2.HasErrors())
	})

	t.Run("positive", func(t *testing.T) {
		v := &validate.Validator{}
		v.Positive("rate", 0)
		assert.True(t, v.HasErrors())
	})

	t.Run("range", func(t *testing.T) {
		v := &validate.Validator{}
		v.Range("term_months", 240, 1, 480)
		assert.False(t, v.HasErrors())

		v2 := &validate.Validator{}
		v2.Range("term_months", 481, 1, 480)
		assert.True(t, v2.HasErrors())
	})
}

/*
TestValidator_Chain tests the fluent API (chaining multiple rules).
*/
func TestValidator_Chain(t *testing.T) {
	v := &validate.Validator{}

	// Multi-rule validation
	err := v.
		Required("username", "admin").
		MinLen("username", "admin", 3).
		MaxLen("username", "admin", 10).
		Email("email", "admin@randfin.co.za").
		Err()

	assert.NoError(t, err)
	assert.False(t, v.HasErrors())
}

/*
TestValidator_Chain_Failure tests error accumulation in the chain.
*/
func TestValidator_Chain_Failure(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("username", "").       // Fails
		MinLen("username", "a", 5).     // Fails
		Email("email", "not-an-email"). // Fails
		Err()

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)

	// Should accumulate all 3 errors
	assert.Len(t, ae.Details, 3)
}
