package guard_test

import (
	"errors"
	"testing"

	"fulfillment/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		// When
		g := guard.NewConstructorGuard()

		// Then
		assert.NotNil(t, g)

		// Test with custom error
		customError := errors.New("test object not constructed")
		require.NoError(t, g.Validate(customError))

		// Test with nil error (should use default)
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()
		customError := errors.New("not constructed")

		// When
		err := g.Validate(customError)

		// Then
		require.NoError(t, err)
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard // zero value
		expectedError := errors.New("aggregate not constructed")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard // zero value

		// When
		err := g.Validate(nil)

		// Then
		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsageExample demonstrates how ConstructorGuard enforces
// factory-method construction of a domain object, the pattern every aggregate
// in this module follows.
func TestConstructorGuardUsageExample(t *testing.T) {
	// A trimmed-down billing line item that must come from its constructor.
	type lineItem struct {
		description string
		quantity    int
		guard       guard.ConstructorGuard
	}

	var errLineItemNotConstructed = errors.New("lineItem must be created via newLineItem")

	newLineItem := func(description string, quantity int) (lineItem, error) {
		if description == "" {
			return lineItem{}, errors.New("description is required")
		}
		if quantity <= 0 {
			return lineItem{}, errors.New("quantity must be positive")
		}
		return lineItem{
			description: description,
			quantity:    quantity,
			guard:       guard.NewConstructorGuard(),
		}, nil
	}

	validateLineItem := func(li lineItem) error {
		return li.guard.Validate(errLineItemNotConstructed)
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		// When
		item, err := newLineItem("fiber splice kit", 2)

		// Then
		require.NoError(t, err)
		require.NoError(t, validateLineItem(item))
		assert.Equal(t, "fiber splice kit", item.description)
		assert.Equal(t, 2, item.quantity)
	})

	t.Run("zero_value_construction_validation", func(t *testing.T) {
		// Given
		var item lineItem // zero value

		// When
		err := validateLineItem(item)

		// Then
		// Zero value has a zero value guard which returns the error we pass
		require.Error(t, err)
		assert.Equal(t, errLineItemNotConstructed, err)
	})

	t.Run("constructor_validates_business_rules", func(t *testing.T) {
		_, err := newLineItem("", 2)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "description is required")

		_, err = newLineItem("fiber splice kit", 0)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "quantity must be positive")
	})
}

// TestConstructorGuardWithAggregateErrors demonstrates using ConstructorGuard
// with the per-aggregate sentinel errors the domain model declares.
func TestConstructorGuardWithAggregateErrors(t *testing.T) {
	testCases := []struct {
		name          string
		expectedError error
	}{
		{
			name:          "order_not_constructed_error",
			expectedError: errors.New("Order must be created via NewOrder or RestoreOrder constructor"),
		},
		{
			name:          "survey_not_constructed_error",
			expectedError: errors.New("SiteSurvey must be created via NewSiteSurvey or RestoreSiteSurvey constructor"),
		},
		{
			name:          "billing_not_constructed_error",
			expectedError: errors.New("AdditionalBilling must be created via NewAdditionalBilling or RestoreAdditionalBilling constructor"),
		},
		{
			name:          "nil_error_uses_default",
			expectedError: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Given
			g := guard.NewConstructorGuard()

			// When
			err := g.Validate(tc.expectedError)

			// Then
			require.NoError(t, err, "Properly constructed guard should not return error")
		})
	}
}

// TestConstructorGuardDefaultError verifies the default error behavior.
func TestConstructorGuardDefaultError(t *testing.T) {
	t.Run("nil_error_uses_default_for_zero_value", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard // zero value

		// When
		err := g.Validate(nil)

		// Then
		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})

	t.Run("default_error_constant_has_meaningful_message", func(t *testing.T) {
		// Then
		require.Error(t, guard.ErrDefaultConstructorGuard)
		assert.Contains(t, guard.ErrDefaultConstructorGuard.Error(), "constructor")
		assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
	})
}

// BenchmarkConstructorGuard measures the overhead of guard validation; the
// check runs on every aggregate restore from persistence.
func BenchmarkConstructorGuard(b *testing.B) {
	b.Run("NewConstructorGuard", func(b *testing.B) {
		b.ResetTimer()
		for range b.N {
			_ = guard.NewConstructorGuard()
		}
	})

	b.Run("Validate_Success", func(b *testing.B) {
		g := guard.NewConstructorGuard()
		err := errors.New("not constructed")
		b.ResetTimer()
		for range b.N {
			_ = g.Validate(err)
		}
	})

	b.Run("Validate_ZeroValue", func(b *testing.B) {
		var g guard.ConstructorGuard
		err := errors.New("not constructed")
		b.ResetTimer()
		for range b.N {
			_ = g.Validate(err)
		}
	})
}

// TestConstructorGuardConcurrency verifies that ConstructorGuard is safe for
// concurrent use; aggregates are validated from multiple request goroutines.
func TestConstructorGuardConcurrency(t *testing.T) {
	g := guard.NewConstructorGuard()
	validationError := errors.New("not constructed")

	done := make(chan bool)
	for range 100 {
		go func() {
			for range 1000 {
				err := g.Validate(validationError)
				assert.NoError(t, err)
			}
			done <- true
		}()
	}

	for range 100 {
		<-done
	}
}

// TestConstructorGuardImmutability verifies that a guard keeps validating
// after being copied; aggregates carry the guard by value.
func TestConstructorGuardImmutability(t *testing.T) {
	t.Run("guard_can_be_safely_passed_by_value", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()
		testError := errors.New("test error")

		// When
		guardCopy := g // pass by value

		// Then
		require.NoError(t, g.Validate(testError))
		require.NoError(t, guardCopy.Validate(testError))
	})
}
