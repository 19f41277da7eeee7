package guard_test

import (
	"errors"
	"testing"

	"wastetrack/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		customError := errors.New("test object not constructed")
		require.NoError(t, g.Validate(customError))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsageExample demonstrates the intended pattern: a value
// object whose constructor enforces business rules and whose zero value is
// detectable afterwards.
func TestConstructorGuardUsageExample(t *testing.T) {
	type PlateNumber struct {
		value string
		guard guard.ConstructorGuard
	}

	errPlateNotConstructed := errors.New("PlateNumber must be created via newPlateNumber")

	newPlateNumber := func(value string) (PlateNumber, error) {
		if value == "" {
			return PlateNumber{}, errors.New("plate value is required")
		}
		return PlateNumber{
			value: value,
			guard: guard.NewConstructorGuard(),
		}, nil
	}

	validatePlate := func(p PlateNumber) error {
		return p.guard.Validate(errPlateNotConstructed)
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		plate, err := newPlateNumber("ABC-123")

		require.NoError(t, err)
		require.NoError(t, validatePlate(plate))
		assert.Equal(t, "ABC-123", plate.value)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var plate PlateNumber // zero value

		err := validatePlate(plate)

		require.Error(t, err)
		assert.Equal(t, errPlateNotConstructed, err)
	})

	t.Run("constructor_validates_business_rules", func(t *testing.T) {
		_, err := newPlateNumber("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "plate value is required")
	})
}
