package kernel_test

import (
	"testing"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPostalCode(t *testing.T) {
	t.Run("should create valid postal code", func(t *testing.T) {
		pc, err := kernel.NewPostalCode("560001")

		require.NoError(t, err)
		require.NoError(t, pc.Validate())
		assert.Equal(t, "560001", pc.String())
	})

	t.Run("should accept minimum length", func(t *testing.T) {
		pc, err := kernel.NewPostalCode("1000")

		require.NoError(t, err)
		assert.Equal(t, "1000", pc.String())
	})

	t.Run("should fail with empty code", func(t *testing.T) {
		_, err := kernel.NewPostalCode("")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with too short code", func(t *testing.T) {
		_, err := kernel.NewPostalCode("123")

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should fail with too long code", func(t *testing.T) {
		_, err := kernel.NewPostalCode("12345678901")

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should fail with non-digit characters", func(t *testing.T) {
		_, err := kernel.NewPostalCode("56 001")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestPostalCode_IsEqual(t *testing.T) {
	a, _ := kernel.NewPostalCode("560001")
	b, _ := kernel.NewPostalCode("560001")
	c, _ := kernel.NewPostalCode("110001")

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}

func TestPostalCode_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var pc kernel.PostalCode

		err := pc.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrPostalCodeIsNotConstructed, err)
	})
}
