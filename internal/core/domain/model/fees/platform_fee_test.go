package fees

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodcourt/internal/core/domain/model/kernel"
)

func TestNewPlatformFee(t *testing.T) {
	t.Run("valid configuration", func(t *testing.T) {
		f, err := NewPlatformFee(kernel.NewUUID(), decimal.NewFromInt(3), true, time.Now())

		require.NoError(t, err)
		assert.True(t, f.IsActive())
		assert.True(t, f.Percent().Equal(decimal.NewFromInt(3)))
	})

	t.Run("rejects a negative rate", func(t *testing.T) {
		_, err := NewPlatformFee(kernel.NewUUID(), decimal.NewFromInt(-1), true, time.Now())
		assert.Error(t, err)
	})

	t.Run("a zero rate is a valid fee holiday", func(t *testing.T) {
		f, err := NewPlatformFee(kernel.NewUUID(), decimal.Zero, true, time.Now())
		require.NoError(t, err)
		assert.Equal(t, "0.00", f.AmountFor(kernel.NewMoneyFromInt(500)).String())
	})
}

func TestPlatformFeeAmountFor(t *testing.T) {
	f, err := NewPlatformFee(kernel.NewUUID(), decimal.NewFromInt(3), true, time.Now())
	require.NoError(t, err)

	assert.Equal(t, "6.00", f.AmountFor(kernel.NewMoneyFromInt(200)).String())
	assert.Equal(t, "7.41", f.AmountFor(kernel.NewMoneyFromInt(247)).String())
}

func TestPlatformFeeValidate(t *testing.T) {
	var zero PlatformFee
	assert.ErrorIs(t, zero.Validate(), ErrPlatformFeeIsNotConstructed)
}
