// Package fees provides platform fee configuration applied to every order.
package fees

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"foodcourt/internal/core/domain/model/kernel"
)

// ErrPlatformFeeIsNotConstructed is returned when a PlatformFee instance was
// not created through the NewPlatformFee factory method.
var ErrPlatformFeeIsNotConstructed = errors.New("PlatformFee must be created via NewPlatformFee constructor")

// PlatformFee is a percentage commission the platform charges on the order
// subtotal. Several configurations may exist at a time; pricing uses the most
// recently created active one.
type PlatformFee struct {
	id        kernel.UUID
	percent   decimal.Decimal
	active    bool
	createdAt time.Time

	isConstructed bool
}

// NewPlatformFee creates a PlatformFee with a rate in percent (3 means 3%).
func NewPlatformFee(id kernel.UUID, percent decimal.Decimal, active bool, createdAt time.Time) (*PlatformFee, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if percent.IsNegative() {
		return nil, errors.New("platform fee percent must not be negative")
	}
	return &PlatformFee{
		id:            id,
		percent:       percent,
		active:        active,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the PlatformFee was created via NewPlatformFee.
func (f *PlatformFee) Validate() error {
	if f == nil || !f.isConstructed {
		return ErrPlatformFeeIsNotConstructed
	}
	return nil
}

// ID returns the configuration identifier.
func (f *PlatformFee) ID() kernel.UUID {
	return f.id
}

// Percent returns the fee rate in percent.
func (f *PlatformFee) Percent() decimal.Decimal {
	return f.percent
}

// IsActive reports whether this configuration is in effect.
func (f *PlatformFee) IsActive() bool {
	return f.active
}

// CreatedAt returns when the configuration was created.
func (f *PlatformFee) CreatedAt() time.Time {
	return f.createdAt
}

// AmountFor returns the fee charged on the given subtotal, rounded to cents.
func (f *PlatformFee) AmountFor(subtotal kernel.Money) kernel.Money {
	return subtotal.Percent(f.percent)
}
