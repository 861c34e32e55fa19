package order

import (
	"fmt"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/errs"
)

// ErrBreakdownIsNotConstructed is returned when a Breakdown instance was not
// created through NewBreakdown or RestoreBreakdown.
var ErrBreakdownIsNotConstructed = errs.NewValueIsRequiredError("breakdown must be created via NewBreakdown or RestoreBreakdown")

// Breakdown is the itemized monetary composition of an order charge.
//
// Invariant:
//
//	finalTotal = subtotal + restaurantFee + platformFee + deliveryCharge - discount
//
// The final total is deliberately not clamped at zero: a discount larger
// than the rest of the charge produces a negative total, which callers must
// surface rather than hide.
type Breakdown struct {
	subtotal       kernel.Money
	restaurantFee  kernel.Money
	platformFee    kernel.Money
	deliveryCharge kernel.Money
	discount       kernel.Money
	finalTotal     kernel.Money

	isConstructed bool
}

// NewBreakdown creates a Breakdown from its components, deriving finalTotal
// from the invariant. Components must be non-negative; the derived total
// may be negative.
func NewBreakdown(subtotal, restaurantFee, platformFee, deliveryCharge, discount kernel.Money) (Breakdown, error) {
	for name, m := range map[string]kernel.Money{
		"subtotal":        subtotal,
		"restaurant fee":  restaurantFee,
		"platform fee":    platformFee,
		"delivery charge": deliveryCharge,
		"discount":        discount,
	} {
		if m.IsNegative() {
			return Breakdown{}, errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%s is negative", m))
		}
	}

	finalTotal := subtotal.Add(restaurantFee).Add(platformFee).Add(deliveryCharge).Sub(discount)

	return Breakdown{
		subtotal:       subtotal,
		restaurantFee:  restaurantFee,
		platformFee:    platformFee,
		deliveryCharge: deliveryCharge,
		discount:       discount,
		finalTotal:     finalTotal,
		isConstructed:  true,
	}, nil
}

// RestoreBreakdown reconstructs a Breakdown from persistence, verifying that
// the stored final total still satisfies the invariant. A mismatch means the
// stored row was corrupted and must not be silently accepted.
func RestoreBreakdown(subtotal, restaurantFee, platformFee, deliveryCharge, discount, finalTotal kernel.Money) (Breakdown, error) {
	b, err := NewBreakdown(subtotal, restaurantFee, platformFee, deliveryCharge, discount)
	if err != nil {
		return Breakdown{}, err
	}

	if !b.finalTotal.IsEqual(finalTotal) {
		return Breakdown{}, errs.NewValueIsInvalidErrorWithCause(
			"final total",
			fmt.Errorf("stored total %s does not match computed total %s", finalTotal, b.finalTotal),
		)
	}

	return b, nil
}

// Validate ensures the Breakdown was created via a constructor.
func (b Breakdown) Validate() error {
	if !b.isConstructed {
		return ErrBreakdownIsNotConstructed
	}
	return nil
}

// Subtotal returns the sum of line totals before fees and discount.
func (b Breakdown) Subtotal() kernel.Money {
	return b.subtotal
}

// RestaurantFee returns the restaurant commission amount.
func (b Breakdown) RestaurantFee() kernel.Money {
	return b.restaurantFee
}

// PlatformFee returns the platform fee amount.
func (b Breakdown) PlatformFee() kernel.Money {
	return b.platformFee
}

// DeliveryCharge returns the flat delivery charge.
func (b Breakdown) DeliveryCharge() kernel.Money {
	return b.deliveryCharge
}

// Discount returns the resolved offer discount.
func (b Breakdown) Discount() kernel.Money {
	return b.discount
}

// FinalTotal returns the amount charged to the customer.
func (b Breakdown) FinalTotal() kernel.Money {
	return b.finalTotal
}
