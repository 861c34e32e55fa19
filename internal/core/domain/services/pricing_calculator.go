package services

import (
	"github.com/shopspring/decimal"

	"foodcourt/internal/core/domain/model/fees"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
)

// DefaultDeliveryCharge is the flat delivery charge applied to every order.
const DefaultDeliveryCharge = 40

// PricingCalculator is a domain service that composes the itemized charge
// breakdown for an order from its frozen lines and the fee configuration in
// effect at placement time.
//
// Business rules:
//   - The subtotal is the sum of line totals at their snapshot unit prices
//   - The restaurant fee is the restaurant's commission rate applied to the
//     subtotal
//   - The platform fee is the active platform configuration applied to the
//     subtotal; no active configuration means no platform fee
//   - The delivery charge is flat per order, independent of distance or size
//   - All percentage amounts round to cents before entering the breakdown
//
// The calculator never clamps: a discount exceeding the rest of the charge
// surfaces as a negative final total in the breakdown.
type PricingCalculator struct {
	deliveryCharge kernel.Money
}

// NewPricingCalculator creates a PricingCalculator with the flat default
// delivery charge.
func NewPricingCalculator() PricingCalculator {
	return PricingCalculator{deliveryCharge: kernel.NewMoneyFromInt(DefaultDeliveryCharge)}
}

// NewPricingCalculatorWithDeliveryCharge creates a PricingCalculator with a
// custom flat delivery charge. Used when the charge is configured per
// deployment.
func NewPricingCalculatorWithDeliveryCharge(charge kernel.Money) PricingCalculator {
	return PricingCalculator{deliveryCharge: charge}
}

// DeliveryCharge returns the flat per-order delivery charge.
func (c PricingCalculator) DeliveryCharge() kernel.Money {
	return c.deliveryCharge
}

// Subtotal sums the line totals at their snapshot unit prices.
func (c PricingCalculator) Subtotal(lines []order.Line) (kernel.Money, error) {
	subtotal := kernel.ZeroMoney()
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return kernel.Money{}, err
		}
		subtotal = subtotal.Add(line.Total())
	}
	return subtotal, nil
}

// Price composes the full breakdown for an order.
//
// restaurantFeePercent is the restaurant's commission rate in percent.
// platformFee is the active platform configuration, nil when none is active.
// discount is the already-resolved offer discount, zero when no code was
// applied.
func (c PricingCalculator) Price(
	lines []order.Line,
	restaurantFeePercent decimal.Decimal,
	platformFee *fees.PlatformFee,
	discount kernel.Money,
) (order.Breakdown, error) {
	subtotal, err := c.Subtotal(lines)
	if err != nil {
		return order.Breakdown{}, err
	}

	restaurantFee := subtotal.Percent(restaurantFeePercent)

	platformFeeAmount := kernel.ZeroMoney()
	if platformFee != nil {
		if err = platformFee.Validate(); err != nil {
			return order.Breakdown{}, err
		}
		platformFeeAmount = platformFee.AmountFor(subtotal)
	}

	return order.NewBreakdown(subtotal, restaurantFee, platformFeeAmount, c.deliveryCharge, discount)
}
