package order

import (
	"fmt"

	"foodcourt/internal/pkg/errs"
)

// PaymentMode records how the customer intends to pay. The engine records
// the mode on the order; it never processes a payment.
type PaymentMode string

const (
	// PaymentModeCash is cash on delivery.
	PaymentModeCash PaymentMode = "cash"

	// PaymentModeCard is card payment.
	PaymentModeCard PaymentMode = "card"

	// PaymentModeUPI is UPI transfer.
	PaymentModeUPI PaymentMode = "upi"
)

// ParsePaymentMode converts a string into a PaymentMode.
func ParsePaymentMode(s string) (PaymentMode, error) {
	switch PaymentMode(s) {
	case PaymentModeCash, PaymentModeCard, PaymentModeUPI:
		return PaymentMode(s), nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause(
			"payment mode",
			fmt.Errorf("%q is not a valid payment mode", s),
		)
	}
}

// Validate checks that the PaymentMode is one of the supported modes.
func (m PaymentMode) Validate() error {
	_, err := ParsePaymentMode(string(m))
	return err
}

// String returns the mode name.
func (m PaymentMode) String() string {
	return string(m)
}
