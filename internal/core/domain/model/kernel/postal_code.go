package kernel

import (
	"fmt"

	"foodcourt/internal/pkg/errs"
)

// Postal codes are 4 to 10 digits; the range covers both short European
// codes and Indian six-digit PIN codes carried over from the seed data.
const (
	minPostalCodeLen = 4
	maxPostalCodeLen = 10
)

// ErrPostalCodeIsNotConstructed indicates that a PostalCode was not created
// through NewPostalCode. Returned when validating a zero-value PostalCode.
var ErrPostalCodeIsNotConstructed = errs.NewValueIsRequiredError("postal code must be created via NewPostalCode")

// PostalCode is a value object for a delivery destination postal code.
// Partner matching compares destination and partner codes for exact equality,
// so the representation is normalized at construction: digits only, no
// separators.
type PostalCode struct {
	code string
}

// NewPostalCode creates a PostalCode after validating length and content.
func NewPostalCode(code string) (PostalCode, error) {
	if code == "" {
		return PostalCode{}, errs.NewValueIsRequiredError("postal code")
	}
	if len(code) < minPostalCodeLen || len(code) > maxPostalCodeLen {
		return PostalCode{}, errs.NewValueIsOutOfRangeError("postal code length", len(code), minPostalCodeLen, maxPostalCodeLen)
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return PostalCode{}, errs.NewValueIsInvalidErrorWithCause(
				"postal code",
				fmt.Errorf("%q is not a digit", r),
			)
		}
	}
	return PostalCode{code: code}, nil
}

// String returns the normalized code. Implements fmt.Stringer.
func (p PostalCode) String() string {
	return p.code
}

// IsEqual compares two postal codes for exact equality.
func (p PostalCode) IsEqual(other PostalCode) bool {
	return p.code == other.code
}

// Validate checks that the PostalCode was created via NewPostalCode.
func (p PostalCode) Validate() error {
	if p.code == "" {
		return ErrPostalCodeIsNotConstructed
	}
	return nil
}
