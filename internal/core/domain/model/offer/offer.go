// Package offer provides the Offer value object and its discount evaluation.
// Evaluation is pure and read-only: resolving a code never consumes it, so a
// code stays reusable by any number of qualifying orders until an external
// collaborator deactivates it.
package offer

import (
	"errors"
	"fmt"
	"time"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/errs"
)

var (
	// ErrOfferIsNotConstructed is returned when an Offer instance was not
	// created through the NewOffer factory method.
	ErrOfferIsNotConstructed = errors.New("Offer must be created via NewOffer constructor")

	// ErrOfferNotFound is returned when no active offer matches a code.
	ErrOfferNotFound = errors.New("no active offer matches the code")

	// ErrOfferNotActive is returned when the offer is deactivated or outside
	// its validity window.
	ErrOfferNotActive = errors.New("offer is not active")

	// ErrOfferScopeMismatch is returned when a restaurant-bound offer is
	// applied to an order placed at a different restaurant.
	ErrOfferScopeMismatch = errors.New("offer is not valid for this restaurant")

	// ErrOfferBelowMinimum is returned when the order subtotal is below the
	// offer's minimum order value.
	ErrOfferBelowMinimum = errors.New("order subtotal is below the offer minimum")
)

// DiscountKind distinguishes fixed-amount offers from percentage offers.
type DiscountKind string

const (
	// KindFixed discounts a fixed amount regardless of subtotal.
	KindFixed DiscountKind = "fixed"

	// KindPercentage discounts a percentage of the subtotal, optionally
	// capped at a maximum amount.
	KindPercentage DiscountKind = "percentage"
)

// ParseDiscountKind converts a string into a DiscountKind.
func ParseDiscountKind(s string) (DiscountKind, error) {
	switch DiscountKind(s) {
	case KindFixed, KindPercentage:
		return DiscountKind(s), nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause(
			"discount kind",
			fmt.Errorf("%q is not a valid discount kind", s),
		)
	}
}

// Scope distinguishes platform-wide offers from restaurant-bound offers.
type Scope string

const (
	// ScopePlatform offers apply at any restaurant.
	ScopePlatform Scope = "platform"

	// ScopeRestaurant offers apply only at the restaurant that issued them.
	ScopeRestaurant Scope = "restaurant"
)

// ParseScope converts a string into a Scope.
func ParseScope(s string) (Scope, error) {
	switch Scope(s) {
	case ScopePlatform, ScopeRestaurant:
		return Scope(s), nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause(
			"offer scope",
			fmt.Errorf("%q is not a valid offer scope", s),
		)
	}
}

// Offer is a discount code with its eligibility rules. It is a read model
// owned by the offer collaborator; the engine evaluates it but never
// mutates it.
type Offer struct {
	code          string
	kind          DiscountKind
	value         kernel.Money
	minOrderValue kernel.Money

	// maxDiscount caps percentage discounts only; nil means uncapped.
	// Fixed offers are never capped.
	maxDiscount *kernel.Money

	scope Scope

	// restaurantID binds a restaurant-scoped offer to its issuer.
	// Nil for platform-scoped offers.
	restaurantID *kernel.UUID

	active     bool
	validFrom  time.Time
	validUntil *time.Time

	isConstructed bool
}

// NewOffer creates an Offer after validating its shape: a non-empty code, a
// known kind and scope, a positive discount value, and a restaurant binding
// exactly when the scope requires one. For fixed offers, value is the
// discount amount; for percentage offers it is the rate (20 means 20%).
func NewOffer(
	code string,
	kind DiscountKind,
	value kernel.Money,
	minOrderValue kernel.Money,
	maxDiscount *kernel.Money,
	scope Scope,
	restaurantID *kernel.UUID,
	active bool,
	validFrom time.Time,
	validUntil *time.Time,
) (*Offer, error) {
	if code == "" {
		return nil, errs.NewValueIsRequiredError("offer code")
	}
	if _, err := ParseDiscountKind(string(kind)); err != nil {
		return nil, err
	}
	if _, err := ParseScope(string(scope)); err != nil {
		return nil, err
	}
	if value.IsNegative() || value.IsZero() {
		return nil, errs.NewValueIsInvalidError("discount value")
	}
	if minOrderValue.IsNegative() {
		return nil, errs.NewValueIsInvalidError("minimum order value")
	}
	if maxDiscount != nil && maxDiscount.IsNegative() {
		return nil, errs.NewValueIsInvalidError("maximum discount")
	}
	if scope == ScopeRestaurant {
		if restaurantID == nil {
			return nil, errs.NewValueIsRequiredError("restaurant binding for restaurant-scoped offer")
		}
		if err := restaurantID.Validate(); err != nil {
			return nil, err
		}
	}

	o := &Offer{
		code:          code,
		kind:          kind,
		value:         value,
		minOrderValue: minOrderValue,
		scope:         scope,
		active:        active,
		validFrom:     validFrom,
		isConstructed: true,
	}
	if maxDiscount != nil {
		capped := *maxDiscount
		o.maxDiscount = &capped
	}
	if restaurantID != nil {
		bound := *restaurantID
		o.restaurantID = &bound
	}
	if validUntil != nil {
		until := *validUntil
		o.validUntil = &until
	}

	return o, nil
}

// Validate ensures the Offer was created via NewOffer.
func (o *Offer) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOfferIsNotConstructed
	}
	return nil
}

// Code returns the unique offer code.
func (o *Offer) Code() string {
	return o.code
}

// Kind returns the discount kind.
func (o *Offer) Kind() DiscountKind {
	return o.kind
}

// Scope returns the offer scope.
func (o *Offer) Scope() Scope {
	return o.scope
}

// RestaurantID returns the issuing restaurant for restaurant-scoped offers,
// nil for platform-scoped ones.
func (o *Offer) RestaurantID() *kernel.UUID {
	return o.restaurantID
}

// MinOrderValue returns the minimum subtotal required to qualify.
func (o *Offer) MinOrderValue() kernel.Money {
	return o.minOrderValue
}

// Discount evaluates the offer against an order context and returns the
// discount amount. Evaluation is pure: it has no side effects and does not
// consume the code.
//
// Eligibility checks, in order:
//   - ErrOfferNotActive when deactivated or when at lies outside
//     [validFrom, validUntil]
//   - ErrOfferScopeMismatch when restaurant-bound to another restaurant
//   - ErrOfferBelowMinimum when subtotal < minOrderValue
//
// On success: fixed offers discount the configured value; percentage offers
// discount subtotal*rate/100, capped at maxDiscount when present.
func (o *Offer) Discount(subtotal kernel.Money, restaurantID kernel.UUID, at time.Time) (kernel.Money, error) {
	if err := o.Validate(); err != nil {
		return kernel.Money{}, err
	}

	if !o.active || at.Before(o.validFrom) || (o.validUntil != nil && at.After(*o.validUntil)) {
		return kernel.Money{}, ErrOfferNotActive
	}

	if o.scope == ScopeRestaurant && !o.restaurantID.IsEqual(restaurantID) {
		return kernel.Money{}, ErrOfferScopeMismatch
	}

	if subtotal.LessThan(o.minOrderValue) {
		return kernel.Money{}, fmt.Errorf("%w: minimum order value is %s", ErrOfferBelowMinimum, o.minOrderValue)
	}

	if o.kind == KindFixed {
		return o.value, nil
	}

	discount := subtotal.Percent(o.value.Decimal())
	if o.maxDiscount != nil {
		discount = discount.Min(*o.maxDiscount)
	}
	return discount, nil
}
