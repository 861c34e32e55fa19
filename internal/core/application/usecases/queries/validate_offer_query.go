package queries

import (
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/errs"
	"foodcourt/internal/pkg/guard"
)

var ErrValidateOfferQueryIsNotConstructed = errors.New(
	"ValidateOfferQuery must be created via NewValidateOfferQuery constructor",
)

// ValidateOfferQuery previews a discount code against an order value before
// checkout. It shares the checkout's resolve path, so a code never
// validates here and then fails there on the same inputs.
//
// Example:
//
//	query, _ := NewValidateOfferQuery("FLAT20", restaurantID, orderValue)
//	result, err := handler.Handle(ctx, query)
//	if result.Valid {
//	    fmt.Printf("save %s, pay %s", result.Discount, result.FinalAmount)
//	}
type ValidateOfferQuery struct { //nolint:recvcheck //using for validation
	code         string
	restaurantID kernel.UUID
	orderValue   kernel.Money

	guard guard.ConstructorGuard
}

// NewValidateOfferQuery creates an offer preview query.
func NewValidateOfferQuery(code string, restaurantID kernel.UUID, orderValue kernel.Money) (ValidateOfferQuery, error) {
	offerQuery := ValidateOfferQuery{guard: guard.NewConstructorGuard()}

	if code == "" {
		return ValidateOfferQuery{}, errs.NewValueIsRequiredError("offer code")
	}
	if err := restaurantID.Validate(); err != nil {
		return ValidateOfferQuery{}, err
	}
	if orderValue.IsNegative() {
		return ValidateOfferQuery{}, errs.NewValueIsInvalidError("order value")
	}

	offerQuery.code = code
	offerQuery.restaurantID = restaurantID
	offerQuery.orderValue = orderValue

	return offerQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrValidateOfferQueryIsNotConstructed if validation fails.
func (q ValidateOfferQuery) Validate() error {
	return q.guard.Validate(ErrValidateOfferQueryIsNotConstructed)
}

// Code returns the discount code under preview.
func (q ValidateOfferQuery) Code() string {
	return q.code
}

// RestaurantID returns the restaurant the order would target.
func (q ValidateOfferQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}

// OrderValue returns the subtotal the discount would apply to.
func (q ValidateOfferQuery) OrderValue() kernel.Money {
	return q.orderValue
}

// ValidateOfferQueryResponse is the preview result. An ineligible code is a
// valid response with Valid false and the reason, not an error: the preview
// endpoint answers "would this work", it does not fail.
type ValidateOfferQueryResponse struct {
	Valid       bool
	Discount    kernel.Money
	FinalAmount kernel.Money

	// Reason explains an invalid result; empty when Valid.
	Reason string
}
