package queries

import (
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/guard"
)

var ErrGetCartQueryIsNotConstructed = errors.New(
	"GetCartQuery must be created via NewGetCartQuery constructor",
)

// GetCartQuery reads a customer's cart enriched with live menu data. The
// returned prices are a preview: the binding price is resolved again at
// checkout.
type GetCartQuery struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCartQuery creates a query to read a customer's cart.
func NewGetCartQuery(customerID kernel.UUID) (GetCartQuery, error) {
	cartQuery := GetCartQuery{guard: guard.NewConstructorGuard()}

	if err := customerID.Validate(); err != nil {
		return GetCartQuery{}, err
	}
	cartQuery.customerID = customerID

	return cartQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCartQueryIsNotConstructed if validation fails.
func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

// CustomerID returns the cart owner's identifier.
func (q GetCartQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// CartItemView is one cart line enriched with live menu data.
type CartItemView struct {
	DishID    kernel.UUID
	Name      string
	UnitPrice kernel.Money
	Quantity  int
	Total     kernel.Money

	// Available is false when the dish left the menu since it was added;
	// checkout would reject the cart until the line is removed.
	Available bool
}

// GetCartQueryResponse is the cart view with a previewed subtotal over the
// still-available lines.
type GetCartQueryResponse struct {
	Items    []CartItemView
	Subtotal kernel.Money
}
