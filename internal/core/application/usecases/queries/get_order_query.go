// Package queries contains read-only operations for the query side of the
// CQRS architecture. Query handlers read the database directly, bypassing
// the aggregate and the unit of work: reads never mutate and need no
// transaction.
package queries

import (
	"errors"
	"time"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order with its full breakdown and lines.
// An optional customer scope restricts the read to that customer's own
// orders: a tracking request for someone else's order looks identical to an
// order that does not exist.
//
// Example:
//
//	query, _ := NewGetOrderQuery(orderID, &customerID)
//	view, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // unknown order, or not this customer's order
//	}
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	// customerID scopes the read to one customer's orders; nil reads
	// unscoped (internal surfaces).
	customerID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to retrieve a single order.
func NewGetOrderQuery(orderID kernel.UUID, customerID *kernel.UUID) (GetOrderQuery, error) {
	getQuery := GetOrderQuery{guard: guard.NewConstructorGuard()}

	if err := getQuery.setOrderID(orderID); err != nil {
		return GetOrderQuery{}, err
	}
	if err := getQuery.setCustomerID(customerID); err != nil {
		return GetOrderQuery{}, err
	}

	return getQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the order to read.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// CustomerID returns the scoping customer, nil for unscoped reads.
func (q GetOrderQuery) CustomerID() *kernel.UUID {
	return q.customerID
}

func (q *GetOrderQuery) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	q.orderID = id
	return nil
}

func (q *GetOrderQuery) setCustomerID(id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return err
	}

	scoped := *id
	q.customerID = &scoped
	return nil
}

// OrderLineView is one frozen order line in a read response.
type OrderLineView struct {
	DishID    kernel.UUID
	Name      string
	UnitPrice kernel.Money
	Quantity  int
	Total     kernel.Money
	PhotoRef  string
}

// GetOrderQueryResponse is the full order view returned to tracking and
// detail surfaces.
type GetOrderQueryResponse struct {
	ID           kernel.UUID
	CustomerID   kernel.UUID
	RestaurantID kernel.UUID
	PartnerID    *kernel.UUID
	Status       string
	PaymentMode  string

	Lines []OrderLineView

	Subtotal       kernel.Money
	RestaurantFee  kernel.Money
	PlatformFee    kernel.Money
	DeliveryCharge kernel.Money
	Discount       kernel.Money
	FinalTotal     kernel.Money

	DeliveryAddress string
	PostalCode      string

	PlacedAt    time.Time
	DeliveredAt *time.Time
}
