package queries

import (
	"errors"
	"time"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/pkg/errs"
	"foodcourt/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListScope names the party whose orders the listing returns.
type ListScope string

const (
	// ScopeCustomer lists a customer's own orders, newest first.
	ScopeCustomer ListScope = "customer"

	// ScopeRestaurant lists the orders placed at a restaurant.
	ScopeRestaurant ListScope = "restaurant"

	// ScopePartner lists the orders assigned to a delivery partner.
	// Without an explicit status filter it shows the partner's actionable
	// orders: ready for pickup or out for delivery.
	ScopePartner ListScope = "partner"
)

// ListOrdersQuery lists orders for one party, optionally narrowed to a set
// of statuses.
//
// Example:
//
//	query, _ := NewListOrdersQuery(ScopeRestaurant, restaurantID,
//	    []order.Status{order.StatusPending})
//	summaries, err := handler.Handle(ctx, query)
type ListOrdersQuery struct { //nolint:recvcheck //using for validation
	scope    ListScope
	partyID  kernel.UUID
	statuses []order.Status

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a listing query. A nil or empty statuses slice
// means the scope's default: everything for customers and restaurants,
// ready and picked up orders for partners.
func NewListOrdersQuery(scope ListScope, partyID kernel.UUID, statuses []order.Status) (ListOrdersQuery, error) {
	listQuery := ListOrdersQuery{guard: guard.NewConstructorGuard()}

	if err := listQuery.setScope(scope); err != nil {
		return ListOrdersQuery{}, err
	}
	if err := listQuery.setPartyID(partyID); err != nil {
		return ListOrdersQuery{}, err
	}
	if err := listQuery.setStatuses(statuses); err != nil {
		return ListOrdersQuery{}, err
	}

	return listQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListOrdersQueryIsNotConstructed if validation fails.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Scope returns the listing scope.
func (q ListOrdersQuery) Scope() ListScope {
	return q.scope
}

// PartyID returns the identifier of the party whose orders are listed.
func (q ListOrdersQuery) PartyID() kernel.UUID {
	return q.partyID
}

// Statuses returns the effective status filter, already defaulted per
// scope. Empty means no filter.
func (q ListOrdersQuery) Statuses() []order.Status {
	return q.statuses
}

func (q *ListOrdersQuery) setScope(scope ListScope) error {
	switch scope {
	case ScopeCustomer, ScopeRestaurant, ScopePartner:
		q.scope = scope
		return nil
	default:
		return errs.NewValueIsInvalidError("list scope")
	}
}

func (q *ListOrdersQuery) setPartyID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	q.partyID = id
	return nil
}

func (q *ListOrdersQuery) setStatuses(statuses []order.Status) error {
	if len(statuses) == 0 {
		if q.scope == ScopePartner {
			q.statuses = []order.Status{order.StatusReady, order.StatusPickedUp}
		}
		return nil
	}

	for _, s := range statuses {
		if err := s.Validate(); err != nil {
			return err
		}
	}

	q.statuses = append([]order.Status(nil), statuses...)
	return nil
}

// ListOrdersQueryResponse is one order summary in a listing.
type ListOrdersQueryResponse struct {
	ID          kernel.UUID
	Status      string
	FinalTotal  kernel.Money
	PlacedAt    time.Time
	DeliveredAt *time.Time
}
