package order

import (
	"fmt"

	"foodcourt/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with actor-scoped transitions to ensure
// orders follow the correct business workflow.
//
// State transitions (restaurant actor up to ready, delivery partner after):
//
//	pending ──> confirmed ──> preparing ──> ready ──> picked_up ──> delivered
//	   │            │             │
//	   │            │             └──> cancelled
//	   │            └──> cancelled
//	   ├──> preparing
//	   └──> cancelled
//
// delivered and cancelled are terminal. Every permitted move is a single
// hop along the table; there is no path from ready or picked_up back to an
// earlier state, and no actor may skip a state.
type Status string

const (
	// StatusUnknown represents an invalid or undefined status.
	// The empty value helps catch uninitialized Status values.
	StatusUnknown Status = ""

	// StatusPending is the initial status when no delivery partner could be
	// matched at creation time. Pending orders wait for the restaurant to
	// confirm, or for a partner to be assigned.
	StatusPending Status = "pending"

	// StatusConfirmed is the initial status when a delivery partner was
	// matched at creation time, or the restaurant's acceptance of a pending
	// order.
	StatusConfirmed Status = "confirmed"

	// StatusPreparing indicates the restaurant is preparing the order.
	StatusPreparing Status = "preparing"

	// StatusReady indicates the order is ready for pickup by the delivery
	// partner.
	StatusReady Status = "ready"

	// StatusPickedUp indicates the delivery partner has collected the order.
	StatusPickedUp Status = "picked_up"

	// StatusDelivered indicates the order reached the customer. Terminal.
	StatusDelivered Status = "delivered"

	// StatusCancelled indicates the restaurant cancelled the order. Terminal.
	StatusCancelled Status = "cancelled"
)

// ActorRole identifies which independent party requests a status transition.
// The lifecycle table is scoped per role: restaurants drive the kitchen-side
// statuses, delivery partners drive the handoff statuses. Customer care
// interacts with orders through reads only and holds no transitions.
type ActorRole string

const (
	// ActorRestaurant is the restaurant that owns the order.
	ActorRestaurant ActorRole = "restaurant"

	// ActorDeliveryPartner is the partner assigned to deliver the order.
	ActorDeliveryPartner ActorRole = "delivery_partner"
)

// ParseActorRole converts a string into an ActorRole.
func ParseActorRole(s string) (ActorRole, error) {
	switch ActorRole(s) {
	case ActorRestaurant, ActorDeliveryPartner:
		return ActorRole(s), nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause(
			"actor role",
			fmt.Errorf("%q is not a valid actor role", s),
		)
	}
}

// String returns the role name.
func (r ActorRole) String() string {
	return string(r)
}

func getValidStatuses() map[Status]struct{} {
	return map[Status]struct{}{
		StatusPending:   {},
		StatusConfirmed: {},
		StatusPreparing: {},
		StatusReady:     {},
		StatusPickedUp:  {},
		StatusDelivered: {},
		StatusCancelled: {},
	}
}

// transitionTable is the per-actor allow-list of status moves.
// Anything not listed here is rejected.
func transitionTable() map[ActorRole]map[Status][]Status {
	return map[ActorRole]map[Status][]Status{
		ActorRestaurant: {
			StatusPending:   {StatusConfirmed, StatusPreparing, StatusCancelled},
			StatusConfirmed: {StatusPreparing, StatusCancelled},
			StatusPreparing: {StatusReady, StatusCancelled},
		},
		ActorDeliveryPartner: {
			StatusReady:    {StatusPickedUp},
			StatusPickedUp: {StatusDelivered},
		},
	}
}

// ParseStatus converts a stored or transport string into a Status.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return StatusUnknown, err
	}
	return status, nil
}

// Validate checks if the Status value is one of the seven lifecycle states.
// StatusUnknown and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatuses()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", string(s)))
	}
	return nil
}

// String returns the status name, or "unknown" for invalid values.
// Implements fmt.Stringer.
func (s Status) String() string {
	if _, ok := getValidStatuses()[s]; ok {
		return string(s)
	}
	return "unknown"
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// TransitionBy validates that actor may move an order from s to target and
// returns the resulting status. The check is read-only; callers apply the
// returned status themselves so that check and set stay a single step.
//
// Returns an InvalidTransitionError when the move is outside the lifecycle
// table for the actor, including any attempt to leave a terminal state or
// skip a tier.
func (s Status) TransitionBy(actor ActorRole, target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return StatusUnknown, err
	}

	for _, allowed := range transitionTable()[actor][s] {
		if allowed == target {
			return target, nil
		}
	}

	return StatusUnknown, errs.NewInvalidTransitionError(actor.String(), s.String(), target.String())
}
