package order

import (
	"errors"
	"time"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder. This ensures all orders are
	// properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrActorNotOwner is returned when a restaurant requests a transition on
	// an order it does not own, or a delivery partner requests a transition
	// on an order not assigned to it. The ownership check runs before any
	// state check.
	ErrActorNotOwner = errors.New("order does not belong to the acting party")

	// ErrPartnerAlreadyAssigned is returned when assigning a delivery partner
	// to an order that already has one.
	ErrPartnerAlreadyAssigned = errors.New("order already has a delivery partner assigned")
)

// Order is the aggregate root binding the priced breakdown, the frozen line
// snapshots and the delivery lifecycle. It is created once by the placement
// flow and afterwards mutated only through status transitions; orders are
// never deleted (cancellation is a status, not a removal).
//
// Order maintains these invariants:
//   - At least one line, each a valid frozen snapshot
//   - A valid breakdown whose final total satisfies the charge identity
//   - Initial status confirmed when a partner was matched at creation,
//     pending otherwise
//   - Status changes follow the actor-scoped lifecycle table, one hop at
//     a time, with the ownership check preceding the state check
//   - deliveredAt is stamped by the transition to delivered and by nothing
//     else
type Order struct {
	id           kernel.UUID
	customerID   kernel.UUID
	restaurantID kernel.UUID

	// partnerID is the assigned delivery partner (nil if unmatched)
	partnerID *kernel.UUID

	lines       []Line
	breakdown   Breakdown
	paymentMode PaymentMode
	status      Status

	deliveryAddress string
	postalCode      kernel.PostalCode

	placedAt    time.Time
	deliveredAt *time.Time

	isConstructed bool
}

// NewOrder creates an Order at placement time. The initial status is
// confirmed when partnerID is non-nil (a partner was matched), pending
// otherwise.
//
// All inputs are validated; lines and breakdown must already be constructed
// through their factories.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	partnerID *kernel.UUID,
	lines []Line,
	breakdown Breakdown,
	paymentMode PaymentMode,
	deliveryAddress string,
	postalCode kernel.PostalCode,
	placedAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        StatusPending,
		isConstructed: true,
	}
	if partnerID != nil {
		o.status = StatusConfirmed
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setRestaurantID(restaurantID),
		o.setPartnerID(partnerID),
		o.setLines(lines),
		o.setBreakdown(breakdown),
		o.setPaymentMode(paymentMode),
		o.setDeliveryAddress(deliveryAddress),
		o.setPostalCode(postalCode),
		o.setPlacedAt(placedAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence with its stored status
// and timestamps. Used by repository adapters only.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	partnerID *kernel.UUID,
	lines []Line,
	breakdown Breakdown,
	paymentMode PaymentMode,
	status Status,
	deliveryAddress string,
	postalCode kernel.PostalCode,
	placedAt time.Time,
	deliveredAt *time.Time,
) (*Order, error) {
	o, err := NewOrder(id, customerID, restaurantID, partnerID, lines, breakdown,
		paymentMode, deliveryAddress, postalCode, placedAt)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	o.status = status
	o.deliveredAt = deliveredAt
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
// Call this when receiving orders from outside the aggregate's own factories.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the ordering customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// RestaurantID returns the restaurant the order was placed at.
func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// PartnerID returns the assigned delivery partner's ID.
// Returns nil while no partner is assigned.
func (o *Order) PartnerID() *kernel.UUID {
	return o.partnerID
}

// Lines returns the frozen order line snapshots in placement order.
func (o *Order) Lines() []Line {
	return o.lines
}

// Breakdown returns the itemized monetary breakdown.
func (o *Order) Breakdown() Breakdown {
	return o.breakdown
}

// PaymentMode returns the recorded payment mode.
func (o *Order) PaymentMode() PaymentMode {
	return o.paymentMode
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// DeliveryAddress returns the destination address text.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// PostalCode returns the destination postal code used for partner matching.
func (o *Order) PostalCode() kernel.PostalCode {
	return o.postalCode
}

// PlacedAt returns the placement timestamp.
func (o *Order) PlacedAt() time.Time {
	return o.placedAt
}

// DeliveredAt returns the delivery timestamp, or nil while undelivered.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// TransitionBy moves the order to target on behalf of the given actor.
//
// The ownership check runs first: a restaurant may only transition its own
// orders (ErrActorNotOwner otherwise), a delivery partner only orders
// assigned to it. The state check follows: the move must be a single hop
// the lifecycle table permits for the actor, otherwise an
// InvalidTransitionError is returned and the order is left untouched.
//
// The transition to delivered stamps deliveredAt with now; no other
// transition touches timestamps.
func (o *Order) TransitionBy(actor ActorRole, actorID kernel.UUID, target Status, now time.Time) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	switch actor {
	case ActorRestaurant:
		if !o.restaurantID.IsEqual(actorID) {
			return ErrActorNotOwner
		}
	case ActorDeliveryPartner:
		if o.partnerID == nil || !o.partnerID.IsEqual(actorID) {
			return ErrActorNotOwner
		}
	default:
		return errs.NewValueIsInvalidError("actor role")
	}

	newStatus, err := o.status.TransitionBy(actor, target)
	if err != nil {
		return err
	}

	o.status = newStatus
	if newStatus == StatusDelivered {
		stamped := now
		o.deliveredAt = &stamped
	}
	return nil
}

// AssignPartner attaches a delivery partner to a pending, unassigned order
// and moves it to confirmed, the same status a creation-time match would
// have produced. Used by the rematch flow for orders that placed without an
// available partner.
func (o *Order) AssignPartner(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}
	if o.partnerID != nil {
		return ErrPartnerAlreadyAssigned
	}
	if o.status != StatusPending {
		return errs.NewInvalidTransitionError(ActorRestaurant.String(), o.status.String(), StatusConfirmed.String())
	}

	id := partnerID
	o.partnerID = &id
	o.status = StatusConfirmed
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.customerID = id
	return nil
}

func (o *Order) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.restaurantID = id
	return nil
}

func (o *Order) setPartnerID(id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return err
	}
	copied := *id
	o.partnerID = &copied
	return nil
}

func (o *Order) setLines(lines []Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("order lines")
	}
	for _, l := range lines {
		if err := l.Validate(); err != nil {
			return err
		}
	}
	o.lines = append([]Line(nil), lines...)
	return nil
}

func (o *Order) setBreakdown(b Breakdown) error {
	if err := b.Validate(); err != nil {
		return err
	}
	o.breakdown = b
	return nil
}

func (o *Order) setPaymentMode(m PaymentMode) error {
	if err := m.Validate(); err != nil {
		return err
	}
	o.paymentMode = m
	return nil
}

func (o *Order) setDeliveryAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("delivery address")
	}
	o.deliveryAddress = address
	return nil
}

func (o *Order) setPostalCode(code kernel.PostalCode) error {
	if err := code.Validate(); err != nil {
		return err
	}
	o.postalCode = code
	return nil
}

func (o *Order) setPlacedAt(t time.Time) error {
	if t.IsZero() {
		return errs.NewValueIsRequiredError("placement time")
	}
	o.placedAt = t
	return nil
}
