package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"foodcourt/internal/core/domain/model/fees"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/offer"
	"foodcourt/internal/core/domain/model/partner"
)

// Dish is the live menu entry served by the catalog collaborator. Checkout
// reads prices from here, never from the cart, so a stale cart can never
// charge stale prices.
type Dish struct {
	ID        kernel.UUID
	Name      string
	Price     kernel.Money
	Available bool
	PhotoRef  string
}

// DishCatalog reads live menu entries.
type DishCatalog interface {
	// GetByIDs returns the dishes for the given IDs. A missing or
	// unavailable dish is an error: checkout must fail rather than charge
	// for an item the restaurant no longer serves.
	GetByIDs(ctx context.Context, ids []kernel.UUID) ([]Dish, error)
}

// RestaurantInfo is the slice of restaurant state pricing needs.
type RestaurantInfo struct {
	ID         kernel.UUID
	Name       string
	FeePercent decimal.Decimal
	Active     bool
}

// RestaurantDirectory reads restaurant configuration.
type RestaurantDirectory interface {
	// Get returns the restaurant with its Active flag, or an
	// ObjectNotFoundError when no restaurant with that ID exists.
	// Inactive restaurants are returned, not hidden.
	Get(ctx context.Context, id kernel.UUID) (RestaurantInfo, error)
}

// OfferProvider looks up discount codes.
type OfferProvider interface {
	// GetByCode returns the offer for the code, or (nil, nil) when no offer
	// with that code exists. Eligibility is not checked here; the domain
	// evaluates it.
	GetByCode(ctx context.Context, code string) (*offer.Offer, error)
}

// PlatformFeeProvider reads the platform commission configuration.
type PlatformFeeProvider interface {
	// GetActive returns the most recently created active configuration, or
	// (nil, nil) when none is active.
	GetActive(ctx context.Context) (*fees.PlatformFee, error)
}

// PartnerDirectory reads delivery partner state for matching.
type PartnerDirectory interface {
	// ListServing returns partners registered for the postal code,
	// available or not, in registration order.
	ListServing(ctx context.Context, code kernel.PostalCode) ([]*partner.Partner, error)

	// SetAvailability flips a partner's availability flag.
	SetAvailability(ctx context.Context, id kernel.UUID, available bool) error
}

// CartLine is one dish reference in a customer's cart. Carts hold references
// and quantities only; prices are resolved at checkout.
type CartLine struct {
	DishID   kernel.UUID
	Quantity int
}

// CartStore keeps per-customer carts in shared storage so any engine
// instance sees the same cart.
type CartStore interface {
	// Get returns the customer's cart lines, empty when no cart exists.
	Get(ctx context.Context, customerID kernel.UUID) ([]CartLine, error)

	// Put replaces the customer's cart lines.
	Put(ctx context.Context, customerID kernel.UUID, lines []CartLine) error

	// Clear removes the customer's cart. Called after successful checkout.
	Clear(ctx context.Context, customerID kernel.UUID) error
}

// OrderEvent describes an order status change for downstream consumers.
type OrderEvent struct {
	OrderID    kernel.UUID
	Status     string
	OccurredAt time.Time
}

// OrderEventPublisher publishes order status changes to the message broker.
// Publishing is best-effort: a broker failure must not fail the command that
// produced the event.
type OrderEventPublisher interface {
	Publish(ctx context.Context, event OrderEvent) error
}
