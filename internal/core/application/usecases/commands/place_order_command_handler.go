package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/core/domain/services"
	"foodcourt/internal/core/ports"
	"foodcourt/internal/pkg/errs"
)

var (
	// ErrCartIsEmpty is returned when checkout finds no lines in the
	// customer's cart.
	ErrCartIsEmpty = errors.New("cart is empty")

	// ErrDishUnavailable is returned when a cart references a dish the
	// restaurant no longer serves.
	ErrDishUnavailable = errors.New("dish is no longer available")

	// ErrRestaurantInactive is returned when checkout targets a restaurant
	// that exists but is not taking orders. Distinct from the not-found
	// case: the restaurant is real, the order is invalid.
	ErrRestaurantInactive = errs.NewValueIsInvalidError("restaurant is not taking orders")
)

// PlaceOrderCommandHandler orchestrates checkout: it reads the cart, prices
// the order from live menu data, resolves the optional discount code, tries
// to match a delivery partner, and persists the resulting order atomically.
//
// Pricing reads happen before the transaction; the transaction covers the
// single order insert. Cart clearing, the partner availability flip and the
// status event are deliberately outside it: once the order row is committed
// the order exists, and those follow-ups are best-effort.
type PlaceOrderCommandHandler struct {
	uowFactory   OrderUoWFactory
	carts        ports.CartStore
	catalog      ports.DishCatalog
	restaurants  ports.RestaurantDirectory
	offers       ports.OfferProvider
	platformFees ports.PlatformFeeProvider
	partners     ports.PartnerDirectory
	publisher    ports.OrderEventPublisher

	calculator services.PricingCalculator
	resolver   services.OfferResolver
	matcher    services.PartnerMatcher
}

// NewPlaceOrderCommandHandler creates a handler for checkout operations.
func NewPlaceOrderCommandHandler(
	uowFactory OrderUoWFactory,
	carts ports.CartStore,
	catalog ports.DishCatalog,
	restaurants ports.RestaurantDirectory,
	offers ports.OfferProvider,
	platformFees ports.PlatformFeeProvider,
	partners ports.PartnerDirectory,
	publisher ports.OrderEventPublisher,
	calculator services.PricingCalculator,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory:   uowFactory,
		carts:        carts,
		catalog:      catalog,
		restaurants:  restaurants,
		offers:       offers,
		platformFees: platformFees,
		partners:     partners,
		publisher:    publisher,
		calculator:   calculator,
		resolver:     services.NewOfferResolver(),
		matcher:      services.NewPartnerMatcher(),
	}
}

// Handle processes the checkout command and returns the placed order.
//
// The order is created confirmed when a delivery partner was matched,
// pending otherwise; a failed match is not a checkout failure. A failing
// pricing input (empty cart, unknown or inactive restaurant, missing dish,
// ineligible offer) aborts checkout before anything is written.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	restaurant, err := h.restaurants.Get(ctx, cmd.RestaurantID())
	if err != nil {
		return nil, err
	}
	if !restaurant.Active {
		return nil, ErrRestaurantInactive
	}

	cartLines, err := h.carts.Get(ctx, cmd.CustomerID())
	if err != nil {
		return nil, err
	}
	if len(cartLines) == 0 {
		return nil, ErrCartIsEmpty
	}

	lines, err := h.buildLines(ctx, cartLines)
	if err != nil {
		return nil, err
	}

	subtotal, err := h.calculator.Subtotal(lines)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	discount := kernel.ZeroMoney()
	if cmd.OfferCode() != "" {
		appliedOffer, offerErr := h.offers.GetByCode(ctx, cmd.OfferCode())
		if offerErr != nil {
			return nil, offerErr
		}

		discount, offerErr = h.resolver.Resolve(appliedOffer, subtotal, cmd.RestaurantID(), now)
		if offerErr != nil {
			return nil, offerErr
		}
	}

	platformFee, err := h.platformFees.GetActive(ctx)
	if err != nil {
		return nil, err
	}

	breakdown, err := h.calculator.Price(lines, restaurant.FeePercent, platformFee, discount)
	if err != nil {
		return nil, err
	}

	partnerID, err := h.matchPartner(ctx, cmd.PostalCode())
	if err != nil {
		return nil, err
	}

	placed, err := order.NewOrder(
		kernel.NewUUID(),
		cmd.CustomerID(),
		cmd.RestaurantID(),
		partnerID,
		lines,
		breakdown,
		cmd.PaymentMode(),
		cmd.DeliveryAddress(),
		cmd.PostalCode(),
		now,
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, placed); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.afterPlacement(ctx, cmd.CustomerID(), placed)

	return placed, nil
}

// buildLines freezes the cart into order line snapshots at live menu prices.
func (h PlaceOrderCommandHandler) buildLines(ctx context.Context, cartLines []ports.CartLine) ([]order.Line, error) {
	ids := make([]kernel.UUID, 0, len(cartLines))
	for _, cartLine := range cartLines {
		ids = append(ids, cartLine.DishID)
	}

	dishes, err := h.catalog.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	dishByID := make(map[kernel.UUID]ports.Dish, len(dishes))
	for _, dish := range dishes {
		dishByID[dish.ID] = dish
	}

	lines := make([]order.Line, 0, len(cartLines))
	for _, cartLine := range cartLines {
		dish, ok := dishByID[cartLine.DishID]
		if !ok || !dish.Available {
			return nil, fmt.Errorf("%w: %s", ErrDishUnavailable, cartLine.DishID)
		}

		line, err := order.NewLine(dish.ID, dish.Name, dish.Price, cartLine.Quantity, dish.PhotoRef)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return lines, nil
}

// matchPartner returns the matched partner's ID, or nil when no partner is
// available. Only the lookup itself can fail checkout.
func (h PlaceOrderCommandHandler) matchPartner(ctx context.Context, code kernel.PostalCode) (*kernel.UUID, error) {
	candidates, err := h.partners.ListServing(ctx, code)
	if err != nil {
		return nil, err
	}

	matched, err := h.matcher.Match(candidates, code)
	if errors.Is(err, services.ErrNoPartnerAvailable) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	id := matched.ID()
	return &id, nil
}

// afterPlacement runs the best-effort follow-ups of a committed placement.
func (h PlaceOrderCommandHandler) afterPlacement(ctx context.Context, customerID kernel.UUID, placed *order.Order) {
	if partnerID := placed.PartnerID(); partnerID != nil {
		if err := h.partners.SetAvailability(ctx, *partnerID, false); err != nil {
			slog.Warn("failed to mark partner unavailable",
				"partner_id", partnerID.String(), "error", err)
		}
	}

	if err := h.carts.Clear(ctx, customerID); err != nil {
		slog.Warn("failed to clear cart after checkout",
			"customer_id", customerID.String(), "error", err)
	}

	if err := h.publisher.Publish(ctx, ports.OrderEvent{
		OrderID:    placed.ID(),
		Status:     placed.Status().String(),
		OccurredAt: placed.PlacedAt(),
	}); err != nil {
		slog.Warn("failed to publish order placed event",
			"order_id", placed.ID().String(), "error", err)
	}
}
