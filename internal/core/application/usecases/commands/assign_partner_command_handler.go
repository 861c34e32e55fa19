package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/core/domain/services"
	"foodcourt/internal/core/ports"
	"foodcourt/internal/pkg/errs"
)

// ErrNoPendingOrders is returned when no order is waiting for a delivery
// partner. Expected most of the time; callers treat it as a quiet no-op.
var ErrNoPendingOrders = errors.New("no pending orders without a partner")

// AssignPartnerCommandHandler orchestrates the partner rematch process.
// Finds the oldest pending unassigned order and matches it with an available
// partner serving the order's postal code.
type AssignPartnerCommandHandler struct {
	uowFactory OrderUoWFactory
	partners   ports.PartnerDirectory
	publisher  ports.OrderEventPublisher

	matcher services.PartnerMatcher
}

// NewAssignPartnerCommandHandler creates a handler for partner rematch
// operations.
func NewAssignPartnerCommandHandler(
	uowFactory OrderUoWFactory,
	partners ports.PartnerDirectory,
	publisher ports.OrderEventPublisher,
) AssignPartnerCommandHandler {
	return AssignPartnerCommandHandler{
		uowFactory: uowFactory,
		partners:   partners,
		publisher:  publisher,
		matcher:    services.NewPartnerMatcher(),
	}
}

// Handle processes the rematch command.
//
// Returns ErrNoPendingOrders when nothing waits, and passes
// services.ErrNoPartnerAvailable through when no partner serves the
// order's postal code. The write is guarded by the pending status, so a
// cancellation racing the rematch loses nothing.
func (h AssignPartnerCommandHandler) Handle(ctx context.Context, cmd AssignPartnerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.GetFirstPendingUnassigned(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoPendingOrders
	}
	if err != nil {
		return err
	}

	candidates, err := h.partners.ListServing(ctx, aggregate.PostalCode())
	if err != nil {
		return err
	}

	matched, err := h.matcher.Match(candidates, aggregate.PostalCode())
	if err != nil {
		return err
	}

	if err = aggregate.AssignPartner(matched.ID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate, order.StatusPending); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.partners.SetAvailability(ctx, matched.ID(), false); err != nil {
		slog.Warn("failed to mark partner unavailable",
			"partner_id", matched.ID().String(), "error", err)
	}

	if err = h.publisher.Publish(ctx, ports.OrderEvent{
		OrderID:    aggregate.ID(),
		Status:     aggregate.Status().String(),
		OccurredAt: time.Now().UTC(),
	}); err != nil {
		slog.Warn("failed to publish order status event",
			"order_id", aggregate.ID().String(), "error", err)
	}

	return nil
}
