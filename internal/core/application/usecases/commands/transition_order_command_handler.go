package commands

import (
	"context"
	"log/slog"
	"time"

	"foodcourt/internal/core/ports"
)

// TransitionOrderCommandHandler applies a lifecycle transition to an order.
//
// The handler reads the order, lets the aggregate check ownership and the
// lifecycle table, and writes back guarded by the status it read: a
// concurrent transition between the read and the write surfaces as a
// ConcurrencyConflictError instead of silently overwriting.
type TransitionOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewTransitionOrderCommandHandler creates a handler for lifecycle
// transition operations.
func NewTransitionOrderCommandHandler(uowFactory OrderUoWFactory, publisher ports.OrderEventPublisher) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the transition command.
//
// Error cases pass through untranslated: ObjectNotFoundError for an unknown
// order, ErrActorNotOwner for a foreign order, InvalidTransitionError for a
// move outside the lifecycle table, ConcurrencyConflictError for a lost
// race. The status event is published best-effort after commit.
func (h TransitionOrderCommandHandler) Handle(ctx context.Context, cmd TransitionOrderCommand) error {
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

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	statusBefore := aggregate.Status()

	now := time.Now().UTC()
	if err = aggregate.TransitionBy(cmd.Actor(), cmd.ActorID(), cmd.Target(), now); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate, statusBefore); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.publisher.Publish(ctx, ports.OrderEvent{
		OrderID:    aggregate.ID(),
		Status:     aggregate.Status().String(),
		OccurredAt: now,
	}); err != nil {
		slog.Warn("failed to publish order status event",
			"order_id", aggregate.ID().String(), "error", err)
	}

	return nil
}
