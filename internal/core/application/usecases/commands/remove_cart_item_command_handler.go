package commands

import (
	"context"

	"foodcourt/internal/core/ports"
)

// RemoveCartItemCommandHandler drops a dish from a customer's cart.
// Removing a dish that is not in the cart is a no-op, not an error.
type RemoveCartItemCommandHandler struct {
	carts ports.CartStore
}

// NewRemoveCartItemCommandHandler creates a handler for cart remove
// operations.
func NewRemoveCartItemCommandHandler(carts ports.CartStore) RemoveCartItemCommandHandler {
	return RemoveCartItemCommandHandler{carts: carts}
}

// Handle processes the cart remove command.
func (h RemoveCartItemCommandHandler) Handle(ctx context.Context, cmd RemoveCartItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	lines, err := h.carts.Get(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	kept := lines[:0]
	for _, line := range lines {
		if line.DishID != cmd.DishID() {
			kept = append(kept, line)
		}
	}
	if len(kept) == len(lines) {
		return nil
	}

	if len(kept) == 0 {
		return h.carts.Clear(ctx, cmd.CustomerID())
	}

	return h.carts.Put(ctx, cmd.CustomerID(), kept)
}
