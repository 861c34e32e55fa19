package commands

import (
	"context"
	"fmt"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/ports"
)

// AddCartItemCommandHandler adds a dish to a customer's cart in the shared
// cart store. Carts hold dish references and quantities only; the live price
// is looked up at checkout. The dish must exist and be available at add
// time so the customer learns about a gone dish early.
type AddCartItemCommandHandler struct {
	carts   ports.CartStore
	catalog ports.DishCatalog
}

// NewAddCartItemCommandHandler creates a handler for cart add operations.
func NewAddCartItemCommandHandler(carts ports.CartStore, catalog ports.DishCatalog) AddCartItemCommandHandler {
	return AddCartItemCommandHandler{
		carts:   carts,
		catalog: catalog,
	}
}

// Handle processes the cart add command. Adding a dish already in the cart
// raises its quantity, capped at the per-line maximum.
func (h AddCartItemCommandHandler) Handle(ctx context.Context, cmd AddCartItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	dishes, err := h.catalog.GetByIDs(ctx, []kernel.UUID{cmd.DishID()})
	if err != nil {
		return err
	}
	if len(dishes) == 0 || !dishes[0].Available {
		return fmt.Errorf("%w: %s", ErrDishUnavailable, cmd.DishID())
	}

	lines, err := h.carts.Get(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	merged := false
	for i, line := range lines {
		if line.DishID == cmd.DishID() {
			lines[i].Quantity = min(line.Quantity+cmd.Quantity(), maxCartQuantity)
			merged = true
			break
		}
	}
	if !merged {
		lines = append(lines, ports.CartLine{DishID: cmd.DishID(), Quantity: cmd.Quantity()})
	}

	return h.carts.Put(ctx, cmd.CustomerID(), lines)
}
