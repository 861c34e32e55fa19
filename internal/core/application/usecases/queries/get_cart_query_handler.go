package queries

import (
	"context"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/ports"
)

// GetCartQueryHandler reads a customer's cart from the shared store and
// enriches it with live menu data.
type GetCartQueryHandler struct {
	carts   ports.CartStore
	catalog ports.DishCatalog
}

// NewGetCartQueryHandler creates a handler for cart reads.
func NewGetCartQueryHandler(carts ports.CartStore, catalog ports.DishCatalog) GetCartQueryHandler {
	return GetCartQueryHandler{carts: carts, catalog: catalog}
}

// Handle executes the cart read. A dish that left the menu since it was
// added stays in the view, marked unavailable with a zero price, so the
// customer sees why checkout would fail.
func (h GetCartQueryHandler) Handle(ctx context.Context, query GetCartQuery) (GetCartQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCartQueryResponse{}, err
	}

	lines, err := h.carts.Get(ctx, query.CustomerID())
	if err != nil {
		return GetCartQueryResponse{}, err
	}

	resp := GetCartQueryResponse{
		Items:    make([]CartItemView, 0, len(lines)),
		Subtotal: kernel.ZeroMoney(),
	}
	if len(lines) == 0 {
		return resp, nil
	}

	ids := make([]kernel.UUID, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.DishID)
	}

	dishes, err := h.catalog.GetByIDs(ctx, ids)
	if err != nil {
		return GetCartQueryResponse{}, err
	}

	dishByID := make(map[kernel.UUID]ports.Dish, len(dishes))
	for _, dish := range dishes {
		dishByID[dish.ID] = dish
	}

	for _, line := range lines {
		item := CartItemView{
			DishID:   line.DishID,
			Quantity: line.Quantity,
		}

		if dish, ok := dishByID[line.DishID]; ok && dish.Available {
			item.Name = dish.Name
			item.UnitPrice = dish.Price
			item.Total = dish.Price.MulInt(line.Quantity)
			item.Available = true
			resp.Subtotal = resp.Subtotal.Add(item.Total)
		} else {
			item.UnitPrice = kernel.ZeroMoney()
			item.Total = kernel.ZeroMoney()
		}

		resp.Items = append(resp.Items, item)
	}

	return resp, nil
}
