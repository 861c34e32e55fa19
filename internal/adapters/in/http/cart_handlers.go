package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"foodcourt/internal/core/application/usecases/commands"
	"foodcourt/internal/core/application/usecases/queries"
	"foodcourt/internal/core/domain/model/kernel"
)

// GetCart handles GET /api/v1/customers/:customer_id/cart.
func (s *Server) GetCart(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("customer_id"))
	if err != nil {
		return respondBadRequest(ctx, "invalid customer id")
	}

	query, err := queries.NewGetCartQuery(customerID)
	if err != nil {
		return respondError(ctx, err)
	}

	cart, err := s.getCartHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, cartFromQueryResponse(cart))
}

// AddCartItem handles POST /api/v1/customers/:customer_id/cart/items.
// Adding a dish already in the cart merges quantities.
func (s *Server) AddCartItem(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("customer_id"))
	if err != nil {
		return respondBadRequest(ctx, "invalid customer id")
	}

	var request AddCartItemRequest
	if err = ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	dishID, err := kernel.UUIDFromString(request.DishID)
	if err != nil {
		return respondBadRequest(ctx, "invalid dish id")
	}

	cmd, err := commands.NewAddCartItemCommand(customerID, dishID, request.Quantity)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.addCartItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveCartItem handles DELETE /api/v1/customers/:customer_id/cart/items/:dish_id.
// Removing a dish that is not in the cart is a no-op.
func (s *Server) RemoveCartItem(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("customer_id"))
	if err != nil {
		return respondBadRequest(ctx, "invalid customer id")
	}

	dishID, err := kernel.UUIDFromString(ctx.Param("dish_id"))
	if err != nil {
		return respondBadRequest(ctx, "invalid dish id")
	}

	cmd, err := commands.NewRemoveCartItemCommand(customerID, dishID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.removeCartItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
