package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"foodcourt/internal/core/application/usecases/commands"
	"foodcourt/internal/core/application/usecases/queries"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
)

// PlaceOrder handles POST /api/v1/customers/:customer_id/orders.
// Checks out the customer's cart and returns the priced order.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("customer_id"))
	if err != nil {
		return respondBadRequest(ctx, "invalid customer id")
	}

	var request PlaceOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	restaurantID, err := kernel.UUIDFromString(request.RestaurantID)
	if err != nil {
		return respondBadRequest(ctx, "invalid restaurant id")
	}

	paymentMode, err := order.ParsePaymentMode(request.PaymentMode)
	if err != nil {
		return respondError(ctx, err)
	}

	postalCode, err := kernel.NewPostalCode(request.PostalCode)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewPlaceOrderCommand(customerID, restaurantID, paymentMode,
		request.DeliveryAddress, postalCode, request.OfferCode)
	if err != nil {
		return respondError(ctx, err)
	}

	placed, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderFromAggregate(placed))
}

// GetCustomerOrder handles GET /api/v1/customers/:customer_id/orders/:order_id.
// The customer scope hides other customers' orders behind a 404.
func (s *Server) GetCustomerOrder(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("customer_id"))
	if err != nil {
		return respondBadRequest(ctx, "invalid customer id")
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("order_id"))
	if err != nil {
		return respondBadRequest(ctx, "invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID, &customerID)
	if err != nil {
		return respondError(ctx, err)
	}

	view, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromQueryResponse(view))
}

// ListCustomerOrders handles GET /api/v1/customers/:customer_id/orders.
func (s *Server) ListCustomerOrders(ctx echo.Context) error {
	return s.listOrders(ctx, queries.ScopeCustomer, ctx.Param("customer_id"))
}

// ListRestaurantOrders handles GET /api/v1/restaurants/:restaurant_id/orders.
func (s *Server) ListRestaurantOrders(ctx echo.Context) error {
	return s.listOrders(ctx, queries.ScopeRestaurant, ctx.Param("restaurant_id"))
}

// ListPartnerOrders handles GET /api/v1/partners/:partner_id/orders.
// Without a status filter a partner sees only the orders needing action,
// ready and picked_up.
func (s *Server) ListPartnerOrders(ctx echo.Context) error {
	return s.listOrders(ctx, queries.ScopePartner, ctx.Param("partner_id"))
}

// listOrders serves the three list endpoints; the optional repeated status
// query parameter narrows the result.
func (s *Server) listOrders(ctx echo.Context, scope queries.ListScope, rawPartyID string) error {
	partyID, err := kernel.UUIDFromString(rawPartyID)
	if err != nil {
		return respondBadRequest(ctx, "invalid identifier")
	}

	var statuses []order.Status
	for _, raw := range ctx.QueryParams()["status"] {
		status, parseErr := order.ParseStatus(raw)
		if parseErr != nil {
			return respondError(ctx, parseErr)
		}
		statuses = append(statuses, status)
	}

	query, err := queries.NewListOrdersQuery(scope, partyID, statuses)
	if err != nil {
		return respondError(ctx, err)
	}

	views, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderSummaries(views))
}

// UpdateOrderStatusByRestaurant handles
// PUT /api/v1/restaurants/:restaurant_id/orders/:order_id/status.
func (s *Server) UpdateOrderStatusByRestaurant(ctx echo.Context) error {
	return s.updateOrderStatus(ctx, order.ActorRestaurant, ctx.Param("restaurant_id"))
}

// UpdateOrderStatusByPartner handles
// PUT /api/v1/partners/:partner_id/orders/:order_id/status.
func (s *Server) UpdateOrderStatusByPartner(ctx echo.Context) error {
	return s.updateOrderStatus(ctx, order.ActorDeliveryPartner, ctx.Param("partner_id"))
}

// updateOrderStatus serves both transition endpoints; the acting party comes
// from the route, never from the body.
func (s *Server) updateOrderStatus(ctx echo.Context, actor order.ActorRole, rawActorID string) error {
	actorID, err := kernel.UUIDFromString(rawActorID)
	if err != nil {
		return respondBadRequest(ctx, "invalid identifier")
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("order_id"))
	if err != nil {
		return respondBadRequest(ctx, "invalid order id")
	}

	var request UpdateOrderStatusRequest
	if err = ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	target, err := order.ParseStatus(request.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewTransitionOrderCommand(orderID, actor, actorID, target)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.transitionOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ValidateOffer handles POST /api/v1/offers/validate.
// Quotes an offer against an order value without placing anything; an
// ineligible offer is a 200 with valid=false, not an error.
func (s *Server) ValidateOffer(ctx echo.Context) error {
	var request ValidateOfferRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	restaurantID, err := kernel.UUIDFromString(request.RestaurantID)
	if err != nil {
		return respondBadRequest(ctx, "invalid restaurant id")
	}

	orderValue, err := kernel.MoneyFromString(request.OrderValue)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewValidateOfferQuery(request.Code, restaurantID, orderValue)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.validateOfferHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OfferValidation{
		Valid:       result.Valid,
		Discount:    result.Discount.String(),
		FinalAmount: result.FinalAmount.String(),
		Reason:      result.Reason,
	})
}
