// Package http exposes the ordering engine over an echo HTTP server.
//
// Handlers translate transport payloads into commands and queries, delegate
// to the application layer and map domain errors onto HTTP status codes.
// All error responses share one JSON envelope.
package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"foodcourt/internal/core/application/usecases/commands"
	"foodcourt/internal/core/application/usecases/queries"
	"foodcourt/internal/core/domain/model/offer"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/pkg/errs"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	placeOrderHandler      commands.PlaceOrderCommandHandler
	transitionOrderHandler commands.TransitionOrderCommandHandler
	addCartItemHandler     commands.AddCartItemCommandHandler
	removeCartItemHandler  commands.RemoveCartItemCommandHandler

	// Query handlers
	getOrderHandler      queries.GetOrderQueryHandler
	listOrdersHandler    queries.ListOrdersQueryHandler
	getCartHandler       queries.GetCartQueryHandler
	validateOfferHandler queries.ValidateOfferQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	transitionOrderHandler commands.TransitionOrderCommandHandler,
	addCartItemHandler commands.AddCartItemCommandHandler,
	removeCartItemHandler commands.RemoveCartItemCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	getCartHandler queries.GetCartQueryHandler,
	validateOfferHandler queries.ValidateOfferQueryHandler,
) *Server {
	return &Server{
		placeOrderHandler:      placeOrderHandler,
		transitionOrderHandler: transitionOrderHandler,
		addCartItemHandler:     addCartItemHandler,
		removeCartItemHandler:  removeCartItemHandler,
		getOrderHandler:        getOrderHandler,
		listOrdersHandler:      listOrdersHandler,
		getCartHandler:         getCartHandler,
		validateOfferHandler:   validateOfferHandler,
	}
}

// RegisterRoutes mounts all API routes on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/customers/:customer_id/cart", s.GetCart)
	api.POST("/customers/:customer_id/cart/items", s.AddCartItem)
	api.DELETE("/customers/:customer_id/cart/items/:dish_id", s.RemoveCartItem)

	api.POST("/customers/:customer_id/orders", s.PlaceOrder)
	api.GET("/customers/:customer_id/orders", s.ListCustomerOrders)
	api.GET("/customers/:customer_id/orders/:order_id", s.GetCustomerOrder)

	api.GET("/restaurants/:restaurant_id/orders", s.ListRestaurantOrders)
	api.PUT("/restaurants/:restaurant_id/orders/:order_id/status", s.UpdateOrderStatusByRestaurant)

	api.GET("/partners/:partner_id/orders", s.ListPartnerOrders)
	api.PUT("/partners/:partner_id/orders/:order_id/status", s.UpdateOrderStatusByPartner)

	api.POST("/offers/validate", s.ValidateOffer)
}

// ErrorResponse is the JSON envelope for all error replies.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// respondError maps domain and application errors onto HTTP status codes.
//
// Validation and malformed-input errors are the caller's fault (400).
// Business-rule rejections that depend on current state (empty cart, gone
// dish, ineligible offer, forbidden lifecycle move) are 422. Lost
// read-modify-write races are 409 so the caller retries with fresh state.
func respondError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, order.ErrActorNotOwner):
		code = http.StatusForbidden
	case errors.Is(err, errs.ErrInvalidTransition):
		code = http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrConcurrencyConflict):
		code = http.StatusConflict
	case errors.Is(err, commands.ErrCartIsEmpty),
		errors.Is(err, commands.ErrDishUnavailable):
		code = http.StatusUnprocessableEntity
	case errors.Is(err, offer.ErrOfferNotFound),
		errors.Is(err, offer.ErrOfferNotActive),
		errors.Is(err, offer.ErrOfferScopeMismatch),
		errors.Is(err, offer.ErrOfferBelowMinimum):
		code = http.StatusUnprocessableEntity
	}

	return ctx.JSON(code, ErrorResponse{Code: code, Message: err.Error()})
}

// respondBadRequest is for malformed transport input that never reaches the
// application layer.
func respondBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
