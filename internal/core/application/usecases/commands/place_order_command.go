package commands

import (
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/pkg/errs"
	"foodcourt/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrDeliveryAddressIsRequired = errs.NewValueIsRequiredError("delivery address")
)

// PlaceOrderCommand represents a customer's checkout request. The cart
// content is not part of the command: the handler reads it from the shared
// cart store so the priced order always reflects the cart's latest state.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(customerID, restaurantID,
//	    order.PaymentModeUPI, "12 MG Road", postalCode, "FLAT20")
//	if err != nil {
//	    return fmt.Errorf("invalid checkout data: %w", err)
//	}
//
//	placed, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	customerID      kernel.UUID
	restaurantID    kernel.UUID
	paymentMode     order.PaymentMode
	deliveryAddress string
	postalCode      kernel.PostalCode

	// offerCode is empty when the customer applied no discount code.
	offerCode string

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a checkout command. Validates identifiers,
// the payment mode, the address and the postal code; the offer code is
// free-form and resolved by the handler.
func NewPlaceOrderCommand(
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	paymentMode order.PaymentMode,
	deliveryAddress string,
	postalCode kernel.PostalCode,
	offerCode string,
) (PlaceOrderCommand, error) {
	placeCommand := PlaceOrderCommand{
		offerCode: offerCode,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		placeCommand.setCustomerID(customerID),
		placeCommand.setRestaurantID(restaurantID),
		placeCommand.setPaymentMode(paymentMode),
		placeCommand.setDeliveryAddress(deliveryAddress),
		placeCommand.setPostalCode(postalCode),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return placeCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPlaceOrderCommandIsNotConstructed if validation fails.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// CustomerID returns the ordering customer's identifier.
func (c PlaceOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// RestaurantID returns the restaurant the order targets.
func (c PlaceOrderCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// PaymentMode returns the chosen payment mode.
func (c PlaceOrderCommand) PaymentMode() order.PaymentMode {
	return c.paymentMode
}

// DeliveryAddress returns the destination address text.
func (c PlaceOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// PostalCode returns the destination postal code.
func (c PlaceOrderCommand) PostalCode() kernel.PostalCode {
	return c.postalCode
}

// OfferCode returns the applied discount code, empty when none.
func (c PlaceOrderCommand) OfferCode() string {
	return c.offerCode
}

func (c *PlaceOrderCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.customerID = id
	return nil
}

func (c *PlaceOrderCommand) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.restaurantID = id
	return nil
}

func (c *PlaceOrderCommand) setPaymentMode(mode order.PaymentMode) error {
	if err := mode.Validate(); err != nil {
		return err
	}

	c.paymentMode = mode
	return nil
}

func (c *PlaceOrderCommand) setDeliveryAddress(address string) error {
	if address == "" {
		return ErrDeliveryAddressIsRequired
	}

	c.deliveryAddress = address
	return nil
}

func (c *PlaceOrderCommand) setPostalCode(code kernel.PostalCode) error {
	if err := code.Validate(); err != nil {
		return err
	}

	c.postalCode = code
	return nil
}
