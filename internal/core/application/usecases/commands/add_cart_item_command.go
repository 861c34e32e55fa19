package commands

import (
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/errs"
	"foodcourt/internal/pkg/guard"
)

var ErrAddCartItemCommandIsNotConstructed = errors.New(
	"AddCartItemCommand must be created via NewAddCartItemCommand constructor",
)

const maxCartQuantity = 100

// AddCartItemCommand represents a request to add a dish to a customer's
// cart, or raise its quantity when the dish is already there.
type AddCartItemCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	dishID     kernel.UUID
	quantity   int

	guard guard.ConstructorGuard
}

// NewAddCartItemCommand creates a command to add a dish to the cart.
// Quantity must be between 1 and 100.
func NewAddCartItemCommand(customerID kernel.UUID, dishID kernel.UUID, quantity int) (AddCartItemCommand, error) {
	addCommand := AddCartItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		addCommand.setCustomerID(customerID),
		addCommand.setDishID(dishID),
		addCommand.setQuantity(quantity),
	); err != nil {
		return AddCartItemCommand{}, err
	}

	return addCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddCartItemCommandIsNotConstructed if validation fails.
func (c AddCartItemCommand) Validate() error {
	return c.guard.Validate(ErrAddCartItemCommandIsNotConstructed)
}

// CustomerID returns the cart owner's identifier.
func (c AddCartItemCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// DishID returns the dish to add.
func (c AddCartItemCommand) DishID() kernel.UUID {
	return c.dishID
}

// Quantity returns how many units to add.
func (c AddCartItemCommand) Quantity() int {
	return c.quantity
}

func (c *AddCartItemCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.customerID = id
	return nil
}

func (c *AddCartItemCommand) setDishID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.dishID = id
	return nil
}

func (c *AddCartItemCommand) setQuantity(quantity int) error {
	if quantity < 1 || quantity > maxCartQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, maxCartQuantity)
	}

	c.quantity = quantity
	return nil
}
