package commands

import (
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/guard"
)

var ErrRemoveCartItemCommandIsNotConstructed = errors.New(
	"RemoveCartItemCommand must be created via NewRemoveCartItemCommand constructor",
)

// RemoveCartItemCommand represents a request to drop a dish from a
// customer's cart entirely, whatever its quantity.
type RemoveCartItemCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	dishID     kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveCartItemCommand creates a command to remove a dish from the cart.
func NewRemoveCartItemCommand(customerID kernel.UUID, dishID kernel.UUID) (RemoveCartItemCommand, error) {
	removeCommand := RemoveCartItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		removeCommand.setCustomerID(customerID),
		removeCommand.setDishID(dishID),
	); err != nil {
		return RemoveCartItemCommand{}, err
	}

	return removeCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRemoveCartItemCommandIsNotConstructed if validation fails.
func (c RemoveCartItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveCartItemCommandIsNotConstructed)
}

// CustomerID returns the cart owner's identifier.
func (c RemoveCartItemCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// DishID returns the dish to remove.
func (c RemoveCartItemCommand) DishID() kernel.UUID {
	return c.dishID
}

func (c *RemoveCartItemCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.customerID = id
	return nil
}

func (c *RemoveCartItemCommand) setDishID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.dishID = id
	return nil
}
