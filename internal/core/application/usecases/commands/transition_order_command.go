package commands

import (
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/pkg/guard"
)

var ErrTransitionOrderCommandIsNotConstructed = errors.New(
	"TransitionOrderCommand must be created via NewTransitionOrderCommand constructor",
)

// TransitionOrderCommand represents a restaurant's or delivery partner's
// request to move an order to the next lifecycle status. The acting party
// carries its own identity; ownership is enforced by the aggregate.
//
// Example:
//
//	cmd, err := NewTransitionOrderCommand(orderID,
//	    order.ActorRestaurant, restaurantID, order.StatusPreparing)
//	if err != nil {
//	    return fmt.Errorf("invalid transition request: %w", err)
//	}
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("transition failed: %w", err)
//	}
type TransitionOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   order.ActorRole
	actorID kernel.UUID
	target  order.Status

	guard guard.ConstructorGuard
}

// NewTransitionOrderCommand creates a lifecycle transition command.
// Validates the order ID, the actor role and identity, and that the target
// is a known status; whether the move is permitted is decided against the
// order's current state by the handler.
func NewTransitionOrderCommand(
	orderID kernel.UUID,
	actor order.ActorRole,
	actorID kernel.UUID,
	target order.Status,
) (TransitionOrderCommand, error) {
	transitionCommand := TransitionOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		transitionCommand.setOrderID(orderID),
		transitionCommand.setActor(actor),
		transitionCommand.setActorID(actorID),
		transitionCommand.setTarget(target),
	); err != nil {
		return TransitionOrderCommand{}, err
	}

	return transitionCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrTransitionOrderCommandIsNotConstructed if validation fails.
func (c TransitionOrderCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to transition.
func (c TransitionOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the role requesting the transition.
func (c TransitionOrderCommand) Actor() order.ActorRole {
	return c.actor
}

// ActorID returns the identity of the acting restaurant or partner.
func (c TransitionOrderCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Target returns the requested target status.
func (c TransitionOrderCommand) Target() order.Status {
	return c.target
}

func (c *TransitionOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.orderID = id
	return nil
}

func (c *TransitionOrderCommand) setActor(actor order.ActorRole) error {
	parsed, err := order.ParseActorRole(string(actor))
	if err != nil {
		return err
	}

	c.actor = parsed
	return nil
}

func (c *TransitionOrderCommand) setActorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.actorID = id
	return nil
}

func (c *TransitionOrderCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}
