package commands

import (
	"errors"

	"foodcourt/internal/pkg/guard"
)

var ErrAssignPartnerCommandIsNotConstructed = errors.New(
	"AssignPartnerCommand must be created via NewAssignPartnerCommand constructor",
)

// AssignPartnerCommand triggers a rematch attempt for the oldest pending
// order without a delivery partner. Orders placed while no partner was
// available stay pending; this command picks them up once partners free up.
//
// Example:
//
//	cmd := NewAssignPartnerCommand()
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrNoPendingOrders) {
//	    // nothing waiting, expected most of the time
//	}
type AssignPartnerCommand struct {
	guard guard.ConstructorGuard
}

// NewAssignPartnerCommand creates a new command to trigger partner rematch.
// This is a parameterless command that initiates the partner-order matching
// process.
func NewAssignPartnerCommand() AssignPartnerCommand {
	return AssignPartnerCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignPartnerCommandIsNotConstructed if validation fails.
func (c *AssignPartnerCommand) Validate() error {
	return c.guard.Validate(
		ErrAssignPartnerCommandIsNotConstructed,
	)
}
