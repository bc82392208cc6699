package commands

import (
	"errors"

	"orderstatus/internal/pkg/guard"
)

// FlagOverdueDeliveriesCommand triggers a sweep over all orders in transit,
// recording a delivery exception for every order past its delivery promise.
//
// Example:
//
//	cmd := NewFlagOverdueDeliveriesCommand()
//	handler := NewFlagOverdueDeliveriesCommandHandler(uowFactory)
//
//	// Run periodically to catch late deliveries
//	ticker := time.NewTicker(time.Minute)
//	for range ticker.C {
//	    if err := handler.Handle(ctx, cmd); err != nil {
//	        log.Printf("Overdue sweep failed: %v", err)
//	    }
//	}
type FlagOverdueDeliveriesCommand struct {
	guard guard.ConstructorGuard
}

var (
	ErrFlagOverdueDeliveriesCommandIsNotConstructed = errors.New(
		"FlagOverdueDeliveriesCommand must be created via NewFlagOverdueDeliveriesCommand constructor",
	)
)

// NewFlagOverdueDeliveriesCommand creates a command to sweep for overdue
// deliveries. This is a parameterless command that inspects all orders
// currently in transit.
func NewFlagOverdueDeliveriesCommand() FlagOverdueDeliveriesCommand {
	command := FlagOverdueDeliveriesCommand{
		guard: guard.NewConstructorGuard(),
	}

	return command
}

// Validate ensures the command was created through the constructor.
// Returns ErrFlagOverdueDeliveriesCommandIsNotConstructed if validation fails.
func (c *FlagOverdueDeliveriesCommand) Validate() error {
	return c.guard.Validate(ErrFlagOverdueDeliveriesCommandIsNotConstructed)
}
