package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownAction is returned for actions the server does not handle.
	ErrUnknownAction = errors.New("unknown action")
	// ErrMissingValue is returned when a value-carrying action has none.
	ErrMissingValue = errors.New("action requires a positive value")
)

// Validator is implemented by DTOs that can check themselves.
type Validator interface {
	Validate() error
}

// Validate checks the action name and its arguments. Out-of-range values are
// accepted here and clamped by the receiver.
func (c ClientCommand) Validate() error {
	switch c.Action {
	case ActionSnapshot, ActionStart, ActionStop, ActionReset, ActionStep:
		return nil
	case ActionSpeed, ActionZoom:
		if c.Value <= 0 {
			return fmt.Errorf("%s: %w", c.Action, ErrMissingValue)
		}
		return nil
	case ActionResize:
		if c.Width <= 0 || c.Height <= 0 {
			return fmt.Errorf("%s: %w", c.Action, ErrMissingValue)
		}
		return nil
	default:
		return fmt.Errorf("%q: %w", c.Action, ErrUnknownAction)
	}
}
