package arplace

import "errors"

var (
	// ErrInvalidConfig is returned by Config.Validate and LoadConfig.
	ErrInvalidConfig = errors.New("arplace: invalid config")
	// ErrUnknownMode is returned by ParseMode for unrecognised names.
	ErrUnknownMode = errors.New("arplace: unknown interaction mode")
	// ErrNoSteps is returned when a gesture script has no steps.
	ErrNoSteps = errors.New("arplace: script has no steps")
	// ErrUnknownAction is returned when a gesture script step names an
	// action the runner does not know.
	ErrUnknownAction = errors.New("arplace: unknown script action")
)
