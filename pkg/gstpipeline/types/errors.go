package types

import (
	"fmt"
)

// ErrInvalidDescription is returned when a pipeline description cannot be
// parsed.
type ErrInvalidDescription struct {
	Description string
	Message     string
}

func (e ErrInvalidDescription) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("unable to parse the pipeline description '%s'", e.Description)
	}
	return fmt.Sprintf("unable to parse the pipeline description '%s': %s", e.Description, e.Message)
}

// ErrPipeline is an engine-reported pipeline fault, as delivered through
// the message bus; it is what an Outcome of type OutcomeTypeError carries.
type ErrPipeline struct {
	Message string
}

func (e ErrPipeline) Error() string {
	return e.Message
}

type ErrClosed struct{}

func (ErrClosed) Error() string {
	return "the handle is already closed"
}
