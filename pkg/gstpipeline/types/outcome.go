package types

import (
	"fmt"
)

type OutcomeType int

const (
	OutcomeTypeUndefined = OutcomeType(iota)
	OutcomeTypeEndOfStream
	OutcomeTypeError
)

func (t OutcomeType) String() string {
	switch t {
	case OutcomeTypeUndefined:
		return "undefined"
	case OutcomeTypeEndOfStream:
		return "end_of_stream"
	case OutcomeTypeError:
		return "error"
	}
	return fmt.Sprintf("unknown_%d", int(t))
}

// Outcome is a terminal condition observed on a pipeline's message bus.
// A pipeline publishes at most one Outcome; what to do about it (exit,
// restart, ignore) is the owner's decision, not the pipeline's.
type Outcome struct {
	Type OutcomeType
	Err  error
}

func (o Outcome) String() string {
	if o.Type == OutcomeTypeError {
		return fmt.Sprintf("%s: %v", o.Type, o.Err)
	}
	return o.Type.String()
}
