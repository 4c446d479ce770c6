package types

import (
	"context"
)

type State int

const (
	StateIdle = State(iota)
	StatePlaying
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePlaying:
		return "playing"
	}
	return "unknown"
}

// Pipeline is a constructed media pipeline. It is safe to call PushBuffer
// and Start/Stop from goroutines other than the one servicing the engine's
// event loop; the engine synchronizes access to the underlying graph.
type Pipeline interface {
	// Start attaches the bus watch and transitions the pipeline to playing.
	Start(ctx context.Context) error

	// Stop transitions the pipeline back to idle. Stopping a pipeline that
	// was never started is a no-op.
	Stop(ctx context.Context) error

	// PushBuffer injects a copy of data into the injection element. The
	// caller may reuse or free data as soon as the call returns. If the
	// pipeline has no injection element, the call is a no-op.
	PushBuffer(ctx context.Context, data []byte) error

	// EndStream signals the injection element that no more buffers will
	// arrive; the pipeline finishes draining and reports an end-of-stream
	// Outcome.
	EndStream(ctx context.Context) error

	// OutcomeChan returns the channel the terminal Outcome is delivered on.
	OutcomeChan(ctx context.Context) <-chan Outcome

	Close(ctx context.Context) error
}
