package gst

import (
	"context"
	"sync"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/xaionaro-go/gstpipeline/pkg/gstpipeline/types"
)

// the values must match the GSTPIPELINE_MESSAGE_* constants in gst.h
type busMessageType int

const (
	busMessageTypeUnknown = busMessageType(iota)
	busMessageTypeEOS
	busMessageTypeError
)

type busMessage struct {
	Type    busMessageType
	Message string
	Debug   string
}

// busDispatcher classifies pipeline bus messages and publishes the terminal
// Outcome. It never asks the watch to stop polling: what to do about a
// terminal condition is the outcome consumer's decision, and the watch stays
// registered until the pipeline handle is disposed.
type busDispatcher struct {
	publishOnce sync.Once
	outcomeCh   chan types.Outcome
}

func newBusDispatcher() *busDispatcher {
	return &busDispatcher{
		outcomeCh: make(chan types.Outcome, 1),
	}
}

func (d *busDispatcher) OutcomeChan() <-chan types.Outcome {
	return d.outcomeCh
}

// OnMessage reports whether the bus watch should keep polling (it always
// should).
func (d *busDispatcher) OnMessage(
	ctx context.Context,
	msg busMessage,
) bool {
	switch msg.Type {
	case busMessageTypeEOS:
		logger.Debugf(ctx, "got an end-of-stream message")
		d.publish(ctx, types.Outcome{Type: types.OutcomeTypeEndOfStream})
	case busMessageTypeError:
		logger.Debugf(ctx, "got an error message: %s (debug: %s)", msg.Message, msg.Debug)
		d.publish(ctx, types.Outcome{
			Type: types.OutcomeTypeError,
			Err:  types.ErrPipeline{Message: msg.Message},
		})
	default:
		logger.Tracef(ctx, "ignoring a message of type %d", msg.Type)
	}
	return true
}

func (d *busDispatcher) publish(
	ctx context.Context,
	outcome types.Outcome,
) {
	d.publishOnce.Do(func() {
		logger.Debugf(ctx, "publishing the outcome: %v", outcome)
		d.outcomeCh <- outcome
	})
}
