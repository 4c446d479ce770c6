package gst

import (
	"context"
	"testing"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/facebookincubator/go-belt/tool/logger/implementation/logrus"
	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/gstpipeline/pkg/gstpipeline/types"
)

func testContext() context.Context {
	l := logrus.Default().WithLevel(logger.LevelTrace)
	return logger.CtxWithLogger(context.Background(), l)
}

func receiveOutcome(t *testing.T, d *busDispatcher) types.Outcome {
	t.Helper()
	select {
	case outcome := <-d.OutcomeChan():
		return outcome
	default:
		t.Fatal("expected an outcome to be published")
		return types.Outcome{}
	}
}

func TestBusDispatcherEndOfStream(t *testing.T) {
	ctx := testContext()
	d := newBusDispatcher()

	require.True(t, d.OnMessage(ctx, busMessage{Type: busMessageTypeEOS}))

	outcome := receiveOutcome(t, d)
	require.Equal(t, types.OutcomeTypeEndOfStream, outcome.Type)
	require.NoError(t, outcome.Err)
}

func TestBusDispatcherError(t *testing.T) {
	ctx := testContext()
	d := newBusDispatcher()

	require.True(t, d.OnMessage(ctx, busMessage{
		Type:    busMessageTypeError,
		Message: "boom",
		Debug:   "../some/element.c(42): boom details",
	}))

	outcome := receiveOutcome(t, d)
	require.Equal(t, types.OutcomeTypeError, outcome.Type)
	require.Equal(t, types.ErrPipeline{Message: "boom"}, outcome.Err)
	require.Contains(t, outcome.String(), "boom")
}

func TestBusDispatcherIgnoresUnknownMessages(t *testing.T) {
	ctx := testContext()
	d := newBusDispatcher()

	require.True(t, d.OnMessage(ctx, busMessage{Type: busMessageTypeUnknown}))

	select {
	case outcome := <-d.OutcomeChan():
		t.Fatalf("did not expect an outcome, got %v", outcome)
	default:
	}
}

func TestBusDispatcherPublishesAtMostOnce(t *testing.T) {
	ctx := testContext()
	d := newBusDispatcher()

	require.True(t, d.OnMessage(ctx, busMessage{Type: busMessageTypeEOS}))
	require.True(t, d.OnMessage(ctx, busMessage{Type: busMessageTypeError, Message: "boom"}))

	outcome := receiveOutcome(t, d)
	require.Equal(t, types.OutcomeTypeEndOfStream, outcome.Type)

	select {
	case outcome := <-d.OutcomeChan():
		t.Fatalf("expected a single outcome, got a second one: %v", outcome)
	default:
	}
}
