package gstpipeline

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

func TestManagerNewPipeline(t *testing.T) {
	ctx := testContext()
	m := NewManager()

	// two pipelines in the same process must not conflict over the engine
	// runtime initialization
	p0, err := m.NewPipeline(ctx, "appsrc name=src ! fakesink", types.BackendBuiltin)
	require.NoError(t, err)
	p1, err := m.NewPipeline(ctx, "videotestsrc ! fakesink", types.BackendBuiltin)
	require.NoError(t, err)
	require.NotNil(t, p0)
	require.NotNil(t, p1)
	require.Len(t, m.Pipelines, 2)

	require.NoError(t, m.Close(ctx))
	require.Empty(t, m.Pipelines)
}

func TestManagerUnknownBackend(t *testing.T) {
	ctx := testContext()
	m := NewManager()

	_, err := m.NewPipeline(ctx, "appsrc name=src ! fakesink", "quicktime")
	require.Error(t, err)
}

func TestManagerSourceNameOption(t *testing.T) {
	ctx := testContext()
	m := NewManager(types.OptionSourceName("injector"))

	p, err := m.NewBuiltin(ctx, "appsrc name=injector ! fakesink")
	require.NoError(t, err)
	defer p.Close(ctx)

	require.NoError(t, p.PushBuffer(ctx, []byte("data")))
	received, err := p.PullBuffer(ctx)
	require.NoError(t, err)
	require.Equal(t, []byte("data"), received)
}

func TestSupportedBackends(t *testing.T) {
	require.Contains(t, SupportedBackends(), types.Backend(types.BackendBuiltin))
}
