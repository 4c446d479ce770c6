package commands

import (
	"bytes"
	"context"
	"io"
	"os"
	"testing"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/facebookincubator/go-belt/tool/logger/implementation/logrus"
	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/gstpipeline/pkg/gstpipeline/builtin"
	"github.com/xaionaro-go/gstpipeline/pkg/gstpipeline/types"
)

func testContext() context.Context {
	l := logrus.Default().WithLevel(logger.LevelTrace)
	return logger.CtxWithLogger(context.Background(), l)
}

func TestOutcomeDiagnosticEndOfStream(t *testing.T) {
	require.Equal(t, "End of stream", outcomeDiagnostic(types.Outcome{
		Type: types.OutcomeTypeEndOfStream,
	}))
}

func TestOutcomeDiagnosticError(t *testing.T) {
	require.Equal(t, "Error: boom", outcomeDiagnostic(types.Outcome{
		Type: types.OutcomeTypeError,
		Err:  types.ErrPipeline{Message: "boom"},
	}))
}

func TestFeed(t *testing.T) {
	ctx := testContext()
	p, err := builtin.New(ctx, "appsrc name=src ! fakesink")
	require.NoError(t, err)
	defer p.Close(ctx)
	require.NoError(t, p.Start(ctx))

	input := bytes.Repeat([]byte("0123456789abcdef"), 1024)
	feed(ctx, p, bytes.NewReader(input))

	var received []byte
	for {
		buf, err := p.PullBuffer(ctx)
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		received = append(received, buf...)
	}
	require.Equal(t, input, received)

	select {
	case outcome := <-p.OutcomeChan(ctx):
		require.Equal(t, types.OutcomeTypeEndOfStream, outcome.Type)
	default:
		t.Fatal("expected an end-of-stream outcome after the input was drained")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.Equal(t, types.DefaultSourceName, cfg.SourceName)
	require.NotEmpty(t, cfg.Backend)
}

func TestReadConfigFromPath(t *testing.T) {
	ctx := testContext()
	path := t.TempDir() + "/gstpipe.yaml"
	require.NoError(t, os.WriteFile(path, []byte("backend: builtin\nsource_name: injector\n"), 0o644))

	cfg, err := ReadConfigFromPath(ctx, path)
	require.NoError(t, err)
	require.Equal(t, types.Backend(types.BackendBuiltin), cfg.Backend)
	require.Equal(t, "injector", cfg.SourceName)
}
