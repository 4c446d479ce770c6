//go:build with_gst
// +build with_gst

package gst

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/gstpipeline/pkg/gstpipeline/types"
)

func TestMainLoopRunAfterClose(t *testing.T) {
	ctx := testContext()

	loop, err := NewMainLoop(ctx)
	require.NoError(t, err)
	require.NoError(t, loop.Close(ctx))

	require.ErrorIs(t, loop.Run(ctx), types.ErrClosed{})
}

func TestMainLoopCloseIsIdempotent(t *testing.T) {
	ctx := testContext()

	loop, err := NewMainLoop(ctx)
	require.NoError(t, err)
	require.NoError(t, loop.Close(ctx))
	require.NoError(t, loop.Close(ctx))
}
