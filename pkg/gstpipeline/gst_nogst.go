//go:build !with_gst
// +build !with_gst

package gstpipeline

import (
	"context"
	"fmt"

	"github.com/xaionaro-go/gstpipeline/pkg/gstpipeline/types"
)

const SupportedGst = false

type Gst struct{}

var _ Pipeline = (*Gst)(nil)

func NewGst(
	ctx context.Context,
	description string,
	opts ...types.Option,
) (*Gst, error) {
	return nil, fmt.Errorf("compiled without GStreamer support")
}

func (m *Manager) NewGst(
	ctx context.Context,
	description string,
) (*Gst, error) {
	return NewGst(ctx, description)
}

// RunMainLoop without GStreamer has no bus watches to service; it just
// blocks until ctx is cancelled, so that callers do not need to special-case
// the backend.
func RunMainLoop(ctx context.Context) error {
	<-ctx.Done()
	return ctx.Err()
}

func (*Gst) Start(ctx context.Context) error {
	panic("compiled without GStreamer support")
}

func (*Gst) Stop(ctx context.Context) error {
	panic("compiled without GStreamer support")
}

func (*Gst) PushBuffer(ctx context.Context, data []byte) error {
	panic("compiled without GStreamer support")
}

func (*Gst) EndStream(ctx context.Context) error {
	panic("compiled without GStreamer support")
}

func (*Gst) OutcomeChan(ctx context.Context) <-chan types.Outcome {
	panic("compiled without GStreamer support")
}

func (*Gst) Close(ctx context.Context) error {
	panic("compiled without GStreamer support")
}
