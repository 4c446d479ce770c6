//go:build with_gst
// +build with_gst

package gstpipeline

import (
	"context"

	"github.com/xaionaro-go/gstpipeline/pkg/gstpipeline/gst"
	"github.com/xaionaro-go/gstpipeline/pkg/gstpipeline/types"
)

const SupportedGst = true

type Gst = gst.Pipeline

var _ Pipeline = (*Gst)(nil)

func NewGst(
	ctx context.Context,
	description string,
	opts ...types.Option,
) (*Gst, error) {
	return gst.New(ctx, description, opts...)
}

func (m *Manager) NewGst(
	ctx context.Context,
	description string,
) (*Gst, error) {
	r, err := NewGst(ctx, description, types.OptionSourceName(m.Config.SourceName))
	if err != nil {
		return nil, err
	}
	m.registerPipeline(ctx, r)
	return r, nil
}

// RunMainLoop blocks servicing the engine's bus watches until ctx is
// cancelled; bus messages (and hence Outcomes) of gst-backed pipelines are
// delivered only while it is running.
func RunMainLoop(ctx context.Context) error {
	loop, err := gst.NewMainLoop(ctx)
	if err != nil {
		return err
	}
	defer loop.Close(ctx)
	return loop.Run(ctx)
}
