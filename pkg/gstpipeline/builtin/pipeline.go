// Package builtin is a pure Go pipeline backend: it parses the description
// and reproduces the lifecycle, injection-ordering and buffer-ownership
// semantics of the real engine, without processing any media. It serves
// as the fallback where GStreamer is not compiled in, and as the engine
// stand-in for tests.
package builtin

import (
	"context"
	"io"
	"sync"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/xaionaro-go/gstpipeline/pkg/gstpipeline/types"
	"github.com/xaionaro-go/xsync"
)

type Pipeline struct {
	Config   types.Config
	Elements []Element

	locker      xsync.Mutex
	state       types.State
	queue       [][]byte
	hasSource   bool
	isDrained   bool
	isClosed    bool
	publishOnce sync.Once
	outcomeCh   chan types.Outcome
}

var _ types.Pipeline = (*Pipeline)(nil)

func New(
	ctx context.Context,
	description string,
	opts ...types.Option,
) (*Pipeline, error) {
	elements, err := parseDescription(description)
	if err != nil {
		return nil, err
	}

	cfg := types.Options(opts).Config()
	p := &Pipeline{
		Config:    cfg,
		Elements:  elements,
		outcomeCh: make(chan types.Outcome, 1),
	}
	for _, element := range elements {
		if element.Name() == cfg.SourceName {
			p.hasSource = true
			break
		}
	}
	logger.Debugf(ctx, "created a builtin pipeline of %d elements (has a '%s' element: %v)",
		len(elements), cfg.SourceName, p.hasSource)
	return p, nil
}

func (p *Pipeline) Start(ctx context.Context) error {
	return xsync.DoA1R1(ctx, &p.locker, p.startLocked, ctx)
}

func (p *Pipeline) startLocked(ctx context.Context) error {
	if p.isClosed {
		return types.ErrClosed{}
	}
	p.state = types.StatePlaying
	return nil
}

func (p *Pipeline) Stop(ctx context.Context) error {
	return xsync.DoA1R1(ctx, &p.locker, p.stopLocked, ctx)
}

func (p *Pipeline) stopLocked(ctx context.Context) error {
	// stopping a never-started (or already closed) pipeline is a no-op
	p.state = types.StateIdle
	return nil
}

// State reports where the pipeline is in its idle/playing lifecycle.
func (p *Pipeline) State(ctx context.Context) types.State {
	return xsync.DoR1(ctx, &p.locker, func() types.State {
		return p.state
	})
}

func (p *Pipeline) PushBuffer(
	ctx context.Context,
	data []byte,
) error {
	return xsync.DoA2R1(ctx, &p.locker, p.pushBufferLocked, ctx, data)
}

func (p *Pipeline) pushBufferLocked(
	ctx context.Context,
	data []byte,
) error {
	if p.isClosed {
		return types.ErrClosed{}
	}
	if !p.hasSource {
		logger.Debugf(ctx, "the pipeline has no element named '%s'; dropping the buffer", p.Config.SourceName)
		return nil
	}

	// the caller keeps the ownership of data, so it is copied before being
	// queued
	copied := make([]byte, len(data))
	copy(copied, data)
	p.queue = append(p.queue, copied)
	return nil
}

func (p *Pipeline) EndStream(ctx context.Context) error {
	return xsync.DoA1R1(ctx, &p.locker, p.endStreamLocked, ctx)
}

func (p *Pipeline) endStreamLocked(ctx context.Context) error {
	if p.isClosed {
		return types.ErrClosed{}
	}
	if !p.hasSource {
		logger.Debugf(ctx, "the pipeline has no element named '%s'; nothing to signal", p.Config.SourceName)
		return nil
	}
	p.isDrained = true
	p.publish(ctx, types.Outcome{Type: types.OutcomeTypeEndOfStream})
	return nil
}

// PullBuffer pops the next injected buffer, in injection order, emulating
// the downstream side of the graph. It returns io.EOF once the stream was
// ended and the queue is empty, and (nil, nil) when no buffer is currently
// queued.
func (p *Pipeline) PullBuffer(ctx context.Context) ([]byte, error) {
	return xsync.DoA1R2(ctx, &p.locker, p.pullBufferLocked, ctx)
}

func (p *Pipeline) pullBufferLocked(ctx context.Context) ([]byte, error) {
	if p.isClosed {
		return nil, types.ErrClosed{}
	}
	if len(p.queue) == 0 {
		if p.isDrained {
			return nil, io.EOF
		}
		return nil, nil
	}
	data := p.queue[0]
	p.queue = p.queue[1:]
	return data, nil
}

func (p *Pipeline) OutcomeChan(ctx context.Context) <-chan types.Outcome {
	return p.outcomeCh
}

func (p *Pipeline) Close(ctx context.Context) error {
	p.locker.Do(ctx, func() {
		p.state = types.StateIdle
		p.queue = nil
		p.isClosed = true
	})
	return nil
}

func (p *Pipeline) publish(
	ctx context.Context,
	outcome types.Outcome,
) {
	p.publishOnce.Do(func() {
		logger.Debugf(ctx, "publishing the outcome: %v", outcome)
		p.outcomeCh <- outcome
	})
}
