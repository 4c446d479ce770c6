//go:build with_gst
// +build with_gst

package gst

/*
#cgo pkg-config: gstreamer-1.0 gstreamer-app-1.0

#include "gst.h"
*/
import "C"

import (
	"context"
	"fmt"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/xaionaro-go/gstpipeline/pkg/gstpipeline/types"
	"github.com/xaionaro-go/observability"
	"github.com/xaionaro-go/xsync"
)

// MainLoop services the bus watches of the pipelines created in this
// process. It is an owned handle: created explicitly, run by exactly one
// goroutine, torn down with Close.
type MainLoop struct {
	locker xsync.Mutex
	loop   *C.GMainLoop
}

func NewMainLoop(ctx context.Context) (*MainLoop, error) {
	Init(ctx)
	loop := C.gstpipeline_mainloop_new()
	if loop == nil {
		return nil, fmt.Errorf("unable to create a main loop")
	}
	return &MainLoop{loop: loop}, nil
}

// Run blocks the calling goroutine and dispatches bus messages until Quit,
// Close or the cancellation of ctx.
func (l *MainLoop) Run(ctx context.Context) error {
	loop := xsync.DoR1(ctx, &l.locker, func() *C.GMainLoop {
		if l.loop == nil {
			return nil
		}
		return C.gstpipeline_mainloop_ref(l.loop)
	})
	if loop == nil {
		return types.ErrClosed{}
	}
	defer C.gstpipeline_mainloop_unref(loop)

	ctx, cancelFn := context.WithCancel(ctx)
	defer cancelFn()
	observability.Go(ctx, func(ctx context.Context) {
		<-ctx.Done()
		l.Quit(ctx)
	})

	logger.Debugf(ctx, "running the main loop")
	defer logger.Debugf(ctx, "the main loop has finished")
	C.gstpipeline_mainloop_run(loop)
	return nil
}

func (l *MainLoop) Quit(ctx context.Context) {
	l.locker.Do(ctx, func() {
		if l.loop == nil {
			return
		}
		C.gstpipeline_mainloop_quit(l.loop)
	})
}

func (l *MainLoop) Close(ctx context.Context) error {
	l.locker.Do(ctx, func() {
		if l.loop == nil {
			return
		}
		C.gstpipeline_mainloop_quit(l.loop)
		C.gstpipeline_mainloop_unref(l.loop)
		l.loop = nil
	})
	return nil
}
