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
	"sync"
	"unsafe"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/xaionaro-go/gstpipeline/pkg/gstpipeline/types"
	"github.com/xaionaro-go/xsync"
)

var initOnce sync.Once

// Init initializes the GStreamer runtime. It is safe to call multiple
// times and from multiple goroutines; the runtime is initialized at most
// once per process.
func Init(ctx context.Context) {
	initOnce.Do(func() {
		logger.Debugf(ctx, "initializing the GStreamer runtime")
		C.gstpipeline_init()
	})
}

// Pipeline is a handle to an engine-owned pipeline graph, built from a
// description in the gst-launch grammar.
type Pipeline struct {
	Config types.Config

	locker     xsync.Mutex
	element    *C.GstElement
	dispatcher *busDispatcher
	handleID   uintptr
	isWatched  bool
	isStarted  bool
}

var _ types.Pipeline = (*Pipeline)(nil)

// cgo forbids passing Go pointers to C, so the bus watch carries an ID
// and the callback resolves it through this registry.
var (
	pipelinesLocker xsync.Mutex
	pipelinesNextID = uintptr(1)
	pipelines       = map[uintptr]*Pipeline{}
)

func registerPipeline(
	ctx context.Context,
	p *Pipeline,
) uintptr {
	return xsync.DoR1(ctx, &pipelinesLocker, func() uintptr {
		id := pipelinesNextID
		pipelinesNextID++
		pipelines[id] = p
		return id
	})
}

func unregisterPipeline(
	ctx context.Context,
	id uintptr,
) {
	pipelinesLocker.Do(ctx, func() {
		delete(pipelines, id)
	})
}

func getPipeline(
	ctx context.Context,
	id uintptr,
) *Pipeline {
	return xsync.DoR1(ctx, &pipelinesLocker, func() *Pipeline {
		return pipelines[id]
	})
}

func New(
	ctx context.Context,
	description string,
	opts ...types.Option,
) (*Pipeline, error) {
	Init(ctx)

	descriptionUnsafe := C.CString(description)
	defer C.free(unsafe.Pointer(descriptionUnsafe))

	var gErr *C.GError
	element := C.gstpipeline_parse_launch(descriptionUnsafe, &gErr)
	if gErr != nil {
		defer C.g_error_free(gErr)
		if element != nil {
			C.gstpipeline_unref(element)
		}
		return nil, types.ErrInvalidDescription{
			Description: description,
			Message:     C.GoString(gErr.message),
		}
	}
	if element == nil {
		return nil, types.ErrInvalidDescription{Description: description}
	}

	p := &Pipeline{
		Config:     types.Options(opts).Config(),
		element:    element,
		dispatcher: newBusDispatcher(),
	}
	p.handleID = registerPipeline(ctx, p)
	logger.Debugf(ctx, "created pipeline #%d from description '%s'", p.handleID, description)
	return p, nil
}

func (p *Pipeline) Start(ctx context.Context) (_err error) {
	logger.Tracef(ctx, "Start")
	defer func() { logger.Tracef(ctx, "/Start: %v", _err) }()
	return xsync.DoA1R1(ctx, &p.locker, p.startLocked, ctx)
}

func (p *Pipeline) startLocked(ctx context.Context) error {
	if p.element == nil {
		return types.ErrClosed{}
	}
	if p.isStarted {
		return nil
	}
	if !p.isWatched {
		// the watch must be in place before the transition, otherwise
		// early messages are lost; the bus reference is released inside,
		// the engine keeps the canonical one
		C.gstpipeline_add_bus_watch(p.element, C.guintptr(p.handleID))
		p.isWatched = true
	}
	if C.gstpipeline_play(p.element) == 0 {
		return fmt.Errorf("unable to transition the pipeline to the playing state")
	}
	p.isStarted = true
	return nil
}

func (p *Pipeline) Stop(ctx context.Context) (_err error) {
	logger.Tracef(ctx, "Stop")
	defer func() { logger.Tracef(ctx, "/Stop: %v", _err) }()
	return xsync.DoA1R1(ctx, &p.locker, p.stopLocked, ctx)
}

func (p *Pipeline) stopLocked(ctx context.Context) error {
	if p.element == nil || !p.isStarted {
		return nil
	}
	if C.gstpipeline_stop(p.element) == 0 {
		return fmt.Errorf("unable to transition the pipeline to the null state")
	}
	p.isStarted = false
	return nil
}

func (p *Pipeline) PushBuffer(
	ctx context.Context,
	data []byte,
) (_err error) {
	logger.Tracef(ctx, "PushBuffer: %d bytes", len(data))
	defer func() { logger.Tracef(ctx, "/PushBuffer: %v", _err) }()
	if len(data) == 0 {
		return nil
	}
	return xsync.DoA2R1(ctx, &p.locker, p.pushBufferLocked, ctx, data)
}

func (p *Pipeline) pushBufferLocked(
	ctx context.Context,
	data []byte,
) error {
	if p.element == nil {
		return types.ErrClosed{}
	}

	sourceNameUnsafe := C.CString(p.Config.SourceName)
	defer C.free(unsafe.Pointer(sourceNameUnsafe))

	dataUnsafe := C.CBytes(data)
	defer C.free(dataUnsafe)

	// the engine copies the bytes into an engine-owned buffer before the
	// call returns, so neither dataUnsafe nor data is retained
	if C.gstpipeline_push_buffer(p.element, sourceNameUnsafe, dataUnsafe, C.int(len(data))) == 0 {
		logger.Debugf(ctx, "the pipeline has no element named '%s'; dropping the buffer", p.Config.SourceName)
	}
	return nil
}

func (p *Pipeline) EndStream(ctx context.Context) (_err error) {
	logger.Tracef(ctx, "EndStream")
	defer func() { logger.Tracef(ctx, "/EndStream: %v", _err) }()
	return xsync.DoA1R1(ctx, &p.locker, p.endStreamLocked, ctx)
}

func (p *Pipeline) endStreamLocked(ctx context.Context) error {
	if p.element == nil {
		return types.ErrClosed{}
	}

	sourceNameUnsafe := C.CString(p.Config.SourceName)
	defer C.free(unsafe.Pointer(sourceNameUnsafe))

	if C.gstpipeline_end_stream(p.element, sourceNameUnsafe) == 0 {
		logger.Debugf(ctx, "the pipeline has no element named '%s'; nothing to signal", p.Config.SourceName)
	}
	return nil
}

func (p *Pipeline) OutcomeChan(ctx context.Context) <-chan types.Outcome {
	return p.dispatcher.OutcomeChan()
}

func (p *Pipeline) Close(ctx context.Context) (_err error) {
	logger.Tracef(ctx, "Close")
	defer func() { logger.Tracef(ctx, "/Close: %v", _err) }()
	return xsync.DoA1R1(ctx, &p.locker, p.closeLocked, ctx)
}

func (p *Pipeline) closeLocked(ctx context.Context) error {
	if p.element == nil {
		return nil
	}
	if p.isStarted {
		C.gstpipeline_stop(p.element)
		p.isStarted = false
	}
	unregisterPipeline(ctx, p.handleID)
	C.gstpipeline_unref(p.element)
	p.element = nil
	return nil
}

//export goGstPipelineBusMessage
func goGstPipelineBusMessage(
	handleID C.guintptr,
	msgType C.int,
	message *C.char,
	debug *C.char,
) C.int {
	ctx := context.TODO()
	p := getPipeline(ctx, uintptr(handleID))
	if p == nil {
		// the pipeline is already closed; keep the watch quiet but alive
		return 1
	}
	msg := busMessage{
		Type: busMessageType(msgType),
	}
	if message != nil {
		msg.Message = C.GoString(message)
	}
	if debug != nil {
		msg.Debug = C.GoString(debug)
	}
	if p.dispatcher.OnMessage(ctx, msg) {
		return 1
	}
	return 0
}
