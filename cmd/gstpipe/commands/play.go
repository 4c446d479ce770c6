package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/facebookincubator/go-belt"
	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/spf13/cobra"
	"github.com/xaionaro-go/gstpipeline/pkg/gstpipeline"
	"github.com/xaionaro-go/gstpipeline/pkg/gstpipeline/types"
	"github.com/xaionaro-go/observability"
)

const inputBufferSize = 4096

func play(cmd *cobra.Command, args []string) {
	ctx := cmd.Context()
	description := args[0]

	cfg, err := getConfig(ctx, cmd)
	assertNoError(ctx, err)
	logger.Debugf(ctx, "config: %s", spew.Sdump(cfg))

	m := gstpipeline.NewManager(types.OptionSourceName(cfg.SourceName))
	defer func() {
		if err := m.Close(ctx); err != nil {
			logger.Errorf(ctx, "unable to close the pipelines: %v", err)
		}
	}()

	p, err := m.NewPipeline(ctx, description, cfg.Backend)
	assertNoError(ctx, err)

	err = p.Start(ctx)
	assertNoError(ctx, err)

	observability.Go(ctx, func(ctx context.Context) {
		feed(ctx, p, os.Stdin)
	})
	observability.Go(ctx, func(ctx context.Context) {
		finish(ctx, <-p.OutcomeChan(ctx))
	})

	// blocks until the process exits via finish()
	err = gstpipeline.RunMainLoop(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Errorf(ctx, "the main loop returned an error: %v", err)
	}
}

// feed copies r into the pipeline's injection element, buffer by buffer,
// and signals the end of the stream when r is drained.
func feed(
	ctx context.Context,
	p gstpipeline.Pipeline,
	r io.Reader,
) {
	buf := make([]byte, inputBufferSize)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			if pushErr := p.PushBuffer(ctx, buf[:n]); pushErr != nil {
				logger.Errorf(ctx, "unable to push a buffer: %v", pushErr)
				return
			}
		}
		if err == nil {
			continue
		}
		if !errors.Is(err, io.EOF) {
			logger.Errorf(ctx, "unable to read the input: %v", err)
		}
		logger.Debugf(ctx, "the input has ended")
		if err := p.EndStream(ctx); err != nil {
			logger.Errorf(ctx, "unable to signal the end of the stream: %v", err)
		}
		return
	}
}

// outcomeDiagnostic renders the diagnostic line for a terminal outcome.
// The wording is a stable contract: supervisors match on it.
func outcomeDiagnostic(outcome types.Outcome) string {
	if outcome.Type == types.OutcomeTypeError {
		return fmt.Sprintf("Error: %v", outcome.Err)
	}
	return "End of stream"
}

// finish applies the fail-fast policy: any terminal outcome ends the
// process with a non-zero status; restarting is the supervisor's job.
func finish(
	ctx context.Context,
	outcome types.Outcome,
) {
	logger.Debugf(ctx, "got the outcome: %v", outcome)
	belt.Flush(ctx)
	if outcome.Type == types.OutcomeTypeError {
		fmt.Fprintln(os.Stderr, outcomeDiagnostic(outcome))
	} else {
		fmt.Println(outcomeDiagnostic(outcome))
	}
	os.Exit(1)
}
