// Package gstpipeline is a thin control surface over a media pipeline
// engine: it constructs a pipeline from a textual description, drives its
// lifecycle, injects externally-sourced buffers into a named element and
// relays terminal conditions to the owner.
package gstpipeline

import (
	"github.com/xaionaro-go/gstpipeline/pkg/gstpipeline/types"
)

type Pipeline = types.Pipeline
