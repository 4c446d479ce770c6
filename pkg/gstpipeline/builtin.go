package gstpipeline

import (
	"context"

	"github.com/xaionaro-go/gstpipeline/pkg/gstpipeline/builtin"
	"github.com/xaionaro-go/gstpipeline/pkg/gstpipeline/types"
)

const SupportedBuiltin = true

type Builtin = builtin.Pipeline

var _ Pipeline = (*Builtin)(nil)

func NewBuiltin(
	ctx context.Context,
	description string,
	opts ...types.Option,
) (*Builtin, error) {
	return builtin.New(ctx, description, opts...)
}

func (m *Manager) NewBuiltin(
	ctx context.Context,
	description string,
) (*Builtin, error) {
	r, err := NewBuiltin(ctx, description, types.OptionSourceName(m.Config.SourceName))
	if err != nil {
		return nil, err
	}
	m.registerPipeline(ctx, r)
	return r, nil
}
