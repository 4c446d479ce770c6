package gstpipeline

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/xaionaro-go/gstpipeline/pkg/gstpipeline/types"
	"github.com/xaionaro-go/xsync"
)

type Manager struct {
	Config          types.Config
	PipelinesLocker xsync.Mutex
	Pipelines       []Pipeline
}

func NewManager(opts ...types.Option) *Manager {
	return &Manager{
		Config: types.Options(opts).Config(),
	}
}

func SupportedBackends() []types.Backend {
	var result []types.Backend
	if SupportedGst {
		result = append(result, types.BackendGst)
	}
	result = append(result, types.BackendBuiltin)
	return result
}

func (m *Manager) SupportedBackends() []types.Backend {
	return SupportedBackends()
}

func (m *Manager) NewPipeline(
	ctx context.Context,
	description string,
	backend types.Backend,
) (Pipeline, error) {
	switch backend {
	case types.BackendGst:
		return m.NewGst(ctx, description)
	case types.BackendBuiltin:
		return m.NewBuiltin(ctx, description)
	default:
		return nil, fmt.Errorf("unexpected backend type: '%s'", backend)
	}
}

func (m *Manager) registerPipeline(
	ctx context.Context,
	p Pipeline,
) {
	m.PipelinesLocker.Do(ctx, func() {
		m.Pipelines = append(m.Pipelines, p)
	})
}

func (m *Manager) Close(ctx context.Context) error {
	var result *multierror.Error
	m.PipelinesLocker.Do(ctx, func() {
		for _, p := range m.Pipelines {
			if err := p.Close(ctx); err != nil {
				result = multierror.Append(result, fmt.Errorf("unable to close a pipeline: %w", err))
			}
		}
		m.Pipelines = nil
	})
	return result.ErrorOrNil()
}
