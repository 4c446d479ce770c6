package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/xaionaro-go/gstpipeline/pkg/gstpipeline"
	"github.com/xaionaro-go/gstpipeline/pkg/gstpipeline/types"
)

type Config struct {
	Backend    types.Backend `yaml:"backend"`
	SourceName string        `yaml:"source_name"`
}

func DefaultConfig() Config {
	return Config{
		Backend:    defaultBackend(),
		SourceName: types.DefaultSourceName,
	}
}

func defaultBackend() types.Backend {
	if gstpipeline.SupportedGst {
		return types.BackendGst
	}
	return types.BackendBuiltin
}

func ReadConfigFromPath(
	ctx context.Context,
	path string,
) (Config, error) {
	cfg := DefaultConfig()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("unable to read the config file '%s': %w", path, err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("unable to parse the config file '%s': %w", path, err)
	}
	return cfg, nil
}

func getConfig(
	ctx context.Context,
	cmd *cobra.Command,
) (Config, error) {
	cfg := DefaultConfig()

	configPath, err := cmd.Flags().GetString("config-path")
	if err != nil {
		return cfg, fmt.Errorf("unable to get the value of the flag 'config-path': %w", err)
	}
	if configPath != "" {
		cfg, err = ReadConfigFromPath(ctx, configPath)
		if err != nil {
			return cfg, err
		}
	}

	if v, err := cmd.Flags().GetString("backend"); err == nil && v != "" {
		cfg.Backend = types.Backend(v)
	}
	if v, err := cmd.Flags().GetString("source-name"); err == nil && v != "" {
		cfg.SourceName = v
	}
	return cfg, nil
}
