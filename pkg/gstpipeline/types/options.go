package types

// DefaultSourceName is the name of the element buffers are injected into,
// unless overridden with OptionSourceName.
const DefaultSourceName = "src"

type Config struct {
	SourceName string
}

func DefaultConfig() Config {
	return Config{
		SourceName: DefaultSourceName,
	}
}

type Option interface {
	Apply(cfg *Config)
}

type Options []Option

func (options Options) Config() Config {
	cfg := DefaultConfig()
	options.Apply(&cfg)
	return cfg
}

func (options Options) Apply(cfg *Config) {
	for _, option := range options {
		option.Apply(cfg)
	}
}

// OptionSourceName overrides the name of the injection element.
type OptionSourceName string

func (opt OptionSourceName) Apply(cfg *Config) {
	cfg.SourceName = string(opt)
}
