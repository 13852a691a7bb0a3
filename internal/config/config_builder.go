package config

import (
	"errors"
	"fmt"
	"io/fs"

	"dario.cat/mergo"
)

type configBuilder struct {
	layers   []Options
	runtimes []Runtime

	filePath     string
	explicitPath bool
	fileLoaded   bool

	err error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		layers:   make([]Options, 0, 3),
		runtimes: make([]Runtime, 0, 2),
	}
}

func (b *configBuilder) build() (*Config, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	options := Options{}
	for _, layer := range b.layers {
		if err := mergo.Merge(&options, layer); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	var runtime Runtime
	for _, rt := range b.runtimes {
		if err := mergo.Merge(&runtime, rt); err != nil {
			return nil, fmt.Errorf("error merging runtime configs: %w", err)
		}
	}

	cfg := &Config{
		Options:    options,
		Runtime:    runtime,
		FilePath:   b.filePath,
		FileLoaded: b.fileLoaded,
	}

	return cfg, cfg.validate()
}

func (b *configBuilder) withFlags(flags *Flags) *configBuilder {
	if flags == nil {
		return b
	}

	b.layers = append(b.layers, flags.options())
	b.runtimes = append(b.runtimes, flags.Runtime)
	b.setFilePath(flags.ConfigPath)
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &envConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.layers = append(b.layers, envCfg.options())
	b.runtimes = append(b.runtimes, envCfg.Runtime)
	b.setFilePath(envCfg.ConfigPath)
	return b
}

func (b *configBuilder) withFile() *configBuilder {
	if b.filePath == "" {
		b.filePath = DefaultFilePath()
	}

	fileCfg, err := parseJSON(b.filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !b.explicitPath {
			return b
		}
		b.err = errors.Join(b.err, err)
		return b
	}

	b.fileLoaded = true
	b.layers = append(b.layers, fileCfg)
	return b
}

// setFilePath records the first explicitly requested config path; flags are
// consulted before the environment so they win.
func (b *configBuilder) setFilePath(path string) {
	if path == "" || b.explicitPath {
		return
	}

	b.filePath = path
	b.explicitPath = true
}

func (cfg *Config) validate() error {
	switch cfg.Runtime.LogFormat {
	case "", LogFormatJSON, LogFormatConsole:
	default:
		return fmt.Errorf("%w: unknown log format %q", ErrInvalidRuntimeConfig, cfg.Runtime.LogFormat)
	}

	return nil
}
