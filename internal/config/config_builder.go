package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// configBuilder collects one StructuredConfig per source and merges them in
// a fixed precedence order regardless of the order the with* calls ran in.
type configBuilder struct {
	defaults *StructuredConfig
	file     *StructuredConfig
	env      *StructuredConfig
	flags    *StructuredConfig
	err      error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.layers() {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, nil
}

// layers returns the non-nil sources, lowest priority first.
func (b *configBuilder) layers() []*StructuredConfig {
	ordered := []*StructuredConfig{b.defaults, b.file, b.env, b.flags}
	layers := make([]*StructuredConfig, 0, len(ordered))
	for _, cfg := range ordered {
		if cfg != nil {
			layers = append(layers, cfg)
		}
	}
	return layers
}

func (b *configBuilder) withDefaults(defaults *StructuredConfig) *configBuilder {
	b.defaults = defaults
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.env = envCfg
	return b
}

func (b *configBuilder) withFlags(flags *Flags) *configBuilder {
	if flags == nil {
		return b
	}

	b.flags = flags.config()
	return b
}

// withFile parses the config file named by the highest-priority source that
// sets FilePath. It must run after withEnv and withFlags.
func (b *configBuilder) withFile() *configBuilder {
	var path string
	for _, cfg := range b.layers() {
		if cfg.FilePath != "" {
			path = cfg.FilePath
		}
	}

	if path == "" {
		return b
	}

	fileCfg, err := parseFile(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.file = fileCfg
	return b
}
