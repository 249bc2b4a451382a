// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/mjklukowski/rofi-apps/pkg/types"
)

// ErrInvalidLoadOptions is the sentinel wrapped by invalid LoadOptions.
var ErrInvalidLoadOptions = errors.New("invalid load options")

type (
	// LoadOptions defines explicit configuration loading inputs.
	LoadOptions struct {
		// ConfigFilePath forces loading from a specific file when set.
		ConfigFilePath types.FilesystemPath
		// ConfigDirPath overrides the user config directory when set.
		ConfigDirPath types.FilesystemPath
	}

	// Provider loads configuration from explicit options.
	Provider interface {
		Load(ctx context.Context, opts LoadOptions) (*Config, error)
	}

	fileProvider struct{}
)

// Validate rejects whitespace-only paths. Empty fields mean "not set".
func (o LoadOptions) Validate() error {
	for name, p := range map[string]types.FilesystemPath{
		"config file path": o.ConfigFilePath,
		"config dir path":  o.ConfigDirPath,
	} {
		if p == "" {
			continue
		}
		if err := p.Validate(); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidLoadOptions, name, err)
		}
	}
	return nil
}

// NewProvider creates a configuration provider.
func NewProvider() Provider {
	return &fileProvider{}
}

// Load reads configuration from the requested source.
func (p *fileProvider) Load(ctx context.Context, opts LoadOptions) (*Config, error) {
	return loadWithOptions(ctx, opts)
}

// Locate returns the rule file Load would read for opts without parsing it.
func Locate(opts LoadOptions) (string, error) {
	if err := opts.Validate(); err != nil {
		return "", err
	}
	return resolvePath(opts)
}
