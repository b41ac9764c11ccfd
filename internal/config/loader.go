package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix  = "LASTTIMEI_"
	envFileVar = "LASTTIMEI_CONFIG"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if LASTTIMEI_CONFIG is set
//  3. env (prefix LASTTIMEI_)
//
// Registry entries can only come from the file; env keys are flat.
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv(envFileVar); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrLoadConfig, path, err)
		}
	}

	// LASTTIMEI_TABLE_NAME -> table_name
	envProvider := env.Provider(envPrefix, ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, strings.ToLower(envPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: env: %v", ErrLoadConfig, err)
	}
	k.Delete("config")

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks cross-field constraints.
func (c *Config) Validate() error {
	switch c.Mode {
	case ModeLambda:
	case ModeHTTP:
		if c.Addr == "" {
			return fmt.Errorf("%w: addr must not be empty in http mode", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidConfig, c.Mode)
	}

	switch c.Store {
	case StoreMemory:
	case StoreDynamoDB:
		if c.TableName == "" {
			return fmt.Errorf("%w: table_name must not be empty", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown store %q", ErrInvalidConfig, c.Store)
	}

	for serial, action := range c.Actions {
		if strings.TrimSpace(serial) == "" || strings.TrimSpace(action) == "" {
			return fmt.Errorf("%w: actions entries need a serial number and an action", ErrInvalidConfig)
		}
	}
	return nil
}
