package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var DEFAULT []byte

func decode(data []byte, config *Config) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	err := decoder.Decode(config)
	// An empty file changes nothing
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func readFile(path string, config *Config) error {
	extension := filepath.Ext(path)
	switch extension {
	// JSON documents are valid YAML
	case ".json", ".yaml", ".yml":
	default:
		return fmt.Errorf("not in a valid format")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return decode(data, config)
}

// Process reads the provided configuration files in order and merges each
// one over the default configuration. Fields a file leaves out keep their
// previous value.
func Process(configPaths []string) (*Config, error) {
	config := Config{}
	if err := decode(DEFAULT, &config); err != nil {
		return nil, fmt.Errorf(
			"invalid default config file: %v",
			err,
		)
	}

	for _, path := range configPaths {
		err := readFile(path, &config)
		if err != nil {
			return nil, fmt.Errorf(
				"could not process config file %s: %w",
				path,
				err,
			)
		}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid logLevel: %w", err)
	}

	switch c.Store.Kind {
	case StoreKindFS:
		if c.Store.Directory == "" {
			return fmt.Errorf("store.directory is required for the fs store")
		}
	case StoreKindRedis:
		if c.Store.Redis.Address == "" {
			return fmt.Errorf("store.redis.address is required for the redis store")
		}
	default:
		return fmt.Errorf("unknown store kind %q", c.Store.Kind)
	}

	if c.Store.TTL < 0 {
		return fmt.Errorf("store.ttl must not be negative")
	}

	if c.Catalog.Path == "" {
		return fmt.Errorf("catalog.path is required")
	}

	return nil
}
