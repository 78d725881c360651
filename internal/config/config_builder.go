package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"dario.cat/mergo"
	"github.com/joho/godotenv"
)

const defaultDotEnvPath = ".env"

// configBuilder collects config layers from highest to lowest priority.
// Loading errors are accumulated and reported by build.
type configBuilder struct {
	layers []*StructuredConfig
	err    error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{layers: make([]*StructuredConfig, 0, 4)}
}

func (b *configBuilder) fail(err error) *configBuilder {
	b.err = errors.Join(b.err, err)
	return b
}

func (b *configBuilder) add(layer *StructuredConfig) *configBuilder {
	b.layers = append(b.layers, layer)
	return b
}

// build merges the layers; a field keeps the value of the first layer that
// sets it.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	merged := &StructuredConfig{}
	for _, layer := range b.layers {
		if err := mergo.Merge(merged, layer); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}
	return merged, merged.validate()
}

// withDotEnv exports a .env file into the process environment without
// overriding variables that are already set. The file named by DOTENV must
// exist; the default ./.env may be absent.
func (b *configBuilder) withDotEnv() *configBuilder {
	path, explicit := os.LookupEnv("DOTENV")
	if !explicit {
		path = defaultDotEnvPath
	}

	err := godotenv.Load(path)
	if err == nil || (!explicit && errors.Is(err, os.ErrNotExist)) {
		return b
	}
	return b.fail(fmt.Errorf("error loading dotenv file %q: %w", path, err))
}

func (b *configBuilder) withEnv() *configBuilder {
	layer := &StructuredConfig{}
	if err := parseEnv(layer); err != nil {
		return b.fail(err)
	}
	return b.add(layer)
}

func (b *configBuilder) withFlags() *configBuilder {
	return b.add(ParseFlags())
}

// withJSON reads the file named by the highest-priority layer that names one.
func (b *configBuilder) withJSON() *configBuilder {
	for _, layer := range b.layers {
		if layer.JSONFilePath == "" {
			continue
		}
		jsonLayer, err := parseJSON(layer.JSONFilePath)
		if err != nil {
			return b.fail(err)
		}
		return b.add(jsonLayer)
	}
	return b
}

func (b *configBuilder) withDefaults() *configBuilder {
	return b.add(&StructuredConfig{
		App: App{
			TokenIssuer:   "health-vault",
			TokenDuration: 24 * time.Hour,
			Version:       "dev",
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			GRPCAddress:    "localhost:9090",
			RequestTimeout: 30 * time.Second,
		},
		Adapter: Adapter{
			HTTPAddress:    "http://localhost:8080",
			RequestTimeout: 10 * time.Second,
		},
		Workers: Workers{SessionCheckInterval: time.Minute},
		Client:  Client{SendCodeDelay: 2 * time.Second},
	})
}
