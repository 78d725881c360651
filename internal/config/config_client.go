package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// HashKey is the HMAC key used to sign appointment booking payloads.
	HashKey string
	// SendCodeDelay is the simulated delay of the "send OTP" step.
	SendCodeDelay time.Duration
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the health-vault server address.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path of the client-local storage.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// SessionCheckInterval defines how often the backend session is
	// re-checked for expiry.
	SessionCheckInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)

	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			HashKey:       cfg.App.HashKey,
			SendCodeDelay: cfg.Client.SendCodeDelay,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Workers: ClientWorkers{SessionCheckInterval: cfg.Workers.SessionCheckInterval},
	}
}

// EnvironmentReport lists which client settings are populated, without
// their values. It is logged once at client start.
func (cfg *ClientConfig) EnvironmentReport() map[string]bool {
	return map[string]bool{
		"ADAPTER_ADDRESS":                cfg.Adapter.HTTPAddress != "",
		"ADAPTER_REQUEST_TIMEOUT":        cfg.Adapter.RequestTimeout != 0,
		"STORAGE_DB_DATABASE_URI":        cfg.Storage.DB.DSN != "",
		"WORKERS_SESSION_CHECK_INTERVAL": cfg.Workers.SessionCheckInterval != 0,
		"APP_HASH_KEY":                   cfg.App.HashKey != "",
	}
}
