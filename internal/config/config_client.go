package config

import (
	"fmt"
	"time"
)

// ClientAPI holds network settings used by the console's REST gateway.
type ClientAPI struct {
	// Address is the base URL of the farm-management API.
	Address string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
}

// ClientSession holds local session store settings for the console.
type ClientSession struct {
	// Path is the SQLite file the session is persisted to.
	Path string
}

// ClientConfig is the top-level console configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// API contains outbound endpoint settings.
	API ClientAPI
	// Session contains local session store settings.
	Session ClientSession
}

// Console defaults; overridable through env, flags, or the JSON file.
const (
	defaultAPIAddress     = "http://localhost:9191"
	defaultAPITimeout     = 15 * time.Second
	defaultSessionDBPath  = "agroconsole.db"
	defaultServerAddress  = ":9191"
	defaultServerTimeout  = 30 * time.Second
	defaultTokenDuration  = 12 * time.Hour
	defaultTokenIssuer    = "fincaudita"
)

// GetClientConfig builds and validates the console-specific config view from
// the merged structured configuration. Unset values fall back to the local
// development defaults.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		API: ClientAPI{
			Address:        cfg.API.Address,
			RequestTimeout: cfg.API.RequestTimeout,
		},
		Session: ClientSession{
			Path: cfg.Storage.Session.Path,
		},
	}

	if clientCfg.API.Address == "" {
		clientCfg.API.Address = defaultAPIAddress
	}
	if clientCfg.API.RequestTimeout <= 0 {
		clientCfg.API.RequestTimeout = defaultAPITimeout
	}
	if clientCfg.Session.Path == "" {
		clientCfg.Session.Path = defaultSessionDBPath
	}

	return clientCfg, clientCfg.validate()
}

// ServerConfig is the development-server configuration view.
type ServerConfig struct {
	// HTTPAddress is the listen address.
	HTTPAddress string
	// RequestTimeout bounds inbound request handling.
	RequestTimeout time.Duration
	// DSN is the PostgreSQL connection string.
	DSN string
	// Auth contains token issuing settings.
	Auth Auth
}

// GetServerConfig builds and validates the development-server config view.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		HTTPAddress:    cfg.Server.HTTPAddress,
		RequestTimeout: cfg.Server.RequestTimeout,
		DSN:            cfg.Storage.DB.DSN,
		Auth:           cfg.Auth,
	}

	if serverCfg.HTTPAddress == "" {
		serverCfg.HTTPAddress = defaultServerAddress
	}
	if serverCfg.RequestTimeout <= 0 {
		serverCfg.RequestTimeout = defaultServerTimeout
	}
	if serverCfg.Auth.TokenDuration <= 0 {
		serverCfg.Auth.TokenDuration = defaultTokenDuration
	}
	if serverCfg.Auth.TokenIssuer == "" {
		serverCfg.Auth.TokenIssuer = defaultTokenIssuer
	}

	return serverCfg, serverCfg.validate()
}
