package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if !strings.Contains(cfg.API.Address, "://") {
		return ErrInvalidAPIConfigs
	}

	if cfg.Session.Path == "" {
		return ErrInvalidSessionConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Auth.TokenSignKey == "" {
		return ErrInvalidAuthConfigs
	}

	return nil
}
