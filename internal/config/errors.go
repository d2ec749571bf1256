package config

import "errors"

var (
	ErrInvalidAPIConfigs     = errors.New("invalid api configs: address must include a scheme")
	ErrInvalidSessionConfigs = errors.New("invalid session configs: store path is required")
	ErrInvalidStorageConfigs = errors.New("invalid storage configs: database DSN is required")
	ErrInvalidAuthConfigs    = errors.New("invalid auth configs: token sign key is required")
)
