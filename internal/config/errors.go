package config

import "errors"

var (
	ErrInvalidStorageConfigs = errors.New("invalid storage configs: database DSN is required")
	ErrInvalidAppConfigs     = errors.New("invalid app configs: token sign key and issuer are required")
	ErrInvalidLocalConfigs   = errors.New("invalid local store configs: backend must be file or sqlite with a path")
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configs: server URL is required")
)
