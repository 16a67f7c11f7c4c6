package config

import (
	"time"

	"github.com/joho/godotenv"
)

func init() {
	// A missing .env file is not an error.
	_ = godotenv.Load()
}

type Config interface {
	EnvConfig
	StorageConfig
	PreviewConfig
}

type EnvConfig interface {
	GetAppName() string
	GetEnv() string
	GetLogLevel() string
	GetAPIBaseURL() string
	GetAPITimeout() time.Duration
}

type StorageConfig interface {
	GetSessionStore() string
	GetSessionFile() string
	GetRedisURL() string
	GetRedisPrefix() string
}

type PreviewConfig interface {
	GetPort() string
	GetPreviewDir() string
	GetAllowedHosts() AllowedHosts
	GetAllowedOrigins() AllowedOrigins
	GetAllowedMethods() string
	GetAllowedHeaders() string
}

type mainConfig struct {
	EnvVars
	Storage
	Preview
}

func New() Config {
	return mainConfig{}
}
