package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	appNameVar     = "APP_NAME"
	envVar         = "ENV"
	logLevelVar    = "LOG_LEVEL"
	apiBaseURLVar  = "API_BASE_URL"
	apiTimeoutVar  = "API_TIMEOUT"
	defaultBaseURL = "http://localhost:3000"
)

type EnvVars struct{}

var _ EnvConfig = EnvVars{}

func (EnvVars) GetAppName() string {
	return GetEnv(appNameVar, "Study Shell")
}

func (EnvVars) GetEnv() string {
	return GetEnv(envVar, "DEV")
}

func (EnvVars) GetLogLevel() string {
	return strings.ToLower(GetEnv(logLevelVar, "info"))
}

// GetAPIBaseURL returns the API origin without a trailing slash (e.g. "https://api.example.com")
func (EnvVars) GetAPIBaseURL() string {
	return strings.TrimRight(GetEnv(apiBaseURLVar, defaultBaseURL), "/")
}

func (EnvVars) GetAPITimeout() time.Duration {
	return GetDuration(apiTimeoutVar, 30*time.Second)
}

func GetEnv(envVar, defaultValue string) string {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	return value
}

// GetDuration parses envVar with time.ParseDuration, falling back to defaultValue when empty or invalid.
func GetDuration(envVar string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return defaultValue
	}
	return d
}

// GetList splits a comma separated variable, skipping empty entries.
func GetList(envVar string) []string {
	var out []string
	for _, v := range strings.Split(os.Getenv(envVar), ",") {
		if t := strings.TrimSpace(v); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func defaultSessionFile() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(".studyshell", "session.json")
	}
	return filepath.Join(home, ".studyshell", "session.json")
}
