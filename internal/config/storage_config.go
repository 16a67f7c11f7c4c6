package config

const (
	SessionStoreFile   = "file"
	SessionStoreRedis  = "redis"
	SessionStoreMemory = "memory"
)

type Storage struct{}

var _ StorageConfig = Storage{}

// GetSessionStore returns the backend the token is persisted to: file, redis or memory
func (Storage) GetSessionStore() string {
	return GetEnv("SESSION_STORE", SessionStoreFile)
}

func (Storage) GetSessionFile() string {
	return GetEnv("SESSION_FILE", defaultSessionFile())
}

func (Storage) GetRedisURL() string {
	return GetEnv("REDIS_URL", "redis://localhost:6379/0")
}

func (Storage) GetRedisPrefix() string {
	return GetEnv("REDIS_PREFIX", "studyshell:")
}
