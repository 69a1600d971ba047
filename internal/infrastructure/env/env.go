package env

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"alfred/internal/application/port/output"
)

var _ output.ConfigPort = (*EnvService)(nil)

type EnvService struct {
	lookup func(string) (string, bool)
}

// NewEnvService loads .env and then .env.$APP_ENV on top of the process environment.
// Missing files are not an error: a packaged assistant usually runs with plain variables.
func NewEnvService() *EnvService {
	appEnv := os.Getenv("APP_ENV")
	if appEnv == "" {
		appEnv = "dev"
	}

	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: could not load .env: %v", err)
	}

	envFile := fmt.Sprintf(".env.%s", appEnv)
	if err := godotenv.Overload(envFile); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: could not load %s: %v", envFile, err)
	}

	return &EnvService{lookup: os.LookupEnv}
}

// NewFromMap builds a service over a fixed set of values, used by tests and the parse command.
func NewFromMap(values map[string]string) *EnvService {
	return &EnvService{lookup: func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}}
}

func (e *EnvService) Get(key string) string {
	val, _ := e.lookup(key)
	return val
}

func (e *EnvService) MustGet(key string) string {
	val := e.Get(key)
	if val == "" {
		log.Fatalf("ENV %s is missing", key)
	}
	return val
}

func (e *EnvService) GetWithDefault(key string, defaultValue string) string {
	if val := e.Get(key); val != "" {
		return val
	}
	return defaultValue
}

func (e *EnvService) GetBool(key string, defaultValue bool) bool {
	parsed, err := strconv.ParseBool(e.Get(key))
	if err != nil {
		return defaultValue
	}
	return parsed
}

func (e *EnvService) GetInt(key string, defaultValue int) int {
	parsed, err := strconv.Atoi(e.Get(key))
	if err != nil {
		return defaultValue
	}
	return parsed
}

// GetDuration accepts Go duration strings ("150ms") or a bare number of milliseconds.
func (e *EnvService) GetDuration(key string, defaultValue time.Duration) time.Duration {
	val := e.Get(key)
	if val == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(val); err == nil {
		return d
	}
	if ms, err := strconv.Atoi(val); err == nil {
		return time.Duration(ms) * time.Millisecond
	}
	return defaultValue
}
