package config

import (
	"os"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/sahradeniz/Astrologi-Ai-sub000/model"

	"github.com/joho/godotenv"
)

// DefaultAstroAPIURL is the base address of the remote astrology service when
// no override is configured. Tests and local development rely on this exact
// fallback.
const DefaultAstroAPIURL = "http://localhost:5003"

const (
	defaultPort      = "8080"
	defaultTimeoutMs = 8000
	defaultStore     = "memory"
	defaultMongoDB   = "AstrologiAi"
)

type SystemConfigs struct {
	Config *model.EnvConfig
}

// LoadConfigs reads the environment (optionally seeded from a .env file) into
// an EnvConfig. Every variable has a deterministic fallback, so an empty
// environment yields a working local configuration.
func LoadConfigs() (*SystemConfigs, error) {
	godotenv.Load()

	cfg := &model.EnvConfig{
		Port:          envOr("PORT", defaultPort),
		Environment:   envOr("ENVIRONMENT", "development"),
		AstroAPIURL:   envOr("ASTRO_API_URL", DefaultAstroAPIURL),
		AstroTimeout:  envIntOr("ASTRO_API_TIMEOUT_MS", defaultTimeoutMs),
		StoreBackend:  envOr("STORE_BACKEND", defaultStore),
		RedisURL:      os.Getenv("REDIS_URL"),
		MongoURI:      os.Getenv("MONGO_URI"),
		MongoDatabase: envOr("MONGO_DATABASE", defaultMongoDB),
		JwtSecret:     envOr("JWT_SECRET", "astrologi-dev-secret"),
	}

	return &SystemConfigs{Config: cfg}, nil
}

// LoadRuntimeConfig reads the hot-swappable settings with the same fallback
// policy.
func LoadRuntimeConfig() *model.RuntimeConfig {
	urls := strings.Split(envOr("FRONTEND_URLS", "http://localhost:3000"), ",")
	for i := range urls {
		urls[i] = strings.TrimSpace(urls[i])
	}

	return &model.RuntimeConfig{
		FrontendUrls: urls,
		RateLimiter:  envBoolOr("RATE_LIMITER", true),
		DebugMode:    envBoolOr("DEBUG", false),
	}
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return fallback
	}
	return v
}

func envBoolOr(key string, fallback bool) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return fallback
	}
	return v
}

// ConfigManager shares the runtime config between middleware and handlers and
// lets it be swapped without a restart.
type ConfigManager struct {
	value atomic.Value
}

func NewConfigManager(initial *model.RuntimeConfig) *ConfigManager {
	cm := &ConfigManager{}
	cm.value.Store(initial)
	return cm
}

func (cm *ConfigManager) GetConfig() *model.RuntimeConfig {
	return cm.value.Load().(*model.RuntimeConfig)
}

func (cm *ConfigManager) UpdateConfig(newCfg *model.RuntimeConfig) {
	cm.value.Store(newCfg)
}
