package model

// Response is the standard JSON envelope of every endpoint.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// EnvConfig holds the environment-driven settings
// @Description Private configuration (usually not exposed in public endpoints)
type EnvConfig struct {
	Port          string `json:"port"`
	Environment   string `json:"environment"`
	AstroAPIURL   string `json:"astroApiUrl"`
	AstroTimeout  int    `json:"astroTimeoutMs"`
	StoreBackend  string `json:"storeBackend"`
	RedisURL      string `json:"redisUrl"`
	MongoURI      string `json:"mongoUri"`
	MongoDatabase string `json:"mongoDatabase"`
	JwtSecret     string `json:"jwtSecret"`
}

// RuntimeConfig is the hot-swappable part of the configuration, shared
// through config.ConfigManager.
type RuntimeConfig struct {
	FrontendUrls []string `json:"frontendUrls"`
	RateLimiter  bool     `json:"rateLimiter"`
	DebugMode    bool     `json:"debug"`
}
