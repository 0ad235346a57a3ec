package database

import (
	"context"
	"crypto/tls"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// InitRedis connects to the configured Redis/Valkey instance. Only used when
// STORE_BACKEND=redis.
func InitRedis(url string) *redis.Client {
	opts, err := redis.ParseURL(url)
	if err != nil {
		log.Fatal().Msgf("Invalid Redis URL: %v", err)
	}

	if opts.TLSConfig != nil {
		opts.TLSConfig.MinVersion = tls.VersionTLS12
	}

	client := redis.NewClient(opts)

	if _, err := client.Ping(context.Background()).Result(); err != nil {
		log.Fatal().Msgf("Could not connect to Redis/Valkey: %v", err)
	}

	log.Info().Msg("Connected to Redis/Valkey")
	return client
}
