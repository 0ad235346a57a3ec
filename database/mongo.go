package database

import (
	"context"
	"time"

	"github.com/sahradeniz/Astrologi-Ai-sub000/config"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// InitMongoClient connects to the configured MongoDB instance and returns the
// application database. Only used when STORE_BACKEND=mongo.
func InitMongoClient(sysConfigs *config.SystemConfigs) (*mongo.Client, *mongo.Database) {
	uri := sysConfigs.Config.MongoURI
	if uri == "" {
		log.Fatal().Msg("STORE_BACKEND=mongo requires MONGO_URI")
	}

	clientOptions := options.Client().ApplyURI(uri)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Fatal().Msgf("Failed to connect to MongoDB: %v", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		log.Fatal().Msgf("Could not ping MongoDB: %v", err)
	}

	log.Info().Str("database", sysConfigs.Config.MongoDatabase).Msg("Connected to MongoDB")

	return client, client.Database(sysConfigs.Config.MongoDatabase)
}
