package main

import (
	"runtime"

	"github.com/sahradeniz/Astrologi-Ai-sub000/auth"
	"github.com/sahradeniz/Astrologi-Ai-sub000/config"
	"github.com/sahradeniz/Astrologi-Ai-sub000/database"
	_ "github.com/sahradeniz/Astrologi-Ai-sub000/docs"
	"github.com/sahradeniz/Astrologi-Ai-sub000/routes"
	"github.com/sahradeniz/Astrologi-Ai-sub000/store"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// @title        Astrologi AI API
// @version      1.0
// @description  Birth chart, synastry, horoscope and chat gateway for the Astrologi AI app.
// @BasePath     /api
func main() {
	runtime.GOMAXPROCS(runtime.NumCPU())
	sysConfigs, err := config.LoadConfigs()
	if err != nil {
		log.Fatal().AnErr("Error loading configuration: ", err)
	}

	if sysConfigs.Config.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	auth.SecretKey = []byte(sysConfigs.Config.JwtSecret)

	st := buildStore(sysConfigs)
	cfgManager := config.NewConfigManager(config.LoadRuntimeConfig())

	router := routes.SetupRouter(st, sysConfigs, cfgManager)

	port := sysConfigs.Config.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := router.Run("0.0.0.0:" + port); err != nil {
		log.Fatal().AnErr("Server failed to start: ", err)
	}
}

func buildStore(sysConfigs *config.SystemConfigs) store.Store {
	switch sysConfigs.Config.StoreBackend {
	case "redis":
		return store.NewRedisStore(database.InitRedis(sysConfigs.Config.RedisURL))
	case "mongo":
		_, db := database.InitMongoClient(sysConfigs)
		return store.NewMongoStore(db)
	default:
		return store.NewMemoryStore()
	}
}

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.With().Logger()
}
