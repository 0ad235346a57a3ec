package routes

import (
	"time"

	"github.com/sahradeniz/Astrologi-Ai-sub000/client"
	"github.com/sahradeniz/Astrologi-Ai-sub000/config"
	"github.com/sahradeniz/Astrologi-Ai-sub000/controller"
	"github.com/sahradeniz/Astrologi-Ai-sub000/middleware"
	"github.com/sahradeniz/Astrologi-Ai-sub000/service"
	"github.com/sahradeniz/Astrologi-Ai-sub000/store"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRouter(st store.Store, sysCfg *config.SystemConfigs, cfgManager *config.ConfigManager) *gin.Engine {
	r := gin.Default()

	r.Use(middleware.CORS(cfgManager))
	r.Use(middleware.RateLimiter(cfgManager))

	isProduction := sysCfg.Config.Environment == "production"
	timeout := time.Duration(sysCfg.Config.AstroTimeout) * time.Millisecond

	// --- 1. Clients ---
	astroClient := client.NewAstroClient(sysCfg.Config.AstroAPIURL, timeout)
	userClient := client.NewUserClient(sysCfg.Config.AstroAPIURL, timeout)

	// --- 2. Services (Dependency Injection) ---
	chartSvc := service.NewChartService(astroClient, st)
	friendSvc := service.NewFriendService(st)
	synastrySvc := service.NewSynastryService(astroClient, st, friendSvc)
	horoscopeSvc := service.NewHoroscopeService(astroClient)
	userSvc := service.NewUserService(userClient, st)
	chatSvc := service.NewChatService(userClient, st)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// --- 3. Routes & Controllers ---
	api := r.Group("/api")
	{
		controller.NewHealthController().RegisterRoutes(api)
		controller.NewChartController(chartSvc).RegisterRoutes(api)
		controller.NewSynastryController(synastrySvc).RegisterRoutes(api)
		controller.NewHoroscopeController(horoscopeSvc).RegisterRoutes(api)
		controller.NewFriendController(friendSvc).RegisterRoutes(api)
		controller.NewAuthController(userSvc, isProduction).RegisterRoutes(api)
		controller.NewChatController(chatSvc, isProduction).RegisterRoutes(api)
	}

	return r
}
