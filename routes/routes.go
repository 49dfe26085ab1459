package routes

import (
	"UnifyMD/agent"
	"UnifyMD/cache"
	"UnifyMD/config"
	"UnifyMD/controllers"
	"UnifyMD/events"
	"UnifyMD/handlers"
	"UnifyMD/middlewares"
	"UnifyMD/repositories"
	"UnifyMD/services"
	"UnifyMD/utils"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Dependencies are the long-lived handles built once at start-up.
type Dependencies struct {
	Config    *config.AppConfig
	DB        *gorm.DB
	Cache     *cache.Cache
	Publisher events.Publisher
	Executor  agent.Executor // nil disables chat
	Issuer    *utils.TokenIssuer
}

// SetupRoutes initializes the routes and middleware for the server
func SetupRoutes(deps Dependencies) http.Handler {
	if !deps.Config.IsDev() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middlewares.RequestLogger())
	router.Use(middlewares.NewCORS(deps.Config.CORSOrigins))
	router.Use(middlewares.SecurityHeaders())
	router.Use(middlewares.NewRateLimiterMiddleware(middlewares.RateLimiterConfig{
		RequestsPerSecond: deps.Config.RateLimitRPS,
		Burst:             deps.Config.RateLimitBurst,
	}))

	patientRepo := repositories.NewPatientRepository(deps.DB, deps.Cache)
	recordRepo := repositories.NewRecordRepository(deps.DB, deps.Cache)
	doctorRepo := repositories.NewDoctorRepository(deps.DB)

	patientService := services.NewPatientService(patientRepo, deps.Publisher)
	recordService := services.NewRecordService(recordRepo, patientRepo, deps.Publisher)
	doctorService := services.NewDoctorService(doctorRepo, deps.Publisher)

	controllers.SetupAPIRoutes(router, controllers.APIHandlers{
		Patient: handlers.NewPatientHandler(patientService),
		Record:  handlers.NewRecordHandler(recordService),
		Export:  handlers.NewExportHandler(patientService),
		Webhook: handlers.NewWebhookHandler(doctorService),
		Chat:    handlers.NewChatHandler(deps.Executor),
	}, deps.Issuer, doctorService)

	controllers.SetupRootRoute(router, deps.Config.AuthURL)

	return router
}
