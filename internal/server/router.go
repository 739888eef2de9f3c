package server

import (
	"AudioRecordingServer/internal/config"
	"AudioRecordingServer/internal/handler"
	"AudioRecordingServer/internal/middleware"

	_ "AudioRecordingServer/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func NewRouter(cfg config.Config, recordings *handler.RecordingHandler) *gin.Engine {
	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.MaxMultipartMemory = cfg.MaxMultipartBytes

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	// "*"는 Authorization을 포함하지 않으므로 따로 명시
	corsConfig.AllowHeaders = []string{"*", "Authorization"}
	router.Use(cors.New(corsConfig))

	router.GET("/", handler.Home)

	rateLimit := middleware.RateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst)
	api := router.Group("/api").Use(rateLimit)
	{
		api.POST("/recordings", recordings.UploadRecording)
		api.GET("/recordings", recordings.ListRecordings)
	}

	router.GET("/ws/recordings", rateLimit, recordings.StreamRecording)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}
