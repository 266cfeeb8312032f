package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lark/internal/config"
	"lark/internal/handler"
	"lark/internal/mq"
	"lark/internal/repository"
	"lark/internal/service"
	"lark/pkg/middleware"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Lark Short Link Service API
// @version 1.0
// @description URL shortening with click analytics

// @contact.name API Support
// @contact.url http://www.example.com/support

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /
func main() {
	// Load configuration
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Setup logger
	setupLogger(cfg.Server.Mode)

	// Background context for workers, cancelled on shutdown
	bgCtx, bgCancel := context.WithCancel(context.Background())
	defer bgCancel()

	// Initialize repositories
	redisRepo := repository.NewRedisRepository(&cfg.Database.Redis)
	defer redisRepo.Close()

	sqlRepo := repository.NewSQLRepository(&cfg.Database.SQL)
	defer sqlRepo.Close()

	// Geo lookup and enrichment
	geoSvc := service.NewGeoIPService(&cfg.GeoIP)
	defer geoSvc.Close()
	enricher := service.NewEnricher(geoSvc, cfg.Auth.IPHashSecret)

	// Initialize services
	bloomSvc := service.NewBloomService(redisRepo.GetClient(), &cfg.Bloom)
	directorySvc := service.NewDirectoryService(sqlRepo, redisRepo, bloomSvc)
	statsSvc := service.NewStatsService(sqlRepo, cfg.Stats.MaxExportRows)
	gateSvc := service.NewPublicGate(sqlRepo, statsSvc)

	// Initialize MQ (optional, can be nil)
	var mqProducer *mq.Producer
	if cfg.RocketMQ.NameServer != "" {
		mqProducer, err = mq.NewProducer(&cfg.RocketMQ)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to initialize RocketMQ producer, running without MQ")
		}
	}

	var publisher service.ClickPublisherInterface
	if mqProducer != nil {
		publisher = mqProducer
	}
	recorder := service.NewRecorder(sqlRepo, enricher, publisher, cfg.Recorder.QueueSize)
	go recorder.Start(bgCtx)

	resolverSvc := service.NewResolverService(directorySvc, recorder)

	// Expiry sweep for temporary links
	go directorySvc.StartExpirySweep(bgCtx, cfg.Sweep.Interval)

	// Setup Gin
	gin.SetMode(cfg.Server.Mode)
	router := gin.New()

	// Middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(corsMiddleware())

	// Templates for deny pages
	router.LoadHTMLGlob("templates/*")

	// Handlers
	redirectHandler := handler.NewRedirectHandler(resolverSvc)
	linksHandler := handler.NewLinksHandler(directorySvc)
	statsHandler := handler.NewStatsHandler(statsSvc, cfg.Stats.QueryTimeout)
	publicHandler := handler.NewPublicStatsHandler(gateSvc, cfg.Stats.QueryTimeout)

	// Owner API
	v1 := router.Group("/api/v1")
	authed := v1.Group("", middleware.OwnerAuth(cfg.Auth.JWTSecret))
	{
		authed.POST("/links", linksHandler.Create)
		authed.PATCH("/links/:id", linksHandler.Update)
		authed.GET("/links/:id/stats", statsHandler.LinkStats)
		authed.GET("/links/:id/events/export", statsHandler.Export)
		authed.GET("/stats", statsHandler.GlobalStats)
		authed.POST("/admin/links/:id/disable", linksHandler.Disable)
		authed.POST("/admin/links/:id/enable", linksHandler.Enable)
	}

	// Public stats (gated, unauthenticated)
	v1.GET("/public/links/:id/stats", publicHandler.Stats)

	// Redirect handler (slugs)
	router.GET("/:slug", redirectHandler.Redirect)

	// Swagger documentation
	setupSwagger(router)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":          "ok",
			"time":            time.Now().Format(time.RFC3339),
			"clicks_recorded": recorder.Recorded(),
			"clicks_dropped":  recorder.Dropped(),
			"clicks_failed":   recorder.Failed(),
		})
	})

	// Start MQ consumer if configured
	var mqConsumer *mq.Consumer
	if cfg.RocketMQ.NameServer != "" {
		mqConsumer, err = mq.NewConsumer(&cfg.RocketMQ, func(ctx context.Context, msg *mq.ClickMessage) error {
			return recorder.PersistEvent(ctx, msg.Event())
		})

		if err != nil {
			log.Warn().Err(err).Msg("Failed to initialize RocketMQ consumer")
		} else {
			go func() {
				if err := mqConsumer.Subscribe(); err != nil {
					log.Error().Err(err).Msg("Failed to subscribe to RocketMQ")
				}
			}()
			defer mqConsumer.Close()
		}
	}

	// Start server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Info().Msgf("Starting server on port %d", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// Stop background workers and the producer
	bgCancel()
	if mqProducer != nil {
		mqProducer.Close()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// setupLogger configures the logger
func setupLogger(mode string) {
	if mode == "release" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	// Use console writer for pretty output
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
}

// corsMiddleware adds CORS headers
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, PATCH, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// setupSwagger sets up Swagger UI
func setupSwagger(router *gin.Engine) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
