// File: staycalc/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"staycalc/config"
	"staycalc/handlers"
	"staycalc/middleware"
	"staycalc/routes"
	"staycalc/services/parser"
	"staycalc/services/pricing"
	"staycalc/services/quote"
	"staycalc/services/session"
	"staycalc/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer func() { _ = logger.Sync() }()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	rootCtx, stopMonitor := context.WithCancel(context.Background())
	defer stopMonitor()

	// session repository.
	var repo session.Repository
	var redisClients []*redis.Client
	if config.UsesRedis() {
		if err := utils.InitSessionCache(); err != nil {
			logger.Sugar().Fatalf("main: %v", err)
		}
		client := utils.GetSessionCacheClient()
		redisClients = append(redisClients, client)
		repo = session.NewRedisStore(client, config.AppConfig.SessionTTL)
	} else {
		repo = session.NewMemoryStore(config.AppConfig.SessionTTL)
	}
	utils.StartHealthMonitor(rootCtx, config.AppConfig.SessionStore, redisClients)

	// pricing and parsing.
	tables, err := utils.PricingTables(config.AppConfig.Pricing)
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}
	loc, err := utils.Location()
	if err != nil {
		logger.Warn("main: falling back to UTC", zap.Error(err))
	}
	maxNights := config.AppConfig.MaxNights
	analyzer := parser.NewAnalyzer(parser.DefaultLexicon(),
		parser.WithLocation(loc),
		parser.WithMaxNights(maxNights))

	// services.
	quoteService := quote.NewQuoteService(repo, analyzer, pricing.NewCalculator(tables, pricing.WithMaxNights(maxNights)), quote.Options{
		DefaultSessionID: config.AppConfig.DefaultSessionID,
		CurrencySuffix:   config.AppConfig.CurrencySuffix,
		Logger:           logger.Named("quote"),
	})
	handlerBundle := handlers.NewHandlerBundle(handlers.NewQuoteHandler(quoteService))

	// Create the Gin router.
	router := gin.New()
	if proxies := config.AppConfig.TrustedProxies; len(proxies) > 0 {
		if err := router.SetTrustedProxies(proxies); err != nil {
			logger.Sugar().Fatalf("main: invalid TRUSTED_PROXIES: %v", err)
		}
	}
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s (sessions: %s, seasons: %d)...",
		srv.Addr, config.AppConfig.SessionStore, len(tables.Rates()))
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")
	stopMonitor()

	ctx, cancel := context.WithTimeout(context.Background(), utils.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}
	for _, client := range redisClients {
		_ = client.Close()
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
