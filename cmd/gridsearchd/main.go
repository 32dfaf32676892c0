// Command gridsearchd serves the grid search engine over HTTP.
package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/katalvlaran/gridsearch/internal/api"
	"github.com/katalvlaran/gridsearch/internal/api/gridapi"
	"github.com/katalvlaran/gridsearch/internal/config"
	"github.com/katalvlaran/gridsearch/internal/session"
	"github.com/katalvlaran/gridsearch/internal/store"
)

// Global variables for dependencies
var (
	cfg            config.Config
	redisClient    *redis.Client
	layoutStore    store.Store
	sessionManager *session.Manager
	gridController api.Controller
	router         *api.Router
)

func logInfo(format string, args ...any) {
	log.Printf(config.LogInfoColor+"[APP] [INFO]"+config.LogColorReset+" "+format, args...)
}

func logError(format string, args ...any) {
	log.Printf(config.LogErrorColor+"[APP] [ERROR]"+config.LogColorReset+" "+format, args...)
}

func initConfig() {
	var err error
	cfg, err = config.Load()
	if err != nil {
		logError("Loading configuration: %v", err)
		os.Exit(1)
	}
	gin.SetMode(cfg.GinMode)
	logInfo("Configuration loaded")
}

func initStore(ctx context.Context) {
	if cfg.RedisAddr == "" {
		layoutStore = store.NewMemoryStore()
		logInfo("REDIS_ADDR not set, layouts kept in memory")
		return
	}

	redisClient = redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logError("Redis ping failed: %v", err)
		os.Exit(1)
	}
	layoutStore = store.NewRedisStore(redisClient, cfg.LayoutTTLSeconds)
	logInfo("Connected to Redis at %s", cfg.RedisAddr)
}

func initSessionManager() {
	sessionManager = session.NewManager(cfg.MaxGridDim)
	logInfo("Session manager initialized (max grid %dx%d)", cfg.MaxGridDim, cfg.MaxGridDim)
}

func initGridController() {
	var err error
	gridController, err = gridapi.NewGridController(sessionManager, layoutStore)
	if err != nil {
		logError("Creating grid controller: %v", err)
		os.Exit(1)
	}
	logInfo("Grid controller initialized")
}

func initRouter() {
	router = api.NewRouter(api.Config{
		Addr:        cfg.Addr(),
		BaseURL:     "/api",
		Controllers: []api.Controller{gridController},
	})
	logInfo("Router initialized on %s", cfg.Addr())
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	initConfig()
	initStore(ctx)
	if redisClient != nil {
		defer redisClient.Close()
	}
	initSessionManager()
	initGridController()
	initRouter()

	if err := router.Run(); err != nil {
		logError("Starting server: %v", err)
		os.Exit(1)
	}
}
