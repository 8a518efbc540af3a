// Command respond-server is a small page server demonstrating the
// response builder end to end: pages are built with cache headers,
// stored in Redis keyed by route, and served from the cache while
// fresh. Prometheus metrics are exposed on /metrics.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/tobfell/respond/pkg/cache"
	"github.com/tobfell/respond/pkg/logging"
	"github.com/tobfell/respond/pkg/respond"
	"github.com/tobfell/respond/pkg/status"
)

// pages is the static content the demo serves.
var pages = map[string]string{
	"welcome": "<h1>Welcome</h1><p>Served by respond-server.</p>",
	"about":   "<h1>About</h1><p>A fluent response builder demo.</p>",
	"docs":    "<h1>Docs</h1><p>See pkg/respond for the builder API.</p>",
}

// server holds the handler dependencies.
type server struct {
	cache         *cache.Manager
	cacheDuration string
	logger        zerolog.Logger
}

func main() {
	// Configuration from environment
	redisURL := getEnv("REDIS_URL", "localhost:6379")
	port := getEnv("PORT", "8080")
	logLevel := getEnv("LOG_LEVEL", "info")
	cacheDuration := getEnv("PAGE_CACHE_DURATION", "+1 day")

	logger := logging.Setup(logging.Config{
		Level:  logging.LogLevel(logLevel),
		Output: os.Stderr,
	})
	logger = logger.With().Str("component", "respond-server").Logger()

	// Setup Redis
	redisClient := redis.NewClient(&redis.Options{
		Addr: redisURL,
	})

	ctx := context.Background()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Fatal().Err(err).Str("redis_url", redisURL).Msg("Failed to connect to Redis")
	}
	logger.Info().Str("redis_url", redisURL).Msg("Connected to Redis")

	srv := &server{
		cache:         cache.NewManager(redisClient),
		cacheDuration: cacheDuration,
		logger:        logger,
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(requestID)

	e.GET("/health", handleHealth)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/pages/:name", srv.handlePage)

	logger.Info().Str("port", port).Str("cache_duration", cacheDuration).Msg("Starting respond-server")
	if err := e.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal().Err(err).Msg("Server failed")
	}
}

// requestID assigns an X-Request-ID to requests that lack one.
func requestID(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.Request().Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Response().Header().Set("X-Request-ID", id)
		c.Set("request_id", id)
		return next(c)
	}
}

func handleHealth(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// handlePage serves a page, preferring the Redis copy while it is fresh.
// Cache errors degrade to rebuilding the page; they never fail requests.
func (s *server) handlePage(c echo.Context) error {
	name := c.Param("name")
	key := cache.Key{
		Route: c.Request().URL.Path,
		Query: c.QueryParams(),
	}

	logger := s.logger.With().
		Str("route", key.Route).
		Str("request_id", requestIDOf(c)).
		Logger()

	if entry, err := s.cache.Get(c.Request().Context(), key); err == nil {
		logger.Debug().
			Bool("cache_hit", true).
			Dur("ttl", entry.TTL()).
			Msg("Serving cached page")
		return entry.ToResponse().Write(c.Response())
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		logger.Warn().Err(err).Msg("Cache get error")
	}

	body, ok := pages[name]
	if !ok {
		logger.Info().Int("status", status.NotFound.Int()).Msg("Unknown page")
		notFound := respond.New().
			WithStatus(status.NotFound).
			WithDisabledCache().
			WithBody("<h1>404</h1><p>No such page.</p>").
			Build()
		return notFound.Write(c.Response())
	}

	resp := respond.New().
		WithCache(s.cacheDuration).
		WithBody(body).
		Build()

	if entry, err := cache.FromResponse(resp); err == nil {
		if err := s.cache.Set(c.Request().Context(), key, entry); err != nil {
			logger.Warn().Err(err).Msg("Failed to cache page")
		} else {
			logger.Debug().Dur("ttl", entry.TTL()).Msg("Cached page")
		}
	}

	logger.Debug().
		Bool("cache_hit", false).
		Int("status", resp.Status.Int()).
		Msg("Serving built page")
	return resp.Write(c.Response())
}

func requestIDOf(c echo.Context) string {
	if id, ok := c.Get("request_id").(string); ok {
		return id
	}
	return ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
