package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	bakeryhttp "bakerydir/internal/bakery/delivery/http"
	bakeryrepo "bakerydir/internal/bakery/repository"
	bakeryquery "bakerydir/internal/bakery/usecase/query"
	"bakerydir/internal/config"
	favoritehttp "bakerydir/internal/favorite/delivery/http"
	favoriterepo "bakerydir/internal/favorite/repository"
	favoritecommand "bakerydir/internal/favorite/usecase/command"
	favoritequery "bakerydir/internal/favorite/usecase/query"
	"bakerydir/internal/middleware"
	ratinghttp "bakerydir/internal/rating/delivery/http"
	ratingrepo "bakerydir/internal/rating/repository"
	ratingcommand "bakerydir/internal/rating/usecase/command"
	ratingquery "bakerydir/internal/rating/usecase/query"
	scrapingclient "bakerydir/internal/scraping/client"
	scrapinghttp "bakerydir/internal/scraping/delivery/http"
	userhttp "bakerydir/internal/user/delivery/http"
	userrepo "bakerydir/internal/user/repository"
	usercommand "bakerydir/internal/user/usecase/command"
	userquery "bakerydir/internal/user/usecase/query"
	"bakerydir/kafka"
	"bakerydir/pkg/auth"
	"bakerydir/pkg/database"
	"bakerydir/pkg/logger"
	"bakerydir/pkg/tracing"
)

const serviceName = "bakerydir-api"

// requestTimeout bounds every request. The scraping webhook client carries
// its own 10s timeout, so this stays above it.
const requestTimeout = 12 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Init(serviceName, true)
		logger.Logger.Fatal().Err(err).Msg("Invalid configuration")
	}

	logger.Init(serviceName, cfg.IsDevelopment())
	logger.SetLevel(cfg.LogLevel)

	tp, err := tracing.InitTracer(serviceName, cfg.JaegerEndpoint)
	if err != nil {
		logger.Logger.Warn().Err(err).Msg("Tracing disabled")
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracing.Shutdown(ctx, tp); err != nil {
				logger.Logger.Warn().Err(err).Msg("Tracer shutdown failed")
			}
		}()
	}

	db, err := database.NewGormConnection(cfg.Database)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
	}
	defer sqlDB.Close()

	// Repositories
	users := userrepo.NewTracingUserRepository(db)
	bakeries := bakeryrepo.NewGormBakeryRepository(db)
	favorites := favoriterepo.NewGormFavoriteRepository(db)
	ratings := ratingrepo.NewTracingRatingRepository(db)

	for _, migrate := range []func() error{
		users.AutoMigrate, bakeries.AutoMigrate, favorites.AutoMigrate, ratings.AutoMigrate,
	} {
		if err := migrate(); err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
		}
	}

	// Optional Redis cache in front of the bakery listing
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			logger.Logger.Warn().Err(err).Msg("Redis unreachable, caching disabled")
			redisClient = nil
		}
	}
	cachedBakeries := bakeryrepo.NewCachedBakeryRepository(bakeries, redisClient)

	// Optional Kafka publisher for domain events
	var publisher *kafka.Publisher
	if len(cfg.KafkaBrokers) > 0 {
		publisher, err = kafka.NewPublisher(cfg.KafkaBrokers)
		if err != nil {
			logger.Logger.Warn().Err(err).Msg("Kafka unreachable, events disabled")
			publisher = nil
		} else {
			defer publisher.Close()
		}
	}

	tokens := auth.NewTokenManager(cfg.JWTSecret)

	// Handlers
	authHandler := userhttp.NewAuthHandler(
		usercommand.NewRegisterUserHandler(users, tokens, publisher),
		usercommand.NewLoginUserHandler(users, tokens),
		userquery.NewGetProfileHandler(users),
		tokens,
	)
	bakeryHandler := bakeryhttp.NewBakeryHandler(
		bakeryquery.NewListBakeriesHandler(cachedBakeries),
	)
	favoriteHandler := favoritehttp.NewFavoriteHandler(
		favoritecommand.NewAddFavoriteHandler(favorites),
		favoritecommand.NewRemoveFavoriteHandler(favorites),
		favoritequery.NewListFavoritesHandler(favorites),
		tokens,
	)
	ratingHandler := ratinghttp.NewRatingHandler(
		ratingcommand.NewSubmitRatingHandler(ratings, cachedBakeries, publisher),
		ratingquery.NewGetMyRatingHandler(ratings),
		tokens,
	)
	scrapingHandler := scrapinghttp.NewScrapingHandler(
		scrapingclient.NewClient(cfg.N8NWebhookURL),
		tokens,
	)

	router := mux.NewRouter()
	router.Use(middleware.Logging, middleware.Metrics, middleware.Timeout(requestTimeout))

	authHandler.RegisterRoutes(router)
	bakeryHandler.RegisterRoutes(router)
	favoriteHandler.RegisterRoutes(router)
	ratingHandler.RegisterRoutes(router)
	scrapingHandler.RegisterRoutes(router)

	router.HandleFunc("/api/health", healthCheck).Methods("GET")
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")
	router.PathPrefix("/").Handler(spaHandler{staticDir: cfg.StaticDir})

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      otelhttp.NewHandler(c.Handler(router), serviceName),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		logger.Logger.Info().Str("port", cfg.Port).Msg("Server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal().Err(err).Msg("Server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Logger.Error().Err(err).Msg("Forced shutdown")
	}
}

// healthCheck handles GET /api/health
func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok","message":"Bakery Management System API is running"}`))
}

// spaHandler serves the static frontend. Unknown API paths get a JSON 404;
// every other unknown path falls back to index.html for client-side routing.
type spaHandler struct {
	staticDir string
}

func (h spaHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, "/api") {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"success":false,"message":"API route not found"}`))
		return
	}

	path := filepath.Join(h.staticDir, filepath.Clean("/"+r.URL.Path))
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		http.ServeFile(w, r, path)
		return
	}

	http.ServeFile(w, r, filepath.Join(h.staticDir, "index.html"))
}
