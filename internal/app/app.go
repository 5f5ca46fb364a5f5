package app

import (
	"context"
	"database/sql"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/agiletchat/auth-service/config"
	"github.com/agiletchat/auth-service/internal/repository"
	"github.com/agiletchat/auth-service/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

func Run(logger *zap.Logger, cfg *config.Config) error {
	db, err := sql.Open("postgres", cfg.DatabaseUrl)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	} else {
		logger.Info("Connected to database")
	}
	defer func() {
		err := db.Close()
		if err != nil {
			logger.Error("Connection to database was closed with error", zap.Error(err))
		}
	}()

	/* Ограничиваем пул соединений: хэндлеры не держат ничего общего,
	 * кроме соединения из этого пула. */
	maxOpen, maxIdle := cfg.Pool.MaxOpenConns, cfg.Pool.MaxIdleConns
	if maxOpen <= 0 {
		maxOpen = 10
	}
	if maxIdle <= 0 {
		maxIdle = 5
	}
	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxIdle)
	db.SetConnMaxIdleTime(5 * time.Minute)

	if err := repository.Migrate(context.Background(), db); err != nil {
		logger.Fatal("Failed to apply migrations", zap.Error(err))
	}

	userRepo := repository.NewUserRepository(logger, db)
	authService := service.NewAuthService(logger, cfg, userRepo)

	router := chi.NewRouter()

	// Это нагромождение выдаёт в RemoteAddr ip-адрес до переадресаций без порта
	router.Use(middleware.RealIP)
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			port := strings.Index(r.RemoteAddr, ":")
			if port != -1 {
				r.RemoteAddr = r.RemoteAddr[:port]
			}
			next.ServeHTTP(w, r)
		})
	})

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	/* Паника в хэндлере превращается в общий JSON 500 без деталей */
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("Panic in handler", zap.Any("panic", rec),
						zap.String("ip", r.RemoteAddr))
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					w.Write([]byte(`{"message":"Internal server error"}`))
				}
			}()
			next.ServeHTTP(w, r)
		})
	})

	/* Устанавливаем свой логгер запросов в дебаг режиме */
	if cfg.Env == "DEV" {
		router.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				logger.Debug("Request to "+r.RequestURI, zap.String("ip", r.RemoteAddr))
				next.ServeHTTP(w, r)
			})
		})
	}

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"Route not found"}`))
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusMethodNotAllowed)
		w.Write([]byte(`{"message":"Method not allowed"}`))
	})

	router.Get("/", authService.HandleDocs)
	router.Get("/health", authService.HandleHealth)
	router.Post("/api/register", authService.HandleRegister)
	router.Post("/api/login", authService.HandleLogin)
	router.Group(func(r chi.Router) {
		r.Use(authService.Authenticate)
		r.Get("/api/user", authService.HandleProfile)
	})

	serverAddress := cfg.Host + ":" + strconv.Itoa(cfg.Port)

	logger.Info("Will serve on " + serverAddress)
	return http.ListenAndServe(serverAddress, router)
}
