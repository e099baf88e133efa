package main

import (
	"database/sql"
	"net/http"
	"os"

	"translation-service/internal/auth"
	"translation-service/internal/config"
	"translation-service/internal/publisher"
	"translation-service/internal/repository"
	"translation-service/internal/server"
	"translation-service/internal/service"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	log "github.com/sirupsen/logrus"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func main() {
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})

	log.SetOutput(os.Stdout)
	log.SetLevel(log.DebugLevel)

	if err := godotenv.Load(); err != nil {
		log.Warn("Could not load .env file.")
	}

	cfg, err := config.Load()
	if err != nil {
		log.WithField("error", err).Fatal("Could not load configuration")
	}

	log.Info("Starting database migration...")
	m, err := migrate.New("file://db/migrations", cfg.DB.URL)
	if err != nil {
		log.WithField("error", err).Fatal("Could not create migrate instance")
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		log.WithField("error", err).Fatal("Could not apply migration")
	}
	log.Info("Database migration finished successfully.")

	db, err := sql.Open("postgres", cfg.DB.URL)
	if err != nil {
		log.WithField("error", err).Fatal("Could not connect to the database")
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.DB.MaxOpenConns)
	db.SetMaxIdleConns(cfg.DB.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.DB.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.DB.ConnMaxIdleTime)

	if err := db.Ping(); err != nil {
		log.WithField("error", err).Fatal("Could not ping the database")
	}
	log.Info("Successfully connected to the PostgreSQL database.")

	// Create repositories
	langTagRepo := repository.NewPostgresLangTagRepository(db)
	businessTagRepo := repository.NewPostgresBusinessTagRepository(db)
	translationRepo := repository.NewPostgresTranslationRepository(db)
	userRepo := repository.NewPostgresUserRepository(db)
	apiLogRepo := repository.NewPostgresApiLogRepository(db)

	// Create services
	tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.TTL)
	langTagService := service.NewLangTagService(langTagRepo)
	businessTagService := service.NewBusinessTagService(businessTagRepo)
	translationService := service.NewTranslationService(translationRepo, langTagRepo)
	authService := service.NewAuthService(userRepo, tokens)
	apiLogService := service.NewApiLogService(apiLogRepo)

	// Audit recording: DB always, Kafka mirror only when brokers are set.
	var auditPublisher service.EventPublisher
	if cfg.Kafka.Brokers != "" {
		p, err := publisher.NewAuditPublisher(cfg.Kafka.Brokers, cfg.Kafka.AuditTopic)
		if err != nil {
			log.WithField("error", err).Fatal("Could not create audit publisher")
		}
		defer p.Close()
		auditPublisher = p
	}
	resolver := service.NewActorResolver(tokens, userRepo)
	auditService := service.NewAuditService(resolver, apiLogService, auditPublisher)

	// Create server
	srv := server.NewServer(
		langTagService,
		businessTagService,
		translationService,
		authService,
		apiLogService,
		tokens,
		db,
	)

	// Setup Echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowCredentials: true,
	}))
	e.Use(server.Audit(auditService, server.AuditOptions{
		ExcludePaths: cfg.Audit.ExcludePaths,
		MethodsToLog: cfg.Audit.MethodsToLog,
	}))

	e.GET("/", srv.Root)
	e.GET("/health", srv.HealthCheck)

	api := e.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.POST("/register", srv.Register)
	authGroup.POST("/login", srv.Login)

	langTags := api.Group("/lang-tags")
	langTags.GET("", srv.ListLangTags)
	langTags.POST("", srv.CreateLangTag)
	langTags.GET("/:id", srv.GetLangTag)
	langTags.PUT("/:id", srv.UpdateLangTag)
	langTags.DELETE("/:id", srv.DeleteLangTag)

	businessTags := api.Group("/business-tags")
	businessTags.GET("", srv.ListBusinessTags)
	businessTags.POST("", srv.CreateBusinessTag)
	businessTags.GET("/:id", srv.GetBusinessTag)
	businessTags.PUT("/:id", srv.UpdateBusinessTag)
	businessTags.DELETE("/:id", srv.DeleteBusinessTag)

	translations := api.Group("/translations")
	translations.GET("", srv.ListTranslations)
	translations.POST("", srv.CreateTranslation)
	translations.GET("/export/json/:id", srv.ExportTranslation)
	translations.GET("/:id", srv.GetTranslation)
	translations.PUT("/:id", srv.UpdateTranslation)
	translations.DELETE("/:id", srv.DeleteTranslation)

	apiLogs := api.Group("/api-logs")
	apiLogs.GET("", srv.ListApiLogs)
	apiLogs.GET("/stats", srv.ApiLogStats)
	apiLogs.DELETE("/clear-old", srv.ClearOldApiLogs)
	apiLogs.DELETE("/clear-all", srv.ClearAllApiLogs)

	log.WithField("port", cfg.Port).Info("Translation service is starting with Echo")

	if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
		log.WithField("error", err).Fatal("Echo server failed to start")
	}
}
