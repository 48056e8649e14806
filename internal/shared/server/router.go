package server

import (
	"context"
	"database/sql"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	googleauth "atscan-backend/internal/auth"
	"atscan-backend/internal/llm"
	"atscan-backend/internal/llm/gemini"
	"atscan-backend/internal/reports"
	"atscan-backend/internal/scan"
	"atscan-backend/internal/shared/config"
	"atscan-backend/internal/shared/metrics"
	"atscan-backend/internal/shared/server/middleware"
	"atscan-backend/internal/shared/server/respond"
	"atscan-backend/internal/shared/storage/db"
	"atscan-backend/internal/shared/storage/object"
	localstore "atscan-backend/internal/shared/storage/object/local"
	s3store "atscan-backend/internal/shared/storage/object/s3"
	"atscan-backend/internal/usage"
	"atscan-backend/internal/users"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.Auth(cfg.Env),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules: map[string]middleware.RateLimitRule{
				"SCAN": {Rate: 0.2, Burst: 3},
			},
			GroupFor: func(c *gin.Context) string {
				if c.Request.Method == http.MethodPost && c.FullPath() == "/api/v1/scan-resume" {
					return "SCAN"
				}
				return ""
			},
		}),
	)

	// Dependencies
	store := newObjectStore(cfg)
	var sqlDB *sql.DB
	if cfg.DatabaseURL != "" {
		dbConn, err := db.Connect(context.Background(), cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
		if err != nil {
			log.Printf("failed to connect database, falling back to memory: %v", err)
		} else {
			if err := db.RunMigrations(context.Background(), dbConn); err != nil {
				log.Printf("failed to run migrations, falling back to memory: %v", err)
				dbConn = nil
			}
		}
		sqlDB = dbConn
	}

	var userRepo users.Repo
	if sqlDB != nil {
		userRepo = &users.PGRepo{DB: sqlDB}
	} else {
		userRepo = users.NewMemoryRepo()
	}
	userSvc := users.NewService(userRepo)
	userHandler := users.NewHandler(userSvc)

	var usageSvc *usage.Service
	if sqlDB != nil {
		usageSvc = usage.NewPostgresService(usage.NewPGStore(sqlDB, cfg.ScanLimit))
	} else {
		usageSvc = usage.NewService(cfg.ScanLimit)
	}
	usageHandler := usage.NewHandler(usageSvc)

	var reportRepo reports.Repo
	if sqlDB != nil {
		reportRepo = &reports.PGRepo{DB: sqlDB}
	} else {
		reportRepo = reports.NewMemoryRepo()
	}
	reportSvc := reports.NewService(reportRepo, cfg.ScanLimit)
	reportHandler := reports.NewHandler(reportSvc)

	scanHandler := scan.NewHandler(scan.NewPipeline(newGenerator(cfg)), usageSvc, store)

	googleAuthSvc := googleauth.NewGoogleService(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURL, cfg.UIRedirectURL, userSvc)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	googleAuthSvc.RegisterRoutes(api)
	userHandler.RegisterRoutes(api)
	scanHandler.RegisterRoutes(api)
	reportHandler.RegisterRoutes(api)
	usageHandler.RegisterRoutes(api)
	if cfg.Env == "dev" {
		dev := api.Group("/dev")
		usageHandler.RegisterDevRoutes(dev)
	}

	return r
}

// newGenerator selects the model client. Without an API key the scan
// endpoint stays up but every scan fails with a configuration error.
func newGenerator(cfg config.Config) llm.Client {
	if cfg.GeminiAPIKey == "" {
		log.Printf("GEMINI_API_KEY not set, scans will be rejected")
		return llm.PlaceholderClient{}
	}
	client, err := gemini.New(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Printf("failed to init gemini client, scans will be rejected: %v", err)
		return llm.PlaceholderClient{}
	}
	return client
}

func newObjectStore(cfg config.Config) object.ObjectStore {
	if cfg.ObjectStoreType == "s3" {
		store, err := s3store.New(context.Background(), cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
		if err != nil {
			log.Printf("failed to init s3 store, falling back to local: %v", err)
		} else {
			return store
		}
	}
	return localstore.New(cfg.LocalStoreDir)
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
