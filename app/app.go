// File: app/app.go
package app

import (
	"context"
	"database/sql"
	"member-api/config"
	"member-api/db"
	"member-api/handler"
	"member-api/logger"
	"member-api/repository"
	"member-api/router"
	"member-api/service"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
)

func Run() {
	config.LoadConfig(".")
	logger.Init()
	logger.Log.Info("Logger initialized")
	logger.Log.Info("Configuration loaded successfully")

	database, err := db.Connect()
	if err != nil {
		logger.Log.Fatalf("Error connecting to the database: %v", err)
	}
	defer database.Close()

	if err := db.RunMigrations(database, "file://db/migrations"); err != nil {
		logger.Log.Fatalf("Error running migrations: %v", err)
	}

	redisClient, err := db.ConnectRedis()
	if err != nil {
		logger.Log.Fatalf("Error connecting to redis: %v", err)
	}
	defer redisClient.Close()

	s3Client, err := db.ConnectS3(context.Background())
	if err != nil {
		logger.Log.Fatalf("Error initializing S3 client: %v", err)
	}

	vaultClient, err := db.ConnectVault()
	if err != nil {
		logger.Log.Fatalf("Error initializing Vault client: %v", err)
	}

	r, err := buildRouter(database, redisClient,
		service.NewVaultEncryptor(vaultClient, config.AppConfig.Vault.TransitKey),
		service.NewS3Storage(s3Client, config.AppConfig.S3.Bucket))
	if err != nil {
		logger.Log.Fatalf("Error wiring application: %v", err)
	}

	port := config.AppConfig.Server.Port
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		logger.Log.Infof("Server starting on port :%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Warn("Shutdown signal received. Starting graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Log.Info("Server exited properly")
}

// buildRouter constructs every layer explicitly. Collaborators are passed
// down as constructor parameters; there is no ambient lookup beyond config.
func buildRouter(database *sql.DB, redisClient *redis.Client,
	encryptor service.IEncryptor, storage service.IObjectStorage) (http.Handler, error) {
	cfg := config.AppConfig

	jwtManager, err := service.NewJWTManager(cfg.JWT.SecretKey,
		time.Duration(cfg.JWT.AccessTokenTTLSecs)*time.Second)
	if err != nil {
		return nil, err
	}
	refreshManager, err := service.NewRefreshTokenManager(cfg.RefreshToken.Password, cfg.RefreshToken.Salt)
	if err != nil {
		return nil, err
	}

	sessionStore := repository.NewRedisSessionStore(redisClient)
	tokenRepo := repository.NewTokenRepository(sessionStore,
		time.Duration(cfg.JWT.AccessTokenTTLSecs)*time.Second,
		time.Duration(cfg.RefreshToken.TTLSeconds)*time.Second)
	memberRepo := repository.NewMemberRepository(database)
	fileRepo := repository.NewFileRepository(database)

	authService := service.NewAuthService(memberRepo, tokenRepo, jwtManager, refreshManager)
	securityService := service.NewSecurityService(memberRepo, tokenRepo)
	verificationService := service.NewVerificationService(sessionStore,
		time.Duration(cfg.OTP.TTLSeconds)*time.Second,
		time.Duration(cfg.OTP.MinRetryIntervalSeconds)*time.Second)
	fileService := service.NewFileService(encryptor, storage, fileRepo)

	authMiddleware := handler.NewAuthMiddleware(jwtManager, securityService)
	authHandler := handler.NewAuthHandler(authService)
	verificationHandler := handler.NewVerificationHandler(verificationService)
	memberHandler := handler.NewMemberHandler()
	fileHandler := handler.NewFileHandler(fileService)
	healthHandler := handler.NewHealthHandler(redisClient)

	return router.NewRouter(authMiddleware, authHandler, verificationHandler,
		memberHandler, fileHandler, healthHandler), nil
}

// TestApp exposes the wired router plus its backing connections for
// integration tests.
type TestApp struct {
	DB      *sql.DB
	Redis   *redis.Client
	Handler http.Handler
}

func NewTestApp(database *sql.DB, redisClient *redis.Client,
	encryptor service.IEncryptor, storage service.IObjectStorage) (*TestApp, error) {
	r, err := buildRouter(database, redisClient, encryptor, storage)
	if err != nil {
		return nil, err
	}
	return &TestApp{DB: database, Redis: redisClient, Handler: r}, nil
}
