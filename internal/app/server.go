// internal/app/server.go
package app

import (
	"context"
	"fmt"
	"log"

	"humsafar-service/internal/config"
	"humsafar-service/internal/db"
	catalogHandler "humsafar-service/internal/handlers/catalog"
	contractHandler "humsafar-service/internal/handlers/contract"
	identityHandler "humsafar-service/internal/handlers/identity"
	profileHandler "humsafar-service/internal/handlers/profile"
	referenceHandler "humsafar-service/internal/handlers/reference"
	vehicleHandler "humsafar-service/internal/handlers/vehicle"
	"humsafar-service/internal/middleware"
	"humsafar-service/internal/pkg/cache"
	"humsafar-service/internal/pkg/jwt"
	"humsafar-service/internal/repository/postgres"
	catalogUsecase "humsafar-service/internal/service/catalog"
	contractUsecase "humsafar-service/internal/service/contract"
	identityUsecase "humsafar-service/internal/service/identitymirror"
	profileUsecase "humsafar-service/internal/service/profile"
	vehicleUsecase "humsafar-service/internal/service/vehicle"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Server struct {
	cfg    config.AppConfig
	engine *gin.Engine
	logger *zap.Logger
}

func NewServer() *Server {
	cfg := config.Load()
	engine := gin.New()
	return &Server{cfg: cfg, engine: engine}
}

func (s *Server) Start() error {
	ctx := context.Background()

	// ----- Logger -----
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer logger.Sync()
	s.logger = logger

	// ----- PostgreSQL -----
	pool, err := db.ConnectDB(ctx, s.cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	if err := postgres.RunMigrations(ctx, pool); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// ----- Redis -----
	redisClient, err := db.NewRedisClient(db.RedisConfig{
		Addr:     s.cfg.RedisAddr,
		Password: s.cfg.RedisPass,
		DB:       s.cfg.RedisDB,
		PoolSize: 10,
	})
	if err != nil {
		// The catalog cache is an optimization; the service still works
		// without it.
		logger.Warn("redis unavailable, catalog cache disabled", zap.Error(err))
		redisClient = nil
	}
	catalogCache := cache.New(redisClient, s.cfg.CatalogCacheTTL)

	// ----- JWT Verifier -----
	verifier, err := jwt.LoadVerifier(s.cfg.JWT)
	if err != nil {
		return fmt.Errorf("failed to load JWT verifier: %w", err)
	}

	// ----- Repositories -----
	identityRepo := postgres.NewIdentityRepository(pool)
	profileRepo := postgres.NewProfileRepository(pool)
	modelRepo := postgres.NewVehicleModelRepository(pool)
	vehicleRepo := postgres.NewVehicleRepository(pool)
	contractRepo := postgres.NewContractRepository(pool)

	// ----- Services -----
	identityService := identityUsecase.NewIdentityService(identityRepo, logger)
	profileService := profileUsecase.NewProfileService(profileRepo, identityRepo, logger)
	catalogService := catalogUsecase.NewCatalogService(modelRepo, identityRepo, catalogCache, logger)
	vehicleService := vehicleUsecase.NewVehicleService(vehicleRepo, modelRepo, identityRepo, logger)
	contractService := contractUsecase.NewContractService(contractRepo, vehicleRepo, profileRepo, identityRepo, logger)

	// ----- Handlers -----
	referenceHandlerInst := referenceHandler.NewReferenceHandler()
	identityHandlerInst := identityHandler.NewIdentityHandler(identityService)
	profileHandlerInst := profileHandler.NewProfileHandler(profileService)
	catalogHandlerInst := catalogHandler.NewCatalogHandler(catalogService)
	vehicleHandlerInst := vehicleHandler.NewVehicleHandler(vehicleService)
	contractHandlerInst := contractHandler.NewContractHandler(contractService)

	// ----- Middlewares -----
	authMiddleware := middleware.NewAuthMiddleware(verifier, identityService)

	s.engine.Use(
		middleware.RecoveryMiddleware(logger),
		middleware.LoggingMiddleware(logger),
		middleware.CORSMiddleware(),
	)

	// ----- Router -----
	handlers := &Handlers{
		ReferenceHandler: referenceHandlerInst,
		IdentityHandler:  identityHandlerInst,
		ProfileHandler:   profileHandlerInst,
		CatalogHandler:   catalogHandlerInst,
		VehicleHandler:   vehicleHandlerInst,
		ContractHandler:  contractHandlerInst,
		AuthMiddleware:   authMiddleware,
	}
	SetupRouter(s.engine, handlers)

	// ----- Start HTTP -----
	log.Printf("server running on %s", s.cfg.HTTPAddr)
	return s.engine.Run(s.cfg.HTTPAddr)
}
