package app

import (
	"database/sql"
	"fmt"

	"go-erp/internal/auth"
	"go-erp/internal/bootstrap"
	"go-erp/internal/config"
	"go-erp/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App owns the infrastructure handles shared by the HTTP modules.
type App struct {
	Router *gin.Engine

	cfg    *config.Config
	logger *zap.Logger
	gormDB *gorm.DB
	sqlDB  *sql.DB
	rdb    *redis.Client
}

func BuildApp(cfg *config.Config, logger *zap.Logger) (*App, error) {
	log := logger.Named("app")

	gormDB, err := connection.ConnectGORMWithRetry(cfg.DB, log)
	if err != nil {
		return nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}

	rdb, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, cfg.DB.MaxRetries, log)
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	tokens, err := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, logger)
	if err != nil {
		_ = rdb.Close()
		_ = sqlDB.Close()
		return nil, fmt.Errorf("token manager: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	router, api := bootstrap.NewRouter(bootstrap.RouterConfig{
		Production:  cfg.IsProduction(),
		CORSOrigins: cfg.CORSOrigins,
		Tokens:      tokens,
		Registry:    reg,
	}, logger)

	a := &App{
		Router: router,
		cfg:    cfg,
		logger: logger,
		gormDB: gormDB,
		sqlDB:  sqlDB,
		rdb:    rdb,
	}
	if err := a.registerModules(api, tokens); err != nil {
		a.Close()
		return nil, err
	}

	log.Info("modules registered")
	return a, nil
}

func (a *App) Close() {
	if err := a.rdb.Close(); err != nil {
		a.logger.Warn("close redis failed", zap.Error(err))
	}
	if err := a.sqlDB.Close(); err != nil {
		a.logger.Warn("close database failed", zap.Error(err))
	}
}
