package main

import (
	"go-crm/internal/bootstrap"
	"go-crm/internal/config"
	"go-crm/internal/migrations"
	"go-crm/internal/shared/connection"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	logger, err := bootstrap.NewLogger(cfg.IsProduction(), "migrate")
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	gormDB, err := connection.ConnectGORMWithRetry(cfg.PostgresDSN(), 5)
	if err != nil {
		logger.Fatal("connect database failed", zap.Error(err))
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("get sql.DB failed", zap.Error(err))
	}
	defer sqlDB.Close()

	if err := migrations.Up(sqlDB, logger); err != nil {
		logger.Fatal("migrate failed", zap.Error(err))
	}
	logger.Info("migrations applied")
}
