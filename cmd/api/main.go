package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go-crm/internal/app"
	"go-crm/internal/bootstrap"
	"go-crm/internal/config"
	"go-crm/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	logger, err := bootstrap.NewLogger(cfg.IsProduction(), "api")
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	apperror.Init()
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	infra, err := app.BuildApp(ctx, cfg, r)
	if err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}
	defer infra.Close()

	audit := bootstrap.NewStdoutAuditLogger(logger)
	if err := bootstrap.StartHTTPServer(ctx, r, bootstrap.DefaultServerConfig(cfg.Port), audit); err != nil {
		logger.Error("http server stopped", zap.Error(err))
	}
}
