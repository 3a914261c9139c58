package app

import (
	"context"
	"database/sql"
	"errors"

	"go-crm/internal/config"
	"go-crm/internal/messages"
	"go-crm/internal/middleware"
	"go-crm/internal/migrations"
	"go-crm/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const connectRetries = 5

// Infra holds the shared connections of one process.
type Infra struct {
	Config *config.Config
	GormDB *gorm.DB
	DB     *sql.DB
	Redis  *redis.Client
	Mongo  *connection.Mongo
}

// Connect opens Postgres and Redis, and MongoDB when withMongo is set.
func Connect(cfg *config.Config, withMongo bool) (*Infra, error) {
	gormDB, err := connection.ConnectGORMWithRetry(cfg.PostgresDSN(), connectRetries)
	if err != nil {
		return nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}

	rdb, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, cfg.RedisPassword, connectRetries)
	if err != nil {
		sqlDB.Close()
		return nil, err
	}

	infra := &Infra{Config: cfg, GormDB: gormDB, DB: sqlDB, Redis: rdb}
	if withMongo {
		m, err := connection.ConnectMongoWithRetry(cfg.MongoURI, cfg.MongoDatabase, connectRetries)
		if err != nil {
			infra.Close()
			return nil, err
		}
		infra.Mongo = m
	}
	return infra, nil
}

func (i *Infra) Close() error {
	var errs []error
	if i.Mongo != nil {
		errs = append(errs, i.Mongo.Close(context.Background()))
	}
	if i.Redis != nil {
		errs = append(errs, i.Redis.Close())
	}
	if i.DB != nil {
		errs = append(errs, i.DB.Close())
	}
	return errors.Join(errs...)
}

// BuildApp connects the infrastructure and mounts every module on router.
// The returned infra must be closed by the caller after the server stops.
func BuildApp(ctx context.Context, cfg *config.Config, router *gin.Engine) (*Infra, error) {
	logger := zap.L().Named("app")

	messages.Init(cfg.DefaultLocale)
	middleware.SetJWTSecret(cfg.JWTSecret)

	infra, err := Connect(cfg, true)
	if err != nil {
		return nil, err
	}
	logger.Info("infrastructure connected")

	if cfg.RunMigrations {
		if err := migrations.Up(infra.DB, logger); err != nil {
			infra.Close()
			return nil, err
		}
	}

	if err := registerModules(ctx, router, infra, logger); err != nil {
		infra.Close()
		return nil, err
	}
	return infra, nil
}
