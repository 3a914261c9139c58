package app

import (
	"context"
	"net/http"

	"go-crm/internal/account"
	"go-crm/internal/alert"
	"go-crm/internal/auth"
	"go-crm/internal/brandservice"
	"go-crm/internal/calendar"
	"go-crm/internal/leave"
	"go-crm/internal/messaging/kafka"
	"go-crm/internal/middleware"
	"go-crm/internal/notification"
	"go-crm/internal/processstep"
	"go-crm/internal/project"
	"go-crm/internal/quotation"
	"go-crm/internal/rbac"
	"go-crm/internal/rbac/infra"
	"go-crm/internal/realtime"
	"go-crm/internal/shared/counter"
	"go-crm/internal/shared/storage"
	"go-crm/internal/subscription"
	"go-crm/internal/task"
	"go-crm/internal/user"
	"go-crm/internal/worksession"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func registerModules(ctx context.Context, router *gin.Engine, in *Infra, logger *zap.Logger) error {
	cfg := in.Config
	db, gormDB, rdb := in.DB, in.GormDB, in.Redis

	// --- Repositories ---
	rbacRepo := rbac.NewRepository(gormDB)
	authRepo := auth.NewRepository(gormDB)
	userRepo := user.NewRepository(gormDB)
	brandRepo := brandservice.NewRepository(gormDB)
	accountRepo := account.NewRepository(gormDB)
	subscriptionRepo := subscription.NewRepository(gormDB)
	stepRepo := processstep.NewRepository(gormDB)
	projectRepo := project.NewRepository(gormDB)
	taskRepo := task.NewRepository(gormDB)
	quotationRepo := quotation.NewRepository(gormDB)
	eventRepo := calendar.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	sessionRepo := worksession.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	alertRepo := alert.NewRepository(in.Mongo.DB)
	notificationRepo := notification.NewRepository(in.Mongo.DB)

	// Without a broker the services push realtime events themselves.
	var outbox kafka.OutboxRepository
	if cfg.KafkaBroker != "" {
		outbox = kafka.NewOutboxRepository(db)
	}

	var files storage.Presigner
	if cfg.S3Bucket != "" {
		s3, err := storage.NewS3Storage(ctx, storage.S3Config{
			Bucket:          cfg.S3Bucket,
			Region:          cfg.S3Region,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
		})
		if err != nil {
			return err
		}
		files = s3
	}

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer)

	// --- Realtime ---
	publisher := realtime.NewRedisPublisher(rdb, realtime.DefaultChannel)

	// --- Services ---
	alertService := alert.NewService(alertRepo, publisher)
	notificationService := notification.NewService(notificationRepo, publisher)
	authService := auth.NewService(authRepo, auth.TokenConfig{
		Secret:     cfg.JWTSecret,
		AccessTTL:  cfg.AccessTokenTTL,
		RefreshTTL: cfg.RefreshTokenTTL,
	})
	userService := user.NewService(db, userRepo, publisher)
	brandService := brandservice.NewService(db, brandRepo, rdb)
	accountService := account.NewService(db, accountRepo, brandRepo)
	subscriptionService := subscription.NewService(db, subscriptionRepo, subscription.Deps{
		Catalog:  brandRepo,
		Accounts: accountRepo,
		Clients:  userRepo,
		Counter:  counterRepo,
		Outbox:   outbox,
		Alerts:   alertService,
		Redis:    rdb,
		Location: cfg.Timezone,
	})
	stepService := processstep.NewService(db, stepRepo)
	projectService := project.NewService(db, projectRepo, project.Deps{
		Templates: stepRepo,
		Catalog:   brandRepo,
		Users:     userRepo,
		Alerts:    alertService,
		Storage:   files,
	})
	taskService := task.NewService(taskRepo, alertService)
	quotationService := quotation.NewService(db, quotationRepo, counterRepo)
	eventService := calendar.NewService(eventRepo, alertService)
	leaveService := leave.NewService(db, leaveRepo, leave.Deps{
		Users:     userRepo,
		Alerts:    alertService,
		Outbox:    outbox,
		Publisher: publisher,
	})
	sessionService := worksession.NewService(db, sessionRepo, worksession.Deps{
		Leaves:   leaveRepo,
		Alerts:   alertService,
		Notifier: notificationService,
		Location: cfg.Timezone,
	})

	hub := realtime.NewHub(userService, logger).WithRelay(publisher)
	go func() {
		if err := realtime.Subscribe(ctx, rdb, realtime.DefaultChannel, hub, logger); err != nil {
			logger.Error("realtime subscription ended", zap.Error(err))
		}
	}()

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, auth.CookieConfig{
		Secure:     cfg.IsProduction(),
		AccessTTL:  cfg.AccessTokenTTL,
		RefreshTTL: cfg.RefreshTokenTTL,
	})
	userHandler := user.NewHandler(userService)
	brandHandler := brandservice.NewHandler(brandService)
	accountHandler := account.NewHandler(accountService)
	subscriptionHandler := subscription.NewHandler(subscriptionService)
	stepHandler := processstep.NewHandler(stepService)
	projectHandler := project.NewHandler(projectService)
	taskHandler := task.NewHandler(taskService)
	quotationHandler := quotation.NewHandler(quotationService)
	eventHandler := calendar.NewHandler(eventService)
	leaveHandler := leave.NewHandler(leaveService)
	sessionHandler := worksession.NewHandler(sessionService)
	alertHandler := alert.NewHandler(alertService)
	notificationHandler := notification.NewHandler(notificationService)
	rbacHandler := rbac.NewHandler(rbacService)

	// --- Routes Registration ---
	router.Use(middleware.RequestID(), middleware.CORS(cfg.CORSOrigins))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/ws", middleware.AuthMiddleware(), hub.ServeWS)

	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		user.RegisterRoutes(api, userHandler, rbacService, logger)
		brandservice.RegisterRoutes(api, brandHandler, rbacService, logger)
		account.RegisterRoutes(api, accountHandler, rbacService, logger)
		subscription.RegisterRoutes(api, subscriptionHandler, rbacService, logger)
		processstep.RegisterRoutes(api, stepHandler, rbacService, logger)
		project.RegisterRoutes(api, projectHandler, rbacService, logger)
		task.RegisterRoutes(api, taskHandler, rbacService, logger)
		quotation.RegisterRoutes(api, quotationHandler, rbacService, logger)
		calendar.RegisterRoutes(api, eventHandler, rbacService, logger)
		leave.RegisterRoutes(api, leaveHandler, rbacService, logger)
		worksession.RegisterRoutes(api, sessionHandler, rbacService, logger)
		alert.RegisterRoutes(api, alertHandler)
		notification.RegisterRoutes(api, notificationHandler)
		rbac.RegisterRoutes(api, rbacHandler)
	}

	logger.Info("modules registered")
	return nil
}
