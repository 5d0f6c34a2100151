package main

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	aiadapter "github.com/amanshinde1/ai-productivity-dashboard/internal/adapter/ai"
	dbadapter "github.com/amanshinde1/ai-productivity-dashboard/internal/adapter/db"
	httpadapter "github.com/amanshinde1/ai-productivity-dashboard/internal/adapter/http"
	"github.com/amanshinde1/ai-productivity-dashboard/internal/adapter/http/handlers"
	httpmiddleware "github.com/amanshinde1/ai-productivity-dashboard/internal/adapter/http/middleware"
	mailadapter "github.com/amanshinde1/ai-productivity-dashboard/internal/adapter/mail"
	"github.com/amanshinde1/ai-productivity-dashboard/internal/app/service"
	"github.com/amanshinde1/ai-productivity-dashboard/internal/config"
	"github.com/amanshinde1/ai-productivity-dashboard/pkg/authtoken"
	"github.com/amanshinde1/ai-productivity-dashboard/pkg/translator"
)

func newLogger(logFile string) (*zap.Logger, error) {
	if logFile == "" {
		return zap.NewProduction()
	}

	encoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	sink := zapcore.AddSync(&lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    100, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	})
	core := zapcore.NewTee(
		zapcore.NewCore(encoder, sink, zapcore.InfoLevel),
		zapcore.NewCore(encoder, zapcore.AddSync(os.Stderr), zapcore.InfoLevel),
	)
	return zap.New(core), nil
}

func main() {
	cfg := config.LoadConfig()

	logger, err := newLogger(cfg.LogFile)
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to mysql", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close mysql connection", zap.Error(err))
		}
	}()

	userRepo := dbadapter.NewUserRepository(db)
	taskRepo := dbadapter.NewTaskRepository(db)
	categoryRepo := dbadapter.NewCategoryRepository(db)
	appWebsiteRepo := dbadapter.NewAppWebsiteRepository(db)
	projectRepo := dbadapter.NewProjectRepository(db)
	notificationRepo := dbadapter.NewNotificationRepository(db)
	metricsRepo := dbadapter.NewMetricsRepository(db)

	tokens := authtoken.NewManager(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	mailer := mailadapter.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.MailFrom)
	suggester := aiadapter.NewSuggestionProvider()

	authService := service.NewAuthService(userRepo, tokens, mailer, cfg.FrontendURL, cfg.ResetTokenTTL)
	taskService := service.NewTaskService(taskRepo, cfg.Timezone)
	catalogService := service.NewCatalogService(categoryRepo, appWebsiteRepo, projectRepo)
	notificationService := service.NewNotificationService(notificationRepo)
	dashboardService := service.NewDashboardService(metricsRepo, categoryRepo, suggester, service.DashboardConfig{
		DailyTargetMinutes: cfg.DailyTargetMinutes,
		ProductiveAppsTop:  cfg.ProductiveAppsTop,
		Location:           cfg.Timezone,
	})
	jobsService := service.NewJobsService(userRepo, metricsRepo, notificationService, mailer, cfg.Timezone)

	scheduler := service.NewSchedulerService(cfg.Timezone)
	if _, err := scheduler.ScheduleDaily(cfg.SummaryTime, func() {
		jobsService.SendDailySummaries(context.Background())
	}); err != nil {
		logger.Fatal("failed to schedule daily summaries", zap.Error(err))
	}
	if _, err := scheduler.ScheduleInterval(cfg.ReminderInterval, func() {
		jobsService.SendOverdueReminders(context.Background())
	}); err != nil {
		logger.Fatal("failed to schedule overdue reminders", zap.Error(err))
	}
	scheduler.Start()
	defer scheduler.Stop()

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if len(cfg.TrustedProxies) > 0 {
		if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
			logger.Fatal("invalid trusted proxies", zap.Error(err))
		}
	}

	httpadapter.RegisterRoutes(r, tokens, httpadapter.Handlers{
		Health:       handlers.NewHealthHandler(db),
		Auth:         handlers.NewAuthHandler(authService),
		Task:         handlers.NewTaskHandler(taskService),
		Catalog:      handlers.NewCatalogHandler(catalogService),
		Notification: handlers.NewNotificationHandler(notificationService),
		Dashboard:    handlers.NewDashboardHandler(dashboardService, suggester),
	})

	addr := ":" + cfg.AppPort
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
