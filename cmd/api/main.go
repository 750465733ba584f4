package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"euroasia/internal/app"
	"euroasia/internal/config"
	"euroasia/internal/database"
	"euroasia/internal/domain/session"
	apphttp "euroasia/internal/http"
	"euroasia/internal/http/handlers"
	httpmw "euroasia/internal/http/middleware"
	"euroasia/internal/integration/resend"
	"euroasia/internal/observability"
	"euroasia/internal/repository/memory"
	"euroasia/internal/repository/postgres"
	redisrepo "euroasia/internal/repository/redis"
	"euroasia/internal/security"
)

func main() {
	cfg := config.Load()
	logger := observability.NewLogger()
	defer logger.Sync()

	db := database.NewPostgres(database.PostgresConfig{
		DSN:             cfg.PostgresDSN,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxIdle:     cfg.DBConnMaxIdle,
		ConnMaxLifetime: cfg.DBConnMaxLife,
	})
	defer db.Close()

	jobRepo := postgres.NewJobRepository(db)
	analyticsRepo := postgres.NewAnalyticsRepository(db)

	var sessions session.Store
	if client := database.NewRedis(cfg.RedisAddr, cfg.RedisPassword); client != nil {
		sessions = redisrepo.NewSessionStore(client)
		defer client.Close()
	} else {
		store := memory.NewSessionStore()
		sweeper := cron.New()
		if _, err := sweeper.AddFunc("@every 15m", func() { store.Sweep(time.Now()) }); err != nil {
			log.Fatal(err)
		}
		sweeper.Start()
		defer sweeper.Stop()
		sessions = store
	}

	creds := security.NewCredentials(cfg.AdminUsername, cfg.AdminPassword)
	mailer := resend.NewClient(cfg.ResendBaseURL, cfg.ResendAPIKey, &http.Client{Timeout: 10 * time.Second})

	authService := app.NewAuthService(creds, sessions, analyticsRepo, logger, cfg.SessionTTL)
	jobService := app.NewJobService(jobRepo, analyticsRepo)
	applicationService := app.NewApplicationService(mailer, analyticsRepo, logger, cfg.MailFrom, cfg.AdminEmail)

	var adminPages http.Handler
	if cfg.AdminAssetsDir != "" {
		adminPages = http.StripPrefix("/admin/", http.FileServer(http.Dir(cfg.AdminAssetsDir)))
	}

	router := apphttp.NewRouter(apphttp.RouterDependencies{
		JobHandler:         handlers.NewJobHandler(jobService),
		AuthHandler:        handlers.NewAuthHandler(authService, cfg.CookieSecure),
		ApplicationHandler: handlers.NewApplicationHandler(applicationService),
		SessionMiddleware:  httpmw.NewSessionMiddleware(authService),
		AdminPages:         adminPages,
		RequestTimeout:     cfg.RequestTimeout,
	})
	server := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("API started on :" + cfg.HTTPPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatal(err)
	}
}
