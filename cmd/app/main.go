package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/nkraeva/task-tracker-api/internal/auth"
	"github.com/nkraeva/task-tracker-api/internal/config"
	"github.com/nkraeva/task-tracker-api/internal/handler"
	"github.com/nkraeva/task-tracker-api/internal/monitor"
	"github.com/nkraeva/task-tracker-api/internal/repo"
	"github.com/nkraeva/task-tracker-api/internal/service"
)

func main() {
	// Подключаем логгер
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	// Загрузка конфигурации (.env, затем окружение)
	cfg := config.Load()

	// Открываем пул соединений. sqlx.Open базу не трогает, поэтому сервер
	// поднимается и при лежащей базе - страница / это покажет.
	db, err := sqlx.Open("mysql", cfg.DSN())
	if err != nil {
		logger.Fatal("Failed to open the store handle", zap.Error(err))
	}
	defer db.Close()

	startupCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := db.PingContext(startupCtx); err != nil {
		logger.Warn("Store unreachable at startup, serving anyway", zap.Error(err))
	} else {
		logger.Info("Successfully connected to the store!")
		if err := repo.EnsureSchema(startupCtx, db); err != nil {
			logger.Warn("Schema bootstrap failed", zap.Error(err))
		}
	}
	cancel()

	users := repo.NewUserRepo(db)
	tasks := repo.NewTaskRepo(db)

	router := handler.Router(
		handler.NewAuthHandler(service.NewAuthService(users), auth.NewTokenManager(cfg.SecretKey), logger),
		handler.NewTaskHandler(service.NewTaskService(tasks), logger),
		handler.NewDiagHandler(service.NewDiagService(users), logger),
	)

	mon := monitor.New(users, logger, 30*time.Second)
	mon.Start(context.Background())

	srv := http.Server{ // Создаем сервер
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() { // Запуск сервера и обработка ошибок
		logger.Info("Server started", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Shutdown error", zap.Error(err))
	}
	mon.Stop()
	logger.Info("Server stopped successfully!")
}
