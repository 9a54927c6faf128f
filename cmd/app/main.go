package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DwayneDumaguing/jamsody-next/internal/handler"
	"github.com/DwayneDumaguing/jamsody-next/internal/repository"
	"github.com/DwayneDumaguing/jamsody-next/internal/service"
	"github.com/DwayneDumaguing/jamsody-next/internal/storage"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	if err := initEnv(); err != nil {
		logger.Sugar().Warnf("failed to load environment variables: %s", err.Error())
	}

	if err := initConfig(); err != nil {
		logger.Sugar().Fatalf("failed to initialize yaml config: %s", err.Error())
	}

	db, err := pgxpool.New(ctx, os.Getenv("POSTGRES_DSN"))
	if err != nil {
		logger.Sugar().Fatalf("failed to create postgres pool: %s", err.Error())
	}
	defer db.Close()

	if err := db.Ping(ctx); err != nil {
		logger.Sugar().Fatalf("failed to ping postgres: %s", err.Error())
	}

	repo := repository.New(db)
	services := service.New(logger, repo)
	urls := storage.NewURLBuilder(viper.GetString("storage.base_url"))
	handlers := handler.New(services, urls)

	srv := &http.Server{
		Addr:    ":" + viper.GetString("port"),
		Handler: handlers.InitRoutes(),
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Sugar().Fatalf("failed to run http server: %s", err.Error())
		}
	}()
	logger.Sugar().Infof("server is listening on port %s", viper.GetString("port"))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(ctx, time.Second*10)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Errorf("failed to shutdown server gracefully: %s", err.Error())
	}
}

func initEnv() error {
	return godotenv.Load(".env")
}

func initConfig() error {
	viper.AddConfigPath("./")
	viper.SetConfigType("yaml")
	viper.SetConfigName("app")
	return viper.ReadInConfig()
}
