package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"tasker-api/internal/core/auth"
	"tasker-api/internal/core/cache"
	"tasker-api/internal/core/config"
	"tasker-api/internal/core/database"
	"tasker-api/internal/core/logger"
	"tasker-api/internal/core/server"
	"tasker-api/internal/domain"
	"tasker-api/internal/repo"
	"tasker-api/internal/service"
	"tasker-api/internal/storage"
	"tasker-api/internal/transport/http/handler"
	"tasker-api/internal/transport/http/router"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.NewWithRotate(cfg.Log.Level, cfg.Log.JSON, logger.FileRotate{
		Enable:     cfg.Log.Rotate.Enable,
		Filename:   cfg.Log.Rotate.Filename,
		MaxSizeMB:  cfg.Log.Rotate.MaxSizeMB,
		MaxBackups: cfg.Log.Rotate.MaxBackups,
		MaxAgeDays: cfg.Log.Rotate.MaxAgeDays,
		Compress:   cfg.Log.Rotate.Compress,
	})
	defer cleanup()

	// 数据库（失败直接 Fatal）
	db := mustOpenDB(cfg, log)
	log.Info("database connected", zap.String("driver", cfg.DB.Driver))

	if cfg.DB.AutoMigrate {
		if err := db.AutoMigrate(&domain.User{}, &domain.Task{}); err != nil {
			log.Fatal("automigrate failed", zap.Error(err))
		}
		log.Info("automigrate done")
	}

	// JWT
	jwter := &auth.JWTer{
		Secret: []byte(cfg.JWT.Secret),
		Issuer: cfg.JWT.Issuer,
		TTL:    time.Duration(cfg.JWT.AccessTokenTTLMin) * time.Minute,
	}

	// 头像落盘目录
	avatars, err := storage.NewDiskStorage(cfg.Upload.Dir + "/avatars")
	if err != nil {
		log.Fatal("upload dir", zap.Error(err))
	}

	// 显式装配：repo → service → handler
	userRepo := repo.NewUserRepo(db)
	taskRepo := repo.NewTaskRepo(db)

	userSvc := service.NewUserService(userRepo, avatars, cfg.App.BaseURL)
	if cfg.Redis.Enable {
		userSvc = userSvc.WithCache(cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB), 30*time.Second)
		log.Info("user profile cache enabled", zap.String("redis", cfg.Redis.Addr))
	}
	taskSvc := service.NewTaskService(taskRepo, userSvc)
	authSvc := service.NewAuthService(userSvc, jwter)

	r := router.NewAPIEngine(log, jwter,
		handler.NewAuthHandler(authSvc),
		handler.NewTaskHandler(taskSvc),
		handler.NewUserHandler(userSvc),
		cfg.Upload.Dir,
	)

	addr := server.Addr(cfg.App.HTTP.Host, cfg.App.HTTP.Port)
	srv := server.BuildServer(
		addr, r,
		time.Duration(cfg.App.HTTP.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.IdleTimeoutSec)*time.Second,
	)

	host4human := cfg.App.HTTP.Host
	if host4human == "" || host4human == "0.0.0.0" {
		host4human = "127.0.0.1"
	}
	baseURL := "http://" + host4human + ":" + fmt.Sprint(cfg.App.HTTP.Port)
	log.Info("tasker api starting",
		zap.String("addr", addr),
		zap.String("open", baseURL),
		zap.String("health", baseURL+"/health"),
	)

	// 异步启动
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("tasker api start FAILED", zap.Error(err))
		}
	}()
	log.Info("tasker api started SUCCESS")

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	log.Info("tasker api stopped gracefully")
}

func mustOpenDB(cfg *config.Config, l *zap.Logger) *gorm.DB {
	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	})
	if err != nil {
		l.Fatal("db open", zap.Error(err))
	}
	return db
}
