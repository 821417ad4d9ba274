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

	coreauth "studentrent/internal/core/auth"
	"studentrent/internal/core/config"
	"studentrent/internal/core/logger"
	"studentrent/internal/core/server"
	authfeat "studentrent/internal/feature/auth"
	propfeat "studentrent/internal/feature/property"
	"studentrent/internal/notify"
	"studentrent/internal/store"
	"studentrent/internal/transport/http/router"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	var log *zap.Logger
	var cleanup func()
	if cfg.Log.File != "" {
		log, cleanup = logger.NewWithRotate(cfg.Log.Level, cfg.Log.JSON,
			cfg.Log.File, cfg.Log.MaxSizeMB, cfg.Log.MaxBackups, cfg.Log.MaxAgeDays, cfg.Log.Compress)
	} else {
		log, cleanup = logger.New(cfg.Log.Level, cfg.Log.JSON)
	}
	defer cleanup()

	// 本地 JSON 存储（数据目录建不出来就直接 Fatal）
	st, err := store.New(store.Options{
		DataPath:    cfg.Store.DataPath,
		SessionPath: cfg.Store.SessionPath,
	}, log)
	if err != nil {
		log.Fatal("store open", zap.Error(err))
	}
	// 首次启动落种子数据
	data := st.Load()
	log.Info("store ready",
		zap.String("path", cfg.Store.DataPath),
		zap.Int("users", len(data.Users)),
		zap.Int("properties", len(data.Properties)),
	)

	// JWT
	jwter := &coreauth.JWTer{
		Secret: []byte(cfg.JWT.Secret),
		Issuer: cfg.JWT.Issuer,
		TTL:    time.Duration(cfg.JWT.AccessTokenTTLMin) * time.Minute,
	}

	// 业务依赖
	notifier := notify.New(time.Duration(cfg.Demo.NotifyTTLSec) * time.Second)
	latency := time.Duration(cfg.Demo.SimulatedLatencyMs) * time.Millisecond
	authSvc := authfeat.NewService(st, notifier, log, latency)
	propSvc := propfeat.NewService(st, notifier, log, latency)

	// 路由
	r := router.NewAPIEngine(router.Deps{
		Log:              log,
		Store:            st,
		Notifier:         notifier,
		Auth:             authSvc,
		Property:         propSvc,
		JWTer:            jwter,
		SimulatedLatency: latency,
	})

	// HTTP Server
	addr := server.Addr(cfg.App.HTTP.Host, cfg.App.HTTP.Port)
	srv := server.BuildServer(
		addr, r,
		time.Duration(cfg.App.HTTP.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.IdleTimeoutSec)*time.Second,
	)

	// 启动日志
	host4human := cfg.App.HTTP.Host
	if host4human == "" || host4human == "0.0.0.0" {
		host4human = "127.0.0.1"
	}
	baseURL := "http://" + host4human + ":" + fmt.Sprint(cfg.App.HTTP.Port)
	log.Info("studentrent api starting",
		zap.String("addr", addr),
		zap.String("open", baseURL),
		zap.String("health", baseURL+"/health"),
		zap.String("api_v1", baseURL+"/api/v1"),
	)

	// 异步启动
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("studentrent api start FAILED", zap.Error(err))
		}
	}()
	log.Info("studentrent api started SUCCESS")

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	log.Info("studentrent api stopped gracefully")
}
