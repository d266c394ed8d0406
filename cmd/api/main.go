package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/xiebiao/jpashop/internal/infrastructure/config"
	"github.com/xiebiao/jpashop/internal/infrastructure/logger"
	"github.com/xiebiao/jpashop/pkg/metrics"
	"github.com/xiebiao/jpashop/pkg/tracing"
)

// @title           jpashop API
// @version         1.0
// @description     会员、商品、订单管理，以及订单列表的多种读取策略
// @host            localhost:8080
// @BasePath        /
func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 2. 初始化日志
	if _, err := logger.Setup(cfg.Log); err != nil {
		log.Fatalf("初始化日志失败: %v", err)
	}
	slog.Info("配置加载成功",
		"port", cfg.Server.Port,
		"mode", cfg.Server.Mode,
		"db_driver", cfg.Database.Driver,
		"redis_enabled", cfg.Redis.Enabled,
	)

	// 3. 链路追踪(可选)
	if cfg.Tracing.Enabled {
		shutdown, err := tracing.InitTracer(context.Background(), tracing.Options{
			ServiceName: cfg.Tracing.ServiceName,
			Endpoint:    cfg.Tracing.Endpoint,
			SampleRatio: cfg.Tracing.SampleRatio,
		})
		if err != nil {
			log.Fatalf("初始化链路追踪失败: %v", err)
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdown(ctx); err != nil {
				slog.Error("关闭链路追踪失败", "error", err)
			}
		}()
	}

	// 4. 指标
	metrics.InitMetrics()

	// 5. 依赖注入(wire_gen.go)
	engine, cleanup, err := InitializeApp(cfg)
	if err != nil {
		log.Fatalf("初始化应用失败: %v", err)
	}
	defer cleanup()

	// 6. 启动服务，收到SIGINT/SIGTERM后优雅退出
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		slog.Info("服务启动成功", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("启动服务失败", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("正在关闭服务")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("关闭服务失败", "error", err)
	}
}
