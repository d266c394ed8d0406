package main

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/xiebiao/jpashop/internal/application/item"
	"github.com/xiebiao/jpashop/internal/infrastructure/config"
	"github.com/xiebiao/jpashop/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/jpashop/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/jpashop/internal/interface/http/handler"
)

// provideDB 创建数据库连接，cleanup时关闭连接池
func provideDB(cfg *config.Config) (*gorm.DB, func(), error) {
	db, err := mysql.NewDB(cfg)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	return db, cleanup, nil
}

// provideItemCache 按redis.enabled选择Redis缓存或空缓存
func provideItemCache(cfg *config.Config) (item.Cache, func(), error) {
	if !cfg.Redis.Enabled {
		slog.Info("未启用Redis，商品缓存关闭")
		return item.NopCache{}, func() {}, nil
	}
	client, err := redis.NewClient(context.Background(), cfg.Redis)
	if err != nil {
		return nil, nil, err
	}
	return redis.NewItemCache(client, cfg), func() { _ = client.Close() }, nil
}

// provideGinEngine 创建Gin引擎并注册路由
func provideGinEngine(
	cfg *config.Config,
	memberHandler *handler.MemberHandler,
	itemHandler *handler.ItemHandler,
	orderHandler *handler.OrderHandler,
	reportHandler *handler.ReportHandler,
) *gin.Engine {
	switch cfg.Server.Mode {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	}
	return newRouter(cfg.CORS, memberHandler, itemHandler, orderHandler, reportHandler)
}
