package main

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/xiebiao/jpashop/docs"
	"github.com/xiebiao/jpashop/internal/infrastructure/config"
	"github.com/xiebiao/jpashop/internal/interface/http/handler"
	"github.com/xiebiao/jpashop/internal/interface/http/middleware"
	"github.com/xiebiao/jpashop/pkg/response"
)

// newRouter 注册路由
func newRouter(
	corsCfg config.CORSConfig,
	memberHandler *handler.MemberHandler,
	itemHandler *handler.ItemHandler,
	orderHandler *handler.OrderHandler,
	reportHandler *handler.ReportHandler,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger(), middleware.CORS(corsCfg), middleware.Tracing(), middleware.Metrics())

	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 访问 http://localhost:8080/swagger/index.html 查看API文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	{
		members := v1.Group("/members")
		{
			members.POST("", memberHandler.Join)
			members.GET("", memberHandler.List)
			members.GET("/:id", memberHandler.Get)
			members.PUT("/:id", memberHandler.Update)
		}

		items := v1.Group("/items")
		{
			items.POST("", itemHandler.CreateBook)
			items.GET("", itemHandler.List)
			items.GET("/:id", itemHandler.Get)
			items.PUT("/:id", itemHandler.Update)
		}

		orders := v1.Group("/orders")
		{
			orders.POST("", orderHandler.Create)
			orders.GET("", orderHandler.List)
			orders.POST("/:id/cancel", orderHandler.Cancel)
			orders.POST("/:id/complete-delivery", orderHandler.CompleteDelivery)
		}

		// 同一份订单数据的多种读取策略
		reports := v1.Group("/reports")
		{
			ro := reports.Group("/orders")
			ro.GET("/entity-mapping", reportHandler.OrdersEntityMapping)
			ro.GET("/fetch-join", reportHandler.OrdersFetchJoin)
			ro.GET("/batch-fetch", reportHandler.OrdersBatchFetch)
			ro.GET("/dto-query", reportHandler.OrdersDtoQuery)
			ro.GET("/dto-query-optimized", reportHandler.OrdersDtoQueryOptimized)
			ro.GET("/dto-flat", reportHandler.OrdersDtoFlat)

			rs := reports.Group("/simple-orders")
			rs.GET("/entity-mapping", reportHandler.SimpleOrdersEntityMapping)
			rs.GET("/fetch-join", reportHandler.SimpleOrdersFetchJoin)
			rs.GET("/dto-query", reportHandler.SimpleOrdersDtoQuery)
		}
	}

	return r
}
