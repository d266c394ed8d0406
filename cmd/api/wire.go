//go:build wireinject
// +build wireinject

// Wire依赖注入配置文件
//
// 1. Wire在编译期生成依赖创建代码，零运行时开销
// 2. 修改Provider后运行 `wire gen ./cmd/api` 重新生成wire_gen.go
// 3. main.go调用wire_gen.go中的InitializeApp()

package main

import (
	"github.com/gin-gonic/gin"
	"github.com/google/wire"

	"github.com/xiebiao/jpashop/internal/application/item"
	"github.com/xiebiao/jpashop/internal/application/member"
	"github.com/xiebiao/jpashop/internal/application/order"
	"github.com/xiebiao/jpashop/internal/application/orderquery"
	"github.com/xiebiao/jpashop/internal/domain"
	"github.com/xiebiao/jpashop/internal/infrastructure/config"
	"github.com/xiebiao/jpashop/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/jpashop/internal/interface/http/handler"
)

// infrastructureSet 基础设施层依赖：数据库连接、商品缓存
var infrastructureSet = wire.NewSet(
	provideDB,
	provideItemCache,
)

// repositorySet 仓储层依赖
var repositorySet = wire.NewSet(
	mysql.NewMemberRepository,
	mysql.NewItemRepository,
	mysql.NewOrderRepository,
	mysql.NewOrderQueryRepository,
	mysql.NewOrderSimpleQueryRepository,
	mysql.NewTxManager,
	wire.Bind(new(domain.Transactor), new(*mysql.TxManager)),
)

// applicationSet 应用层依赖
var applicationSet = wire.NewSet(
	member.NewService,
	item.NewService,
	order.NewService,
	orderquery.NewService,
)

// handlerSet HTTP处理器依赖
var handlerSet = wire.NewSet(
	handler.NewMemberHandler,
	handler.NewItemHandler,
	handler.NewOrderHandler,
	handler.NewReportHandler,
)

// InitializeApp 初始化整个应用
// 返回配置好的Gin引擎和释放数据库、Redis连接的cleanup函数
func InitializeApp(cfg *config.Config) (*gin.Engine, func(), error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		applicationSet,
		handlerSet,
		provideGinEngine,
	)
	return nil, nil, nil
}
