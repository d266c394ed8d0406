package mysql

import (
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/xiebiao/jpashop/internal/infrastructure/config"
)

// NewDB 创建数据库连接
// 1. driver=mysql为生产配置，driver=sqlite用于本地运行和测试
// 2. 配置连接池参数
// 3. 开发环境开启SQL日志
// 4. 安装查询计数插件并自动迁移表结构
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	logLevel := logger.Silent
	if cfg.Server.Mode == "debug" {
		logLevel = logger.Info // 开发环境打印SQL
	}

	db, err := Open(cfg.Database, logger.Default.LogMode(logLevel))
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取SQL DB失败: %w", err)
	}
	if cfg.Database.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	}
	if cfg.Database.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	}
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("数据库连接测试失败: %w", err)
	}

	slog.Info("数据库连接成功", "driver", cfg.Database.Driver)

	if err := AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("数据库迁移失败: %w", err)
	}

	return db, nil
}

// Open 按驱动打开连接并安装查询计数插件
func Open(dbCfg config.DatabaseConfig, gormLogger logger.Interface) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch dbCfg.Driver {
	case "sqlite":
		dialector = sqlite.Open(dbCfg.SQLitePath)
	default:
		dialector = mysql.Open(dbCfg.DSN())
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormLogger,
		NowFunc: func() time.Time {
			return time.Now().Truncate(time.Microsecond)
		},
		// 唯一约束冲突翻译为gorm.ErrDuplicatedKey
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	if err := db.Use(NewQueryCounter()); err != nil {
		return nil, fmt.Errorf("安装查询计数插件失败: %w", err)
	}

	return db, nil
}

// AutoMigrate 自动迁移表结构
// 生产环境应使用版本化的迁移脚本
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&MemberModel{},
		&ItemModel{},
		&DeliveryModel{},
		&OrderModel{},
		&OrderItemModel{},
	)
}
