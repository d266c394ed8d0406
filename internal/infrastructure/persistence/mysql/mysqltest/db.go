// Package mysqltest 提供基于内存SQLite的测试数据库
// 与生产环境走同一套GORM代码路径(模型、迁移、仓储、事务)
package mysqltest

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/xiebiao/jpashop/internal/infrastructure/config"
	"github.com/xiebiao/jpashop/internal/infrastructure/persistence/mysql"
)

// NewDB 创建一个已迁移的内存数据库
// 内存库只存在于单个连接上，因此连接池限制为1；
// 事务内的所有操作必须经由context中的事务DB，否则会阻塞
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := mysql.Open(config.DatabaseConfig{Driver: "sqlite", SQLitePath: ":memory:"}, logger.Default.LogMode(logger.Silent))
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, mysql.AutoMigrate(db))
	return db
}

// Config 测试用配置
func Config(batchSize int) *config.Config {
	return &config.Config{
		Server:   config.ServerConfig{Port: 8080, Mode: "test"},
		Database: config.DatabaseConfig{Driver: "sqlite", SQLitePath: ":memory:", BatchFetchSize: batchSize},
	}
}

// CountQueries 统计fn执行期间的查询条数
func CountQueries(t testing.TB, db *gorm.DB, fn func()) int64 {
	t.Helper()
	counter := mysql.CounterOf(db)
	require.NotNil(t, counter, "查询计数插件未安装")
	before := counter.Count()
	fn()
	return counter.Count() - before
}
