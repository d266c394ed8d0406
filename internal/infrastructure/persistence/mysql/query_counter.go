package mysql

import (
	"sync/atomic"

	"gorm.io/gorm"

	"github.com/xiebiao/jpashop/pkg/metrics"
)

// QueryCounter GORM插件：统计执行的查询语句条数
// 用于验证各读取策略的查询次数(1+N、1+ceil(N/batch)等)
type QueryCounter struct {
	queries atomic.Int64
}

// NewQueryCounter 创建查询计数插件
func NewQueryCounter() *QueryCounter {
	return &QueryCounter{}
}

func (c *QueryCounter) Name() string {
	return "jpashop:query_counter"
}

// Initialize 在query/row回调之后计数
func (c *QueryCounter) Initialize(db *gorm.DB) error {
	if err := db.Callback().Query().After("gorm:query").Register("jpashop:count_query", c.count("query")); err != nil {
		return err
	}
	return db.Callback().Row().After("gorm:row").Register("jpashop:count_row", c.count("row"))
}

func (c *QueryCounter) count(kind string) func(*gorm.DB) {
	return func(db *gorm.DB) {
		if db.Error != nil && !isNotFound(db.Error) {
			return
		}
		if db.DryRun {
			return
		}
		c.queries.Add(1)
		metrics.ObserveDBQuery(kind)
	}
}

// Count 已执行的查询条数
func (c *QueryCounter) Count() int64 {
	return c.queries.Load()
}

// Reset 清零
func (c *QueryCounter) Reset() {
	c.queries.Store(0)
}

// CounterOf 取出db上安装的查询计数插件
func CounterOf(db *gorm.DB) *QueryCounter {
	if p, ok := db.Config.Plugins[(&QueryCounter{}).Name()]; ok {
		if c, ok := p.(*QueryCounter); ok {
			return c
		}
	}
	return nil
}
