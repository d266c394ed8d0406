package mysql

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// TxManager 事务管理器
// 1. 封装GORM的Transaction方法
// 2. 通过context传递事务DB
// 3. 嵌套调用时复用外层事务
type TxManager struct {
	db *gorm.DB
}

// NewTxManager 创建事务管理器
func NewTxManager(db *gorm.DB) *TxManager {
	return &TxManager{db: db}
}

// Transaction 执行读写事务
// fn返回error时自动ROLLBACK,返回nil时自动COMMIT
//
// 使用示例:
//
//	err := txManager.Transaction(ctx, func(ctx context.Context) error {
//	    item, err := itemRepo.FindOneForUpdate(ctx, itemID)
//	    if err != nil {
//	        return err
//	    }
//	    ...
//	    return orderRepo.Save(ctx, order) // nil则提交,非nil则回滚
//	})
func (m *TxManager) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(withTx(ctx, tx))
	})
}

// ReadOnly 执行只读事务
// 多条查询在同一事务中执行，看到一致的快照；MySQL上使用READ ONLY事务
func (m *TxManager) ReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}
	var opts *sql.TxOptions
	if isMySQL(m.db) {
		opts = &sql.TxOptions{ReadOnly: true}
	}
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(withTx(ctx, tx))
	}, opts)
}
