package mysql

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

// txKey 事务DB在context中的键
type txKey struct{}

// withTx 将事务DB注入context
func withTx(ctx context.Context, tx *gorm.DB) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// getDB 从context获取事务DB，如果没有则使用默认DB
// 所有仓储方法都必须经此取DB，才能参与调用方开启的事务
func getDB(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return db.WithContext(ctx)
}

// isDuplicateError 判断是否为唯一索引冲突错误
// - MySQL 1062: Duplicate entry 'xxx' for key 'yyy'
// - SQLite: UNIQUE constraint failed: members.name
func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") || strings.Contains(msg, "UNIQUE constraint failed")
}

// isNotFound 判断是否为记录不存在
func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// isMySQL 当前连接是否为MySQL方言
func isMySQL(db *gorm.DB) bool {
	return db.Dialector.Name() == "mysql"
}
