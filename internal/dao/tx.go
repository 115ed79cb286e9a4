// Package dao 是各实体的存储适配层：按条件读写 MySQL，
// 查询条件中未提供的字段一律不参与过滤。
package dao

import (
	"context"

	"gorm.io/gorm"
)

type txKey struct{}

// TxManager 把若干存储操作放进同一个事务执行
type TxManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type gormTxManager struct {
	db *gorm.DB
}

// NewTxManager 创建基于 gorm 的事务管理器
func NewTxManager(db *gorm.DB) TxManager {
	return &gormTxManager{db: db}
}

// WithinTx 开启事务并把事务句柄放进 context，dao 会优先使用它
func (m *gormTxManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// conn 返回当前应使用的数据库句柄：事务中返回事务句柄，否则返回普通连接
func conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok && tx != nil {
		return tx
	}
	return db.WithContext(ctx)
}
