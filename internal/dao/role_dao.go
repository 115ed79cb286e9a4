package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"cms-backend/internal/model"
)

// RoleDao 角色存储适配器
type RoleDao interface {
	FindByID(ctx context.Context, id int64) (*model.Role, error)
	List(ctx context.Context) ([]model.Role, error)
}

type roleDao struct {
	db *gorm.DB
}

// NewRoleDao 创建角色 dao
func NewRoleDao(db *gorm.DB) RoleDao {
	return &roleDao{db: db}
}

func (d *roleDao) FindByID(ctx context.Context, id int64) (*model.Role, error) {
	var role model.Role
	err := conn(ctx, d.db).Where("id = ?", id).First(&role).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &role, nil
}

func (d *roleDao) List(ctx context.Context) ([]model.Role, error) {
	var roles []model.Role
	err := conn(ctx, d.db).Order("id ASC").Find(&roles).Error
	return roles, err
}
