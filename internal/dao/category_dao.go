package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"cms-backend/internal/model"
	"cms-backend/internal/utils"
)

// 栏目级别筛选
const (
	CategoryLevelParent = "parent"
	CategoryLevelChild  = "child"
)

// CategoryDao 栏目存储适配器
type CategoryDao interface {
	Insert(ctx context.Context, category *model.Category) error
	Update(ctx context.Context, category *model.Category) error
	// DeleteByID 逻辑删除，返回实际删除的行数
	DeleteByID(ctx context.Context, id int64) (int64, error)
	// FindByID 未找到时返回 (nil, nil)
	FindByID(ctx context.Context, id int64) (*model.Category, error)
	FindByName(ctx context.Context, name string) (*model.Category, error)
	CountByParentID(ctx context.Context, parentID int64) (int64, error)
	ListByParentID(ctx context.Context, parentID int64) ([]model.Category, error)
	// List 按级别筛选："parent" 一级、"child" 二级、空串查全部
	List(ctx context.Context, level string) ([]model.Category, error)
	Page(ctx context.Context, parentID *int64, pageNum, pageSize int) (*utils.Page[model.Category], error)
}

type categoryDao struct {
	db *gorm.DB
}

// NewCategoryDao 创建栏目 dao
func NewCategoryDao(db *gorm.DB) CategoryDao {
	return &categoryDao{db: db}
}

func (d *categoryDao) base(ctx context.Context) *gorm.DB {
	return conn(ctx, d.db).Model(&model.Category{}).Where("deleted = 0")
}

func (d *categoryDao) Insert(ctx context.Context, category *model.Category) error {
	return conn(ctx, d.db).Create(category).Error
}

func (d *categoryDao) Update(ctx context.Context, category *model.Category) error {
	values := map[string]interface{}{
		"name":        category.Name,
		"description": category.Description,
		"order_num":   category.OrderNum,
	}
	// parentId 未提交时保持原级别不变，不能把二级栏目刷成一级
	if category.ParentID != nil {
		values["parent_id"] = category.ParentID
	}
	return conn(ctx, d.db).Model(&model.Category{}).
		Where("id = ? AND deleted = 0", category.ID).
		Updates(values).Error
}

func (d *categoryDao) DeleteByID(ctx context.Context, id int64) (int64, error) {
	res := conn(ctx, d.db).Model(&model.Category{}).
		Where("id = ? AND deleted = 0", id).
		Update("deleted", 1)
	return res.RowsAffected, res.Error
}

func (d *categoryDao) FindByID(ctx context.Context, id int64) (*model.Category, error) {
	var category model.Category
	err := d.base(ctx).Where("id = ?", id).First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (d *categoryDao) FindByName(ctx context.Context, name string) (*model.Category, error) {
	var category model.Category
	err := d.base(ctx).Where("name = ?", name).First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (d *categoryDao) CountByParentID(ctx context.Context, parentID int64) (int64, error) {
	var count int64
	err := d.base(ctx).Where("parent_id = ?", parentID).Count(&count).Error
	return count, err
}

func (d *categoryDao) ListByParentID(ctx context.Context, parentID int64) ([]model.Category, error) {
	var categories []model.Category
	err := d.base(ctx).Where("parent_id = ?", parentID).
		Order("order_num ASC").
		Find(&categories).Error
	return categories, err
}

func (d *categoryDao) List(ctx context.Context, level string) ([]model.Category, error) {
	query := d.base(ctx)
	switch level {
	case CategoryLevelParent:
		query = query.Where("parent_id IS NULL")
	case CategoryLevelChild:
		query = query.Where("parent_id IS NOT NULL")
	}
	var categories []model.Category
	err := query.Order("order_num ASC").Find(&categories).Error
	return categories, err
}

func (d *categoryDao) Page(ctx context.Context, parentID *int64, pageNum, pageSize int) (*utils.Page[model.Category], error) {
	query := d.base(ctx)
	if parentID != nil {
		query = query.Where("parent_id = ?", *parentID)
	}
	return paginate[model.Category](query, pageNum, pageSize, "order_num ASC")
}
