package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"cms-backend/internal/model"
	"cms-backend/internal/utils"
)

// SlideshowFilter 轮播图检索条件
type SlideshowFilter struct {
	Description string
	Status      string
}

// SlideshowDao 轮播图存储适配器
type SlideshowDao interface {
	Insert(ctx context.Context, slideshow *model.Slideshow) error
	Update(ctx context.Context, slideshow *model.Slideshow) error
	DeleteByIDs(ctx context.Context, ids []int64) (int64, error)
	FindByID(ctx context.Context, id int64) (*model.Slideshow, error)
	FindByURL(ctx context.Context, url string) (*model.Slideshow, error)
	Page(ctx context.Context, filter SlideshowFilter, pageNum, pageSize int) (*utils.Page[model.Slideshow], error)
}

type slideshowDao struct {
	db *gorm.DB
}

// NewSlideshowDao 创建轮播图 dao
func NewSlideshowDao(db *gorm.DB) SlideshowDao {
	return &slideshowDao{db: db}
}

func (d *slideshowDao) Insert(ctx context.Context, slideshow *model.Slideshow) error {
	return conn(ctx, d.db).Create(slideshow).Error
}

func (d *slideshowDao) Update(ctx context.Context, slideshow *model.Slideshow) error {
	return conn(ctx, d.db).Model(&model.Slideshow{}).
		Where("id = ?", slideshow.ID).
		Updates(map[string]interface{}{
			"description": slideshow.Description,
			"url":         slideshow.URL,
			"status":      slideshow.Status,
		}).Error
}

func (d *slideshowDao) DeleteByIDs(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := conn(ctx, d.db).Where("id IN ?", ids).Delete(&model.Slideshow{})
	return res.RowsAffected, res.Error
}

func (d *slideshowDao) FindByID(ctx context.Context, id int64) (*model.Slideshow, error) {
	var slideshow model.Slideshow
	err := conn(ctx, d.db).Where("id = ?", id).First(&slideshow).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &slideshow, nil
}

func (d *slideshowDao) FindByURL(ctx context.Context, url string) (*model.Slideshow, error) {
	var slideshow model.Slideshow
	err := conn(ctx, d.db).Where("url = ?", url).First(&slideshow).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &slideshow, nil
}

func (d *slideshowDao) Page(ctx context.Context, filter SlideshowFilter, pageNum, pageSize int) (*utils.Page[model.Slideshow], error) {
	query := conn(ctx, d.db).Model(&model.Slideshow{})
	if filter.Description != "" {
		query = query.Where("description LIKE ?", "%"+filter.Description+"%")
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	return paginate[model.Slideshow](query, pageNum, pageSize, "id DESC")
}
