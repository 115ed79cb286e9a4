package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"cms-backend/internal/model"
	"cms-backend/internal/utils"
)

// ArticleFilter 资讯检索条件，为 nil/空串的字段不参与过滤
type ArticleFilter struct {
	Title      string
	CategoryID *int64
	Status     string
	UserID     *int64
	Charged    *int
	StartTime  *time.Time
	EndTime    *time.Time
}

// ArticleDao 资讯存储适配器
type ArticleDao interface {
	Insert(ctx context.Context, article *model.Article) error
	// UpdateEdit 作者编辑：只更新标题、收费、栏目、正文和审核状态
	UpdateEdit(ctx context.Context, article *model.Article) error
	// UpdateStatus 审核：只更新状态
	UpdateStatus(ctx context.Context, id int64, status string) error
	// DeleteByIDs 批量逻辑删除
	DeleteByIDs(ctx context.Context, ids []int64) (int64, error)
	// FindByID 未找到时返回 (nil, nil)
	FindByID(ctx context.Context, id int64) (*model.Article, error)
	ListByCategoryID(ctx context.Context, categoryID int64) ([]model.Article, error)
	List(ctx context.Context) ([]model.Article, error)
	Page(ctx context.Context, filter ArticleFilter, pageNum, pageSize int) (*utils.Page[model.Article], error)
}

type articleDao struct {
	db *gorm.DB
}

// NewArticleDao 创建资讯 dao
func NewArticleDao(db *gorm.DB) ArticleDao {
	return &articleDao{db: db}
}

func (d *articleDao) base(ctx context.Context) *gorm.DB {
	return conn(ctx, d.db).Model(&model.Article{}).Where("deleted = 0")
}

func (d *articleDao) Insert(ctx context.Context, article *model.Article) error {
	return conn(ctx, d.db).Create(article).Error
}

func (d *articleDao) UpdateEdit(ctx context.Context, article *model.Article) error {
	// 作者、发布时间和计数字段不受编辑影响
	return conn(ctx, d.db).Model(&model.Article{}).
		Where("id = ? AND deleted = 0", article.ID).
		Updates(map[string]interface{}{
			"title":       article.Title,
			"content":     article.Content,
			"category_id": article.CategoryID,
			"charged":     article.Charged,
			"status":      article.Status,
		}).Error
}

func (d *articleDao) UpdateStatus(ctx context.Context, id int64, status string) error {
	return conn(ctx, d.db).Model(&model.Article{}).
		Where("id = ? AND deleted = 0", id).
		Update("status", status).Error
}

func (d *articleDao) DeleteByIDs(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := conn(ctx, d.db).Model(&model.Article{}).
		Where("id IN ? AND deleted = 0", ids).
		Update("deleted", 1)
	return res.RowsAffected, res.Error
}

func (d *articleDao) FindByID(ctx context.Context, id int64) (*model.Article, error) {
	var article model.Article
	err := d.base(ctx).Where("id = ?", id).First(&article).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func (d *articleDao) ListByCategoryID(ctx context.Context, categoryID int64) ([]model.Article, error) {
	var articles []model.Article
	err := d.base(ctx).Where("category_id = ?", categoryID).Find(&articles).Error
	return articles, err
}

func (d *articleDao) List(ctx context.Context) ([]model.Article, error) {
	var articles []model.Article
	err := d.base(ctx).Order("publish_time DESC").Find(&articles).Error
	return articles, err
}

func (d *articleDao) Page(ctx context.Context, filter ArticleFilter, pageNum, pageSize int) (*utils.Page[model.Article], error) {
	query := d.base(ctx)
	if filter.Title != "" {
		query = query.Where("title LIKE ?", "%"+filter.Title+"%")
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.Charged != nil {
		query = query.Where("charged = ?", *filter.Charged)
	}
	if filter.StartTime != nil {
		query = query.Where("publish_time >= ?", *filter.StartTime)
	}
	if filter.EndTime != nil {
		query = query.Where("publish_time <= ?", *filter.EndTime)
	}
	return paginate[model.Article](query, pageNum, pageSize, "publish_time DESC")
}
