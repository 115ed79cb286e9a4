package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"cms-backend/internal/model"
	"cms-backend/internal/utils"
)

// CommentFilter 一级评论检索条件
type CommentFilter struct {
	UserID    *int64
	ArticleID *int64
	Content   string
	StartTime *time.Time
	EndTime   *time.Time
}

// CommentDao 一级评论存储适配器
type CommentDao interface {
	Insert(ctx context.Context, comment *model.Comment) error
	// FindByID 未找到时返回 (nil, nil)
	FindByID(ctx context.Context, id int64) (*model.Comment, error)
	DeleteByID(ctx context.Context, id int64) (int64, error)
	Page(ctx context.Context, filter CommentFilter, pageNum, pageSize int) (*utils.Page[model.Comment], error)
}

// SubCommentDao 二级评论存储适配器
type SubCommentDao interface {
	Insert(ctx context.Context, subComment *model.SubComment) error
	FindByID(ctx context.Context, id int64) (*model.SubComment, error)
	ListByParentID(ctx context.Context, parentID int64) ([]model.SubComment, error)
	DeleteByID(ctx context.Context, id int64) (int64, error)
	DeleteByParentID(ctx context.Context, parentID int64) (int64, error)
}

type commentDao struct {
	db *gorm.DB
}

// NewCommentDao 创建一级评论 dao
func NewCommentDao(db *gorm.DB) CommentDao {
	return &commentDao{db: db}
}

func (d *commentDao) Insert(ctx context.Context, comment *model.Comment) error {
	return conn(ctx, d.db).Create(comment).Error
}

func (d *commentDao) FindByID(ctx context.Context, id int64) (*model.Comment, error) {
	var comment model.Comment
	err := conn(ctx, d.db).Where("id = ?", id).First(&comment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (d *commentDao) DeleteByID(ctx context.Context, id int64) (int64, error) {
	res := conn(ctx, d.db).Where("id = ?", id).Delete(&model.Comment{})
	return res.RowsAffected, res.Error
}

func (d *commentDao) Page(ctx context.Context, filter CommentFilter, pageNum, pageSize int) (*utils.Page[model.Comment], error) {
	query := conn(ctx, d.db).Model(&model.Comment{})
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.ArticleID != nil {
		query = query.Where("article_id = ?", *filter.ArticleID)
	}
	if filter.Content != "" {
		query = query.Where("content LIKE ?", "%"+filter.Content+"%")
	}
	if filter.StartTime != nil {
		query = query.Where("publish_time >= ?", *filter.StartTime)
	}
	if filter.EndTime != nil {
		query = query.Where("publish_time <= ?", *filter.EndTime)
	}
	return paginate[model.Comment](query, pageNum, pageSize, "publish_time DESC")
}

type subCommentDao struct {
	db *gorm.DB
}

// NewSubCommentDao 创建二级评论 dao
func NewSubCommentDao(db *gorm.DB) SubCommentDao {
	return &subCommentDao{db: db}
}

func (d *subCommentDao) Insert(ctx context.Context, subComment *model.SubComment) error {
	return conn(ctx, d.db).Create(subComment).Error
}

func (d *subCommentDao) FindByID(ctx context.Context, id int64) (*model.SubComment, error) {
	var subComment model.SubComment
	err := conn(ctx, d.db).Where("id = ?", id).First(&subComment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &subComment, nil
}

func (d *subCommentDao) ListByParentID(ctx context.Context, parentID int64) ([]model.SubComment, error) {
	var subComments []model.SubComment
	err := conn(ctx, d.db).Where("parent_id = ?", parentID).
		Order("publish_time ASC").
		Find(&subComments).Error
	return subComments, err
}

func (d *subCommentDao) DeleteByID(ctx context.Context, id int64) (int64, error) {
	res := conn(ctx, d.db).Where("id = ?", id).Delete(&model.SubComment{})
	return res.RowsAffected, res.Error
}

func (d *subCommentDao) DeleteByParentID(ctx context.Context, parentID int64) (int64, error) {
	res := conn(ctx, d.db).Where("parent_id = ?", parentID).Delete(&model.SubComment{})
	return res.RowsAffected, res.Error
}
