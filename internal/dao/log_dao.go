package dao

import (
	"context"
	"time"

	"gorm.io/gorm"

	"cms-backend/internal/model"
	"cms-backend/internal/utils"
)

// LogFilter 请求日志检索条件
type LogFilter struct {
	Username   string
	RequestURL string
	StartTime  *time.Time
	EndTime    *time.Time
}

// LogDao 请求日志存储适配器
type LogDao interface {
	Insert(ctx context.Context, entry *model.Log) error
	Page(ctx context.Context, filter LogFilter, pageNum, pageSize int) (*utils.Page[model.Log], error)
}

type logDao struct {
	db *gorm.DB
}

// NewLogDao 创建请求日志 dao
func NewLogDao(db *gorm.DB) LogDao {
	return &logDao{db: db}
}

func (d *logDao) Insert(ctx context.Context, entry *model.Log) error {
	return conn(ctx, d.db).Create(entry).Error
}

func (d *logDao) Page(ctx context.Context, filter LogFilter, pageNum, pageSize int) (*utils.Page[model.Log], error) {
	query := conn(ctx, d.db).Model(&model.Log{})
	if filter.Username != "" {
		query = query.Where("username LIKE ?", "%"+filter.Username+"%")
	}
	if filter.RequestURL != "" {
		query = query.Where("request_url LIKE ?", "%"+filter.RequestURL+"%")
	}
	if filter.StartTime != nil {
		query = query.Where("create_time >= ?", *filter.StartTime)
	}
	if filter.EndTime != nil {
		query = query.Where("create_time <= ?", *filter.EndTime)
	}
	return paginate[model.Log](query, pageNum, pageSize, "create_time DESC")
}
