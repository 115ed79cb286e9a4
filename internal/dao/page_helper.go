package dao

import (
	"gorm.io/gorm"

	"cms-backend/internal/utils"
)

// paginate 在已拼好过滤条件的查询上执行 count + 分页查询。
// total 与记录清单只反映已设置的过滤条件。
func paginate[T any](query *gorm.DB, pageNum, pageSize int, order string) (*utils.Page[T], error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}
	page := utils.NewPage[T](nil, total, pageNum, pageSize)
	if total == 0 {
		page.Records = []T{}
		return page, nil
	}
	q := query
	if order != "" {
		q = q.Order(order)
	}
	var records []T
	if err := q.Offset(page.Offset()).Limit(pageSize).Find(&records).Error; err != nil {
		return nil, err
	}
	page.Records = records
	return page, nil
}
