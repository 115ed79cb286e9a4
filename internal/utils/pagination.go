package utils

// Page 分页结果包装，records 与 total 一并返回
type Page[T any] struct {
	Records  []T   `json:"records"`
	Total    int64 `json:"total"`
	PageNum  int   `json:"pageNum"`
	PageSize int   `json:"pageSize"`
}

// NewPage 构造分页结果
func NewPage[T any](records []T, total int64, pageNum, pageSize int) *Page[T] {
	return &Page[T]{Records: records, Total: total, PageNum: pageNum, PageSize: pageSize}
}

// ConvertPage 将分页结果中的每条记录做类型转换，total 和分页参数原样保留
func ConvertPage[E any, V any](page *Page[E], convert func(*E) V) *Page[V] {
	records := make([]V, 0, len(page.Records))
	for i := range page.Records {
		records = append(records, convert(&page.Records[i]))
	}
	return &Page[V]{
		Records:  records,
		Total:    page.Total,
		PageNum:  page.PageNum,
		PageSize: page.PageSize,
	}
}

// Offset 计算分页偏移量
func (p *Page[T]) Offset() int {
	offset := (p.PageNum - 1) * p.PageSize
	if offset < 0 {
		return 0
	}
	return offset
}
