package dto

// PageQuery 分页参数，所有分页接口共用
type PageQuery struct {
	PageNum  int `form:"pageNum,default=1"`
	PageSize int `form:"pageSize,default=10"`
}

// Normalize 纠正非法分页参数
func (p *PageQuery) Normalize() {
	if p.PageNum < 1 {
		p.PageNum = 1
	}
	if p.PageSize < 1 || p.PageSize > 100 {
		p.PageSize = 10
	}
}
