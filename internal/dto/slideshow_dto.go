package dto

// SlideshowSaveForm 新增/修改轮播图的请求体
type SlideshowSaveForm struct {
	ID          *int64 `json:"id"`
	Description string `json:"description"`
	URL         string `json:"url" binding:"required"`
	Status      string `json:"status"`
}

// SlideshowPageQuery 轮播图分页检索条件
type SlideshowPageQuery struct {
	PageQuery
	Description string `form:"description"`
	Status      string `form:"status"`
}

// SlideshowVO 轮播图视图对象
type SlideshowVO struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Status      string `json:"status"`
}
