package dto

// CategorySaveForm 新增/修改栏目的请求体
type CategorySaveForm struct {
	ID          *int64 `json:"id"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	OrderNum    int    `json:"orderNum"`
	ParentID    *int64 `json:"parentId"`
}

// CategoryVO 栏目视图对象
type CategoryVO struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	OrderNum    int          `json:"orderNum"`
	ParentID    *int64       `json:"parentId"`
	Children    []CategoryVO `json:"children,omitempty"`
}

// CategoryPageQuery 栏目分页检索条件
type CategoryPageQuery struct {
	PageQuery
	ParentID *int64 `form:"parentId"`
}
