package model

// Category mirrors cms_category.
// ParentID 为空表示一级栏目，非空表示二级栏目（固定两级）。
type Category struct {
	ID          int64  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"column:name" json:"name"`
	Description string `gorm:"column:description" json:"description"`
	OrderNum    int    `gorm:"column:order_num" json:"orderNum"`
	ParentID    *int64 `gorm:"column:parent_id" json:"parentId"`
	Deleted     int    `gorm:"column:deleted" json:"-"`
}

func (Category) TableName() string { return "cms_category" }

// IsParent 是否为一级栏目
func (c *Category) IsParent() bool { return c.ParentID == nil }
