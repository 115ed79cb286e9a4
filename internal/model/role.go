package model

// 预置角色ID
const (
	RoleSuperAdmin int64 = 1
	RoleAdmin      int64 = 2
	RoleUser       int64 = 3
)

// Role mirrors cms_role.
type Role struct {
	ID          int64  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"column:name" json:"name"`
	Description string `gorm:"column:description" json:"description"`
}

func (Role) TableName() string { return "cms_role" }
