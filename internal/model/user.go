package model

import "time"

// 用户状态
const (
	UserStatusEnabled  = "启用"
	UserStatusDisabled = "禁用"
)

// User mirrors cms_user.
type User struct {
	ID           int64      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Username     string     `gorm:"column:username" json:"username"`
	Password     string     `gorm:"column:password" json:"-"`
	Phone        string     `gorm:"column:phone" json:"phone"`
	Email        string     `gorm:"column:email" json:"email"`
	Gender       string     `gorm:"column:gender" json:"gender"`
	Birthday     *time.Time `gorm:"column:birthday" json:"birthday"`
	Avatar       string     `gorm:"column:avatar" json:"avatar"`
	RegisterTime time.Time  `gorm:"column:register_time" json:"registerTime"`
	Status       string     `gorm:"column:status" json:"status"`
	RoleID       int64      `gorm:"column:role_id" json:"roleId"`
	VIP          int        `gorm:"column:vip" json:"vip"`
	Deleted      int        `gorm:"column:deleted" json:"-"`
}

func (User) TableName() string { return "cms_user" }
