package dto

import "time"

// LoginForm 登录请求体
type LoginForm struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginUser 登录态中保存的当前请求用户
type LoginUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	RoleID   int64  `json:"roleId"`
}

// UserSaveForm 新增/修改用户的请求体
type UserSaveForm struct {
	ID       *int64     `json:"id"`
	Username string     `json:"username" binding:"required"`
	Password string     `json:"password"`
	Phone    string     `json:"phone"`
	Email    string     `json:"email"`
	Gender   string     `json:"gender"`
	Birthday *time.Time `json:"birthday" time_format:"2006-01-02"`
	Avatar   string     `json:"avatar"`
}

// UserPageQuery 用户分页检索条件
type UserPageQuery struct {
	PageQuery
	Username string `form:"username"`
	RoleID   *int64 `form:"roleId"`
	VIP      *int   `form:"vip"`
	Status   string `form:"status"`
}

// UserVO 用户视图对象（不含密码）
type UserVO struct {
	ID           int64      `json:"id"`
	Username     string     `json:"username"`
	Phone        string     `json:"phone"`
	Email        string     `json:"email"`
	Gender       string     `json:"gender"`
	Birthday     *time.Time `json:"birthday"`
	Avatar       string     `json:"avatar"`
	RegisterTime time.Time  `json:"registerTime"`
	Status       string     `json:"status"`
	RoleID       int64      `json:"roleId"`
	VIP          int        `json:"vip"`
	Role         *RoleVO    `json:"role,omitempty"`
}

// RoleVO 角色视图对象
type RoleVO struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
