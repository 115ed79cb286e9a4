// Package cmserr 定义业务错误：每个错误携带稳定的状态码和提示信息，
// 与前端约定的状态码目录保持一致。
package cmserr

import (
	"errors"
	"fmt"
)

// Error 业务异常
type Error struct {
	Code int
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("[%d] %s", e.Code, e.Msg)
}

// New 构造业务错误
func New(code int, msg string) *Error {
	return &Error{Code: code, Msg: msg}
}

// As 尝试把任意 error 还原为业务错误
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// 状态码目录
var (
	ParamInvalid = New(10001, "参数无效")

	UserNotLogin         = New(20001, "用户未登录")
	UserUsernameNotExist = New(20002, "账号不存在")
	UserPasswordInvalid  = New(20003, "密码错误")
	UserAccountForbidden = New(20004, "账号已被禁用")
	UserHasExisted       = New(20005, "用户已存在")
	TokenEmpty           = New(20007, "Token令牌不存在")
	TokenExpired         = New(20008, "Token令牌已过期")
	TokenSignatureError  = New(20009, "Token令牌内容或格式非法")

	SystemInnerError = New(40001, "系统内部错误，请稍后重试")

	DataNone                  = New(50001, "数据未找到")
	SlideshowNotExisted       = New(50004, "轮播图不存在")
	SlideshowURLExisted       = New(50005, "轮播图url已存在")
	CategoryNotExist          = New(50008, "栏目不存在")
	CategoryHasExisted        = New(50009, "栏目已存在")
	CategoryLevelSettingError = New(50010, "级别修改错误")
	ArticleNotExist           = New(50011, "文章不存在")
	CommentNotExist           = New(50013, "评论不存在")
	SubCommentNotExist        = New(50015, "二级评论不存在")
	CategoryDeleteFailed      = New(50016, "栏目删除失败")

	PermissionNoAccess = New(70001, "无访问权限")
)
