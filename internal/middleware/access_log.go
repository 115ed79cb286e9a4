package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"cms-backend/internal/service"
)

// 业务名称按路由前缀归类，入库后方便按模块检索
var businessNames = []struct {
	prefix string
	name   string
}{
	{"/login", "登录"},
	{"/logout", "登出"},
	{"/userinfo", "用户信息"},
	{"/category", "栏目管理"},
	{"/article", "资讯管理"},
	{"/comment", "评论管理"},
	{"/user", "用户管理"},
	{"/role", "角色管理"},
	{"/slideshow", "轮播图管理"},
	{"/log", "日志管理"},
	{"/upload", "文件上传"},
}

// AccessLog 访问日志中间件：请求完成后把访问记录异步投递到 Kafka
func AccessLog(logService *service.LogService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		username := ""
		if loginUser, ok := GetLoginUser(ctx); ok {
			username = loginUser.Username
		}
		logService.Record(
			ctx.Request.Context(),
			username,
			businessNameOf(ctx.Request.URL.Path),
			ctx.Request.URL.Path,
			ctx.Request.Method,
			ctx.ClientIP(),
			time.Since(start),
		)
	}
}

func businessNameOf(path string) string {
	for _, item := range businessNames {
		if path == item.prefix || len(path) > len(item.prefix) && path[:len(item.prefix)] == item.prefix && path[len(item.prefix)] == '/' {
			return item.name
		}
	}
	return "其他"
}
