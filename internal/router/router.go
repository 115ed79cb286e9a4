// Package router 集中注册全部 HTTP 路由
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"cms-backend/internal/handler"
	"cms-backend/internal/middleware"
	"cms-backend/internal/service"
)

// Deps 路由注册所需的外部依赖
type Deps struct {
	Services     *service.Registry
	SQLDB        handler.PingableDB
	Redis        *redis.Client
	KafkaBrokers []string
	UploadDir    string
	Log          *zap.Logger
}

// RegisterRoutes 注册业务路由与登录/权限中间件
// 登录、探针和指标端点匿名可达，其余接口都要求登录；
// 用户和日志管理只有管理员角色能访问。
func RegisterRoutes(engine *gin.Engine, deps Deps) {
	engine.Use(middleware.LoginMiddleware(deps.Services.Auth))
	engine.Use(middleware.AccessLog(deps.Services.Log))

	handler.NewHealthHandler(deps.SQLDB, deps.Redis, deps.KafkaBrokers, deps.Log).RegisterRoutes(engine)
	handler.NewAuthHandler(deps.Services.Auth).RegisterRoutes(engine)
	handler.NewCategoryHandler(deps.Services.Category).RegisterRoutes(engine)
	handler.NewArticleHandler(deps.Services.Article).RegisterRoutes(engine)
	handler.NewCommentHandler(deps.Services.Comment).RegisterRoutes(engine)
	handler.NewRoleHandler(deps.Services.Role).RegisterRoutes(engine)
	handler.NewSlideshowHandler(deps.Services.Slideshow).RegisterRoutes(engine)
	handler.NewUploadHandler(deps.UploadDir).RegisterRoutes(engine)

	admin := engine.Group("", middleware.AdminMiddleware())
	handler.NewUserHandler(deps.Services.User).RegisterRoutes(admin)
	handler.NewLogHandler(deps.Services.Log).RegisterRoutes(admin)
}
