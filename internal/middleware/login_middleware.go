package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"cms-backend/internal/cmserr"
	"cms-backend/internal/dto"
	"cms-backend/internal/model"
	"cms-backend/internal/service"
)

const loginUserContextKey = "loginUser"

// LoginMiddleware 登录校验：匿名路径放行，其余路径必须携带有效令牌
func LoginMiddleware(authService *service.AuthService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		needAuth := !isAnonymousPath(ctx.Request.URL.Path)

		token := extractToken(ctx)
		if token == "" {
			if needAuth {
				ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.FailWithError(cmserr.TokenEmpty))
				return
			}
			ctx.Next()
			return
		}

		loginUser, err := authService.ResolveLoginUser(ctx.Request.Context(), token)
		if err != nil {
			if needAuth {
				ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.FailWithError(err))
				return
			}
			ctx.Next()
			return
		}
		ctx.Set(loginUserContextKey, loginUser)
		ctx.Next()
	}
}

// AdminMiddleware 管理端权限校验：仅超级管理员和管理员可访问
func AdminMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		loginUser, ok := GetLoginUser(ctx)
		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.FailWithError(cmserr.UserNotLogin))
			return
		}
		if loginUser.RoleID != model.RoleSuperAdmin && loginUser.RoleID != model.RoleAdmin {
			ctx.AbortWithStatusJSON(http.StatusForbidden, dto.FailWithError(cmserr.PermissionNoAccess))
			return
		}
		ctx.Next()
	}
}

// GetLoginUser 从 Gin Context 中读取登录用户信息
func GetLoginUser(ctx *gin.Context) (*dto.LoginUser, bool) {
	v, exists := ctx.Get(loginUserContextKey)
	if !exists {
		return nil, false
	}
	loginUser, ok := v.(*dto.LoginUser)
	return loginUser, ok
}

// isAnonymousPath 这些路径放行 不需要登录即可访问
func isAnonymousPath(path string) bool {
	for _, prefix := range []string{"/metrics", "/healthz", "/readyz"} {
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return true
		}
	}
	return path == "/login"
}

// extractToken 提取token，优先取请求头
func extractToken(ctx *gin.Context) string {
	token := ctx.GetHeader("authorization")
	if token == "" {
		token = ctx.GetHeader("token")
	}
	if token == "" {
		token = ctx.Query("token")
	}
	return strings.TrimPrefix(token, "Bearer ")
}
