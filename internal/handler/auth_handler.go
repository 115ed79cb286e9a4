package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"cms-backend/internal/cmserr"
	"cms-backend/internal/dto"
	"cms-backend/internal/service"
)

// AuthHandler 登录、登出和当前用户信息
type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) RegisterRoutes(r *gin.Engine) {
	r.POST("/login", h.login)
	r.GET("/logout", h.logout)
	r.GET("/userinfo", h.userinfo)
}

func (h *AuthHandler) login(ctx *gin.Context) {
	var form dto.LoginForm
	if err := ctx.ShouldBindJSON(&form); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.FailWithError(cmserr.ParamInvalid))
		return
	}
	token, err := h.authService.Login(ctx.Request.Context(), form)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.OkWithData(token))
}

func (h *AuthHandler) logout(ctx *gin.Context) {
	if err := h.authService.Logout(ctx.Request.Context(), currentToken(ctx)); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.Ok())
}

func (h *AuthHandler) userinfo(ctx *gin.Context) {
	token := currentToken(ctx)
	if token == "" {
		ctx.JSON(http.StatusUnauthorized, dto.FailWithError(cmserr.TokenEmpty))
		return
	}
	vo, err := h.authService.GetUserinfo(ctx.Request.Context(), token)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.OkWithData(vo))
}

// currentToken 取本次请求携带的令牌
func currentToken(ctx *gin.Context) string {
	token := ctx.GetHeader("authorization")
	if token == "" {
		token = ctx.GetHeader("token")
	}
	if token == "" {
		token = ctx.Query("token")
	}
	return strings.TrimPrefix(token, "Bearer ")
}
