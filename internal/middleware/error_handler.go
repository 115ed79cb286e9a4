package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"cms-backend/internal/dto"
)

// ErrorHandler 兜底异常处理：panic 统一转为 JSON 响应
func ErrorHandler(log *zap.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error("panic recovered",
					zap.Any("error", rec),
					zap.String("path", ctx.Request.URL.Path),
				)
				ctx.JSON(http.StatusInternalServerError, dto.Fail("服务器异常"))
				ctx.Abort()
			}
		}()
		ctx.Next()
	}
}
