// Package handler 暴露后台管理端的 HTTP 接口，只做参数绑定和响应编排，
// 业务规则全部在 service 层。
package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"cms-backend/internal/cmserr"
	"cms-backend/internal/dto"
)

// writeError 业务错误按约定返回 200+错误码，其余错误按服务器异常处理
func writeError(ctx *gin.Context, err error) {
	if _, ok := cmserr.As(err); ok {
		ctx.JSON(http.StatusOK, dto.FailWithError(err))
		return
	}
	ctx.JSON(http.StatusInternalServerError, dto.FailWithError(err))
}

// parseIDList 解析路径中逗号分隔的 ID 列表，如 /category/1,2,3
func parseIDList(raw string) ([]int64, error) {
	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, cmserr.ParamInvalid
	}
	return ids, nil
}
