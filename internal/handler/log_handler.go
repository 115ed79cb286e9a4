package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cms-backend/internal/cmserr"
	"cms-backend/internal/dto"
	"cms-backend/internal/service"
)

// LogHandler 请求日志查询接口，日志由访问日志中间件经 Kafka 异步写入
type LogHandler struct {
	logService *service.LogService
}

func NewLogHandler(logService *service.LogService) *LogHandler {
	return &LogHandler{logService: logService}
}

func (h *LogHandler) RegisterRoutes(r gin.IRouter) {
	group := r.Group("/log")
	group.GET("/pageQuery", h.pageQuery)
}

func (h *LogHandler) pageQuery(ctx *gin.Context) {
	var q dto.LogPageQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.FailWithError(cmserr.ParamInvalid))
		return
	}
	page, err := h.logService.PageQuery(ctx.Request.Context(), q)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.OkWithPage(page.Records, page.Total))
}
