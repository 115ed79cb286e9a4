package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"cms-backend/internal/cmserr"
	"cms-backend/internal/dto"
	"cms-backend/internal/service"
)

// SlideshowHandler 轮播图管理接口
type SlideshowHandler struct {
	slideshowService *service.SlideshowService
}

func NewSlideshowHandler(slideshowService *service.SlideshowService) *SlideshowHandler {
	return &SlideshowHandler{slideshowService: slideshowService}
}

func (h *SlideshowHandler) RegisterRoutes(r *gin.Engine) {
	group := r.Group("/slideshow")
	group.POST("", h.save)
	group.PUT("", h.update)
	group.DELETE("/:ids", h.remove)
	group.GET("/pageQuery", h.pageQuery)
	group.GET("/:id", h.getByID)
}

func (h *SlideshowHandler) save(ctx *gin.Context) {
	var form dto.SlideshowSaveForm
	if err := ctx.ShouldBindJSON(&form); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.FailWithError(cmserr.ParamInvalid))
		return
	}
	if err := h.slideshowService.Save(ctx.Request.Context(), form); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.Ok())
}

func (h *SlideshowHandler) update(ctx *gin.Context) {
	var form dto.SlideshowSaveForm
	if err := ctx.ShouldBindJSON(&form); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.FailWithError(cmserr.ParamInvalid))
		return
	}
	if err := h.slideshowService.Update(ctx.Request.Context(), form); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.Ok())
}

func (h *SlideshowHandler) remove(ctx *gin.Context) {
	ids, err := parseIDList(ctx.Param("ids"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.FailWithError(cmserr.ParamInvalid))
		return
	}
	if err := h.slideshowService.Delete(ctx.Request.Context(), ids); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.Ok())
}

func (h *SlideshowHandler) getByID(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.FailWithError(cmserr.ParamInvalid))
		return
	}
	vo, err := h.slideshowService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.OkWithData(vo))
}

func (h *SlideshowHandler) pageQuery(ctx *gin.Context) {
	var q dto.SlideshowPageQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.FailWithError(cmserr.ParamInvalid))
		return
	}
	page, err := h.slideshowService.PageQuery(ctx.Request.Context(), q)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.OkWithPage(page.Records, page.Total))
}
