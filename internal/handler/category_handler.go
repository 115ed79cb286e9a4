package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"cms-backend/internal/cmserr"
	"cms-backend/internal/dto"
	"cms-backend/internal/service"
)

// CategoryHandler 栏目管理接口
type CategoryHandler struct {
	categoryService *service.CategoryService
}

func NewCategoryHandler(categoryService *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

func (h *CategoryHandler) RegisterRoutes(r *gin.Engine) {
	group := r.Group("/category")
	group.POST("", h.save)
	group.PUT("", h.update)
	group.DELETE("/:ids", h.remove)
	group.GET("/list", h.list)
	group.GET("/pageQuery", h.pageQuery)
	group.GET("/:id", h.getByID)
}

func (h *CategoryHandler) save(ctx *gin.Context) {
	var form dto.CategorySaveForm
	if err := ctx.ShouldBindJSON(&form); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.FailWithError(cmserr.ParamInvalid))
		return
	}
	if err := h.categoryService.Save(ctx.Request.Context(), form); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.Ok())
}

func (h *CategoryHandler) update(ctx *gin.Context) {
	var form dto.CategorySaveForm
	if err := ctx.ShouldBindJSON(&form); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.FailWithError(cmserr.ParamInvalid))
		return
	}
	if err := h.categoryService.Update(ctx.Request.Context(), form); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.Ok())
}

func (h *CategoryHandler) remove(ctx *gin.Context) {
	ids, err := parseIDList(ctx.Param("ids"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.FailWithError(cmserr.ParamInvalid))
		return
	}
	if err := h.categoryService.Delete(ctx.Request.Context(), ids); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.Ok())
}

func (h *CategoryHandler) getByID(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.FailWithError(cmserr.ParamInvalid))
		return
	}
	cascade := ctx.Query("cascadeChildren") == "true"
	vo, err := h.categoryService.GetByID(ctx.Request.Context(), id, cascade)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.OkWithData(vo))
}

func (h *CategoryHandler) list(ctx *gin.Context) {
	cascade := ctx.Query("cascadeChildren") == "true"
	vos, err := h.categoryService.List(ctx.Request.Context(), ctx.Query("level"), cascade)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.OkWithData(vos))
}

func (h *CategoryHandler) pageQuery(ctx *gin.Context) {
	var q dto.CategoryPageQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.FailWithError(cmserr.ParamInvalid))
		return
	}
	page, err := h.categoryService.PageQuery(ctx.Request.Context(), q)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.OkWithPage(page.Records, page.Total))
}
