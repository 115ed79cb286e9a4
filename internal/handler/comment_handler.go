package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"cms-backend/internal/cmserr"
	"cms-backend/internal/dto"
	"cms-backend/internal/service"
)

// CommentHandler 评论管理接口
type CommentHandler struct {
	commentService *service.CommentService
}

func NewCommentHandler(commentService *service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

func (h *CommentHandler) RegisterRoutes(r *gin.Engine) {
	group := r.Group("/comment")
	group.GET("/pageQuery", h.pageQuery)
	group.DELETE("/:id", h.remove)
}

func (h *CommentHandler) pageQuery(ctx *gin.Context) {
	var q dto.CommentPageQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.FailWithError(cmserr.ParamInvalid))
		return
	}
	page, err := h.commentService.PageQuery(ctx.Request.Context(), q)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.OkWithPage(page.Records, page.Total))
}

func (h *CommentHandler) remove(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.FailWithError(cmserr.ParamInvalid))
		return
	}
	// type=parent 删除一级评论并级联删除回复；type=child 只删除一条回复
	kind := ctx.DefaultQuery("type", service.CommentKindParent)
	if err := h.commentService.Delete(ctx.Request.Context(), id, kind); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.Ok())
}
