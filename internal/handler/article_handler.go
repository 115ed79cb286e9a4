package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"cms-backend/internal/cmserr"
	"cms-backend/internal/dto"
	"cms-backend/internal/middleware"
	"cms-backend/internal/model"
	"cms-backend/internal/service"
)

// ArticleHandler 资讯管理接口
type ArticleHandler struct {
	articleService *service.ArticleService
}

func NewArticleHandler(articleService *service.ArticleService) *ArticleHandler {
	return &ArticleHandler{articleService: articleService}
}

func (h *ArticleHandler) RegisterRoutes(r *gin.Engine) {
	group := r.Group("/article")
	group.POST("", h.saveOrUpdate)
	group.POST("/review", h.review)
	group.DELETE("/:ids", h.remove)
	group.GET("/list", h.list)
	group.GET("/pageQuery", h.pageQuery)
	group.GET("/:id", h.getByID)
}

func (h *ArticleHandler) saveOrUpdate(ctx *gin.Context) {
	var form dto.ArticleSaveForm
	if err := ctx.ShouldBindJSON(&form); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.FailWithError(cmserr.ParamInvalid))
		return
	}
	loginUser, ok := middleware.GetLoginUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.FailWithError(cmserr.UserNotLogin))
		return
	}
	if err := h.articleService.SaveOrUpdate(ctx.Request.Context(), loginUser.ID, form); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.Ok())
}

func (h *ArticleHandler) review(ctx *gin.Context) {
	var form dto.ArticleReviewForm
	if err := ctx.ShouldBindJSON(&form); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.FailWithError(cmserr.ParamInvalid))
		return
	}
	// 审核结果只能二选一
	if form.Status != model.ArticleStatusApproved && form.Status != model.ArticleStatusRejected {
		ctx.JSON(http.StatusBadRequest, dto.FailWithError(cmserr.ParamInvalid))
		return
	}
	if err := h.articleService.Review(ctx.Request.Context(), form.ID, form.Status); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.Ok())
}

func (h *ArticleHandler) remove(ctx *gin.Context) {
	ids, err := parseIDList(ctx.Param("ids"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.FailWithError(cmserr.ParamInvalid))
		return
	}
	if err := h.articleService.Delete(ctx.Request.Context(), ids); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.Ok())
}

func (h *ArticleHandler) getByID(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.FailWithError(cmserr.ParamInvalid))
		return
	}
	// 详情默认附带最新 5 条评论
	commentsNum := 5
	if raw := ctx.Query("commentsNum"); raw != "" {
		if v, convErr := strconv.Atoi(raw); convErr == nil && v >= 0 {
			commentsNum = v
		}
	}
	vo, err := h.articleService.GetByID(ctx.Request.Context(), id, commentsNum)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.OkWithData(vo))
}

func (h *ArticleHandler) list(ctx *gin.Context) {
	vos, err := h.articleService.List(ctx.Request.Context())
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.OkWithData(vos))
}

func (h *ArticleHandler) pageQuery(ctx *gin.Context) {
	var q dto.ArticlePageQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.FailWithError(cmserr.ParamInvalid))
		return
	}
	page, err := h.articleService.PageQuery(ctx.Request.Context(), q)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.OkWithPage(page.Records, page.Total))
}
