package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"cms-backend/internal/cmserr"
	"cms-backend/internal/dto"
	"cms-backend/internal/service"
)

// UserHandler 用户管理接口
type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) RegisterRoutes(r gin.IRouter) {
	group := r.Group("/user")
	group.POST("", h.save)
	group.PUT("", h.update)
	group.DELETE("/:ids", h.remove)
	group.GET("/list", h.list)
	group.GET("/pageQuery", h.pageQuery)
	group.GET("/:id", h.getByID)
}

func (h *UserHandler) save(ctx *gin.Context) {
	var form dto.UserSaveForm
	if err := ctx.ShouldBindJSON(&form); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.FailWithError(cmserr.ParamInvalid))
		return
	}
	if err := h.userService.Save(ctx.Request.Context(), form); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.Ok())
}

func (h *UserHandler) update(ctx *gin.Context) {
	var form dto.UserSaveForm
	if err := ctx.ShouldBindJSON(&form); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.FailWithError(cmserr.ParamInvalid))
		return
	}
	if err := h.userService.Update(ctx.Request.Context(), form); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.Ok())
}

func (h *UserHandler) remove(ctx *gin.Context) {
	ids, err := parseIDList(ctx.Param("ids"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.FailWithError(cmserr.ParamInvalid))
		return
	}
	if err := h.userService.Delete(ctx.Request.Context(), ids); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.Ok())
}

func (h *UserHandler) getByID(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.FailWithError(cmserr.ParamInvalid))
		return
	}
	vo, err := h.userService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.OkWithData(vo))
}

func (h *UserHandler) list(ctx *gin.Context) {
	vos, err := h.userService.List(ctx.Request.Context())
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.OkWithData(vos))
}

func (h *UserHandler) pageQuery(ctx *gin.Context) {
	var q dto.UserPageQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.FailWithError(cmserr.ParamInvalid))
		return
	}
	page, err := h.userService.PageQuery(ctx.Request.Context(), q)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.OkWithPage(page.Records, page.Total))
}
