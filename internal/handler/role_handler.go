package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"cms-backend/internal/cmserr"
	"cms-backend/internal/dto"
	"cms-backend/internal/service"
)

// RoleHandler 角色查询接口，角色是内置数据，不提供增删改
type RoleHandler struct {
	roleService *service.RoleService
}

func NewRoleHandler(roleService *service.RoleService) *RoleHandler {
	return &RoleHandler{roleService: roleService}
}

func (h *RoleHandler) RegisterRoutes(r *gin.Engine) {
	group := r.Group("/role")
	group.GET("/list", h.list)
	group.GET("/:id", h.getByID)
}

func (h *RoleHandler) getByID(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.FailWithError(cmserr.ParamInvalid))
		return
	}
	vo, err := h.roleService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.OkWithData(vo))
}

func (h *RoleHandler) list(ctx *gin.Context) {
	vos, err := h.roleService.List(ctx.Request.Context())
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.OkWithData(vos))
}
