package controller

import (
	"learnhub_backend/internal/service"
	"learnhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ModuleController struct {
	ModuleService *service.ModuleService
}

func NewModuleController(moduleService *service.ModuleService) *ModuleController {
	return &ModuleController{ModuleService: moduleService}
}

// ModuleRequest order 以字符串传递，空或无法解析时创建默认 0、更新保持原值
// swagger:model ModuleRequest
type ModuleRequest struct {
	Title string `json:"title" binding:"required"`
	Order string `json:"order"`
}

// CreateModule godoc
// @Summary 创建模块
// @Tags 课程结构
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "课程ID"
// @Param   body body ModuleRequest true "模块信息"
// @Success 201 {object} util.Response{data=model.Module}
// @Failure 404 {object} util.Response "课程不存在或不属于当前讲师"
// @Router /courses/{id}/modules [post]
func (c *ModuleController) CreateModule(ctx *gin.Context) {
	actor, ok := util.ActorFromContext(ctx)
	if !ok {
		util.Unauthorized(ctx)
		return
	}

	var req ModuleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	module, err := c.ModuleService.CreateModule(actor, ctx.Param("id"), service.CreateModuleInput{
		Title: req.Title,
		Order: req.Order,
	})
	if err != nil {
		util.WriteError(ctx, err)
		return
	}

	util.Created(ctx, module)
}

// UpdateModuleRequest 宽松合并更新
// swagger:model UpdateModuleRequest
type UpdateModuleRequest struct {
	Title *string `json:"title"`
	Order *string `json:"order"`
}

// UpdateModule godoc
// @Summary 更新模块
// @Tags 课程结构
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "模块ID"
// @Param   body body UpdateModuleRequest true "更新字段"
// @Success 200 {object} util.Response{data=model.Module}
// @Failure 404 {object} util.Response
// @Router /modules/{id} [put]
func (c *ModuleController) UpdateModule(ctx *gin.Context) {
	actor, ok := util.ActorFromContext(ctx)
	if !ok {
		util.Unauthorized(ctx)
		return
	}

	var req UpdateModuleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	module, err := c.ModuleService.UpdateModule(actor, ctx.Param("id"), service.UpdateModuleInput{
		Title: req.Title,
		Order: req.Order,
	})
	if err != nil {
		util.WriteError(ctx, err)
		return
	}

	util.Success(ctx, module)
}

// DeleteModule godoc
// @Summary 删除模块
// @Description 物理删除，课时与测验级联删除
// @Tags 课程结构
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "模块ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /modules/{id} [delete]
func (c *ModuleController) DeleteModule(ctx *gin.Context) {
	actor, ok := util.ActorFromContext(ctx)
	if !ok {
		util.Unauthorized(ctx)
		return
	}

	if err := c.ModuleService.DeleteModule(actor, ctx.Param("id")); err != nil {
		util.WriteError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}
