package controller

import (
	"learnhub_backend/internal/service"
	"learnhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type LessonController struct {
	LessonService *service.LessonService
}

func NewLessonController(lessonService *service.LessonService) *LessonController {
	return &LessonController{LessonService: lessonService}
}

// swagger:model LessonRequest
type LessonRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content"`
	Order   string `json:"order"`
}

// CreateLesson godoc
// @Summary 创建课时
// @Description content 为 markdown 原文，渲染由前端完成
// @Tags 课程结构
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "模块ID"
// @Param   body body LessonRequest true "课时信息"
// @Success 201 {object} util.Response{data=model.Lesson}
// @Failure 404 {object} util.Response "模块不存在或不属于当前讲师"
// @Router /modules/{id}/lessons [post]
func (c *LessonController) CreateLesson(ctx *gin.Context) {
	actor, ok := util.ActorFromContext(ctx)
	if !ok {
		util.Unauthorized(ctx)
		return
	}

	var req LessonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	lesson, err := c.LessonService.CreateLesson(actor, ctx.Param("id"), service.CreateLessonInput{
		Title:   req.Title,
		Content: req.Content,
		Order:   req.Order,
	})
	if err != nil {
		util.WriteError(ctx, err)
		return
	}

	util.Created(ctx, lesson)
}

// swagger:model UpdateLessonRequest
type UpdateLessonRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
	Order   *string `json:"order"`
}

// UpdateLesson godoc
// @Summary 更新课时
// @Tags 课程结构
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "课时ID"
// @Param   body body UpdateLessonRequest true "更新字段"
// @Success 200 {object} util.Response{data=model.Lesson}
// @Failure 404 {object} util.Response
// @Router /lessons/{id} [put]
func (c *LessonController) UpdateLesson(ctx *gin.Context) {
	actor, ok := util.ActorFromContext(ctx)
	if !ok {
		util.Unauthorized(ctx)
		return
	}

	var req UpdateLessonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	lesson, err := c.LessonService.UpdateLesson(actor, ctx.Param("id"), service.UpdateLessonInput{
		Title:   req.Title,
		Content: req.Content,
		Order:   req.Order,
	})
	if err != nil {
		util.WriteError(ctx, err)
		return
	}

	util.Success(ctx, lesson)
}

// DeleteLesson godoc
// @Summary 删除课时
// @Tags 课程结构
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "课时ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /lessons/{id} [delete]
func (c *LessonController) DeleteLesson(ctx *gin.Context) {
	actor, ok := util.ActorFromContext(ctx)
	if !ok {
		util.Unauthorized(ctx)
		return
	}

	if err := c.LessonService.DeleteLesson(actor, ctx.Param("id")); err != nil {
		util.WriteError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}
