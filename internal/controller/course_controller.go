package controller

import (
	"learnhub_backend/internal/service"
	"learnhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CourseController struct {
	CourseService *service.CourseService
}

func NewCourseController(courseService *service.CourseService) *CourseController {
	return &CourseController{CourseService: courseService}
}

// CreateCourseRequest 创建课程请求
// swagger:model CreateCourseRequest
type CreateCourseRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Thumbnail   string `json:"thumbnail"`
}

// CreateCourse godoc
// @Summary 创建课程
// @Description 标题去空白后必须非空；空白的描述/封面按缺省存储
// @Tags 课程
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body CreateCourseRequest true "课程信息"
// @Success 201 {object} util.Response{data=model.Course}
// @Failure 400 {object} util.Response
// @Failure 401 {object} util.Response
// @Router /courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	actor, ok := util.ActorFromContext(ctx)
	if !ok {
		util.Unauthorized(ctx)
		return
	}

	var req CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	course, err := c.CourseService.CreateCourse(actor, service.CreateCourseInput{
		Title:       req.Title,
		Description: req.Description,
		Thumbnail:   req.Thumbnail,
	})
	if err != nil {
		util.WriteError(ctx, err)
		return
	}

	util.Created(ctx, course)
}

// ListCourses godoc
// @Summary 讲师课程列表
// @Description 按创建时间倒序，附带模块/课时树与选课人数
// @Tags 课程
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	actor, ok := util.ActorFromContext(ctx)
	if !ok {
		util.Unauthorized(ctx)
		return
	}

	courses, err := c.CourseService.ListInstructorCourses(actor)
	if err != nil {
		util.WriteError(ctx, err)
		return
	}

	util.Success(ctx, courses)
}

// GetCourse godoc
// @Summary 课程编辑视图
// @Description 全量嵌套（模块→课时→测验→题目），仅课程所有者可见
// @Tags 课程
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "课程ID"
// @Success 200 {object} util.Response{data=model.Course}
// @Failure 404 {object} util.Response
// @Router /courses/{id} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	actor, ok := util.ActorFromContext(ctx)
	if !ok {
		util.Unauthorized(ctx)
		return
	}

	course, err := c.CourseService.GetCourseForEditing(actor, ctx.Param("id"))
	if err != nil {
		util.WriteError(ctx, err)
		return
	}

	util.Success(ctx, course)
}

// UpdateCourseRequest 部分更新：省略的字段不动；空白标题跳过；空白描述清空
// swagger:model UpdateCourseRequest
type UpdateCourseRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// UpdateCourse godoc
// @Summary 更新课程
// @Tags 课程
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "课程ID"
// @Param   body body UpdateCourseRequest true "更新字段"
// @Success 200 {object} util.Response{data=model.Course}
// @Failure 404 {object} util.Response
// @Router /courses/{id} [put]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	actor, ok := util.ActorFromContext(ctx)
	if !ok {
		util.Unauthorized(ctx)
		return
	}

	var req UpdateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	course, err := c.CourseService.UpdateCourse(actor, ctx.Param("id"), service.UpdateCourseInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		util.WriteError(ctx, err)
		return
	}

	util.Success(ctx, course)
}

// DeleteCourse godoc
// @Summary 删除课程
// @Description 物理删除，模块/课时/测验/题目级联删除
// @Tags 课程
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "课程ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /courses/{id} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	actor, ok := util.ActorFromContext(ctx)
	if !ok {
		util.Unauthorized(ctx)
		return
	}

	if err := c.CourseService.DeleteCourse(actor, ctx.Param("id")); err != nil {
		util.WriteError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}
