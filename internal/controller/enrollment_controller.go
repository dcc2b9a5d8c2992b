package controller

import (
	"learnhub_backend/internal/service"
	"learnhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type EnrollmentController struct {
	EnrollmentService *service.EnrollmentService
}

func NewEnrollmentController(enrollmentService *service.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{EnrollmentService: enrollmentService}
}

// Catalog godoc
// @Summary 课程目录
// @Description 全部课程，带讲师名与模块/选课统计；对所有已登录用户开放
// @Tags 选课
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /catalog [get]
func (c *EnrollmentController) Catalog(ctx *gin.Context) {
	if _, ok := util.ActorFromContext(ctx); !ok {
		util.Unauthorized(ctx)
		return
	}

	rows, err := c.EnrollmentService.ListAvailableCourses(ctx.Request.Context())
	if err != nil {
		util.WriteError(ctx, err)
		return
	}

	util.Success(ctx, rows)
}

// ListEnrolled godoc
// @Summary 我的已选课程
// @Description 按选课时间倒序
// @Tags 选课
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /enrollments [get]
func (c *EnrollmentController) ListEnrolled(ctx *gin.Context) {
	actor, ok := util.ActorFromContext(ctx)
	if !ok {
		util.Unauthorized(ctx)
		return
	}

	courses, err := c.EnrollmentService.ListEnrolledCourses(actor)
	if err != nil {
		util.WriteError(ctx, err)
		return
	}

	util.Success(ctx, courses)
}

// swagger:model EnrollRequest
type EnrollRequest struct {
	CourseID string `json:"courseId" binding:"required"`
}

// Enroll godoc
// @Summary 选课
// @Description 同一课程只能选一次，重复选课返回 409
// @Tags 选课
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body EnrollRequest true "课程"
// @Success 201 {object} util.Response{data=model.Enrollment}
// @Failure 404 {object} util.Response "课程不存在"
// @Failure 409 {object} util.Response "已选过该课程"
// @Router /enrollments [post]
func (c *EnrollmentController) Enroll(ctx *gin.Context) {
	actor, ok := util.ActorFromContext(ctx)
	if !ok {
		util.Unauthorized(ctx)
		return
	}

	var req EnrollRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	enrollment, err := c.EnrollmentService.Enroll(actor, req.CourseID)
	if err != nil {
		util.WriteError(ctx, err)
		return
	}

	util.Created(ctx, enrollment)
}

// CourseContent godoc
// @Summary 课程内容（学生视图）
// @Description 必须已选课；模块→课时→测验→题目，每层按 order 升序
// @Tags 选课
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "课程ID"
// @Success 200 {object} util.Response{data=model.Course}
// @Failure 403 {object} util.Response "未选课"
// @Router /courses/{id}/content [get]
func (c *EnrollmentController) CourseContent(ctx *gin.Context) {
	actor, ok := util.ActorFromContext(ctx)
	if !ok {
		util.Unauthorized(ctx)
		return
	}

	course, err := c.EnrollmentService.GetCourseContent(actor, ctx.Param("id"))
	if err != nil {
		util.WriteError(ctx, err)
		return
	}

	util.Success(ctx, course)
}
