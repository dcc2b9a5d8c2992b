package controller

import (
	"learnhub_backend/internal/service"
	"learnhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type StudentController struct {
	StudentService *service.StudentService
}

func NewStudentController(studentService *service.StudentService) *StudentController {
	return &StudentController{StudentService: studentService}
}

// swagger:model CreateStudentRequest
type CreateStudentRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// CreateStudent godoc
// @Summary 开通学生账号
// @Description 邮箱全局唯一（跨角色）；角色强制为 student
// @Tags 学生管理
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body CreateStudentRequest true "学生信息"
// @Success 201 {object} util.Response{data=model.User}
// @Failure 409 {object} util.Response "邮箱已被注册"
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	actor, ok := util.ActorFromContext(ctx)
	if !ok {
		util.Unauthorized(ctx)
		return
	}

	var req CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	student, err := c.StudentService.CreateStudent(actor, service.CreateStudentInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		util.WriteError(ctx, err)
		return
	}

	util.Created(ctx, student)
}

// ListStudents godoc
// @Summary 学生列表
// @Description 按创建时间倒序，附带选课数与作答数
// @Tags 学生管理
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /students [get]
func (c *StudentController) ListStudents(ctx *gin.Context) {
	actor, ok := util.ActorFromContext(ctx)
	if !ok {
		util.Unauthorized(ctx)
		return
	}

	students, err := c.StudentService.ListStudents(actor)
	if err != nil {
		util.WriteError(ctx, err)
		return
	}

	util.Success(ctx, students)
}

// UpdateStudentRequest password 为空白时保留现有口令
// swagger:model UpdateStudentRequest
type UpdateStudentRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password"`
}

// UpdateStudent godoc
// @Summary 更新学生账号
// @Tags 学生管理
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "学生ID"
// @Param   body body UpdateStudentRequest true "更新信息"
// @Success 200 {object} util.Response{data=model.User}
// @Failure 404 {object} util.Response
// @Failure 409 {object} util.Response "邮箱已被占用"
// @Router /students/{id} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	actor, ok := util.ActorFromContext(ctx)
	if !ok {
		util.Unauthorized(ctx)
		return
	}

	var req UpdateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	student, err := c.StudentService.UpdateStudent(actor, ctx.Param("id"), service.UpdateStudentInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		util.WriteError(ctx, err)
		return
	}

	util.Success(ctx, student)
}

// DeleteStudent godoc
// @Summary 删除学生账号
// @Description 只删除 role = student 的账号；讲师账号从该入口不可删除
// @Tags 学生管理
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "学生ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /students/{id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	actor, ok := util.ActorFromContext(ctx)
	if !ok {
		util.Unauthorized(ctx)
		return
	}

	if err := c.StudentService.DeleteStudent(actor, ctx.Param("id")); err != nil {
		util.WriteError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}
