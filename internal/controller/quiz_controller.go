package controller

import (
	"learnhub_backend/internal/service"
	"learnhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	QuizService    *service.QuizService
	AttemptService *service.QuizAttemptService
}

func NewQuizController(quizService *service.QuizService, attemptService *service.QuizAttemptService) *QuizController {
	return &QuizController{
		QuizService:    quizService,
		AttemptService: attemptService,
	}
}

// swagger:model QuizRequest
type QuizRequest struct {
	Title string `json:"title" binding:"required"`
}

// CreateQuiz godoc
// @Summary 创建测验
// @Description 每个课时最多一个测验
// @Tags 测验
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "课时ID"
// @Param   body body QuizRequest true "测验信息"
// @Success 201 {object} util.Response{data=model.Quiz}
// @Failure 404 {object} util.Response "课时不存在或不属于当前讲师"
// @Failure 409 {object} util.Response "课时已有测验"
// @Router /lessons/{id}/quiz [post]
func (c *QuizController) CreateQuiz(ctx *gin.Context) {
	actor, ok := util.ActorFromContext(ctx)
	if !ok {
		util.Unauthorized(ctx)
		return
	}

	var req QuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	quiz, err := c.QuizService.CreateQuiz(actor, ctx.Param("id"), req.Title)
	if err != nil {
		util.WriteError(ctx, err)
		return
	}

	util.Created(ctx, quiz)
}

// swagger:model UpdateQuizRequest
type UpdateQuizRequest struct {
	Title *string `json:"title"`
}

// UpdateQuiz godoc
// @Summary 更新测验标题
// @Tags 测验
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   quizId path string true "测验ID"
// @Param   body body UpdateQuizRequest true "更新字段"
// @Success 200 {object} util.Response{data=model.Quiz}
// @Failure 404 {object} util.Response
// @Router /quizzes/{quizId} [put]
func (c *QuizController) UpdateQuiz(ctx *gin.Context) {
	actor, ok := util.ActorFromContext(ctx)
	if !ok {
		util.Unauthorized(ctx)
		return
	}

	var req UpdateQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	quiz, err := c.QuizService.UpdateQuiz(actor, ctx.Param("quizId"), req.Title)
	if err != nil {
		util.WriteError(ctx, err)
		return
	}

	util.Success(ctx, quiz)
}

// DeleteQuiz godoc
// @Summary 删除测验
// @Tags 测验
// @Produce  json
// @Security ApiKeyAuth
// @Param   quizId path string true "测验ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /quizzes/{quizId} [delete]
func (c *QuizController) DeleteQuiz(ctx *gin.Context) {
	actor, ok := util.ActorFromContext(ctx)
	if !ok {
		util.Unauthorized(ctx)
		return
	}

	if err := c.QuizService.DeleteQuiz(actor, ctx.Param("quizId")); err != nil {
		util.WriteError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}

// QuestionRequest 选项至少 2 个，correctAnswer 为 options 下标
// swagger:model QuestionRequest
type QuestionRequest struct {
	Text          string   `json:"text" binding:"required"`
	Options       []string `json:"options" binding:"required"`
	CorrectAnswer int      `json:"correctAnswer"`
}

// CreateQuestion godoc
// @Summary 创建题目
// @Tags 测验
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   quizId path string true "测验ID"
// @Param   body body QuestionRequest true "题目信息"
// @Success 201 {object} util.Response{data=model.Question}
// @Failure 400 {object} util.Response "选项不足或答案下标越界"
// @Failure 404 {object} util.Response
// @Router /quizzes/{quizId}/questions [post]
func (c *QuizController) CreateQuestion(ctx *gin.Context) {
	actor, ok := util.ActorFromContext(ctx)
	if !ok {
		util.Unauthorized(ctx)
		return
	}

	var req QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, err := c.QuizService.CreateQuestion(actor, ctx.Param("quizId"), service.CreateQuestionInput{
		Text:          req.Text,
		Options:       req.Options,
		CorrectAnswer: req.CorrectAnswer,
	})
	if err != nil {
		util.WriteError(ctx, err)
		return
	}

	util.Created(ctx, question)
}

// DeleteQuestion godoc
// @Summary 删除题目
// @Tags 测验
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "题目ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /questions/{id} [delete]
func (c *QuizController) DeleteQuestion(ctx *gin.Context) {
	actor, ok := util.ActorFromContext(ctx)
	if !ok {
		util.Unauthorized(ctx)
		return
	}

	if err := c.QuizService.DeleteQuestion(actor, ctx.Param("id")); err != nil {
		util.WriteError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}

// AttemptRequest answers 以题目 id 为键、所选下标为值
// swagger:model AttemptRequest
type AttemptRequest struct {
	Answers map[string]int `json:"answers"`
}

// SubmitAttempt godoc
// @Summary 提交测验作答
// @Description 服务端评分；必须已选该测验所在课程；每次提交都会追加一条作答历史
// @Tags 测验
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   quizId path string true "测验ID"
// @Param   body body AttemptRequest true "作答"
// @Success 201 {object} util.Response{data=service.AttemptResult}
// @Failure 403 {object} util.Response "未选课"
// @Failure 404 {object} util.Response "测验不存在"
// @Router /quizzes/{quizId}/attempts [post]
func (c *QuizController) SubmitAttempt(ctx *gin.Context) {
	actor, ok := util.ActorFromContext(ctx)
	if !ok {
		util.Unauthorized(ctx)
		return
	}

	var req AttemptRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.AttemptService.SubmitAttempt(actor, ctx.Param("quizId"), req.Answers)
	if err != nil {
		util.WriteError(ctx, err)
		return
	}

	util.Created(ctx, result)
}

// ListAttempts godoc
// @Summary 我的作答历史
// @Tags 测验
// @Produce  json
// @Security ApiKeyAuth
// @Param   quizId path string true "测验ID"
// @Success 200 {object} util.Response{data=[]model.QuizAttempt}
// @Router /quizzes/{quizId}/attempts [get]
func (c *QuizController) ListAttempts(ctx *gin.Context) {
	actor, ok := util.ActorFromContext(ctx)
	if !ok {
		util.Unauthorized(ctx)
		return
	}

	attempts, err := c.AttemptService.ListAttempts(actor, ctx.Param("quizId"))
	if err != nil {
		util.WriteError(ctx, err)
		return
	}

	util.Success(ctx, attempts)
}
