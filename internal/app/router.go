package app

import (
	"learnhub_backend/docs"
	"learnhub_backend/internal/config"
	"learnhub_backend/internal/middleware"
	"learnhub_backend/internal/model"
	"learnhub_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 公共路由（无需登录）
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}

	// 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		authGroup.GET("/profile", c.auth.GetProfile)

		// 学生/通用
		authGroup.GET("/catalog", c.enrollment.Catalog)
		authGroup.GET("/enrollments", c.enrollment.ListEnrolled)
		authGroup.POST("/enrollments", middleware.RoleMiddleware(model.Student), c.enrollment.Enroll)
		authGroup.GET("/courses/:id/content", c.enrollment.CourseContent)
		authGroup.POST("/quizzes/:quizId/attempts", c.quiz.SubmitAttempt)
		authGroup.GET("/quizzes/:quizId/attempts", c.quiz.ListAttempts)

		// 讲师
		instructor := authGroup.Group("/")
		instructor.Use(middleware.RoleMiddleware(model.Instructor))
		{
			instructor.POST("/courses", c.course.CreateCourse)
			instructor.GET("/courses", c.course.ListCourses)
			instructor.GET("/courses/:id", c.course.GetCourse)
			instructor.PUT("/courses/:id", c.course.UpdateCourse)
			instructor.DELETE("/courses/:id", c.course.DeleteCourse)

			instructor.POST("/courses/:id/modules", c.module.CreateModule)
			instructor.PUT("/modules/:id", c.module.UpdateModule)
			instructor.DELETE("/modules/:id", c.module.DeleteModule)

			instructor.POST("/modules/:id/lessons", c.lesson.CreateLesson)
			instructor.PUT("/lessons/:id", c.lesson.UpdateLesson)
			instructor.DELETE("/lessons/:id", c.lesson.DeleteLesson)

			instructor.POST("/lessons/:id/quiz", c.quiz.CreateQuiz)
			instructor.PUT("/quizzes/:quizId", c.quiz.UpdateQuiz)
			instructor.DELETE("/quizzes/:quizId", c.quiz.DeleteQuiz)

			instructor.POST("/quizzes/:quizId/questions", c.quiz.CreateQuestion)
			instructor.DELETE("/questions/:id", c.quiz.DeleteQuestion)

			instructor.POST("/students", c.student.CreateStudent)
			instructor.GET("/students", c.student.ListStudents)
			instructor.PUT("/students/:id", c.student.UpdateStudent)
			instructor.DELETE("/students/:id", c.student.DeleteStudent)

			instructor.POST("/upload/thumbnail", c.upload.UploadThumbnail)
		}
	}
}
