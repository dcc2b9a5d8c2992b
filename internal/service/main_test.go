package service

import (
	"fmt"
	"testing"
	"time"

	"learnhub_backend/internal/config"
	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/pkg/database"
	"learnhub_backend/pkg/logger"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// testEnv 在内存 SQLite 上装配完整的服务栈，外键开启以覆盖级联删除路径。
// 视图缓存传 nil Redis，走降级分支。
type testEnv struct {
	db       *gorm.DB
	auth     *AuthService
	courses  *CourseService
	modules  *ModuleService
	lessons  *LessonService
	quizzes  *QuizService
	enroll   *EnrollmentService
	attempts *QuizAttemptService
	students *StudentService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	logger.Log = zap.NewNop()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	userRepo := repository.NewUserRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	moduleRepo := repository.NewModuleRepository(db)
	lessonRepo := repository.NewLessonRepository(db)
	quizRepo := repository.NewQuizRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)
	attemptRepo := repository.NewQuizAttemptRepository(db)
	views := NewViewCache(nil)

	cfg := &config.Config{}
	cfg.JWT.Secret = "0123456789abcdef0123456789abcdef"
	cfg.JWT.ExpireTime = time.Hour

	return &testEnv{
		db:       db,
		auth:     NewAuthService(userRepo, cfg),
		courses:  NewCourseService(courseRepo, views),
		modules:  NewModuleService(courseRepo, moduleRepo, views),
		lessons:  NewLessonService(moduleRepo, lessonRepo, views),
		quizzes:  NewQuizService(lessonRepo, quizRepo, questionRepo, views),
		enroll:   NewEnrollmentService(courseRepo, enrollmentRepo, views),
		attempts: NewQuizAttemptService(quizRepo, enrollmentRepo, attemptRepo, views),
		students: NewStudentService(userRepo, views),
	}
}

func (e *testEnv) instructor(t *testing.T, email string) model.Actor {
	t.Helper()
	user, err := e.auth.Register("Instructor", email, "password123")
	require.NoError(t, err)
	return model.Actor{ID: user.ID, Role: user.Role}
}

func (e *testEnv) student(t *testing.T, owner model.Actor, email string) model.Actor {
	t.Helper()
	user, err := e.students.CreateStudent(owner, CreateStudentInput{
		Name:     "Student",
		Email:    email,
		Password: "password123",
	})
	require.NoError(t, err)
	return model.Actor{ID: user.ID, Role: user.Role}
}

func (e *testEnv) course(t *testing.T, owner model.Actor, title string) *model.Course {
	t.Helper()
	course, err := e.courses.CreateCourse(owner, CreateCourseInput{Title: title})
	require.NoError(t, err)
	return course
}

func (e *testEnv) module(t *testing.T, owner model.Actor, courseID, title, order string) *model.Module {
	t.Helper()
	module, err := e.modules.CreateModule(owner, courseID, CreateModuleInput{Title: title, Order: order})
	require.NoError(t, err)
	return module
}

func (e *testEnv) lesson(t *testing.T, owner model.Actor, moduleID, title, order string) *model.Lesson {
	t.Helper()
	lesson, err := e.lessons.CreateLesson(owner, moduleID, CreateLessonInput{Title: title, Order: order})
	require.NoError(t, err)
	return lesson
}

func (e *testEnv) quiz(t *testing.T, owner model.Actor, lessonID, title string) *model.Quiz {
	t.Helper()
	quiz, err := e.quizzes.CreateQuiz(owner, lessonID, title)
	require.NoError(t, err)
	return quiz
}

func (e *testEnv) question(t *testing.T, owner model.Actor, quizID, text string, options []string, correct int) *model.Question {
	t.Helper()
	question, err := e.quizzes.CreateQuestion(owner, quizID, CreateQuestionInput{
		Text:          text,
		Options:       options,
		CorrectAnswer: correct,
	})
	require.NoError(t, err)
	return question
}

// quizFixture 搭一条 course→module→lesson→quiz 链，返回课程与测验。
func (e *testEnv) quizFixture(t *testing.T, owner model.Actor) (*model.Course, *model.Quiz) {
	t.Helper()
	course := e.course(t, owner, "Go 从入门到实战")
	module := e.module(t, owner, course.ID, "基础语法", "1")
	lesson := e.lesson(t, owner, module.ID, "变量与类型", "1")
	quiz := e.quiz(t, owner, lesson.ID, "第一课小测")
	return course, quiz
}

func strPtr(s string) *string {
	return &s
}
