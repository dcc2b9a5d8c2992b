package repository

import (
	"learnhub_backend/internal/model"

	"gorm.io/gorm"
)

type QuizRepository struct {
	DB *gorm.DB
}

func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{DB: db}
}

func (r *QuizRepository) Create(quiz *model.Quiz) error {
	return r.DB.Create(quiz).Error
}

// OwnedQuiz 测验及其归属课程 id
type OwnedQuiz struct {
	model.Quiz
	CourseID string
}

// FindOwned 测验→课时→模块→课程三级 join 的所有权查询
func (r *QuizRepository) FindOwned(id, instructorID string) (*OwnedQuiz, error) {
	var row OwnedQuiz
	err := r.DB.Model(&model.Quiz{}).
		Select("quizzes.*, modules.course_id AS course_id").
		Joins("JOIN lessons ON lessons.id = quizzes.lesson_id").
		Joins("JOIN modules ON modules.id = lessons.module_id").
		Joins("JOIN courses ON courses.id = modules.course_id").
		Where("quizzes.id = ? AND courses.instructor_id = ?", id, instructorID).
		First(&row).Error
	return &row, err
}

func (r *QuizRepository) FindByIDWithQuestions(id string) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.DB.Preload("Questions").First(&quiz, "id = ?", id).Error
	return &quiz, err
}

// CourseIDForQuiz 测验所在课程的 id，选课校验用
func (r *QuizRepository) CourseIDForQuiz(id string) (string, error) {
	var courseID string
	err := r.DB.Model(&model.Quiz{}).
		Select("modules.course_id").
		Joins("JOIN lessons ON lessons.id = quizzes.lesson_id").
		Joins("JOIN modules ON modules.id = lessons.module_id").
		Where("quizzes.id = ?", id).
		Scan(&courseID).Error
	return courseID, err
}

func (r *QuizRepository) UpdateFields(id string, fields map[string]interface{}) error {
	return r.DB.Model(&model.Quiz{}).Where("id = ?", id).Updates(fields).Error
}

func (r *QuizRepository) Delete(id string) error {
	return r.DB.Delete(&model.Quiz{}, "id = ?", id).Error
}
