package repository

import (
	"learnhub_backend/internal/model"

	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

func (r *QuestionRepository) Create(question *model.Question) error {
	return r.DB.Create(question).Error
}

// OwnedQuestion 题目及其归属课程 id
type OwnedQuestion struct {
	model.Question
	CourseID string
}

// FindOwned 题目→测验→课时→模块→课程四级 join 的所有权查询
func (r *QuestionRepository) FindOwned(id, instructorID string) (*OwnedQuestion, error) {
	var row OwnedQuestion
	err := r.DB.Model(&model.Question{}).
		Select("questions.*, modules.course_id AS course_id").
		Joins("JOIN quizzes ON quizzes.id = questions.quiz_id").
		Joins("JOIN lessons ON lessons.id = quizzes.lesson_id").
		Joins("JOIN modules ON modules.id = lessons.module_id").
		Joins("JOIN courses ON courses.id = modules.course_id").
		Where("questions.id = ? AND courses.instructor_id = ?", id, instructorID).
		First(&row).Error
	return &row, err
}

func (r *QuestionRepository) UpdateFields(id string, fields map[string]interface{}) error {
	return r.DB.Model(&model.Question{}).Where("id = ?", id).Updates(fields).Error
}

func (r *QuestionRepository) Delete(id string) error {
	return r.DB.Delete(&model.Question{}, "id = ?", id).Error
}
