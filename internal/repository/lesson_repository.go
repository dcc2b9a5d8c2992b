package repository

import (
	"learnhub_backend/internal/model"

	"gorm.io/gorm"
)

type LessonRepository struct {
	DB *gorm.DB
}

func NewLessonRepository(db *gorm.DB) *LessonRepository {
	return &LessonRepository{DB: db}
}

func (r *LessonRepository) Create(lesson *model.Lesson) error {
	return r.DB.Create(lesson).Error
}

// OwnedLesson 课时及其归属课程 id（调用方失效缓存时需要）
type OwnedLesson struct {
	model.Lesson
	CourseID string
}

// FindOwned 课时→模块→课程两级 join 的所有权查询
func (r *LessonRepository) FindOwned(id, instructorID string) (*OwnedLesson, error) {
	var row OwnedLesson
	err := r.DB.Model(&model.Lesson{}).
		Select("lessons.*, modules.course_id AS course_id").
		Joins("JOIN modules ON modules.id = lessons.module_id").
		Joins("JOIN courses ON courses.id = modules.course_id").
		Where("lessons.id = ? AND courses.instructor_id = ?", id, instructorID).
		First(&row).Error
	return &row, err
}

func (r *LessonRepository) UpdateFields(id string, fields map[string]interface{}) error {
	return r.DB.Model(&model.Lesson{}).Where("id = ?", id).Updates(fields).Error
}

func (r *LessonRepository) Delete(id string) error {
	return r.DB.Delete(&model.Lesson{}, "id = ?", id).Error
}
