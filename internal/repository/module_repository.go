package repository

import (
	"learnhub_backend/internal/model"

	"gorm.io/gorm"
)

type ModuleRepository struct {
	DB *gorm.DB
}

func NewModuleRepository(db *gorm.DB) *ModuleRepository {
	return &ModuleRepository{DB: db}
}

func (r *ModuleRepository) Create(module *model.Module) error {
	return r.DB.Create(module).Error
}

// FindOwned 单条 join 从模块上溯到课程并按讲师过滤
func (r *ModuleRepository) FindOwned(id, instructorID string) (*model.Module, error) {
	var module model.Module
	err := r.DB.
		Joins("JOIN courses ON courses.id = modules.course_id").
		Where("modules.id = ? AND courses.instructor_id = ?", id, instructorID).
		First(&module).Error
	return &module, err
}

func (r *ModuleRepository) UpdateFields(id string, fields map[string]interface{}) error {
	return r.DB.Model(&model.Module{}).Where("id = ?", id).Updates(fields).Error
}

func (r *ModuleRepository) Delete(id string) error {
	return r.DB.Delete(&model.Module{}, "id = ?", id).Error
}
