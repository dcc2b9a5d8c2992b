package service

import (
	"errors"
	"fmt"
	"strings"

	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/util"

	"gorm.io/gorm"
)

// ModuleService 模块增删改。每个写操作都是同一套三步协议：
// 角色前置检查 → 按讲师作用域查父实体 → 落库并失效课程编辑视图。
type ModuleService struct {
	CourseRepo *repository.CourseRepository
	ModuleRepo *repository.ModuleRepository
	Views      *ViewCache
}

func NewModuleService(courseRepo *repository.CourseRepository, moduleRepo *repository.ModuleRepository, views *ViewCache) *ModuleService {
	return &ModuleService{
		CourseRepo: courseRepo,
		ModuleRepo: moduleRepo,
		Views:      views,
	}
}

type CreateModuleInput struct {
	Title string
	Order string // 原始字符串，空或无法解析时落到 0
}

func (s *ModuleService) CreateModule(actor model.Actor, courseID string, input CreateModuleInput) (*model.Module, error) {
	if !actor.IsInstructor() {
		return nil, util.ErrUnauthorized
	}

	if _, err := s.CourseRepo.FindOwned(courseID, actor.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNotFound
		}
		return nil, err
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", util.ErrValidation)
	}

	module := &model.Module{
		Title:    title,
		Order:    util.ParseOrder(input.Order),
		CourseID: courseID,
	}
	if err := s.ModuleRepo.Create(module); err != nil {
		return nil, err
	}

	s.Views.InvalidateCourseEdit(courseID)
	return module, nil
}

// UpdateModuleInput 宽松合并：nil 字段不动，Order 无法解析视为未提供。
type UpdateModuleInput struct {
	Title *string
	Order *string
}

func (s *ModuleService) UpdateModule(actor model.Actor, moduleID string, input UpdateModuleInput) (*model.Module, error) {
	if !actor.IsInstructor() {
		return nil, util.ErrUnauthorized
	}

	module, err := s.ModuleRepo.FindOwned(moduleID, actor.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNotFound
		}
		return nil, err
	}

	fields := map[string]interface{}{}
	if input.Title != nil {
		if title := strings.TrimSpace(*input.Title); title != "" {
			fields["title"] = title
		}
	}
	if input.Order != nil {
		if order := util.ParseOptionalOrder(*input.Order); order != nil {
			fields["sort_order"] = *order
		}
	}

	if len(fields) > 0 {
		if err := s.ModuleRepo.UpdateFields(moduleID, fields); err != nil {
			return nil, err
		}
	}

	s.Views.InvalidateCourseEdit(module.CourseID)

	var updated model.Module
	if err := s.ModuleRepo.DB.First(&updated, "id = ?", moduleID).Error; err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *ModuleService) DeleteModule(actor model.Actor, moduleID string) error {
	if !actor.IsInstructor() {
		return util.ErrUnauthorized
	}

	module, err := s.ModuleRepo.FindOwned(moduleID, actor.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrNotFound
		}
		return err
	}

	// 课时与测验随外键级联删除
	if err := s.ModuleRepo.Delete(moduleID); err != nil {
		return err
	}

	s.Views.InvalidateCourseEdit(module.CourseID)
	return nil
}
