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

type LessonService struct {
	ModuleRepo *repository.ModuleRepository
	LessonRepo *repository.LessonRepository
	Views      *ViewCache
}

func NewLessonService(moduleRepo *repository.ModuleRepository, lessonRepo *repository.LessonRepository, views *ViewCache) *LessonService {
	return &LessonService{
		ModuleRepo: moduleRepo,
		LessonRepo: lessonRepo,
		Views:      views,
	}
}

type CreateLessonInput struct {
	Title   string
	Content string
	Order   string
}

func (s *LessonService) CreateLesson(actor model.Actor, moduleID string, input CreateLessonInput) (*model.Lesson, error) {
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

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", util.ErrValidation)
	}

	lesson := &model.Lesson{
		Title:    title,
		Content:  input.Content,
		Order:    util.ParseOrder(input.Order),
		ModuleID: moduleID,
	}
	if err := s.LessonRepo.Create(lesson); err != nil {
		return nil, err
	}

	s.Views.InvalidateCourseEdit(module.CourseID)
	return lesson, nil
}

type UpdateLessonInput struct {
	Title   *string
	Content *string
	Order   *string
}

func (s *LessonService) UpdateLesson(actor model.Actor, lessonID string, input UpdateLessonInput) (*model.Lesson, error) {
	if !actor.IsInstructor() {
		return nil, util.ErrUnauthorized
	}

	owned, err := s.LessonRepo.FindOwned(lessonID, actor.ID)
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
	if input.Content != nil {
		fields["content"] = *input.Content
	}
	if input.Order != nil {
		if order := util.ParseOptionalOrder(*input.Order); order != nil {
			fields["sort_order"] = *order
		}
	}

	if len(fields) > 0 {
		if err := s.LessonRepo.UpdateFields(lessonID, fields); err != nil {
			return nil, err
		}
	}

	s.Views.InvalidateCourseEdit(owned.CourseID)

	var updated model.Lesson
	if err := s.LessonRepo.DB.First(&updated, "id = ?", lessonID).Error; err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *LessonService) DeleteLesson(actor model.Actor, lessonID string) error {
	if !actor.IsInstructor() {
		return util.ErrUnauthorized
	}

	owned, err := s.LessonRepo.FindOwned(lessonID, actor.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrNotFound
		}
		return err
	}

	// 测验与题目随外键级联删除
	if err := s.LessonRepo.Delete(lessonID); err != nil {
		return err
	}

	s.Views.InvalidateCourseEdit(owned.CourseID)
	return nil
}
