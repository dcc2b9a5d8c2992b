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

type CourseService struct {
	CourseRepo *repository.CourseRepository
	Views      *ViewCache
}

func NewCourseService(courseRepo *repository.CourseRepository, views *ViewCache) *CourseService {
	return &CourseService{
		CourseRepo: courseRepo,
		Views:      views,
	}
}

// CreateCourseInput 创建课程的入参。Description/Thumbnail 去空白后为空则存 NULL。
type CreateCourseInput struct {
	Title       string
	Description string
	Thumbnail   string
}

func (s *CourseService) CreateCourse(actor model.Actor, input CreateCourseInput) (*model.Course, error) {
	if !actor.IsInstructor() {
		return nil, util.ErrUnauthorized
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", util.ErrValidation)
	}

	course := &model.Course{
		Title:        title,
		Description:  util.NormalizeOptional(input.Description),
		Thumbnail:    util.NormalizeOptional(input.Thumbnail),
		InstructorID: actor.ID,
	}
	if err := s.CourseRepo.Create(course); err != nil {
		return nil, err
	}

	s.Views.InvalidateInstructorCourses(actor.ID)
	return course, nil
}

func (s *CourseService) ListInstructorCourses(actor model.Actor) ([]repository.InstructorCourseRow, error) {
	if !actor.IsInstructor() {
		return nil, util.ErrUnauthorized
	}
	return s.CourseRepo.ListByInstructor(actor.ID)
}

// GetCourseForEditing 所有权作用域下的全量嵌套读取。
// 课程不存在与不属于该讲师返回同一个 ErrNotFound。
func (s *CourseService) GetCourseForEditing(actor model.Actor, courseID string) (*model.Course, error) {
	if !actor.IsInstructor() {
		return nil, util.ErrUnauthorized
	}
	course, err := s.CourseRepo.FindOwnedWithTree(courseID, actor.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNotFound
		}
		return nil, err
	}
	return course, nil
}

// UpdateCourseInput 部分更新：nil 字段不动。与创建不同，空白标题在这里是
// no-op 而不是错误；空白描述会把字段清为 NULL。
type UpdateCourseInput struct {
	Title       *string
	Description *string
}

func (s *CourseService) UpdateCourse(actor model.Actor, courseID string, input UpdateCourseInput) (*model.Course, error) {
	if !actor.IsInstructor() {
		return nil, util.ErrUnauthorized
	}

	if _, err := s.CourseRepo.FindOwned(courseID, actor.ID); err != nil {
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
	if input.Description != nil {
		fields["description"] = util.NormalizeOptional(*input.Description)
	}

	if len(fields) > 0 {
		if err := s.CourseRepo.UpdateFields(courseID, fields); err != nil {
			return nil, err
		}
	}

	s.Views.InvalidateInstructorCourses(actor.ID)
	s.Views.InvalidateCourseEdit(courseID)

	return s.CourseRepo.FindByID(courseID)
}

func (s *CourseService) DeleteCourse(actor model.Actor, courseID string) error {
	if !actor.IsInstructor() {
		return util.ErrUnauthorized
	}

	if _, err := s.CourseRepo.FindOwned(courseID, actor.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrNotFound
		}
		return err
	}

	// 模块、课时、测验、题目随外键级联删除
	if err := s.CourseRepo.Delete(courseID); err != nil {
		return err
	}

	s.Views.InvalidateInstructorCourses(actor.ID)
	s.Views.InvalidateCourseEdit(courseID)
	return nil
}
