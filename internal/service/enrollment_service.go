package service

import (
	"context"
	"encoding/json"
	"errors"

	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/util"
	"learnhub_backend/pkg/monitoring"

	"gorm.io/gorm"
)

type EnrollmentService struct {
	CourseRepo     *repository.CourseRepository
	EnrollmentRepo *repository.EnrollmentRepository
	Views          *ViewCache
}

func NewEnrollmentService(courseRepo *repository.CourseRepository, enrollmentRepo *repository.EnrollmentRepository, views *ViewCache) *EnrollmentService {
	return &EnrollmentService{
		CourseRepo:     courseRepo,
		EnrollmentRepo: enrollmentRepo,
		Views:          views,
	}
}

// ListAvailableCourses 课程目录，对所有已登录用户开放，无所有权过滤。
// 结果在 Redis 里缓存，课程或选课变化时随视图键一起失效。
func (s *EnrollmentService) ListAvailableCourses(ctx context.Context) ([]repository.CatalogRow, error) {
	if cached, ok := s.Views.GetCatalog(ctx); ok {
		var rows []repository.CatalogRow
		if err := json.Unmarshal(cached, &rows); err == nil {
			return rows, nil
		}
	}

	rows, err := s.CourseRepo.ListCatalog()
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(rows); err == nil {
		s.Views.SetCatalog(ctx, data)
	}
	return rows, nil
}

// EnrolledCourse 学生已选课程视图
type EnrolledCourse struct {
	model.Course
	InstructorName string `json:"instructorName"`
	EnrolledAt     string `json:"enrolledAt"`
}

func (s *EnrollmentService) ListEnrolledCourses(actor model.Actor) ([]EnrolledCourse, error) {
	enrollments, err := s.EnrollmentRepo.ListByUser(actor.ID)
	if err != nil {
		return nil, err
	}

	courses := make([]EnrolledCourse, 0, len(enrollments))
	for _, e := range enrollments {
		if e.Course == nil {
			continue
		}
		name := ""
		if e.Course.Instructor != nil {
			name = e.Course.Instructor.Name
		}
		courses = append(courses, EnrolledCourse{
			Course:         *e.Course,
			InstructorName: name,
			EnrolledAt:     e.CreatedAt.Format(util.TimeFormat),
		})
	}
	return courses, nil
}

// Enroll 应用层查重只用于给出友好错误；并发下真正的保证是
// enrollments(user_id, course_id) 的唯一索引，冲突映射回同一个错误。
func (s *EnrollmentService) Enroll(actor model.Actor, courseID string) (*model.Enrollment, error) {
	if !actor.IsStudent() {
		return nil, util.ErrUnauthorized
	}

	exists, err := s.EnrollmentRepo.Exists(actor.ID, courseID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, util.ErrDuplicateEnrollment
	}

	if _, err := s.CourseRepo.FindByID(courseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNotFound
		}
		return nil, err
	}

	enrollment := &model.Enrollment{
		UserID:   actor.ID,
		CourseID: courseID,
	}
	if err := s.EnrollmentRepo.Create(enrollment); err != nil {
		if util.IsDuplicateKey(err) {
			return nil, util.ErrDuplicateEnrollment
		}
		return nil, err
	}

	monitoring.EnrollmentCounter.Inc()
	s.Views.InvalidateStudentEnrollments(actor.ID)
	return enrollment, nil
}

// GetCourseContent 学生读视图：必须已选课，嵌套树每层按 order 升序，
// 与讲师编辑视图暴露同一排序不变量。
func (s *EnrollmentService) GetCourseContent(actor model.Actor, courseID string) (*model.Course, error) {
	enrolled, err := s.EnrollmentRepo.Exists(actor.ID, courseID)
	if err != nil {
		return nil, err
	}
	if !enrolled {
		return nil, util.ErrNotEnrolled
	}

	course, err := s.CourseRepo.FindWithTree(courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNotFound
		}
		return nil, err
	}
	return course, nil
}
