package service

import (
	"errors"
	"fmt"
	"strings"

	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// StudentService 讲师侧的学生账号管理
type StudentService struct {
	UserRepo *repository.UserRepository
	Views    *ViewCache
}

func NewStudentService(userRepo *repository.UserRepository, views *ViewCache) *StudentService {
	return &StudentService{
		UserRepo: userRepo,
		Views:    views,
	}
}

type CreateStudentInput struct {
	Name     string
	Email    string
	Password string
}

// CreateStudent 邮箱唯一性是跨角色的全局约束；角色无条件置为 student。
func (s *StudentService) CreateStudent(actor model.Actor, input CreateStudentInput) (*model.User, error) {
	if !actor.IsInstructor() {
		return nil, util.ErrUnauthorized
	}

	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	if name == "" || email == "" || input.Password == "" {
		return nil, fmt.Errorf("%w: name, email, and password are required", util.ErrValidation)
	}

	taken, err := s.UserRepo.EmailTaken(email, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, util.ErrDuplicateEmail
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	student := &model.User{
		Name:     name,
		Email:    email,
		Password: string(hashed),
		Role:     model.Student,
	}
	if err := s.UserRepo.Create(student); err != nil {
		if util.IsDuplicateKey(err) {
			return nil, util.ErrDuplicateEmail
		}
		return nil, err
	}

	s.Views.InvalidateStudentRoster()
	return student, nil
}

func (s *StudentService) ListStudents(actor model.Actor) ([]repository.StudentRow, error) {
	if !actor.IsInstructor() {
		return nil, util.ErrUnauthorized
	}
	return s.UserRepo.ListStudents()
}

type UpdateStudentInput struct {
	Name     string
	Email    string
	Password string // 空白表示保留现有口令
}

func (s *StudentService) UpdateStudent(actor model.Actor, studentID string, input UpdateStudentInput) (*model.User, error) {
	if !actor.IsInstructor() {
		return nil, util.ErrUnauthorized
	}

	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	if name == "" || email == "" {
		return nil, fmt.Errorf("%w: name and email are required", util.ErrValidation)
	}

	student, err := s.UserRepo.FindStudentByID(studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNotFound
		}
		return nil, err
	}

	if student.Email != email {
		taken, err := s.UserRepo.EmailTaken(email, studentID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, util.ErrDuplicateEmail
		}
	}

	student.Name = name
	student.Email = email

	// 口令只在提供了非空白值时重新散列替换
	if strings.TrimSpace(input.Password) != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		student.Password = string(hashed)
	}

	if err := s.UserRepo.Update(student); err != nil {
		if util.IsDuplicateKey(err) {
			return nil, util.ErrDuplicateEmail
		}
		return nil, err
	}

	s.Views.InvalidateStudentRoster()
	return student, nil
}

// DeleteStudent 物理删除，且只命中 role = student 的行；
// 讲师 id 从这个入口不可删除。
func (s *StudentService) DeleteStudent(actor model.Actor, studentID string) error {
	if !actor.IsInstructor() {
		return util.ErrUnauthorized
	}

	affected, err := s.UserRepo.DeleteStudent(studentID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return util.ErrNotFound
	}

	s.Views.InvalidateStudentRoster()
	return nil
}
