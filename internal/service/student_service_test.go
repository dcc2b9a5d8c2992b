package service

import (
	"testing"

	"learnhub_backend/internal/model"
	"learnhub_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestCreateStudent(t *testing.T) {
	env := newTestEnv(t)
	owner := env.instructor(t, "teacher@example.com")

	t.Run("role forced to student", func(t *testing.T) {
		student, err := env.students.CreateStudent(owner, CreateStudentInput{
			Name:     "小明",
			Email:    "ming@example.com",
			Password: "password123",
		})
		require.NoError(t, err)
		assert.Equal(t, model.Student, student.Role)
	})

	t.Run("email unique across roles", func(t *testing.T) {
		_, err := env.students.CreateStudent(owner, CreateStudentInput{
			Name:     "冒名",
			Email:    "teacher@example.com",
			Password: "password123",
		})
		assert.ErrorIs(t, err, util.ErrDuplicateEmail)
	})

	t.Run("missing fields rejected", func(t *testing.T) {
		_, err := env.students.CreateStudent(owner, CreateStudentInput{Name: "无邮箱"})
		assert.ErrorIs(t, err, util.ErrValidation)
	})

	t.Run("student cannot provision accounts", func(t *testing.T) {
		student := env.student(t, owner, "s1@example.com")
		_, err := env.students.CreateStudent(student, CreateStudentInput{
			Name:     "越权",
			Email:    "x@example.com",
			Password: "password123",
		})
		assert.ErrorIs(t, err, util.ErrUnauthorized)
	})
}

func TestUpdateStudent(t *testing.T) {
	env := newTestEnv(t)
	owner := env.instructor(t, "teacher@example.com")
	student := env.student(t, owner, "s1@example.com")

	original, err := env.auth.Profile(student)
	require.NoError(t, err)

	t.Run("blank password keeps hash", func(t *testing.T) {
		updated, err := env.students.UpdateStudent(owner, student.ID, UpdateStudentInput{
			Name:  "改名后",
			Email: "s1@example.com",
		})
		require.NoError(t, err)
		assert.Equal(t, "改名后", updated.Name)
		assert.Equal(t, original.Password, updated.Password)
	})

	t.Run("new password rehashed", func(t *testing.T) {
		updated, err := env.students.UpdateStudent(owner, student.ID, UpdateStudentInput{
			Name:     "改名后",
			Email:    "s1@example.com",
			Password: "newsecret",
		})
		require.NoError(t, err)
		assert.NotEqual(t, original.Password, updated.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.Password), []byte("newsecret")))
	})

	t.Run("email conflict", func(t *testing.T) {
		env.student(t, owner, "s2@example.com")
		_, err := env.students.UpdateStudent(owner, student.ID, UpdateStudentInput{
			Name:  "撞邮箱",
			Email: "s2@example.com",
		})
		assert.ErrorIs(t, err, util.ErrDuplicateEmail)
	})

	t.Run("instructor id not reachable", func(t *testing.T) {
		_, err := env.students.UpdateStudent(owner, owner.ID, UpdateStudentInput{
			Name:  "自改",
			Email: "teacher@example.com",
		})
		assert.ErrorIs(t, err, util.ErrNotFound)
	})
}

func TestListStudents(t *testing.T) {
	env := newTestEnv(t)
	owner := env.instructor(t, "teacher@example.com")
	course := env.course(t, owner, "课程")
	student := env.student(t, owner, "s1@example.com")
	env.student(t, owner, "s2@example.com")

	_, err := env.enroll.Enroll(student, course.ID)
	require.NoError(t, err)

	rows, err := env.students.ListStudents(owner)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for _, row := range rows {
		assert.Equal(t, model.Student, row.Role)
		if row.ID == student.ID {
			assert.EqualValues(t, 1, row.EnrollmentCount)
		}
	}
}

func TestDeleteStudent(t *testing.T) {
	env := newTestEnv(t)
	owner := env.instructor(t, "teacher@example.com")
	student := env.student(t, owner, "s1@example.com")

	t.Run("only hits student rows", func(t *testing.T) {
		assert.ErrorIs(t, env.students.DeleteStudent(owner, owner.ID), util.ErrNotFound)
	})

	t.Run("delete then not found", func(t *testing.T) {
		require.NoError(t, env.students.DeleteStudent(owner, student.ID))
		assert.ErrorIs(t, env.students.DeleteStudent(owner, student.ID), util.ErrNotFound)
	})
}
