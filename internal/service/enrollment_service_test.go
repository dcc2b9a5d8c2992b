package service

import (
	"context"
	"testing"

	"learnhub_backend/internal/model"
	"learnhub_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnroll(t *testing.T) {
	env := newTestEnv(t)
	owner := env.instructor(t, "teacher@example.com")
	course := env.course(t, owner, "课程")
	student := env.student(t, owner, "s1@example.com")

	t.Run("success", func(t *testing.T) {
		enrollment, err := env.enroll.Enroll(student, course.ID)
		require.NoError(t, err)
		assert.Equal(t, student.ID, enrollment.UserID)
		assert.Equal(t, course.ID, enrollment.CourseID)
	})

	t.Run("duplicate keeps single row", func(t *testing.T) {
		_, err := env.enroll.Enroll(student, course.ID)
		assert.ErrorIs(t, err, util.ErrDuplicateEnrollment)

		var count int64
		env.db.Model(&model.Enrollment{}).Count(&count)
		assert.EqualValues(t, 1, count)
	})

	t.Run("instructor cannot enroll", func(t *testing.T) {
		_, err := env.enroll.Enroll(owner, course.ID)
		assert.ErrorIs(t, err, util.ErrUnauthorized)
	})

	t.Run("missing course", func(t *testing.T) {
		_, err := env.enroll.Enroll(student, "nope")
		assert.ErrorIs(t, err, util.ErrNotFound)
	})
}

func TestListAvailableCourses(t *testing.T) {
	env := newTestEnv(t)
	owner := env.instructor(t, "teacher@example.com")
	course := env.course(t, owner, "目录课程")
	env.module(t, owner, course.ID, "章节一", "1")
	env.module(t, owner, course.ID, "章节二", "2")

	student := env.student(t, owner, "s1@example.com")
	_, err := env.enroll.Enroll(student, course.ID)
	require.NoError(t, err)

	rows, err := env.enroll.ListAvailableCourses(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, course.ID, rows[0].ID)
	assert.Equal(t, "Instructor", rows[0].InstructorName)
	assert.EqualValues(t, 2, rows[0].ModuleCount)
	assert.EqualValues(t, 1, rows[0].EnrollmentCount)
}

func TestListEnrolledCourses(t *testing.T) {
	env := newTestEnv(t)
	owner := env.instructor(t, "teacher@example.com")
	first := env.course(t, owner, "课一")
	second := env.course(t, owner, "课二")
	student := env.student(t, owner, "s1@example.com")

	_, err := env.enroll.Enroll(student, first.ID)
	require.NoError(t, err)
	_, err = env.enroll.Enroll(student, second.ID)
	require.NoError(t, err)

	courses, err := env.enroll.ListEnrolledCourses(student)
	require.NoError(t, err)
	assert.Len(t, courses, 2)
	for _, c := range courses {
		assert.Equal(t, "Instructor", c.InstructorName)
		assert.NotEmpty(t, c.EnrolledAt)
	}
}

func TestGetCourseContent(t *testing.T) {
	env := newTestEnv(t)
	owner := env.instructor(t, "teacher@example.com")
	course, quiz := env.quizFixture(t, owner)
	env.question(t, owner, quiz.ID, "题干", []string{"a", "b"}, 0)
	student := env.student(t, owner, "s1@example.com")

	t.Run("requires enrollment", func(t *testing.T) {
		_, err := env.enroll.GetCourseContent(student, course.ID)
		assert.ErrorIs(t, err, util.ErrNotEnrolled)
	})

	t.Run("returns full tree when enrolled", func(t *testing.T) {
		_, err := env.enroll.Enroll(student, course.ID)
		require.NoError(t, err)

		content, err := env.enroll.GetCourseContent(student, course.ID)
		require.NoError(t, err)
		require.Len(t, content.Modules, 1)
		require.Len(t, content.Modules[0].Lessons, 1)
		require.NotNil(t, content.Modules[0].Lessons[0].Quiz)
		assert.Len(t, content.Modules[0].Lessons[0].Quiz.Questions, 1)
	})
}
