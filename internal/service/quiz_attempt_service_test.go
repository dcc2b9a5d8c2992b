package service

import (
	"testing"

	"learnhub_backend/internal/model"
	"learnhub_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitAttemptScoring(t *testing.T) {
	env := newTestEnv(t)
	owner := env.instructor(t, "teacher@example.com")
	course, quiz := env.quizFixture(t, owner)
	q1 := env.question(t, owner, quiz.ID, "1+1=?", []string{"1", "2", "3"}, 1)
	q2 := env.question(t, owner, quiz.ID, "2+2=?", []string{"3", "4", "5"}, 1)

	student := env.student(t, owner, "s1@example.com")
	_, err := env.enroll.Enroll(student, course.ID)
	require.NoError(t, err)

	t.Run("all correct", func(t *testing.T) {
		result, err := env.attempts.SubmitAttempt(student, quiz.ID, map[string]int{
			q1.ID: 1,
			q2.ID: 1,
		})
		require.NoError(t, err)
		assert.Equal(t, float64(100), result.Score)
		assert.Equal(t, 2, result.CorrectCount)
		assert.Equal(t, 2, result.TotalQuestions)
		assert.NotEmpty(t, result.AttemptID)
	})

	t.Run("partial", func(t *testing.T) {
		result, err := env.attempts.SubmitAttempt(student, quiz.ID, map[string]int{
			q1.ID: 1,
			q2.ID: 0,
		})
		require.NoError(t, err)
		assert.Equal(t, float64(50), result.Score)
		assert.Equal(t, 1, result.CorrectCount)
	})

	t.Run("empty answers score zero but persist", func(t *testing.T) {
		result, err := env.attempts.SubmitAttempt(student, quiz.ID, map[string]int{})
		require.NoError(t, err)
		assert.Zero(t, result.Score)

		var count int64
		env.db.Model(&model.QuizAttempt{}).Count(&count)
		assert.EqualValues(t, 3, count)
	})

	t.Run("unknown question keys ignored", func(t *testing.T) {
		result, err := env.attempts.SubmitAttempt(student, quiz.ID, map[string]int{
			"not-a-question": 1,
			q1.ID:            1,
		})
		require.NoError(t, err)
		assert.Equal(t, float64(50), result.Score)
		assert.Equal(t, 1, result.CorrectCount)
	})
}

func TestSubmitAttemptGuards(t *testing.T) {
	env := newTestEnv(t)
	owner := env.instructor(t, "teacher@example.com")
	course, quiz := env.quizFixture(t, owner)
	student := env.student(t, owner, "s1@example.com")

	t.Run("not enrolled", func(t *testing.T) {
		_, err := env.attempts.SubmitAttempt(student, quiz.ID, map[string]int{})
		assert.ErrorIs(t, err, util.ErrNotEnrolled)
	})

	t.Run("zero question quiz rejected", func(t *testing.T) {
		_, err := env.enroll.Enroll(student, course.ID)
		require.NoError(t, err)

		_, err = env.attempts.SubmitAttempt(student, quiz.ID, map[string]int{})
		assert.ErrorIs(t, err, util.ErrValidation)

		var count int64
		env.db.Model(&model.QuizAttempt{}).Count(&count)
		assert.Zero(t, count)
	})

	t.Run("missing quiz", func(t *testing.T) {
		_, err := env.attempts.SubmitAttempt(student, "nope", map[string]int{})
		assert.ErrorIs(t, err, util.ErrNotFound)
	})
}

func TestListAttempts(t *testing.T) {
	env := newTestEnv(t)
	owner := env.instructor(t, "teacher@example.com")
	course, quiz := env.quizFixture(t, owner)
	q1 := env.question(t, owner, quiz.ID, "题干", []string{"a", "b"}, 0)

	student := env.student(t, owner, "s1@example.com")
	other := env.student(t, owner, "s2@example.com")
	_, err := env.enroll.Enroll(student, course.ID)
	require.NoError(t, err)
	_, err = env.enroll.Enroll(other, course.ID)
	require.NoError(t, err)

	_, err = env.attempts.SubmitAttempt(student, quiz.ID, map[string]int{q1.ID: 0})
	require.NoError(t, err)
	_, err = env.attempts.SubmitAttempt(student, quiz.ID, map[string]int{q1.ID: 1})
	require.NoError(t, err)
	_, err = env.attempts.SubmitAttempt(other, quiz.ID, map[string]int{q1.ID: 0})
	require.NoError(t, err)

	attempts, err := env.attempts.ListAttempts(student, quiz.ID)
	require.NoError(t, err)
	require.Len(t, attempts, 2)
	for _, a := range attempts {
		assert.Equal(t, student.ID, a.UserID)
	}
}
