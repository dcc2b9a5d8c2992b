package service

import (
	"testing"

	"learnhub_backend/internal/model"
	"learnhub_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateLesson(t *testing.T) {
	env := newTestEnv(t)
	owner := env.instructor(t, "teacher@example.com")
	course := env.course(t, owner, "课程")
	module := env.module(t, owner, course.ID, "章节", "1")

	lesson, err := env.lessons.CreateLesson(owner, module.ID, CreateLessonInput{
		Title:   "  第一节  ",
		Content: "# Markdown 正文",
		Order:   "2",
	})
	require.NoError(t, err)
	assert.Equal(t, "第一节", lesson.Title)
	assert.Equal(t, 2, lesson.Order)
	assert.Equal(t, "# Markdown 正文", lesson.Content)

	t.Run("other instructor cannot attach", func(t *testing.T) {
		other := env.instructor(t, "other@example.com")
		_, err := env.lessons.CreateLesson(other, module.ID, CreateLessonInput{Title: "越权"})
		assert.ErrorIs(t, err, util.ErrNotFound)
	})
}

func TestUpdateLessonMergesFields(t *testing.T) {
	env := newTestEnv(t)
	owner := env.instructor(t, "teacher@example.com")
	course := env.course(t, owner, "课程")
	module := env.module(t, owner, course.ID, "章节", "1")
	lesson := env.lesson(t, owner, module.ID, "原标题", "1")

	updated, err := env.lessons.UpdateLesson(owner, lesson.ID, UpdateLessonInput{
		Content: strPtr("更新后的正文"),
	})
	require.NoError(t, err)
	assert.Equal(t, "原标题", updated.Title)
	assert.Equal(t, "更新后的正文", updated.Content)
}

func TestDeleteLessonCascadesQuiz(t *testing.T) {
	env := newTestEnv(t)
	owner := env.instructor(t, "teacher@example.com")
	course := env.course(t, owner, "课程")
	module := env.module(t, owner, course.ID, "章节", "1")
	lesson := env.lesson(t, owner, module.ID, "课时", "1")
	quiz := env.quiz(t, owner, lesson.ID, "小测")
	env.question(t, owner, quiz.ID, "题干", []string{"对", "错"}, 0)

	require.NoError(t, env.lessons.DeleteLesson(owner, lesson.ID))

	var quizzes, questions int64
	env.db.Model(&model.Quiz{}).Count(&quizzes)
	env.db.Model(&model.Question{}).Count(&questions)
	assert.Zero(t, quizzes)
	assert.Zero(t, questions)
}
