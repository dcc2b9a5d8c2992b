package service

import (
	"testing"

	"learnhub_backend/internal/model"
	"learnhub_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateQuizOnePerLesson(t *testing.T) {
	env := newTestEnv(t)
	owner := env.instructor(t, "teacher@example.com")
	course := env.course(t, owner, "课程")
	module := env.module(t, owner, course.ID, "章节", "1")
	lesson := env.lesson(t, owner, module.ID, "课时", "1")

	_, err := env.quizzes.CreateQuiz(owner, lesson.ID, "第一份小测")
	require.NoError(t, err)

	_, err = env.quizzes.CreateQuiz(owner, lesson.ID, "第二份小测")
	assert.ErrorIs(t, err, util.ErrQuizExists)

	var count int64
	env.db.Model(&model.Quiz{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestUpdateQuiz(t *testing.T) {
	env := newTestEnv(t)
	owner := env.instructor(t, "teacher@example.com")
	_, quiz := env.quizFixture(t, owner)

	updated, err := env.quizzes.UpdateQuiz(owner, quiz.ID, strPtr("改名后的小测"))
	require.NoError(t, err)
	assert.Equal(t, "改名后的小测", updated.Title)

	// nil 标题表示未提供，保持原值
	kept, err := env.quizzes.UpdateQuiz(owner, quiz.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, "改名后的小测", kept.Title)

	other := env.instructor(t, "other@example.com")
	_, err = env.quizzes.UpdateQuiz(other, quiz.ID, strPtr("越权"))
	assert.ErrorIs(t, err, util.ErrNotFound)
}

func TestCreateQuestionValidation(t *testing.T) {
	env := newTestEnv(t)
	owner := env.instructor(t, "teacher@example.com")
	_, quiz := env.quizFixture(t, owner)

	tests := []struct {
		name  string
		input CreateQuestionInput
	}{
		{
			name:  "blank text",
			input: CreateQuestionInput{Text: "  ", Options: []string{"a", "b"}, CorrectAnswer: 0},
		},
		{
			name:  "too few options",
			input: CreateQuestionInput{Text: "题干", Options: []string{"唯一选项"}, CorrectAnswer: 0},
		},
		{
			name:  "correct answer out of range",
			input: CreateQuestionInput{Text: "题干", Options: []string{"a", "b"}, CorrectAnswer: 2},
		},
		{
			name:  "negative correct answer",
			input: CreateQuestionInput{Text: "题干", Options: []string{"a", "b"}, CorrectAnswer: -1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.quizzes.CreateQuestion(owner, quiz.ID, tt.input)
			assert.ErrorIs(t, err, util.ErrValidation)
		})
	}
}

func TestQuestionOptionsRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	owner := env.instructor(t, "teacher@example.com")
	_, quiz := env.quizFixture(t, owner)

	options := []string{"fmt.Println", "log.Print", "遗留的 \"引号\" 与逗号, 分号"}
	question := env.question(t, owner, quiz.ID, "哪个是标准输出?", options, 0)

	loaded, err := env.quizzes.QuizRepo.FindByIDWithQuestions(quiz.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Questions, 1)
	assert.Equal(t, question.ID, loaded.Questions[0].ID)
	assert.Equal(t, model.OptionList(options), loaded.Questions[0].Options)
}

func TestDeleteQuiz(t *testing.T) {
	env := newTestEnv(t)
	owner := env.instructor(t, "teacher@example.com")
	_, quiz := env.quizFixture(t, owner)
	env.question(t, owner, quiz.ID, "题干", []string{"a", "b"}, 1)

	require.NoError(t, env.quizzes.DeleteQuiz(owner, quiz.ID))

	var questions int64
	env.db.Model(&model.Question{}).Count(&questions)
	assert.Zero(t, questions)

	// 删除后同一课时可以重新建测验
	lessons := []model.Lesson{}
	require.NoError(t, env.db.Find(&lessons).Error)
	require.Len(t, lessons, 1)
	_, err := env.quizzes.CreateQuiz(owner, lessons[0].ID, "重建的小测")
	assert.NoError(t, err)
}

func TestDeleteQuestion(t *testing.T) {
	env := newTestEnv(t)
	owner := env.instructor(t, "teacher@example.com")
	_, quiz := env.quizFixture(t, owner)
	question := env.question(t, owner, quiz.ID, "题干", []string{"a", "b"}, 0)

	other := env.instructor(t, "other@example.com")
	assert.ErrorIs(t, env.quizzes.DeleteQuestion(other, question.ID), util.ErrNotFound)

	require.NoError(t, env.quizzes.DeleteQuestion(owner, question.ID))
	assert.ErrorIs(t, env.quizzes.DeleteQuestion(owner, question.ID), util.ErrNotFound)
}
