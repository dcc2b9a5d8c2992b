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

type QuizService struct {
	LessonRepo   *repository.LessonRepository
	QuizRepo     *repository.QuizRepository
	QuestionRepo *repository.QuestionRepository
	Views        *ViewCache
}

func NewQuizService(lessonRepo *repository.LessonRepository, quizRepo *repository.QuizRepository, questionRepo *repository.QuestionRepository, views *ViewCache) *QuizService {
	return &QuizService{
		LessonRepo:   lessonRepo,
		QuizRepo:     quizRepo,
		QuestionRepo: questionRepo,
		Views:        views,
	}
}

func (s *QuizService) CreateQuiz(actor model.Actor, lessonID, title string) (*model.Quiz, error) {
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

	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", util.ErrValidation)
	}

	quiz := &model.Quiz{
		Title:    title,
		LessonID: lessonID,
	}
	if err := s.QuizRepo.Create(quiz); err != nil {
		// lesson_id 的唯一索引保证 1:0..1
		if util.IsDuplicateKey(err) {
			return nil, util.ErrQuizExists
		}
		return nil, err
	}

	s.Views.InvalidateCourseEdit(owned.CourseID)
	return quiz, nil
}

func (s *QuizService) UpdateQuiz(actor model.Actor, quizID string, title *string) (*model.Quiz, error) {
	if !actor.IsInstructor() {
		return nil, util.ErrUnauthorized
	}

	owned, err := s.QuizRepo.FindOwned(quizID, actor.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNotFound
		}
		return nil, err
	}

	if title != nil {
		if trimmed := strings.TrimSpace(*title); trimmed != "" {
			if err := s.QuizRepo.UpdateFields(quizID, map[string]interface{}{"title": trimmed}); err != nil {
				return nil, err
			}
		}
	}

	s.Views.InvalidateCourseEdit(owned.CourseID)

	var updated model.Quiz
	if err := s.QuizRepo.DB.First(&updated, "id = ?", quizID).Error; err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *QuizService) DeleteQuiz(actor model.Actor, quizID string) error {
	if !actor.IsInstructor() {
		return util.ErrUnauthorized
	}

	owned, err := s.QuizRepo.FindOwned(quizID, actor.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrNotFound
		}
		return err
	}

	// 题目随外键级联删除
	if err := s.QuizRepo.Delete(quizID); err != nil {
		return err
	}

	s.Views.InvalidateCourseEdit(owned.CourseID)
	return nil
}

type CreateQuestionInput struct {
	Text          string
	Options       []string
	CorrectAnswer int
}

// CreateQuestion 持久化前校验选项数量与正确答案下标；
// 选项序列在磁盘上是 JSON 文本，读回必须与写入完全一致。
func (s *QuizService) CreateQuestion(actor model.Actor, quizID string, input CreateQuestionInput) (*model.Question, error) {
	if !actor.IsInstructor() {
		return nil, util.ErrUnauthorized
	}

	owned, err := s.QuizRepo.FindOwned(quizID, actor.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNotFound
		}
		return nil, err
	}

	text := strings.TrimSpace(input.Text)
	if text == "" {
		return nil, fmt.Errorf("%w: question text is required", util.ErrValidation)
	}
	if len(input.Options) < 2 {
		return nil, fmt.Errorf("%w: options must contain at least 2 items", util.ErrValidation)
	}
	if input.CorrectAnswer < 0 || input.CorrectAnswer >= len(input.Options) {
		return nil, fmt.Errorf("%w: correct answer index is out of range", util.ErrValidation)
	}

	question := &model.Question{
		Text:          text,
		Options:       model.OptionList(input.Options),
		CorrectAnswer: input.CorrectAnswer,
		QuizID:        quizID,
	}
	if err := s.QuestionRepo.Create(question); err != nil {
		return nil, err
	}

	s.Views.InvalidateCourseEdit(owned.CourseID)
	return question, nil
}

func (s *QuizService) DeleteQuestion(actor model.Actor, questionID string) error {
	if !actor.IsInstructor() {
		return util.ErrUnauthorized
	}

	owned, err := s.QuestionRepo.FindOwned(questionID, actor.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrNotFound
		}
		return err
	}

	if err := s.QuestionRepo.Delete(questionID); err != nil {
		return err
	}

	s.Views.InvalidateCourseEdit(owned.CourseID)
	return nil
}
