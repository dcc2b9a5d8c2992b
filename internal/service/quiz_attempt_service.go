package service

import (
	"errors"
	"fmt"

	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/util"
	"learnhub_backend/pkg/monitoring"

	"gorm.io/gorm"
)

type QuizAttemptService struct {
	QuizRepo       *repository.QuizRepository
	EnrollmentRepo *repository.EnrollmentRepository
	AttemptRepo    *repository.QuizAttemptRepository
	Views          *ViewCache
}

func NewQuizAttemptService(quizRepo *repository.QuizRepository, enrollmentRepo *repository.EnrollmentRepository, attemptRepo *repository.QuizAttemptRepository, views *ViewCache) *QuizAttemptService {
	return &QuizAttemptService{
		QuizRepo:       quizRepo,
		EnrollmentRepo: enrollmentRepo,
		AttemptRepo:    attemptRepo,
		Views:          views,
	}
}

// AttemptResult 一次作答的评分结果
type AttemptResult struct {
	AttemptID      string  `json:"attemptId"`
	Score          float64 `json:"score"`
	CorrectCount   int     `json:"correctCount"`
	TotalQuestions int     `json:"totalQuestions"`
}

// SubmitAttempt 服务端评分。answers 以题目 id 为键；不在测验里的键忽略，
// 缺失的作答永远不算对。零题测验直接拒绝，而不是除零。
// 每次成功评分都追加一条 QuizAttempt，包括 0 分。
func (s *QuizAttemptService) SubmitAttempt(actor model.Actor, quizID string, answers map[string]int) (*AttemptResult, error) {
	quiz, err := s.QuizRepo.FindByIDWithQuestions(quizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNotFound
		}
		return nil, err
	}

	courseID, err := s.QuizRepo.CourseIDForQuiz(quizID)
	if err != nil {
		return nil, err
	}

	enrolled, err := s.EnrollmentRepo.Exists(actor.ID, courseID)
	if err != nil {
		return nil, err
	}
	if !enrolled {
		return nil, util.ErrNotEnrolled
	}

	total := len(quiz.Questions)
	if total == 0 {
		return nil, fmt.Errorf("%w: quiz has no questions", util.ErrValidation)
	}

	correct := 0
	for _, question := range quiz.Questions {
		if selected, ok := answers[question.ID]; ok && selected == question.CorrectAnswer {
			correct++
		}
	}

	score := 100 * float64(correct) / float64(total)

	attempt := &model.QuizAttempt{
		UserID: actor.ID,
		QuizID: quizID,
		Score:  score,
	}
	if err := s.AttemptRepo.Create(attempt); err != nil {
		return nil, err
	}

	monitoring.QuizAttemptCounter.WithLabelValues(quizID).Inc()
	s.Views.InvalidateCourseContent(courseID)

	return &AttemptResult{
		AttemptID:      attempt.ID,
		Score:          score,
		CorrectCount:   correct,
		TotalQuestions: total,
	}, nil
}

func (s *QuizAttemptService) ListAttempts(actor model.Actor, quizID string) ([]model.QuizAttempt, error) {
	return s.AttemptRepo.ListByUserAndQuiz(actor.ID, quizID)
}
