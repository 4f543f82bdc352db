package service

import (
	"context"

	"exam-service/internal/models"
	"exam-service/internal/repository"
)

// PracticeService serves the free-practice browsing endpoints: questions
// are addressed by their position in _id order and returned unredacted,
// since practice mode shows solutions and explanations.
type PracticeService struct {
	Repo *repository.QuestionRepository
}

func NewPracticeService(repo *repository.QuestionRepository) *PracticeService {
	return &PracticeService{Repo: repo}
}

func (s *PracticeService) FindAll(ctx context.Context) ([]models.Question, error) {
	return s.Repo.FindAll(ctx)
}

func (s *PracticeService) FindByIndex(ctx context.Context, index int) (*models.Question, error) {
	if index < 0 {
		return nil, ErrIndexOutOfRange
	}
	question, err := s.Repo.FindByIndex(ctx, index)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, ErrNotFound
	}
	return question, nil
}

func (s *PracticeService) Count(ctx context.Context) (int64, error) {
	return s.Repo.Count(ctx)
}
