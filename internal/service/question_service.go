package service

import (
	"context"

	"exam-service/internal/models"
	"exam-service/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
)

// QuestionService manages the question bank itself: admin CRUD plus the
// wipe-and-reload bulk operation the seed command uses.
type QuestionService struct {
	Repo *repository.QuestionRepository
}

func NewQuestionService(repo *repository.QuestionRepository) *QuestionService {
	return &QuestionService{Repo: repo}
}

func (s *QuestionService) ListQuestions(ctx context.Context) ([]models.Question, error) {
	return s.Repo.FindAll(ctx)
}

func (s *QuestionService) GetQuestion(ctx context.Context, id string) (*models.Question, error) {
	question, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, ErrNotFound
	}
	return question, nil
}

func (s *QuestionService) CreateQuestion(ctx context.Context, question *models.Question) error {
	return s.Repo.Create(ctx, question)
}

func (s *QuestionService) UpdateQuestion(ctx context.Context, id string, update bson.M) error {
	return s.Repo.Update(ctx, id, update)
}

func (s *QuestionService) DeleteQuestion(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

// SeedQuestions wipes the bank and bulk-inserts fresh questions.
func (s *QuestionService) SeedQuestions(ctx context.Context, questions []models.Question) error {
	if err := s.Repo.DeleteAll(ctx); err != nil {
		return err
	}
	return s.Repo.InsertMany(ctx, questions)
}

func (s *QuestionService) Count(ctx context.Context) (int64, error) {
	return s.Repo.Count(ctx)
}
