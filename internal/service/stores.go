package service

import (
	"context"

	"exam-service/internal/models"
)

// QuestionStore is the slice of the question repository the exam engine
// consumes. Lookups return (nil, nil) when the record does not exist.
type QuestionStore interface {
	FindRefs(ctx context.Context) ([]models.QuestionRef, error)
	FindByID(ctx context.Context, id string) (*models.Question, error)
	IncrementWrongCount(ctx context.Context, id string) error
}

// ExamStore holds exam session documents. Save replaces the mutable answer
// list; DeleteByUser is a no-op when the user has no sessions.
type ExamStore interface {
	Create(ctx context.Context, exam *models.ExamSession) error
	FindByID(ctx context.Context, id string) (*models.ExamSession, error)
	Save(ctx context.Context, exam *models.ExamSession) error
	DeleteByUser(ctx context.Context, userID string) error
}
