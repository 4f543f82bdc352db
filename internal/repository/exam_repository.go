package repository

import (
	"context"
	"time"

	"exam-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ExamRepository struct {
	Col *mongo.Collection
}

func NewExamRepository(db *mongo.Database) *ExamRepository {
	return &ExamRepository{Col: db.Collection("exams")}
}

func (r *ExamRepository) Create(ctx context.Context, exam *models.ExamSession) error {
	now := time.Now()
	exam.CreatedAt = now
	exam.UpdatedAt = now
	res, err := r.Col.InsertOne(ctx, exam)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		exam.ID = oid.Hex()
	}
	return nil
}

// FindByID returns (nil, nil) when no session has the given id; a malformed
// id cannot match any document and is treated the same way.
func (r *ExamRepository) FindByID(ctx context.Context, id string) (*models.ExamSession, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	var exam models.ExamSession
	err = r.Col.FindOne(ctx, bson.M{"_id": objID}).Decode(&exam)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &exam, nil
}

// Save persists the mutable answer list of an existing session. The
// question sequence is fixed at creation time and is never rewritten.
func (r *ExamRepository) Save(ctx context.Context, exam *models.ExamSession) error {
	objID, err := primitive.ObjectIDFromHex(exam.ID)
	if err != nil {
		return err
	}
	exam.UpdatedAt = time.Now()
	_, err = r.Col.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": bson.M{
		"answers":    exam.Answers,
		"updated_at": exam.UpdatedAt,
	}})
	return err
}

// DeleteByUser removes every session owned by the user. Deleting with no
// matching sessions is a no-op.
func (r *ExamRepository) DeleteByUser(ctx context.Context, userID string) error {
	_, err := r.Col.DeleteMany(ctx, bson.M{"user_id": userID})
	return err
}
