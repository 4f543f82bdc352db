package repository

import (
	"context"
	"time"

	"exam-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type QuestionRepository struct {
	Col *mongo.Collection
}

func NewQuestionRepository(db *mongo.Database) *QuestionRepository {
	return &QuestionRepository{Col: db.Collection("questions")}
}

// FindRefs loads only the id and wrongness counter of every question, the
// projection the sampler needs.
func (r *QuestionRepository) FindRefs(ctx context.Context) ([]models.QuestionRef, error) {
	opts := options.Find().SetProjection(bson.M{"wrong_count": 1})
	cur, err := r.Col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var refs []models.QuestionRef
	for cur.Next(ctx) {
		var ref models.QuestionRef
		if err := cur.Decode(&ref); err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, cur.Err()
}

func (r *QuestionRepository) FindAll(ctx context.Context) ([]models.Question, error) {
	cur, err := r.Col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var questions []models.Question
	for cur.Next(ctx) {
		var q models.Question
		if err := cur.Decode(&q); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, cur.Err()
}

// FindByID returns (nil, nil) when no question has the given id.
func (r *QuestionRepository) FindByID(ctx context.Context, id string) (*models.Question, error) {
	var question models.Question
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&question)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &question, nil
}

// FindByIndex returns the index-th question in _id order, the stable
// ordering the practice endpoints page through. Returns (nil, nil) when the
// index is past the end of the bank.
func (r *QuestionRepository) FindByIndex(ctx context.Context, index int) (*models.Question, error) {
	opts := options.FindOne().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(int64(index))
	var question models.Question
	err := r.Col.FindOne(ctx, bson.M{}, opts).Decode(&question)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *QuestionRepository) Count(ctx context.Context) (int64, error) {
	return r.Col.CountDocuments(ctx, bson.M{})
}

// IncrementWrongCount bumps the wrongness counter by one as a single atomic
// update, never as a read-modify-write pair.
func (r *QuestionRepository) IncrementWrongCount(ctx context.Context, id string) error {
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"wrong_count": 1}})
	return err
}

func (r *QuestionRepository) Create(ctx context.Context, question *models.Question) error {
	if question.ID == "" {
		question.ID = primitive.NewObjectID().Hex()
	}
	now := time.Now()
	question.CreatedAt = now
	question.UpdatedAt = now
	_, err := r.Col.InsertOne(ctx, question)
	return err
}

// InsertMany bulk-inserts seed questions, assigning hex ids so lookups stay
// string-keyed like the rest of the collection.
func (r *QuestionRepository) InsertMany(ctx context.Context, questions []models.Question) error {
	if len(questions) == 0 {
		return nil
	}
	now := time.Now()
	docs := make([]interface{}, len(questions))
	for i := range questions {
		if questions[i].ID == "" {
			questions[i].ID = primitive.NewObjectID().Hex()
		}
		questions[i].CreatedAt = now
		questions[i].UpdatedAt = now
		docs[i] = questions[i]
	}
	_, err := r.Col.InsertMany(ctx, docs)
	return err
}

func (r *QuestionRepository) Update(ctx context.Context, id string, update bson.M) error {
	update["updated_at"] = time.Now()
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": update})
	return err
}

func (r *QuestionRepository) Delete(ctx context.Context, id string) error {
	_, err := r.Col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *QuestionRepository) DeleteAll(ctx context.Context) error {
	_, err := r.Col.DeleteMany(ctx, bson.M{})
	return err
}
