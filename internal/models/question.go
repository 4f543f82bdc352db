package models

import "time"

// Question types supported by the exam engine.
const (
	QuestionSingle   = "single"
	QuestionMultiple = "multiple"
	QuestionOrder    = "order"
)

type Question struct {
	ID            string    `bson:"_id,omitempty" json:"id"`
	Text          string    `bson:"text" json:"text"`
	Type          string    `bson:"type" json:"type"`
	Options       []string  `bson:"options" json:"options"`
	CorrectAnswer []string  `bson:"correct_answer,omitempty" json:"correct_answer,omitempty"`
	CorrectOrder  []int     `bson:"correct_order,omitempty" json:"correct_order,omitempty"`
	Explanations  []string  `bson:"explanations,omitempty" json:"explanations,omitempty"`
	WrongCount    int       `bson:"wrong_count" json:"wrong_count"`
	CreatedAt     time.Time `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt     time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// QuestionRef is the projection the sampler works on: identity plus the
// wrongness counter that drives selection weight.
type QuestionRef struct {
	ID         string `bson:"_id" json:"id"`
	WrongCount int    `bson:"wrong_count" json:"wrong_count"`
}

// Weight is the sampling weight: never-missed questions count once,
// questions missed k times count k+1 times.
func (r QuestionRef) Weight() int {
	return r.WrongCount + 1
}

// Redacted returns a copy of the question with all solution material
// removed. Exam takers must never see correct_answer or correct_order.
func (q Question) Redacted() Question {
	q.CorrectAnswer = nil
	q.CorrectOrder = nil
	return q
}
