package models

import "time"

// ExamAnswer is one recorded answer inside an exam session. At most one
// record exists per index; re-submitting replaces the previous record.
type ExamAnswer struct {
	QuestionID string   `bson:"question_id" json:"question_id"`
	Index      int      `bson:"index" json:"index"`
	Selected   []string `bson:"selected" json:"selected"`
	Correct    bool     `bson:"correct" json:"correct"`
}

// ExamSession is one user's exam: a question sequence fixed at creation
// time plus the answers recorded so far. The sequence never changes after
// creation; its length is the total reported to callers.
type ExamSession struct {
	ID          string       `bson:"_id,omitempty" json:"id"`
	UserID      string       `bson:"user_id" json:"user_id"`
	QuestionIDs []string     `bson:"question_ids" json:"question_ids"`
	Answers     []ExamAnswer `bson:"answers" json:"answers"`
	CreatedAt   time.Time    `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time    `bson:"updated_at" json:"updated_at"`
}

// Total is the fixed length of the question sequence.
func (e *ExamSession) Total() int {
	return len(e.QuestionIDs)
}

// AnswerAt returns the recorded answer for an index, if any.
func (e *ExamSession) AnswerAt(index int) (ExamAnswer, bool) {
	for _, a := range e.Answers {
		if a.Index == index {
			return a, true
		}
	}
	return ExamAnswer{}, false
}
