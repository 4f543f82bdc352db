package models

// AnswerDetail is the per-index entry of an exam result. Indexes without a
// recorded answer appear with Correct=false.
type AnswerDetail struct {
	Index      int    `json:"index"`
	QuestionID string `json:"question_id"`
	Correct    bool   `json:"correct"`
}

// ExamResult aggregates a finished (or in-progress) exam session.
type ExamResult struct {
	Total        int            `json:"total"`
	CorrectCount int            `json:"correct_count"`
	Accuracy     float64        `json:"accuracy"`
	Details      []AnswerDetail `json:"details"`
}
