package service

import (
	"context"
	"fmt"

	"exam-service/internal/models"
	"exam-service/internal/selection"
)

// ExamSize is the target number of questions per session. Smaller banks
// yield sessions covering the whole bank.
const ExamSize = 65

// ExamService is the session engine: it creates weighted-sampled sessions,
// serves redacted questions, evaluates and records answers, and aggregates
// results. Every operation verifies that the caller owns the session.
type ExamService struct {
	Exams     ExamStore
	Questions QuestionStore
	sampler   *selection.Sampler
	size      int
}

func NewExamService(exams ExamStore, questions QuestionStore) *ExamService {
	return &ExamService{
		Exams:     exams,
		Questions: questions,
		sampler:   selection.NewSampler(),
		size:      ExamSize,
	}
}

// CreatedExam is what CreateExam hands back to the transport layer.
type CreatedExam struct {
	ExamID string `json:"exam_id"`
	Total  int    `json:"total"`
}

// CreateExam samples a new question sequence for the user and persists the
// session with an empty answer list.
func (s *ExamService) CreateExam(ctx context.Context, userID string) (*CreatedExam, error) {
	refs, err := s.Questions.FindRefs(ctx)
	if err != nil {
		return nil, fmt.Errorf("load question refs: %w", err)
	}
	if len(refs) == 0 {
		return nil, ErrEmptyBank
	}

	ids := s.sampler.Sample(refs, s.size)
	exam := &models.ExamSession{
		UserID:      userID,
		QuestionIDs: ids,
		Answers:     []models.ExamAnswer{},
	}
	if err := s.Exams.Create(ctx, exam); err != nil {
		return nil, fmt.Errorf("create exam: %w", err)
	}
	return &CreatedExam{ExamID: exam.ID, Total: len(ids)}, nil
}

// loadOwned fetches a session and authorizes the caller. All read/write
// operations on a session go through here.
func (s *ExamService) loadOwned(ctx context.Context, userID, examID string) (*models.ExamSession, error) {
	exam, err := s.Exams.FindByID(ctx, examID)
	if err != nil {
		return nil, fmt.Errorf("load exam: %w", err)
	}
	if exam == nil {
		return nil, ErrNotFound
	}
	if exam.UserID != userID {
		return nil, ErrForbidden
	}
	return exam, nil
}

// GetQuestion resolves the question at a position in the session and
// returns it with the solution fields stripped.
func (s *ExamService) GetQuestion(ctx context.Context, userID, examID string, index int) (*models.Question, error) {
	exam, err := s.loadOwned(ctx, userID, examID)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= exam.Total() {
		return nil, ErrIndexOutOfRange
	}

	question, err := s.Questions.FindByID(ctx, exam.QuestionIDs[index])
	if err != nil {
		return nil, fmt.Errorf("load question: %w", err)
	}
	if question == nil {
		return nil, ErrNotFound
	}
	redacted := question.Redacted()
	return &redacted, nil
}

// SubmitAnswer evaluates a submission and records it at the given index,
// replacing any earlier record there. Incorrect submissions bump the
// question's wrongness counter; that happens on every incorrect submission,
// re-submissions included.
func (s *ExamService) SubmitAnswer(ctx context.Context, userID, examID string, index int, selected []string) error {
	exam, err := s.loadOwned(ctx, userID, examID)
	if err != nil {
		return err
	}
	if index < 0 || index >= exam.Total() {
		return ErrIndexOutOfRange
	}

	questionID := exam.QuestionIDs[index]
	question, err := s.Questions.FindByID(ctx, questionID)
	if err != nil {
		return fmt.Errorf("load question: %w", err)
	}
	if question == nil {
		return ErrNotFound
	}

	correct := evaluateAnswer(question, selected)
	if !correct {
		if err := s.Questions.IncrementWrongCount(ctx, questionID); err != nil {
			return fmt.Errorf("increment wrong count: %w", err)
		}
	}

	kept := exam.Answers[:0]
	for _, a := range exam.Answers {
		if a.Index != index {
			kept = append(kept, a)
		}
	}
	exam.Answers = append(kept, models.ExamAnswer{
		QuestionID: questionID,
		Index:      index,
		Selected:   selected,
		Correct:    correct,
	})

	if err := s.Exams.Save(ctx, exam); err != nil {
		return fmt.Errorf("save exam: %w", err)
	}
	return nil
}

// GetResult aggregates the session into a scored result with one detail
// entry per index, ascending. Unanswered indexes count as incorrect.
func (s *ExamService) GetResult(ctx context.Context, userID, examID string) (*models.ExamResult, error) {
	exam, err := s.loadOwned(ctx, userID, examID)
	if err != nil {
		return nil, err
	}

	total := exam.Total()
	details := make([]models.AnswerDetail, 0, total)
	correctCount := 0
	for i := 0; i < total; i++ {
		detail := models.AnswerDetail{Index: i, QuestionID: exam.QuestionIDs[i]}
		if answer, ok := exam.AnswerAt(i); ok {
			detail.Correct = answer.Correct
		}
		if detail.Correct {
			correctCount++
		}
		details = append(details, detail)
	}

	accuracy := 0.0
	if total > 0 {
		accuracy = float64(correctCount) / float64(total)
	}
	return &models.ExamResult{
		Total:        total,
		CorrectCount: correctCount,
		Accuracy:     accuracy,
		Details:      details,
	}, nil
}

// ClearAll deletes every session owned by the user.
func (s *ExamService) ClearAll(ctx context.Context, userID string) error {
	if err := s.Exams.DeleteByUser(ctx, userID); err != nil {
		return fmt.Errorf("delete exams: %w", err)
	}
	return nil
}
