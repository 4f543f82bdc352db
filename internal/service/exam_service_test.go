package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"

	"exam-service/internal/models"
)

type fakeQuestionStore struct {
	questions  map[string]*models.Question
	increments map[string]int
}

func newFakeQuestionStore(questions ...*models.Question) *fakeQuestionStore {
	s := &fakeQuestionStore{
		questions:  make(map[string]*models.Question),
		increments: make(map[string]int),
	}
	for _, q := range questions {
		s.questions[q.ID] = q
	}
	return s
}

func (s *fakeQuestionStore) FindRefs(ctx context.Context) ([]models.QuestionRef, error) {
	var refs []models.QuestionRef
	for _, q := range s.questions {
		refs = append(refs, models.QuestionRef{ID: q.ID, WrongCount: q.WrongCount})
	}
	return refs, nil
}

func (s *fakeQuestionStore) FindByID(ctx context.Context, id string) (*models.Question, error) {
	return s.questions[id], nil
}

func (s *fakeQuestionStore) IncrementWrongCount(ctx context.Context, id string) error {
	s.increments[id]++
	return nil
}

type fakeExamStore struct {
	exams  map[string]*models.ExamSession
	nextID int
}

func newFakeExamStore() *fakeExamStore {
	return &fakeExamStore{exams: make(map[string]*models.ExamSession)}
}

func (s *fakeExamStore) Create(ctx context.Context, exam *models.ExamSession) error {
	s.nextID++
	exam.ID = fmt.Sprintf("exam-%d", s.nextID)
	copied := *exam
	s.exams[exam.ID] = &copied
	return nil
}

func (s *fakeExamStore) FindByID(ctx context.Context, id string) (*models.ExamSession, error) {
	exam, ok := s.exams[id]
	if !ok {
		return nil, nil
	}
	copied := *exam
	copied.Answers = append([]models.ExamAnswer(nil), exam.Answers...)
	return &copied, nil
}

func (s *fakeExamStore) Save(ctx context.Context, exam *models.ExamSession) error {
	stored, ok := s.exams[exam.ID]
	if !ok {
		return errors.New("save: exam missing")
	}
	stored.Answers = append([]models.ExamAnswer(nil), exam.Answers...)
	return nil
}

func (s *fakeExamStore) DeleteByUser(ctx context.Context, userID string) error {
	for id, exam := range s.exams {
		if exam.UserID == userID {
			delete(s.exams, id)
		}
	}
	return nil
}

func singleQuestion(id, answer string) *models.Question {
	return &models.Question{
		ID:            id,
		Text:          "pick one",
		Type:          models.QuestionSingle,
		Options:       []string{"a", "b", "c"},
		CorrectAnswer: []string{answer},
	}
}

func bankOf(n int) []*models.Question {
	questions := make([]*models.Question, n)
	for i := range questions {
		questions[i] = singleQuestion(fmt.Sprintf("q%03d", i), "a")
	}
	return questions
}

func TestCreateExamEmptyBank(t *testing.T) {
	svc := NewExamService(newFakeExamStore(), newFakeQuestionStore())
	_, err := svc.CreateExam(context.Background(), "user-1")
	if !errors.Is(err, ErrEmptyBank) {
		t.Fatalf("expected ErrEmptyBank, got %v", err)
	}
}

func TestCreateExamSamplesDistinctQuestions(t *testing.T) {
	testCases := []struct {
		name     string
		bankSize int
		expected int
	}{
		{"large bank caps at exam size", 100, ExamSize},
		{"small bank uses whole bank", 7, 7},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			exams := newFakeExamStore()
			svc := NewExamService(exams, newFakeQuestionStore(bankOf(tc.bankSize)...))

			created, err := svc.CreateExam(context.Background(), "user-1")
			if err != nil {
				t.Fatalf("CreateExam: %v", err)
			}
			if created.Total != tc.expected {
				t.Errorf("expected total %d, got %d", tc.expected, created.Total)
			}

			exam, _ := exams.FindByID(context.Background(), created.ExamID)
			if exam == nil {
				t.Fatal("exam was not persisted")
			}
			if exam.UserID != "user-1" {
				t.Errorf("expected owner user-1, got %q", exam.UserID)
			}
			seen := make(map[string]bool)
			for _, id := range exam.QuestionIDs {
				if seen[id] {
					t.Errorf("duplicate question %q in session", id)
				}
				seen[id] = true
			}
		})
	}
}

func TestGetQuestionRedactsSolutions(t *testing.T) {
	questions := []*models.Question{
		{
			ID:            "q-single",
			Type:          models.QuestionSingle,
			Options:       []string{"a", "b"},
			CorrectAnswer: []string{"a"},
		},
		{
			ID:            "q-multiple",
			Type:          models.QuestionMultiple,
			Options:       []string{"a", "b", "c"},
			CorrectAnswer: []string{"a", "b"},
		},
		{
			ID:           "q-order",
			Type:         models.QuestionOrder,
			Options:      []string{"first", "second"},
			CorrectOrder: []int{1, 0},
		},
	}
	exams := newFakeExamStore()
	svc := NewExamService(exams, newFakeQuestionStore(questions...))

	created, err := svc.CreateExam(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("CreateExam: %v", err)
	}

	for i := 0; i < created.Total; i++ {
		q, err := svc.GetQuestion(context.Background(), "user-1", created.ExamID, i)
		if err != nil {
			t.Fatalf("GetQuestion(%d): %v", i, err)
		}
		if q.CorrectAnswer != nil {
			t.Errorf("question %q leaked correct_answer", q.ID)
		}
		if q.CorrectOrder != nil {
			t.Errorf("question %q leaked correct_order", q.ID)
		}
		if len(q.Options) == 0 {
			t.Errorf("question %q lost its options", q.ID)
		}
	}
}

func TestSessionAccessValidation(t *testing.T) {
	exams := newFakeExamStore()
	svc := NewExamService(exams, newFakeQuestionStore(bankOf(3)...))
	created, err := svc.CreateExam(context.Background(), "owner")
	if err != nil {
		t.Fatalf("CreateExam: %v", err)
	}

	testCases := []struct {
		name    string
		call    func() error
		wantErr error
	}{
		{"get question wrong user", func() error {
			_, err := svc.GetQuestion(context.Background(), "intruder", created.ExamID, 0)
			return err
		}, ErrForbidden},
		{"submit wrong user", func() error {
			return svc.SubmitAnswer(context.Background(), "intruder", created.ExamID, 0, []string{"a"})
		}, ErrForbidden},
		{"result wrong user", func() error {
			_, err := svc.GetResult(context.Background(), "intruder", created.ExamID)
			return err
		}, ErrForbidden},
		{"unknown exam", func() error {
			_, err := svc.GetQuestion(context.Background(), "owner", "missing", 0)
			return err
		}, ErrNotFound},
		{"negative index", func() error {
			_, err := svc.GetQuestion(context.Background(), "owner", created.ExamID, -1)
			return err
		}, ErrIndexOutOfRange},
		{"index past end", func() error {
			return svc.SubmitAnswer(context.Background(), "owner", created.ExamID, created.Total, []string{"a"})
		}, ErrIndexOutOfRange},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.call(); !errors.Is(err, tc.wantErr) {
				t.Errorf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestSubmitAnswerReplacesRecordAtIndex(t *testing.T) {
	exams := newFakeExamStore()
	questions := newFakeQuestionStore(bankOf(3)...)
	svc := NewExamService(exams, questions)
	created, err := svc.CreateExam(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("CreateExam: %v", err)
	}

	// Wrong first, then right: only the latest record survives.
	if err := svc.SubmitAnswer(context.Background(), "user-1", created.ExamID, 1, []string{"b"}); err != nil {
		t.Fatalf("first submit: %v", err)
	}
	if err := svc.SubmitAnswer(context.Background(), "user-1", created.ExamID, 1, []string{"a"}); err != nil {
		t.Fatalf("second submit: %v", err)
	}

	exam, _ := exams.FindByID(context.Background(), created.ExamID)
	if len(exam.Answers) != 1 {
		t.Fatalf("expected one record at index 1, got %d records", len(exam.Answers))
	}
	if !exam.Answers[0].Correct {
		t.Error("latest submission was correct but record says incorrect")
	}

	result, err := svc.GetResult(context.Background(), "user-1", created.ExamID)
	if err != nil {
		t.Fatalf("GetResult: %v", err)
	}
	if result.CorrectCount != 1 {
		t.Errorf("expected correct_count 1, got %d", result.CorrectCount)
	}
}

func TestWrongCountIncrementsOnEveryIncorrectSubmission(t *testing.T) {
	exams := newFakeExamStore()
	questions := newFakeQuestionStore(bankOf(2)...)
	svc := NewExamService(exams, questions)
	created, err := svc.CreateExam(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("CreateExam: %v", err)
	}

	exam, _ := exams.FindByID(context.Background(), created.ExamID)
	questionID := exam.QuestionIDs[0]

	// Two wrong submissions at the same index: the record is replaced but
	// the counter keeps climbing. One correct submission adds nothing.
	for _, selected := range [][]string{{"b"}, {"c"}, {"a"}} {
		if err := svc.SubmitAnswer(context.Background(), "user-1", created.ExamID, 0, selected); err != nil {
			t.Fatalf("SubmitAnswer(%v): %v", selected, err)
		}
	}

	if got := questions.increments[questionID]; got != 2 {
		t.Errorf("expected 2 wrong-count increments, got %d", got)
	}
}

func TestGetResultAggregation(t *testing.T) {
	exams := newFakeExamStore()
	questions := newFakeQuestionStore(bankOf(3)...)
	svc := NewExamService(exams, questions)
	created, err := svc.CreateExam(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("CreateExam: %v", err)
	}

	// Only index 1 answered, correctly.
	if err := svc.SubmitAnswer(context.Background(), "user-1", created.ExamID, 1, []string{"a"}); err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}

	result, err := svc.GetResult(context.Background(), "user-1", created.ExamID)
	if err != nil {
		t.Fatalf("GetResult: %v", err)
	}

	if result.Total != 3 {
		t.Errorf("expected total 3, got %d", result.Total)
	}
	if result.CorrectCount != 1 {
		t.Errorf("expected correct_count 1, got %d", result.CorrectCount)
	}
	if math.Abs(result.Accuracy-1.0/3.0) > 1e-9 {
		t.Errorf("expected accuracy 1/3, got %f", result.Accuracy)
	}
	if len(result.Details) != 3 {
		t.Fatalf("expected 3 detail entries, got %d", len(result.Details))
	}
	for i, d := range result.Details {
		if d.Index != i {
			t.Errorf("detail %d has index %d, expected ascending order", i, d.Index)
		}
		wantCorrect := i == 1
		if d.Correct != wantCorrect {
			t.Errorf("detail %d: expected correct=%v, got %v", i, wantCorrect, d.Correct)
		}
	}
}

func TestGetResultEmptySession(t *testing.T) {
	exams := newFakeExamStore()
	svc := NewExamService(exams, newFakeQuestionStore())

	exams.exams["exam-0"] = &models.ExamSession{
		ID:          "exam-0",
		UserID:      "user-1",
		QuestionIDs: []string{},
	}

	result, err := svc.GetResult(context.Background(), "user-1", "exam-0")
	if err != nil {
		t.Fatalf("GetResult: %v", err)
	}
	if result.Accuracy != 0 {
		t.Errorf("expected accuracy 0 for empty session, got %f", result.Accuracy)
	}
	if result.Total != 0 || result.CorrectCount != 0 {
		t.Errorf("expected zeroed result, got %+v", result)
	}
}

func TestClearAllDeletesOnlyCallersSessions(t *testing.T) {
	exams := newFakeExamStore()
	svc := NewExamService(exams, newFakeQuestionStore(bankOf(2)...))

	mine, err := svc.CreateExam(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("CreateExam: %v", err)
	}
	theirs, err := svc.CreateExam(context.Background(), "user-2")
	if err != nil {
		t.Fatalf("CreateExam: %v", err)
	}

	if err := svc.ClearAll(context.Background(), "user-1"); err != nil {
		t.Fatalf("ClearAll: %v", err)
	}
	if exam, _ := exams.FindByID(context.Background(), mine.ExamID); exam != nil {
		t.Error("own session survived ClearAll")
	}
	if exam, _ := exams.FindByID(context.Background(), theirs.ExamID); exam == nil {
		t.Error("another user's session was deleted")
	}

	// Clearing again is a no-op success.
	if err := svc.ClearAll(context.Background(), "user-1"); err != nil {
		t.Errorf("ClearAll on empty state: %v", err)
	}
}
