package service

import (
	"sort"
	"strconv"

	"exam-service/internal/models"
)

// evaluateAnswer judges a submission against the unredacted question.
// Unknown question types are never correct.
func evaluateAnswer(q *models.Question, selected []string) bool {
	switch q.Type {
	case models.QuestionSingle:
		return evaluateSingle(q.CorrectAnswer, selected)
	case models.QuestionMultiple:
		return evaluateMultiple(q.CorrectAnswer, selected)
	case models.QuestionOrder:
		return evaluateOrder(q.CorrectOrder, selected)
	}
	return false
}

// evaluateSingle compares the first selected value against the question's
// sole correct value.
func evaluateSingle(correct, selected []string) bool {
	if len(selected) == 0 || len(correct) == 0 {
		return false
	}
	return selected[0] == correct[0]
}

// evaluateMultiple compares the selected set against the correct set,
// order-independently: both sides sorted, then compared element-wise.
func evaluateMultiple(correct, selected []string) bool {
	if len(selected) != len(correct) {
		return false
	}
	a := append([]string(nil), correct...)
	b := append([]string(nil), selected...)
	sort.Strings(a)
	sort.Strings(b)
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// evaluateOrder interprets the selection as option indices and requires the
// exact permutation, including length. Unparseable values never match.
func evaluateOrder(correct []int, selected []string) bool {
	if len(selected) != len(correct) {
		return false
	}
	for i, s := range selected {
		n, err := strconv.Atoi(s)
		if err != nil || n != correct[i] {
			return false
		}
	}
	return true
}
