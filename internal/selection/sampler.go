package selection

import (
	"math/rand"
	"time"

	"exam-service/internal/models"
)

// Sampler draws fixed-size, duplicate-free question sets from the bank.
// Selection probability is proportional to wrongCount+1, so questions the
// user base keeps missing come up more often.
type Sampler struct {
	rand *rand.Rand
}

// NewSampler creates a sampler with a time-based seed.
func NewSampler() *Sampler {
	return &Sampler{
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Sample picks up to n distinct question ids from the population, weighted
// without replacement: each draw selects among the not-yet-selected
// questions with probability proportional to wrongCount+1, then removes the
// pick from the pool. When the population has fewer than n questions the
// whole population is returned. The returned order is the draw order and
// becomes the session's fixed question sequence.
func (s *Sampler) Sample(population []models.QuestionRef, n int) []string {
	if len(population) == 0 || n <= 0 {
		return nil
	}

	remaining := make([]models.QuestionRef, len(population))
	copy(remaining, population)

	total := 0
	for _, q := range remaining {
		total += q.Weight()
	}

	if n > len(remaining) {
		n = len(remaining)
	}

	selected := make([]string, 0, n)
	for len(selected) < n && len(remaining) > 0 {
		r := s.rand.Intn(total)
		pick := 0
		for i, q := range remaining {
			r -= q.Weight()
			if r < 0 {
				pick = i
				break
			}
		}

		q := remaining[pick]
		selected = append(selected, q.ID)
		total -= q.Weight()

		// Swap-remove the pick so it cannot be drawn again.
		remaining[pick] = remaining[len(remaining)-1]
		remaining = remaining[:len(remaining)-1]
	}

	return selected
}
