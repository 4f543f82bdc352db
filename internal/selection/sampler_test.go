package selection

import (
	"math/rand"
	"testing"

	"exam-service/internal/models"
)

func newTestSampler(seed int64) *Sampler {
	return &Sampler{rand: rand.New(rand.NewSource(seed))}
}

func uniformBank(size int) []models.QuestionRef {
	refs := make([]models.QuestionRef, size)
	for i := range refs {
		refs[i] = models.QuestionRef{ID: questionID(i), WrongCount: 0}
	}
	return refs
}

func questionID(i int) string {
	return "q" + string(rune('a'+i/26)) + string(rune('a'+i%26))
}

func TestSampleLargeBankReturnsExactlyN(t *testing.T) {
	s := newTestSampler(1)
	refs := uniformBank(200)

	ids := s.Sample(refs, 65)
	if len(ids) != 65 {
		t.Fatalf("expected 65 ids, got %d", len(ids))
	}

	known := make(map[string]bool, len(refs))
	for _, r := range refs {
		known[r.ID] = true
	}
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if !known[id] {
			t.Errorf("sampled id %q is not in the population", id)
		}
		if seen[id] {
			t.Errorf("duplicate id %q in sample", id)
		}
		seen[id] = true
	}
}

func TestSampleSmallBankReturnsWholePopulation(t *testing.T) {
	s := newTestSampler(2)
	refs := uniformBank(10)

	ids := s.Sample(refs, 65)
	if len(ids) != 10 {
		t.Fatalf("expected all 10 ids, got %d", len(ids))
	}
	seen := make(map[string]bool)
	for _, id := range ids {
		if seen[id] {
			t.Errorf("duplicate id %q in sample", id)
		}
		seen[id] = true
	}
}

func TestSampleEmptyPopulation(t *testing.T) {
	s := newTestSampler(3)
	if got := s.Sample(nil, 65); got != nil {
		t.Errorf("expected nil for empty population, got %v", got)
	}
	if got := s.Sample(uniformBank(5), 0); got != nil {
		t.Errorf("expected nil for n=0, got %v", got)
	}
}

func TestSampleBiasesTowardWrongCount(t *testing.T) {
	s := newTestSampler(4)

	refs := uniformBank(400)
	refs[0].WrongCount = 10 // weight 11 against weight 1 for everyone else
	hot := refs[0].ID
	cold := refs[1].ID

	const trials = 300
	hotHits, coldHits := 0, 0
	for i := 0; i < trials; i++ {
		for _, id := range s.Sample(refs, 65) {
			switch id {
			case hot:
				hotHits++
			case cold:
				coldHits++
			}
		}
	}

	// Statistical check: the heavy question should show up far more often
	// than any unweighted one.
	if hotHits <= 2*coldHits {
		t.Errorf("weighted question selected %d times, unweighted %d times; expected a clear bias", hotHits, coldHits)
	}
}
