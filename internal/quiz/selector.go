package quiz

import (
	"math/rand"

	"quizmaster/internal/domain"
)

const (
	// DefaultSessionSize is how many questions one session runs.
	DefaultSessionSize = 10
	// minDifficultyPool is the smallest difficulty-filtered pool the selector
	// will accept before silently widening to the full repository.
	minDifficultyPool = 10
)

// Select builds the ordered question list for one session. It filters by
// exact difficulty, falls back to the whole repository when the filtered
// pool has fewer than minDifficultyPool questions, shuffles, truncates to
// min(pool, size), and independently reshuffles each selected question's
// options. The input questions are never mutated; working copies are
// returned.
func Select(all []domain.Question, diff domain.Difficulty, size int, rnd *rand.Rand) ([]domain.Question, error) {
	if len(all) == 0 {
		return nil, domain.ErrEmptyRepository
	}
	if size <= 0 {
		size = DefaultSessionSize
	}

	pool := make([]domain.Question, 0, len(all))
	for _, q := range all {
		if q.Difficulty == diff {
			pool = append(pool, q)
		}
	}
	if len(pool) < minDifficultyPool {
		pool = append(pool[:0:0], all...)
	}

	rnd.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	if size > len(pool) {
		size = len(pool)
	}

	selected := make([]domain.Question, size)
	for i := range selected {
		selected[i] = copyQuestion(pool[i])
		ShuffleOptions(&selected[i], rnd)
	}
	return selected, nil
}

// ShuffleOptions permutes q's options in place and recomputes CorrectIndex
// for the new order. OriginalCorrectIndex is left untouched.
func ShuffleOptions(q *domain.Question, rnd *rand.Rand) {
	perm := rnd.Perm(len(q.Options))
	shuffled := make([]string, len(q.Options))
	correct := q.CorrectIndex
	for i, src := range perm {
		shuffled[i] = q.Options[src]
		if src == correct {
			q.CorrectIndex = i
		}
	}
	q.Options = shuffled
}

func copyQuestion(q domain.Question) domain.Question {
	q.Options = append([]string(nil), q.Options...)
	return q
}
