package quiz_test

import (
	"fmt"
	"math/rand"
	"testing"

	"quizmaster/internal/domain"
	"quizmaster/internal/quiz"
)

func TestSelectFiltersByDifficulty(t *testing.T) {
	all := makeQuestions(12, domain.Easy)
	all = append(all, makeQuestions(11, domain.Hard)...)

	selected, err := quiz.Select(all, domain.Easy, 10, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("select failed: %v", err)
	}
	if len(selected) != 10 {
		t.Fatalf("expected 10 questions, got %d", len(selected))
	}
	for _, q := range selected {
		if q.Difficulty != domain.Easy {
			t.Fatalf("expected only Easy questions, got %v for %q", q.Difficulty, q.Text)
		}
	}
}

func TestSelectFallsBackWhenPoolTooSmall(t *testing.T) {
	// 4 Easy matches is below the widening threshold: the whole repository
	// becomes the pool, silently.
	all := makeQuestions(4, domain.Easy)
	all = append(all, makeQuestions(8, domain.Hard)...)

	selected, err := quiz.Select(all, domain.Easy, 10, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("select failed: %v", err)
	}
	if len(selected) != 10 {
		t.Fatalf("expected 10 questions after fallback, got %d", len(selected))
	}
	hard := 0
	for _, q := range selected {
		if q.Difficulty == domain.Hard {
			hard++
		}
	}
	if hard == 0 {
		t.Fatalf("expected fallback pool to include other difficulties")
	}
}

func TestSelectTruncatesToPoolSize(t *testing.T) {
	all := makeQuestions(6, domain.Medium)
	selected, err := quiz.Select(all, domain.Medium, 10, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("select failed: %v", err)
	}
	if len(selected) != 6 {
		t.Fatalf("expected min(pool, size)=6 questions, got %d", len(selected))
	}
}

func TestSelectEmptyRepository(t *testing.T) {
	if _, err := quiz.Select(nil, domain.Easy, 10, rand.New(rand.NewSource(1))); err != domain.ErrEmptyRepository {
		t.Fatalf("expected ErrEmptyRepository, got %v", err)
	}
}

func TestSelectDoesNotMutateInput(t *testing.T) {
	all := makeQuestions(12, domain.Easy)
	before := all[0].Options[all[0].CorrectIndex]
	if _, err := quiz.Select(all, domain.Easy, 10, rand.New(rand.NewSource(3))); err != nil {
		t.Fatalf("select failed: %v", err)
	}
	if got := all[0].Options[all[0].CorrectIndex]; got != before {
		t.Fatalf("repository question mutated: %q != %q", got, before)
	}
}

func TestShuffleOptionsTracksCorrectIndex(t *testing.T) {
	for seed := int64(0); seed < 25; seed++ {
		q := domain.Question{
			Text:                 "q",
			Options:              []string{"a", "b", "c", "d"},
			CorrectIndex:         2,
			OriginalCorrectIndex: 2,
			Difficulty:           domain.Easy,
		}
		quiz.ShuffleOptions(&q, rand.New(rand.NewSource(seed)))
		if q.Options[q.CorrectIndex] != "c" {
			t.Fatalf("seed %d: correct index points at %q, want %q", seed, q.Options[q.CorrectIndex], "c")
		}
		if q.OriginalCorrectIndex != 2 {
			t.Fatalf("seed %d: original correct index mutated to %d", seed, q.OriginalCorrectIndex)
		}
	}
}

func makeQuestions(n int, diff domain.Difficulty) []domain.Question {
	qs := make([]domain.Question, n)
	for i := range qs {
		qs[i] = domain.Question{
			Text:                 fmt.Sprintf("%v question %d", diff, i),
			Options:              []string{"a", "b", "c", "d"},
			CorrectIndex:         i % domain.OptionCount,
			OriginalCorrectIndex: i % domain.OptionCount,
			Difficulty:           diff,
		}
	}
	return qs
}
