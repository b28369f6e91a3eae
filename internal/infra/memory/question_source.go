package memory

import (
	"context"

	"quizmaster/internal/domain"
)

// StaticSource is a question source backed by an in-memory map, keyed by
// category name (useful for tests/demos).
type StaticSource struct {
	sets map[string][]domain.Question
}

func NewStaticSource(sets map[string][]domain.Question) *StaticSource {
	return &StaticSource{sets: sets}
}

func (s *StaticSource) Load(_ context.Context, name string) ([]domain.Question, error) {
	qs, ok := s.sets[name]
	if !ok || len(qs) == 0 {
		return nil, domain.ErrEmptyRepository
	}
	out := make([]domain.Question, len(qs))
	for i, q := range qs {
		q.Options = append([]string(nil), q.Options...)
		out[i] = q
	}
	return out, nil
}
