package quiz

import (
	"math/rand"
	"sort"

	"quizmaster/internal/domain"
)

// Lifeline identifies one of the four single-use-per-session modifiers.
type Lifeline int

const (
	LifelineFifty Lifeline = iota
	LifelineSkip
	LifelineReplace
	LifelineExtraTime
	lifelineCount
)

func (l Lifeline) String() string {
	switch l {
	case LifelineFifty:
		return "50/50"
	case LifelineSkip:
		return "Skip"
	case LifelineReplace:
		return "Replace"
	case LifelineExtraTime:
		return "ExtraTime"
	}
	return "Unknown"
}

// Lifelines tracks the consumed flag per lifeline for one session. Flags
// never reset mid-session; a new session gets a fresh value.
type Lifelines struct {
	used [lifelineCount]bool
}

func NewLifelines() *Lifelines {
	return &Lifelines{}
}

// Available reports whether l has not been consumed yet.
func (s *Lifelines) Available(l Lifeline) bool {
	return !s.used[l]
}

// Consume marks l as used. It returns domain.ErrLifelineUsed, with no other
// side effect, when l was already consumed.
func (s *Lifelines) Consume(l Lifeline) error {
	if s.used[l] {
		return domain.ErrLifelineUsed
	}
	s.used[l] = true
	return nil
}

// allVisible is the default visibility set for a question: every option shown.
func allVisible() []int {
	v := make([]int, domain.OptionCount)
	for i := range v {
		v[i] = i
	}
	return v
}

// FilterOptions implements the 50/50 lifeline: it returns a visibility set
// of exactly two option indices, the correct one plus one uniformly-random
// incorrect one, sorted ascending for display.
func FilterOptions(q *domain.Question, rnd *rand.Rand) []int {
	wrongs := make([]int, 0, len(q.Options)-1)
	for i := range q.Options {
		if i != q.CorrectIndex {
			wrongs = append(wrongs, i)
		}
	}
	visible := []int{q.CorrectIndex, wrongs[rnd.Intn(len(wrongs))]}
	sort.Ints(visible)
	return visible
}

// Replace draws a uniformly-random question from pool whose text differs
// from current, with retries bounded by the pool size. The returned copy
// has freshly shuffled options. domain.ErrNoReplacement is returned when
// the budget is exhausted without finding a different question.
func Replace(pool []domain.Question, current domain.Question, rnd *rand.Rand) (domain.Question, error) {
	for attempt := 0; attempt < len(pool); attempt++ {
		cand := pool[rnd.Intn(len(pool))]
		if cand.Text == current.Text {
			continue
		}
		cand = copyQuestion(cand)
		ShuffleOptions(&cand, rnd)
		return cand, nil
	}
	return domain.Question{}, domain.ErrNoReplacement
}
