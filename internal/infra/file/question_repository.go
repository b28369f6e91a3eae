package file

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"quizmaster/internal/domain"
)

// Repository parses flat-text category files into question sets and caches
// the parsed result with TTL to avoid re-reading the file every session.
//
// File format, per question block:
//
//	question text
//	option 1..4 (one per line)
//	1-indexed correct option
//	difficulty (1=Easy, 2=Medium, 3=Hard)
//	optional blank separator
//
// A block missing any line invalidates the whole load.
type Repository struct {
	dir   string
	ttl   time.Duration
	clock func() time.Time
	sf    singleflight.Group
	rnd   *rand.Rand

	mu    sync.RWMutex
	cache map[string]cachedSet
}

type cachedSet struct {
	questions []domain.Question
	expiresAt time.Time
}

func NewRepository(dir string, ttl time.Duration) *Repository {
	return &Repository{
		dir:   dir,
		ttl:   ttl,
		clock: time.Now,
		rnd:   rand.New(rand.NewSource(time.Now().UnixNano())),
		cache: make(map[string]cachedSet),
	}
}

// Load returns the question set for one category file. Copies are returned;
// callers may mutate them freely without poisoning the cache.
func (r *Repository) Load(_ context.Context, name string) ([]domain.Question, error) {
	now := r.clock()

	r.mu.RLock()
	if entry, ok := r.cache[name]; ok && entry.expiresAt.After(now) {
		r.mu.RUnlock()
		return copyQuestions(entry.questions), nil
	}
	r.mu.RUnlock()

	result, err, _ := r.sf.Do(name, func() (interface{}, error) {
		now := r.clock()
		r.mu.RLock()
		if entry, ok := r.cache[name]; ok && entry.expiresAt.After(now) {
			r.mu.RUnlock()
			return entry.questions, nil
		}
		r.mu.RUnlock()

		questions, err := r.loadFile(name)
		if err != nil {
			return nil, err
		}

		r.mu.Lock()
		r.cache[name] = cachedSet{
			questions: questions,
			expiresAt: now.Add(r.ttlWithJitter()),
		}
		r.mu.Unlock()
		return questions, nil
	})
	if err != nil {
		return nil, err
	}
	return copyQuestions(result.([]domain.Question)), nil
}

func (r *Repository) loadFile(name string) ([]domain.Question, error) {
	f, err := os.Open(filepath.Join(r.dir, name))
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, domain.ErrMalformedRepository)
	}
	defer f.Close()
	return ParseQuestions(f)
}

func (r *Repository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	// add up to 10% jitter to spread expirations
	jitterMax := int64(r.ttl) / 10
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}

// ParseQuestions reads repeating question blocks. It fails closed: any
// incomplete block aborts the whole load with ErrMalformedRepository.
func ParseQuestions(in io.Reader) ([]domain.Question, error) {
	scanner := bufio.NewScanner(in)
	var questions []domain.Question
	for scanner.Scan() {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		options := make([]string, domain.OptionCount)
		for i := range options {
			if !scanner.Scan() {
				return nil, blockErr(text, "missing option line")
			}
			options[i] = scanner.Text()
		}

		if !scanner.Scan() {
			return nil, blockErr(text, "missing correct-option line")
		}
		correct, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err != nil || correct < 1 || correct > domain.OptionCount {
			return nil, blockErr(text, "bad correct-option line")
		}

		if !scanner.Scan() {
			return nil, blockErr(text, "missing difficulty line")
		}
		diff, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err != nil || !domain.Difficulty(diff).Valid() {
			return nil, blockErr(text, "bad difficulty line")
		}

		questions = append(questions, domain.Question{
			Text:                 text,
			Options:              options,
			CorrectIndex:         correct - 1,
			OriginalCorrectIndex: correct - 1,
			Difficulty:           domain.Difficulty(diff),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read questions: %w", domain.ErrMalformedRepository)
	}
	if len(questions) == 0 {
		return nil, domain.ErrEmptyRepository
	}
	return questions, nil
}

func blockErr(question, detail string) error {
	return fmt.Errorf("question %q: %s: %w", question, detail, domain.ErrMalformedRepository)
}

func copyQuestions(qs []domain.Question) []domain.Question {
	out := make([]domain.Question, len(qs))
	for i, q := range qs {
		q.Options = append([]string(nil), q.Options...)
		out[i] = q
	}
	return out
}
