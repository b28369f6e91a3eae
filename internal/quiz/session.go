package quiz

import (
	"context"
	"fmt"
	"log"
	"time"

	"quizmaster/internal/domain"
)

// SnapshotStore abstracts how the resumable session snapshot is persisted
// (flat file, Redis, etc). Save overwrites the previous snapshot.
type SnapshotStore interface {
	Save(ctx context.Context, snap domain.Snapshot) error
	Load(ctx context.Context) (domain.Snapshot, error)
	Clear(ctx context.Context) error
}

// ScoreLedger is the append-only high-score record.
type ScoreLedger interface {
	Append(entry domain.ScoreEntry) error
	Top(n int) ([]domain.ScoreEntry, error)
}

// SessionLog is the append-only audit trail of completed sessions.
type SessionLog interface {
	Append(snap domain.Snapshot) error
}

// QuestionSource loads the full question set for a category.
type QuestionSource interface {
	Load(ctx context.Context, category string) ([]domain.Question, error)
}

// Coordinator drives the ordered question list through the engine,
// accumulates the tally, and persists the snapshot after every observable
// event. It owns the one in-memory session snapshot; the engine and
// lifelines operate on borrowed references.
type Coordinator struct {
	store  SnapshotStore
	ledger ScoreLedger
	audit  SessionLog
	screen Screen
	now    func() time.Time
}

func NewCoordinator(store SnapshotStore, ledger ScoreLedger, audit SessionLog, screen Screen) *Coordinator {
	return NewCoordinatorWithClock(store, ledger, audit, screen, time.Now)
}

// NewCoordinatorWithClock allows deterministic timestamps in tests.
func NewCoordinatorWithClock(store SnapshotStore, ledger ScoreLedger, audit SessionLog, screen Screen, now func() time.Time) *Coordinator {
	return &Coordinator{store: store, ledger: ledger, audit: audit, screen: screen, now: now}
}

// Run plays every question in order to a terminal outcome, then records the
// completed session and deletes the snapshot. snap arrives pre-seeded: a
// fresh session carries just the player name, a resumed one also carries
// tallies, answer history, and the remaining seconds for the first
// question. A carried-over RemainingSeconds applies to the first question
// only and is reset immediately.
func (c *Coordinator) Run(ctx context.Context, engine *Engine, questions []domain.Question, snap domain.Snapshot) (domain.Snapshot, error) {
	engine.SetPauseHook(func(remaining int) {
		snap.RemainingSeconds = remaining
		c.persist(ctx, &snap)
	})

	// A session is resumable from the moment it starts.
	c.persist(ctx, &snap)

	for i := range questions {
		if err := ctx.Err(); err != nil {
			return snap, err
		}
		q := &questions[i]

		start := 0
		if snap.RemainingSeconds > 0 {
			start = snap.RemainingSeconds
			snap.RemainingSeconds = 0
		}

		res := engine.Run(i+1, q, start)
		c.grade(&snap.Tally, q, res)
		snap.Answers = append(snap.Answers, res.Answer)
		snap.QuestionIndices = append(snap.QuestionIndices, i)
		snap.RemainingSeconds = 0
		c.persist(ctx, &snap)
	}

	c.finish(ctx, &snap)
	return snap, nil
}

// grade applies the scoring table exactly once per resolution. The timeout
// penalty lives here, not in the engine, so it can never be double-applied
// by a generic unanswered path.
func (c *Coordinator) grade(t *domain.Tally, q *domain.Question, res Resolution) {
	switch res.Outcome {
	case OutcomeSkipped:
		// Deliberate, rationed resource: no penalty, streak untouched.
		c.screen.Print("Question not answered.")
	case OutcomeTimedOut:
		t.Wrong++
		t.Streak = 0
		t.Score -= q.Difficulty.Penalty()
	case OutcomeAnswered:
		if res.Answer-1 == q.CorrectIndex {
			reward := q.Difficulty.Reward()
			t.Score += reward
			t.Correct++
			t.Streak++
			c.screen.Print("Correct!")
			if t.Streak == 3 {
				t.Score += 5
				c.screen.Print("Streak! +5 bonus")
			} else if t.Streak == 5 {
				t.Score += 15
				c.screen.Print("Big Streak! +15 bonus")
			}
			c.screen.Print(fmt.Sprintf("Earned %d points.", reward))
		} else {
			c.screen.Print("Wrong! Correct answer: " + q.Options[q.CorrectIndex])
			t.Wrong++
			t.Streak = 0
			t.Score -= q.Difficulty.Penalty()
		}
	}
}

func (c *Coordinator) persist(ctx context.Context, snap *domain.Snapshot) {
	snap.Timestamp = c.now()
	if err := c.store.Save(ctx, *snap); err != nil {
		log.Printf("save progress: %v", err)
	}
}

// finish records the completed session. Ledger and log writes are
// best-effort: a completed session is never aborted by reporting failures.
func (c *Coordinator) finish(ctx context.Context, snap *domain.Snapshot) {
	final := snap.FinalScore()
	c.screen.Print("")
	c.screen.Print("================================")
	c.screen.Print("Quiz Completed!")
	c.screen.Print(fmt.Sprintf("Your Final Score: %d", final))
	c.screen.Print(fmt.Sprintf("Correct: %d Wrong: %d", snap.Tally.Correct, snap.Tally.Wrong))

	if err := c.ledger.Append(domain.ScoreEntry{
		Name:     snap.PlayerName,
		Score:    final,
		Datetime: c.now().Format(time.ANSIC),
	}); err != nil {
		log.Printf("append high score: %v", err)
	}
	if err := c.audit.Append(*snap); err != nil {
		log.Printf("append session log: %v", err)
	}
	if err := c.store.Clear(ctx); err != nil {
		log.Printf("clear saved progress: %v", err)
	}
}
