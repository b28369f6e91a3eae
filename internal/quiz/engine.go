package quiz

import (
	"fmt"
	"math/rand"
	"time"

	"quizmaster/internal/domain"
)

// KeyReader is a non-blocking source of single keypresses. Poll returns the
// next pending key, or false when none is waiting.
type KeyReader interface {
	Poll() (byte, bool)
}

// Screen abstracts how the engine and coordinator render to the player.
type Screen interface {
	ShowQuestion(number int, q *domain.Question, visible []int, lifelines *Lifelines)
	ShowRemaining(seconds int)
	ShowLifelineMenu(extraSeconds int)
	Print(msg string)
}

// Outcome is the terminal state of one question.
type Outcome int

const (
	OutcomeAnswered Outcome = iota
	OutcomeTimedOut
	OutcomeSkipped
)

// Resolution is what the engine hands back to the coordinator for grading.
// Answer is the raw submitted choice 1..4, or 0 for timed-out/skipped.
type Resolution struct {
	Outcome Outcome
	Answer  int
}

// EngineConfig carries the timing knobs for the per-question countdown.
type EngineConfig struct {
	QuestionSeconds int
	ExtraSeconds    int
	PollInterval    time.Duration
}

// Engine drives one question at a time through the timed-answer state
// machine: Presenting -> AwaitingInput (countdown running) <-> LifelineMenu
// (countdown paused) -> Resolved. It owns no session state beyond the
// per-session lifeline flags it is constructed with; the current question
// is a borrowed reference mutated only by the replace lifeline.
type Engine struct {
	screen    Screen
	keys      KeyReader
	lifelines *Lifelines
	pool      []domain.Question
	rnd       *rand.Rand
	cfg       EngineConfig

	now     func() time.Time
	sleep   func(time.Duration)
	onPause func(remaining int)
}

func NewEngine(screen Screen, keys KeyReader, lifelines *Lifelines, pool []domain.Question, rnd *rand.Rand, cfg EngineConfig) *Engine {
	return NewEngineWithClock(screen, keys, lifelines, pool, rnd, cfg, time.Now, time.Sleep)
}

// NewEngineWithClock allows deterministic time in tests.
func NewEngineWithClock(screen Screen, keys KeyReader, lifelines *Lifelines, pool []domain.Question, rnd *rand.Rand, cfg EngineConfig, now func() time.Time, sleep func(time.Duration)) *Engine {
	if cfg.QuestionSeconds <= 0 {
		cfg.QuestionSeconds = 10
	}
	if cfg.ExtraSeconds <= 0 {
		cfg.ExtraSeconds = 10
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 100 * time.Millisecond
	}
	return &Engine{
		screen:    screen,
		keys:      keys,
		lifelines: lifelines,
		pool:      pool,
		rnd:       rnd,
		cfg:       cfg,
		now:       now,
		sleep:     sleep,
	}
}

// SetPauseHook registers a callback invoked with the remaining whole
// seconds whenever the countdown pauses for the lifeline menu. The
// coordinator uses it to persist the in-flight snapshot.
func (e *Engine) SetPauseHook(fn func(remaining int)) {
	e.onPause = fn
}

// Run drives q to exactly one terminal outcome. startSeconds seeds the
// countdown; values <= 0 fall back to the configured default, so only a
// resumed snapshot's carried-over time shortens the first question.
func (e *Engine) Run(number int, q *domain.Question, startSeconds int) Resolution {
	if startSeconds <= 0 {
		startSeconds = e.cfg.QuestionSeconds
	}
	visible := allVisible()
	deadline := e.now().Add(time.Duration(startSeconds) * time.Second)
	for {
		e.screen.ShowQuestion(number, q, visible, e.lifelines)
		res, resolved := e.awaitInput(q, &visible, &deadline)
		if resolved {
			return res
		}
	}
}

// awaitInput runs the cooperative poll loop. It returns resolved=false when
// the question must be redrawn (after a lifeline menu visit) with the
// deadline already recomputed.
func (e *Engine) awaitInput(q *domain.Question, visible *[]int, deadline *time.Time) (Resolution, bool) {
	for {
		if key, ok := e.keys.Poll(); ok {
			switch {
			case key >= '1' && key <= '4':
				return Resolution{Outcome: OutcomeAnswered, Answer: int(key - '0')}, true
			case key == 'l' || key == 'L':
				remaining := remainingSeconds(*deadline, e.now())
				if e.onPause != nil {
					e.onPause(remaining)
				}
				res, resolved, newRemaining := e.lifelineMenu(q, visible, remaining)
				if resolved {
					return res, true
				}
				// The menu pauses the countdown: whatever was remaining at
				// entry (plus any extra-time bonus) restarts from now.
				*deadline = e.now().Add(time.Duration(newRemaining) * time.Second)
				return Resolution{}, false
			case key == 's' || key == 'S':
				if err := e.lifelines.Consume(LifelineSkip); err != nil {
					e.screen.Print("Skip already used.")
				} else {
					e.screen.Print("Quick skip used. Moving to next question.")
					return Resolution{Outcome: OutcomeSkipped}, true
				}
			}
			// other keys ignored
		}

		now := e.now()
		rem := remainingSeconds(*deadline, now)
		e.screen.ShowRemaining(rem)
		if !now.Before(*deadline) {
			e.screen.Print("Time's up! Correct answer: " + q.Options[q.CorrectIndex])
			return Resolution{Outcome: OutcomeTimedOut}, true
		}
		e.sleep(e.cfg.PollInterval)
	}
}

// lifelineMenu invokes at most one lifeline operation per visit. It returns
// the updated remaining seconds to restart the countdown from, unless the
// visit resolved the question (skip).
func (e *Engine) lifelineMenu(q *domain.Question, visible *[]int, remaining int) (Resolution, bool, int) {
	e.screen.ShowLifelineMenu(e.cfg.ExtraSeconds)
	switch e.waitDigit('0', '4') {
	case 0:
		e.screen.Print("Lifeline cancelled. Resuming timer.")
	case 1:
		if err := e.lifelines.Consume(LifelineFifty); err != nil {
			e.screen.Print("50/50 already used.")
		} else {
			*visible = FilterOptions(q, e.rnd)
			e.screen.Print("50/50 used. Two wrong options removed. Resuming timer.")
		}
	case 2:
		if err := e.lifelines.Consume(LifelineSkip); err != nil {
			e.screen.Print("Skip already used.")
		} else {
			e.screen.Print("Question skipped. Moving to next question.")
			return Resolution{Outcome: OutcomeSkipped}, true, 0
		}
	case 3:
		if err := e.lifelines.Consume(LifelineReplace); err != nil {
			e.screen.Print("Replace already used.")
		} else if repl, err := Replace(e.pool, *q, e.rnd); err != nil {
			e.screen.Print("No replacement found.")
		} else {
			*q = repl
			*visible = allVisible()
			e.screen.Print("Question replaced. Remaining time preserved.")
		}
	case 4:
		if !e.lifelines.Available(LifelineExtraTime) {
			e.screen.Print("Extra Time already used.")
		} else if remaining <= 0 {
			e.screen.Print("Cannot use Extra Time: question already expired.")
		} else {
			_ = e.lifelines.Consume(LifelineExtraTime)
			remaining += e.cfg.ExtraSeconds
			e.screen.Print(fmt.Sprintf("Extra Time applied. +%ds added. New remaining: %ds. Resuming timer.", e.cfg.ExtraSeconds, remaining))
		}
	}
	return Resolution{}, false, remaining
}

// waitDigit blocks until a key in [lo, hi] arrives. The countdown is paused
// while it waits, so time spent here never counts against the question.
func (e *Engine) waitDigit(lo, hi byte) int {
	for {
		if key, ok := e.keys.Poll(); ok && key >= lo && key <= hi {
			return int(key - '0')
		}
		e.sleep(e.cfg.PollInterval)
	}
}

// remainingSeconds is the whole seconds left before deadline, never negative.
func remainingSeconds(deadline time.Time, now time.Time) int {
	rem := int(deadline.Sub(now) / time.Second)
	if rem < 0 {
		return 0
	}
	return rem
}
