package term

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"quizmaster/internal/config"
	"quizmaster/internal/domain"
	"quizmaster/internal/quiz"
)

// App owns the interactive surface: the main menu, category and difficulty
// prompts, and the wiring of one session at a time through the coordinator.
// Line-oriented prompts run in cooked mode; the terminal is only switched
// to raw mode for the duration of a session.
type App struct {
	cfg    config.Config
	source quiz.QuestionSource
	store  quiz.SnapshotStore
	ledger quiz.ScoreLedger
	audit  quiz.SessionLog
	in     *bufio.Reader
	out    io.Writer
	rnd    *rand.Rand
}

func NewApp(cfg config.Config, source quiz.QuestionSource, store quiz.SnapshotStore, ledger quiz.ScoreLedger, audit quiz.SessionLog) *App {
	return &App{
		cfg:    cfg,
		source: source,
		store:  store,
		ledger: ledger,
		audit:  audit,
		in:     bufio.NewReader(os.Stdin),
		out:    os.Stdout,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Run loops the main menu until the player exits or ctx is cancelled. This
// loop is the program's only cancellation point; a mid-question process
// exit simply leaves the last-persisted snapshot as the resume point.
func (a *App) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(a.out, "================================\n      Welcome to QuizMaster!\n================================\n\n")
		fmt.Fprint(a.out, "1. Start Quiz\n2. View High Scores\n3. Resume Saved Quiz\n4. Exit Game\n\nPlease select an option (1-4): ")
		switch a.readIntInRange(1, 4) {
		case 1:
			a.startQuiz(ctx, nil)
		case 2:
			a.showHighScores()
		case 3:
			a.resume(ctx)
		case 4:
			fmt.Fprint(a.out, "Are you sure you want to exit? (Y/N): ")
			if answer := a.readLine(); strings.HasPrefix(strings.ToLower(answer), "y") {
				fmt.Fprintln(a.out, "Goodbye!")
				return nil
			}
		}
	}
}

// startQuiz runs one full session. A non-nil resume snapshot seeds the
// player name, tallies, answer history, and the remaining seconds for the
// first question.
func (a *App) startQuiz(ctx context.Context, resume *domain.Snapshot) {
	category := a.chooseCategory()
	questions, err := a.source.Load(ctx, category.File)
	if err != nil {
		fmt.Fprintf(a.out, "Could not load questions from %s. Check file and format.\n", category.File)
		a.waitEnter("Press Enter to return...")
		return
	}

	var snap domain.Snapshot
	if resume != nil {
		snap = *resume
	} else {
		fmt.Fprint(a.out, "Enter your name: ")
		name := a.readLine()
		if name == "" {
			name = "Player"
		}
		snap = domain.Snapshot{PlayerName: name}
	}

	fmt.Fprint(a.out, "\nChoose difficulty: 1. Easy 2. Medium 3. Hard\nEnter (1-3): ")
	diff := domain.Difficulty(a.readIntInRange(1, 3))

	selected, err := quiz.Select(questions, diff, a.cfg.Quiz.SessionSize, a.rnd)
	if err != nil {
		fmt.Fprintf(a.out, "Could not build a quiz from %s: no questions available.\n", category.File)
		a.waitEnter("Press Enter to return...")
		return
	}

	a.waitEnter("\nQuiz starting! Press Enter to start...")

	keyboard := NewKeyboard()
	if err := keyboard.Start(); err != nil {
		fmt.Fprintf(a.out, "Could not take over the terminal: %v\n", err)
		return
	}
	defer keyboard.Stop()

	screen := NewScreen(a.out)
	engine := quiz.NewEngine(screen, keyboard, quiz.NewLifelines(), questions, a.rnd, quiz.EngineConfig{
		QuestionSeconds: a.cfg.Quiz.QuestionSeconds,
		ExtraSeconds:    a.cfg.Quiz.ExtraTimeSeconds,
	})
	coordinator := quiz.NewCoordinator(a.store, a.ledger, a.audit, screen)
	if _, err := coordinator.Run(ctx, engine, selected, snap); err != nil {
		return
	}
	keyboard.Stop()
	a.waitEnter("Press Enter to return to menu...")
}

func (a *App) resume(ctx context.Context) {
	snap, err := a.store.Load(ctx)
	switch {
	case errors.Is(err, domain.ErrNoSavedProgress):
		fmt.Fprintln(a.out, "No saved progress found.")
		a.waitEnter("Press Enter to return...")
		return
	case errors.Is(err, domain.ErrCorruptSave):
		fmt.Fprintln(a.out, "Saved progress could not be read; starting fresh is your only option.")
		a.waitEnter("Press Enter to return...")
		return
	case err != nil:
		fmt.Fprintln(a.out, "No saved progress found.")
		a.waitEnter("Press Enter to return...")
		return
	}

	fmt.Fprintf(a.out, "Found saved progress for player: %s | Score so far: %d\n", snap.PlayerName, snap.Tally.Score)
	fmt.Fprintf(a.out, "Saved remaining seconds: %ds (applied to the first question).\n", snap.RemainingSeconds)
	fmt.Fprintln(a.out, "The save file records neither category nor difficulty; pick them again.")
	a.startQuiz(ctx, &snap)
}

func (a *App) showHighScores() {
	entries, err := a.ledger.Top(5)
	if err != nil || len(entries) == 0 {
		fmt.Fprintln(a.out, "\nNo high scores yet.")
		a.waitEnter("Press Enter to return to main menu...")
		return
	}
	fmt.Fprint(a.out, "\n================================\n        High Scores\n================================\n\n")
	for i, e := range entries {
		fmt.Fprintf(a.out, "%d. %s - %d points (%s)\n", i+1, e.Name, e.Score, e.Datetime)
	}
	a.waitEnter("\nPress Enter to return to main menu...")
}

func (a *App) chooseCategory() config.Category {
	fmt.Fprintln(a.out, "\nSelect Category:")
	for i, c := range a.cfg.Data.Categories {
		fmt.Fprintf(a.out, "%d. %s\n", i+1, c.Name)
	}
	fmt.Fprintf(a.out, "Enter (1-%d): ", len(a.cfg.Data.Categories))
	return a.cfg.Data.Categories[a.readIntInRange(1, len(a.cfg.Data.Categories))-1]
}

// readIntInRange reprompts in place until a number in [min, max] arrives.
func (a *App) readIntInRange(min, max int) int {
	for {
		line := a.readLine()
		if v, err := strconv.Atoi(strings.TrimSpace(line)); err == nil && v >= min && v <= max {
			return v
		}
		fmt.Fprintf(a.out, "Please enter a number between %d and %d: ", min, max)
	}
}

func (a *App) readLine() string {
	line, err := a.in.ReadString('\n')
	if err != nil && line == "" {
		return ""
	}
	return strings.TrimRight(line, "\r\n")
}

func (a *App) waitEnter(prompt string) {
	fmt.Fprint(a.out, prompt)
	_, _ = a.in.ReadString('\n')
	fmt.Fprintln(a.out)
}
