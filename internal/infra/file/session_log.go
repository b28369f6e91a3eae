package file

import (
	"fmt"
	"os"
	"time"

	"quizmaster/internal/domain"
)

// SessionLog is the append-only audit trail: one free-text block per
// completed session with a summary line followed by the full answer-code
// and question-position sequences.
type SessionLog struct {
	path string
}

func NewSessionLog(path string) *SessionLog {
	return &SessionLog{path: path}
}

func (l *SessionLog) Append(snap domain.Snapshot) error {
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open session log: %w", err)
	}
	defer f.Close()

	fmt.Fprintf(f, "Player: %s | Score: %d | Correct: %d | Wrong: %d | Time: %s\n",
		snap.PlayerName, snap.Tally.Score, snap.Tally.Correct, snap.Tally.Wrong,
		time.Now().Format(time.ANSIC))
	fmt.Fprintf(f, "Questions indices: %s\n", joinInts(snap.QuestionIndices))
	fmt.Fprintf(f, "Answers: %s\n", joinInts(snap.Answers))
	if _, err := fmt.Fprintln(f, "-------------------------------"); err != nil {
		return fmt.Errorf("append session log: %w", err)
	}
	return nil
}
