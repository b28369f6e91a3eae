package file

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"quizmaster/internal/domain"
)

func TestScoreLedgerAppendAndTop(t *testing.T) {
	path := filepath.Join(t.TempDir(), "high_scores.txt")
	ledger := NewScoreLedger(path)

	entries := []domain.ScoreEntry{
		{Name: "Alice", Score: 40, Datetime: "Mon Jun  3 12:00:00 2024"},
		{Name: "Bob", Score: 95, Datetime: "Mon Jun  3 12:05:00 2024"},
		{Name: "Cara", Score: 60, Datetime: "Mon Jun  3 12:10:00 2024"},
	}
	for _, e := range entries {
		if err := ledger.Append(e); err != nil {
			t.Fatalf("append failed: %v", err)
		}
	}

	top, err := ledger.Top(2)
	if err != nil {
		t.Fatalf("top failed: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(top))
	}
	if top[0].Name != "Bob" || top[0].Score != 95 {
		t.Fatalf("expected Bob first, got %+v", top[0])
	}
	if top[1].Name != "Cara" || top[1].Score != 60 {
		t.Fatalf("expected Cara second, got %+v", top[1])
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read ledger file: %v", err)
	}
	if !strings.Contains(string(data), "Bob|95|Mon Jun  3 12:05:00 2024") {
		t.Fatalf("unexpected ledger line format:\n%s", data)
	}
}

func TestScoreLedgerMissingFile(t *testing.T) {
	ledger := NewScoreLedger(filepath.Join(t.TempDir(), "high_scores.txt"))
	top, err := ledger.Top(5)
	if err != nil {
		t.Fatalf("missing ledger should not error, got %v", err)
	}
	if top != nil {
		t.Fatalf("expected no entries, got %v", top)
	}
}

func TestScoreLedgerSkipsMalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "high_scores.txt")
	content := "Alice|40|Mon Jun  3 12:00:00 2024\nnot a ledger line\nBob|oops|Mon Jun  3 12:05:00 2024\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	top, err := NewScoreLedger(path).Top(0)
	if err != nil {
		t.Fatalf("top failed: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("expected malformed line skipped, got %d entries", len(top))
	}
	// A bad score field parses as 0 rather than dropping the whole line.
	if top[1].Name != "Bob" || top[1].Score != 0 {
		t.Fatalf("expected Bob with score 0 last, got %+v", top[1])
	}
}

func TestSessionLogAppendsBlock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quiz_logs.txt")
	audit := NewSessionLog(path)

	snap := domain.Snapshot{
		PlayerName:      "Alice",
		Tally:           domain.Tally{Score: 35, Correct: 3, Wrong: 0},
		Answers:         []int{1, 1, 1},
		QuestionIndices: []int{0, 1, 2},
	}
	if err := audit.Append(snap); err != nil {
		t.Fatalf("append failed: %v", err)
	}
	if err := audit.Append(snap); err != nil {
		t.Fatalf("second append failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	text := string(data)
	if !strings.Contains(text, "Player: Alice | Score: 35 | Correct: 3 | Wrong: 0 | Time: ") {
		t.Fatalf("missing summary line:\n%s", text)
	}
	if !strings.Contains(text, "Questions indices: 0 1 2\n") {
		t.Fatalf("missing indices line:\n%s", text)
	}
	if !strings.Contains(text, "Answers: 1 1 1\n") {
		t.Fatalf("missing answers line:\n%s", text)
	}
	if got := strings.Count(text, "-------------------------------"); got != 2 {
		t.Fatalf("expected 2 separator lines, got %d", got)
	}
}
