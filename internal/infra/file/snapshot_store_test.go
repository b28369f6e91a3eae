package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"quizmaster/internal/domain"
)

func newTestStore(t *testing.T) *SnapshotStore {
	t.Helper()
	return NewSnapshotStore(filepath.Join(t.TempDir(), "save_progress.txt"), 10)
}

func TestSnapshotRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	saved := domain.Snapshot{
		PlayerName:       "Alice",
		Tally:            domain.Tally{Score: 23, Correct: 2, Wrong: 1},
		Answers:          []int{2, 0, 4},
		QuestionIndices:  []int{0, 1, 2},
		RemainingSeconds: 6,
		Timestamp:        time.Unix(1700000000, 0),
	}
	if err := store.Save(ctx, saved); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.PlayerName != saved.PlayerName {
		t.Fatalf("name mismatch: %q", loaded.PlayerName)
	}
	if loaded.Tally != saved.Tally {
		t.Fatalf("tally mismatch: %+v", loaded.Tally)
	}
	if len(loaded.Answers) != 3 || loaded.Answers[2] != 4 {
		t.Fatalf("answers mismatch: %v", loaded.Answers)
	}
	if len(loaded.QuestionIndices) != 3 {
		t.Fatalf("indices mismatch: %v", loaded.QuestionIndices)
	}
	if loaded.RemainingSeconds != 6 {
		t.Fatalf("remaining mismatch: %d", loaded.RemainingSeconds)
	}
	if !loaded.Timestamp.Equal(saved.Timestamp) {
		t.Fatalf("timestamp mismatch: %v", loaded.Timestamp)
	}
}

func TestSnapshotLoadMissingFile(t *testing.T) {
	store := newTestStore(t)
	if _, err := store.Load(context.Background()); err != domain.ErrNoSavedProgress {
		t.Fatalf("expected ErrNoSavedProgress, got %v", err)
	}
}

func TestSnapshotMissingRemainingLineDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save_progress.txt")
	// Old four-line format, written before the remaining-seconds field existed.
	content := "Bob\n12 1 1 1700000000\n3 0\n0 1\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	store := NewSnapshotStore(path, 10)
	snap, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if snap.RemainingSeconds != 10 {
		t.Fatalf("expected default 10s for old format, got %d", snap.RemainingSeconds)
	}
}

func TestSnapshotMismatchedSequencesTruncate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save_progress.txt")
	content := "Bob\n12 1 1 1700000000\n3 0 1 2\n0 1\n5\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	store := NewSnapshotStore(path, 10)
	snap, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(snap.Answers) != 2 || len(snap.QuestionIndices) != 2 {
		t.Fatalf("expected truncation to shorter sequence, got %v / %v", snap.Answers, snap.QuestionIndices)
	}
}

func TestSnapshotCorruptTallyLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save_progress.txt")
	content := "Bob\ntwelve 1 1 x\n3 0\n0 1\n5\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	store := NewSnapshotStore(path, 10)
	if _, err := store.Load(context.Background()); err != domain.ErrCorruptSave {
		t.Fatalf("expected ErrCorruptSave, got %v", err)
	}
}

func TestSnapshotNegativeRemainingClampsToZero(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save_progress.txt")
	content := "Bob\n0 0 0 1700000000\n\n\n-3\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	store := NewSnapshotStore(path, 10)
	snap, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if snap.RemainingSeconds != 0 {
		t.Fatalf("expected negative remaining clamped to 0, got %d", snap.RemainingSeconds)
	}
}

func TestSnapshotClear(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Clear(ctx); err != nil {
		t.Fatalf("clear of missing file should be a no-op, got %v", err)
	}
	if err := store.Save(ctx, domain.Snapshot{PlayerName: "Alice"}); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := store.Clear(ctx); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if _, err := store.Load(ctx); err != domain.ErrNoSavedProgress {
		t.Fatalf("expected snapshot gone after clear, got %v", err)
	}
}
