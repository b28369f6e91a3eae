package memory

import (
	"context"

	"quizmaster/internal/domain"
)

// SnapshotStore keeps the session snapshot in memory. It backs the
// coordinator tests; the real game uses the file or redis store.
type SnapshotStore struct {
	snap  domain.Snapshot
	saved bool
	Saves int
}

func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{}
}

func (s *SnapshotStore) Save(_ context.Context, snap domain.Snapshot) error {
	snap.Answers = append([]int(nil), snap.Answers...)
	snap.QuestionIndices = append([]int(nil), snap.QuestionIndices...)
	s.snap = snap
	s.saved = true
	s.Saves++
	return nil
}

func (s *SnapshotStore) Load(_ context.Context) (domain.Snapshot, error) {
	if !s.saved {
		return domain.Snapshot{}, domain.ErrNoSavedProgress
	}
	return s.snap, nil
}

func (s *SnapshotStore) Clear(_ context.Context) error {
	s.snap = domain.Snapshot{}
	s.saved = false
	return nil
}

// ScoreLedger is an in-memory high-score list.
type ScoreLedger struct {
	Entries []domain.ScoreEntry
}

func NewScoreLedger() *ScoreLedger {
	return &ScoreLedger{}
}

func (l *ScoreLedger) Append(entry domain.ScoreEntry) error {
	l.Entries = append(l.Entries, entry)
	return nil
}

func (l *ScoreLedger) Top(n int) ([]domain.ScoreEntry, error) {
	entries := append([]domain.ScoreEntry(nil), l.Entries...)
	for i := 0; i < len(entries); i++ {
		for j := i + 1; j < len(entries); j++ {
			if entries[j].Score > entries[i].Score {
				entries[i], entries[j] = entries[j], entries[i]
			}
		}
	}
	if n > 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries, nil
}

// SessionLog records completed-session snapshots in memory.
type SessionLog struct {
	Records []domain.Snapshot
}

func NewSessionLog() *SessionLog {
	return &SessionLog{}
}

func (l *SessionLog) Append(snap domain.Snapshot) error {
	l.Records = append(l.Records, snap)
	return nil
}
