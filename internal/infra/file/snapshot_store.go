package file

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"quizmaster/internal/domain"
)

// SnapshotStore persists the resumable session snapshot as a small text
// file, overwritten on every save:
//
//	line 1: player name
//	line 2: score correct wrong timestamp (epoch seconds)
//	line 3: submitted answer codes so far, space-separated
//	line 4: question position markers so far, space-separated
//	line 5: remaining seconds for the in-flight question (optional)
//
// A missing fifth line defaults to the standard per-question countdown so
// snapshots written before that field existed still resume.
type SnapshotStore struct {
	path           string
	defaultSeconds int
}

func NewSnapshotStore(path string, defaultSeconds int) *SnapshotStore {
	if defaultSeconds <= 0 {
		defaultSeconds = 10
	}
	return &SnapshotStore{path: path, defaultSeconds: defaultSeconds}
}

func (s *SnapshotStore) Save(_ context.Context, snap domain.Snapshot) error {
	var b strings.Builder
	b.WriteString(snap.PlayerName)
	b.WriteByte('\n')
	fmt.Fprintf(&b, "%d %d %d %d\n", snap.Tally.Score, snap.Tally.Correct, snap.Tally.Wrong, snap.Timestamp.Unix())
	b.WriteString(joinInts(snap.Answers))
	b.WriteByte('\n')
	b.WriteString(joinInts(snap.QuestionIndices))
	b.WriteByte('\n')
	fmt.Fprintf(&b, "%d\n", snap.RemainingSeconds)
	if err := os.WriteFile(s.path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

func (s *SnapshotStore) Load(_ context.Context) (domain.Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.Snapshot{}, domain.ErrNoSavedProgress
		}
		return domain.Snapshot{}, fmt.Errorf("read snapshot: %w", err)
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) < 4 {
		return domain.Snapshot{}, domain.ErrCorruptSave
	}

	snap := domain.Snapshot{PlayerName: lines[0]}

	tally := strings.Fields(lines[1])
	if len(tally) < 4 {
		return domain.Snapshot{}, domain.ErrCorruptSave
	}
	nums := make([]int64, 4)
	for i, f := range tally[:4] {
		n, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return domain.Snapshot{}, domain.ErrCorruptSave
		}
		nums[i] = n
	}
	snap.Tally.Score = int(nums[0])
	snap.Tally.Correct = int(nums[1])
	snap.Tally.Wrong = int(nums[2])
	snap.Timestamp = time.Unix(nums[3], 0)

	answers, err := splitInts(lines[2])
	if err != nil {
		return domain.Snapshot{}, domain.ErrCorruptSave
	}
	indices, err := splitInts(lines[3])
	if err != nil {
		return domain.Snapshot{}, domain.ErrCorruptSave
	}
	// Disagreeing lengths truncate to the shorter sequence rather than
	// rejecting the whole snapshot.
	if len(answers) > len(indices) {
		answers = answers[:len(indices)]
	} else if len(indices) > len(answers) {
		indices = indices[:len(answers)]
	}
	snap.Answers = answers
	snap.QuestionIndices = indices

	snap.RemainingSeconds = s.defaultSeconds
	if len(lines) >= 5 {
		if rem, err := strconv.Atoi(strings.TrimSpace(lines[4])); err == nil {
			if rem < 0 {
				rem = 0
			}
			snap.RemainingSeconds = rem
		}
	}
	return snap, nil
}

func (s *SnapshotStore) Clear(_ context.Context) error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove snapshot: %w", err)
	}
	return nil
}

func joinInts(vals []int) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}

func splitInts(line string) ([]int, error) {
	fields := strings.Fields(line)
	vals := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}
	return vals, nil
}
