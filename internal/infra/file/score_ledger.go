package file

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"quizmaster/internal/domain"
)

// ScoreLedger is the append-only high-score file, one entry per line:
// name|score|datetime. Names are not validated against containing '|'
// (documented limitation of the format).
type ScoreLedger struct {
	path string
}

func NewScoreLedger(path string) *ScoreLedger {
	return &ScoreLedger{path: path}
}

func (l *ScoreLedger) Append(entry domain.ScoreEntry) error {
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open ledger: %w", err)
	}
	defer f.Close()
	if _, err := fmt.Fprintf(f, "%s|%d|%s\n", entry.Name, entry.Score, entry.Datetime); err != nil {
		return fmt.Errorf("append ledger: %w", err)
	}
	return nil
}

// Top returns up to n entries sorted by score descending. A missing ledger
// file means no scores yet, not an error; unparseable lines are skipped.
func (l *ScoreLedger) Top(n int) ([]domain.ScoreEntry, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read ledger: %w", err)
	}

	var entries []domain.ScoreEntry
	for _, line := range strings.Split(string(data), "\n") {
		if line == "" {
			continue
		}
		p1 := strings.Index(line, "|")
		if p1 < 0 {
			continue
		}
		p2 := strings.Index(line[p1+1:], "|")
		if p2 < 0 {
			continue
		}
		p2 += p1 + 1
		score, err := strconv.Atoi(line[p1+1 : p2])
		if err != nil {
			score = 0
		}
		entries = append(entries, domain.ScoreEntry{
			Name:     line[:p1],
			Score:    score,
			Datetime: line[p2+1:],
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	if n > 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries, nil
}
