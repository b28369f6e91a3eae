package domain

import "time"

// OptionCount is the number of answer options every question carries.
const OptionCount = 4

// Difficulty is fixed at authoring time.
type Difficulty int

const (
	Easy   Difficulty = 1
	Medium Difficulty = 2
	Hard   Difficulty = 3
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "Easy"
	case Medium:
		return "Medium"
	case Hard:
		return "Hard"
	}
	return "Unknown"
}

// Valid reports whether d is one of the three authored levels.
func (d Difficulty) Valid() bool {
	return d >= Easy && d <= Hard
}

// Reward is the score awarded for a correct answer at this difficulty.
func (d Difficulty) Reward() int {
	switch d {
	case Medium:
		return 15
	case Hard:
		return 20
	}
	return 10
}

// Penalty is the score deducted for a wrong or timed-out answer.
func (d Difficulty) Penalty() int {
	switch d {
	case Medium:
		return 3
	case Hard:
		return 5
	}
	return 2
}

// Question models an MCQ question with exactly one correct option.
// CorrectIndex tracks the currently displayed option order; shuffling a
// working copy updates it. OriginalCorrectIndex is the authored position
// and is never mutated after load.
type Question struct {
	Text                 string     `json:"text"`
	Options              []string   `json:"options"`
	CorrectIndex         int        `json:"correctIndex"`
	OriginalCorrectIndex int        `json:"originalCorrectIndex"`
	Difficulty           Difficulty `json:"difficulty"`
}

// Tally holds the running score state for one session. Score is signed and
// may go negative mid-session; it is clamped at zero for display only.
type Tally struct {
	Score   int `json:"score"`
	Correct int `json:"correct"`
	Wrong   int `json:"wrong"`
	Streak  int `json:"streak"`
}

// Snapshot is the persisted, resumable representation of session progress.
// Answers holds the raw submitted choice per resolved question (1..4, or 0
// for unanswered/skipped/timed-out); QuestionIndices holds the position
// markers. Both grow by one entry per resolved question and stay
// length-synchronized at every persisted write. RemainingSeconds is
// meaningful only while a question is in flight and is reset to 0 once the
// question resolves.
type Snapshot struct {
	PlayerName       string    `json:"playerName"`
	Tally            Tally     `json:"tally"`
	Answers          []int     `json:"answers"`
	QuestionIndices  []int     `json:"questionIndices"`
	RemainingSeconds int       `json:"remainingSeconds"`
	Timestamp        time.Time `json:"timestamp"`
}

// FinalScore is the score as displayed and recorded at session end.
func (s Snapshot) FinalScore() int {
	if s.Tally.Score < 0 {
		return 0
	}
	return s.Tally.Score
}

// ScoreEntry is one high-score ledger record. Append-only, no identity.
type ScoreEntry struct {
	Name     string
	Score    int
	Datetime string
}
