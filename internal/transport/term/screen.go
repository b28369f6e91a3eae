package term

import (
	"fmt"
	"io"

	"quizmaster/internal/domain"
	"quizmaster/internal/quiz"
)

// Screen renders questions, the countdown line, and the lifeline menu.
// It writes raw-mode line endings because it is only used while the
// keyboard holds the terminal in raw mode. The countdown line is redrawn
// in place with a carriage return.
type Screen struct {
	out    io.Writer
	inline bool
}

func NewScreen(out io.Writer) *Screen {
	return &Screen{out: out}
}

func (s *Screen) ShowQuestion(number int, q *domain.Question, visible []int, lifelines *quiz.Lifelines) {
	s.endInline()
	fmt.Fprint(s.out, "\r\n================================\r\n")
	fmt.Fprintf(s.out, "Question %d (Difficulty %s)\r\n", number, q.Difficulty)
	fmt.Fprintf(s.out, "\r\n%s\r\n", q.Text)
	for i, opt := range q.Options {
		if containsIndex(visible, i) {
			fmt.Fprintf(s.out, "%d. %s\r\n", i+1, opt)
		} else {
			fmt.Fprintf(s.out, "%d. ----\r\n", i+1)
		}
	}
	fmt.Fprint(s.out, "\r\nLifelines: ")
	for l := quiz.LifelineFifty; l <= quiz.LifelineExtraTime; l++ {
		if lifelines.Available(l) {
			fmt.Fprintf(s.out, "[%d]%s ", int(l)+1, l)
		}
	}
	fmt.Fprint(s.out, "\r\nPress 1-4 to answer immediately, L to use a lifeline, S to skip.\r\n")
}

func (s *Screen) ShowRemaining(seconds int) {
	fmt.Fprintf(s.out, "\rTime Remaining: %02ds  ", seconds)
	s.inline = true
}

func (s *Screen) ShowLifelineMenu(extraSeconds int) {
	s.endInline()
	fmt.Fprint(s.out, "\r\n--- Lifelines menu (timer paused) ---\r\n")
	fmt.Fprint(s.out, "1 = 50/50   (remove two wrong options)\r\n")
	fmt.Fprint(s.out, "2 = Skip    (skip question, no penalty, moves on)\r\n")
	fmt.Fprint(s.out, "3 = Replace (another question; remaining time preserved)\r\n")
	fmt.Fprintf(s.out, "4 = ExtraTime (+%ds to remaining time) [usable once]\r\n", extraSeconds)
	fmt.Fprint(s.out, "Press 1-4 to choose, or 0 to cancel: ")
	s.inline = true
}

func (s *Screen) Print(msg string) {
	s.endInline()
	fmt.Fprintf(s.out, "%s\r\n", msg)
}

func (s *Screen) endInline() {
	if s.inline {
		fmt.Fprint(s.out, "\r\n")
		s.inline = false
	}
}

func containsIndex(visible []int, i int) bool {
	for _, v := range visible {
		if v == i {
			return true
		}
	}
	return false
}
