package term

import (
	"os"
	"time"

	xterm "golang.org/x/term"
)

// Keyboard reads single keypresses from the tty. Start switches the
// terminal to raw mode; Poll reads with a short deadline so the countdown
// loop samples input without blocking and without spinning the CPU.
type Keyboard struct {
	in    *os.File
	state *xterm.State
}

func NewKeyboard() *Keyboard {
	return &Keyboard{in: os.Stdin}
}

func (k *Keyboard) Start() error {
	state, err := xterm.MakeRaw(int(k.in.Fd()))
	if err != nil {
		return err
	}
	k.state = state
	return nil
}

// Stop restores the terminal so line-oriented prompts work again.
func (k *Keyboard) Stop() {
	_ = k.in.SetReadDeadline(time.Time{})
	if k.state != nil {
		_ = xterm.Restore(int(k.in.Fd()), k.state)
		k.state = nil
	}
}

// Poll returns the next pending key, or false when none arrived within the
// read deadline. Multi-byte escape sequences surface one byte at a time;
// the engine ignores bytes it does not recognize.
func (k *Keyboard) Poll() (byte, bool) {
	_ = k.in.SetReadDeadline(time.Now().Add(time.Millisecond))
	var buf [1]byte
	n, err := k.in.Read(buf[:])
	if err != nil || n == 0 {
		return 0, false
	}
	return buf[0], true
}
