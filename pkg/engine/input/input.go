package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ErrInterrupted is returned when the player presses Ctrl+C in raw mode
var ErrInterrupted = errors.New("input interrupted")

// Reader reads player input line by line, or key by key when raw mode is
// enabled and the input is a terminal.
type Reader struct {
	in  *bufio.Reader
	out io.Writer

	fd  int
	raw bool
}

// NewReader wraps in. Prompts and key echoes are written to out.
func NewReader(in io.Reader, out io.Writer) *Reader {
	r := &Reader{
		in:  bufio.NewReader(in),
		out: out,
		fd:  -1,
	}
	if f, ok := in.(*os.File); ok {
		r.fd = int(f.Fd())
	}
	return r
}

// SetRaw turns single-key input on or off. It reports whether raw input is
// active: it never is when the input is not a terminal.
func (r *Reader) SetRaw(enabled bool) bool {
	r.raw = enabled && r.fd >= 0 && term.IsTerminal(r.fd)
	return r.raw
}

// Prompt writes msg and reads a line
func (r *Reader) Prompt(msg string) (string, error) {
	fmt.Fprint(r.out, msg)
	return r.ReadLine()
}

// PromptKey writes msg and reads a key
func (r *Reader) PromptKey(msg string) (string, error) {
	fmt.Fprint(r.out, msg)
	return r.ReadKey()
}

// ReadLine reads one line without its line ending
func (r *Reader) ReadLine() (string, error) {
	line, err := r.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ReadKey returns the next key code. In raw mode a single key press is
// enough and arrow keys come back as "arrow_up" and friends; otherwise a
// whole line is read.
func (r *Reader) ReadKey() (string, error) {
	if !r.raw {
		return r.ReadLine()
	}

	oldState, err := term.MakeRaw(r.fd)
	if err != nil {
		return r.ReadLine()
	}
	defer term.Restore(r.fd, oldState)

	b1, err := r.in.ReadByte()
	if err != nil {
		return "", err
	}

	if arrowKey := r.tryReadArrowKey(b1); arrowKey != "" {
		fmt.Fprint(r.out, "\r\n")
		return arrowKey, nil
	}

	switch {
	case b1 == 3:
		fmt.Fprint(r.out, "\r\n")
		return "", ErrInterrupted
	case b1 == '\n' || b1 == '\r':
		fmt.Fprint(r.out, "\r\n")
		return "", nil
	case b1 >= 32 && b1 < 127:
		fmt.Fprintf(r.out, "%c\r\n", b1)
		return string(b1), nil
	default:
		return "", nil
	}
}

// tryReadArrowKey reads the rest of an escape sequence starting with
// firstByte. It returns "" when the sequence is not an arrow key.
func (r *Reader) tryReadArrowKey(firstByte byte) string {
	if firstByte != 0x1b {
		return ""
	}

	b2, err := r.in.ReadByte()
	if err != nil {
		return ""
	}

	// CSI sequences (ESC [) and SS3 sequences (ESC O). Anything else after
	// a lone ESC is the next key press.
	if b2 != '[' && b2 != 'O' {
		_ = r.in.UnreadByte()
		return ""
	}

	b3, err := r.in.ReadByte()
	if err != nil {
		return ""
	}

	switch b3 {
	case 'A':
		return "arrow_up"
	case 'B':
		return "arrow_down"
	case 'C':
		return "arrow_right"
	case 'D':
		return "arrow_left"
	}
	return ""
}
