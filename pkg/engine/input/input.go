// Package input reads player commands from the terminal and maps them to intents.
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
var ErrInterrupted = errors.New("input: interrupted")

// Reader reads one command per call. On a terminal it uses raw mode so arrow
// keys return immediately; otherwise it reads whole lines.
type Reader struct {
	in   io.Reader
	echo io.Writer
	fd   int
	raw  bool

	lines *bufio.Reader
}

// NewReader creates a reader over stdin, echoing to stdout
func NewReader() *Reader {
	fd := int(os.Stdin.Fd())
	return &Reader{
		in:   os.Stdin,
		echo: os.Stdout,
		fd:   fd,
		raw:  term.IsTerminal(fd),
	}
}

// NewLineReader creates a reader that always reads whole lines from in
func NewLineReader(in io.Reader) *Reader {
	return &Reader{in: in, echo: io.Discard, fd: -1}
}

// Next reads the next command and returns its intent
func (r *Reader) Next() (Intent, error) {
	code, err := r.ReadCode()
	if err != nil {
		return Intent{Action: ActionNone}, err
	}
	raw := RawInput{Device: DeviceTerminal, Code: code}
	return MapToIntent(NewDebouncedInput(raw)), nil
}

// ReadCode reads one raw code: an arrow key name or a line of text
func (r *Reader) ReadCode() (string, error) {
	if r.raw {
		return r.readRaw()
	}
	return r.readLine()
}

func (r *Reader) readLine() (string, error) {
	if r.lines == nil {
		r.lines = bufio.NewReader(r.in)
	}
	line, err := r.lines.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// readByte reads a single byte from the input
func (r *Reader) readByte() (byte, error) {
	buf := make([]byte, 1)
	_, err := r.in.Read(buf)
	return buf[0], err
}

// tryReadArrowKey attempts to read an arrow key escape sequence after ESC.
// A lone ESC followed by anything else reads as "escape".
func (r *Reader) tryReadArrowKey() (string, error) {
	b2, err := r.readByte()
	if err != nil {
		return "", err
	}
	if b2 != '[' && b2 != 'O' {
		return "escape", nil
	}
	b3, err := r.readByte()
	if err != nil {
		return "", err
	}
	switch b3 {
	case 'A':
		return "arrow_up", nil
	case 'B':
		return "arrow_down", nil
	case 'C':
		return "arrow_right", nil
	case 'D':
		return "arrow_left", nil
	}
	return "", nil
}

func (r *Reader) readRaw() (string, error) {
	oldState, err := term.MakeRaw(r.fd)
	if err != nil {
		return "", fmt.Errorf("input: raw mode: %w", err)
	}
	defer term.Restore(r.fd, oldState)

	var line []byte
	for {
		b, err := r.readByte()
		if err != nil {
			return "", err
		}

		switch {
		case b == 3: // Ctrl+C
			fmt.Fprint(r.echo, "\r\n")
			return "", ErrInterrupted
		case b == 0x1b:
			key, err := r.tryReadArrowKey()
			if err != nil {
				return "", err
			}
			// Arrow keys only count on an empty line
			if len(line) == 0 && key != "" {
				fmt.Fprint(r.echo, "\r\n")
				return key, nil
			}
		case b == 127 || b == 8:
			if len(line) > 0 {
				line = line[:len(line)-1]
				fmt.Fprint(r.echo, "\b \b")
			}
		case b == '\n' || b == '\r':
			fmt.Fprint(r.echo, "\r\n")
			return string(line), nil
		case b >= 32 && b < 127:
			line = append(line, b)
			fmt.Fprint(r.echo, string(b))
		}
	}
}
