package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"golang.org/x/term"
)

const (
	keyBackspace = '\b'
	keyDelete    = 0x7f
	keyInterrupt = 0x03
	keyEOT       = 0x04
)

// SecretReader reads a credential without echoing it
type SecretReader interface {
	ReadSecret() (string, error)
}

// MaskedReader echoes '*' for every rune typed and returns the plaintext once
// a line ending arrives
type MaskedReader struct {
	in      *bufio.Reader
	out     io.Writer
	newline string
	rawMode func() (restore func() error, err error)
}

type MaskedReaderOption func(*MaskedReader)

// WithTerminal puts the terminal behind fd into raw mode for the duration of
// each read, so keystrokes arrive one at a time and are not echoed by the tty
func WithTerminal(fd int) MaskedReaderOption {
	return func(r *MaskedReader) {
		r.newline = "\r\n"
		r.rawMode = func() (func() error, error) {
			state, err := term.MakeRaw(fd)
			if err != nil {
				return nil, err
			}
			return func() error { return term.Restore(fd, state) }, nil
		}
	}
}

// NewMaskedReader reads from in, which must be the same buffered reader the
// rest of the console reads lines from
func NewMaskedReader(in *bufio.Reader, out io.Writer, opts ...MaskedReaderOption) *MaskedReader {
	r := &MaskedReader{in: in, out: out, newline: "\n"}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ReadSecret reads runes until CR or LF. Backspace drops the last rune and
// other control characters are ignored. End of input before any rune returns
// io.EOF; so do Ctrl-C and Ctrl-D in raw mode.
func (r *MaskedReader) ReadSecret() (string, error) {
	if r.rawMode != nil {
		restore, err := r.rawMode()
		if err != nil {
			return "", fmt.Errorf("failed to enter raw mode: %w", err)
		}
		defer func() { _ = restore() }()
	}

	var secret []rune
	for {
		ch, _, err := r.in.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) && len(secret) > 0 {
				fmt.Fprint(r.out, r.newline)
				return string(secret), nil
			}
			return "", err
		}

		switch ch {
		case '\r':
			r.skipLineFeed()
			fmt.Fprint(r.out, r.newline)
			return string(secret), nil
		case '\n':
			fmt.Fprint(r.out, r.newline)
			return string(secret), nil
		case keyBackspace, keyDelete:
			if len(secret) > 0 {
				secret = secret[:len(secret)-1]
				fmt.Fprint(r.out, "\b \b")
			}
		case keyInterrupt, keyEOT:
			fmt.Fprint(r.out, r.newline)
			return "", io.EOF
		default:
			if ch < ' ' {
				continue
			}
			secret = append(secret, ch)
			fmt.Fprint(r.out, "*")
		}
	}
}

// skipLineFeed consumes the LF of a CRLF pair when it is already buffered.
// It never blocks, since a raw terminal sends a bare CR for Enter.
func (r *MaskedReader) skipLineFeed() {
	if r.in.Buffered() == 0 {
		return
	}
	if next, err := r.in.Peek(1); err == nil && next[0] == '\n' {
		_, _ = r.in.ReadByte()
	}
}
