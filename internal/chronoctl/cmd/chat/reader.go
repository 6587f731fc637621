package chat

import (
	"bufio"
	"errors"
	"io"

	"github.com/chzyer/readline"
)

// lineReader yields one line of user input per call. io.EOF ends the session.
type lineReader interface {
	ReadLine() (string, error)
	Close() error
}

type readlineReader struct {
	rl *readline.Instance
}

func newReadlineReader(prompt string) (*readlineReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, err
	}
	return &readlineReader{rl: rl}, nil
}

// ReadLine maps Ctrl+C on an empty line to io.EOF; on a non-empty line it
// discards the input.
func (r *readlineReader) ReadLine() (string, error) {
	for {
		line, err := r.rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if line == "" {
				return "", io.EOF
			}
			continue
		}
		return line, err
	}
}

func (r *readlineReader) Close() error {
	return r.rl.Close()
}

// scannerReader reads lines from any io.Reader, without a prompt.
type scannerReader struct {
	sc *bufio.Scanner
}

func newScannerReader(in io.Reader) *scannerReader {
	return &scannerReader{sc: bufio.NewScanner(in)}
}

func (r *scannerReader) ReadLine() (string, error) {
	if r.sc.Scan() {
		return r.sc.Text(), nil
	}
	if err := r.sc.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

func (r *scannerReader) Close() error { return nil }
