// internal/cli/prompt.go

package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrTooManyAttempts is returned when a prompt received invalid input on
// every allowed attempt.
var ErrTooManyAttempts = errors.New("número máximo de tentativas excedido")

// lineReader turns a blocking io.Reader into lines that can be awaited with a
// context. A single goroutine scans the input; close releases it.
type lineReader struct {
	lines chan string
	done  chan struct{}
	err   error // written before lines is closed
}

func newLineReader(r io.Reader) *lineReader {
	lr := &lineReader{
		lines: make(chan string),
		done:  make(chan struct{}),
	}
	go func() {
		defer close(lr.lines)
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			select {
			case lr.lines <- sc.Text():
			case <-lr.done:
				return
			}
		}
		lr.err = sc.Err()
	}()
	return lr
}

// next returns the next trimmed line, io.EOF at the end of input, or
// ctx.Err() if the context ends first.
func (lr *lineReader) next(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-lr.lines:
		if !ok {
			if lr.err != nil {
				return "", lr.err
			}
			return "", io.EOF
		}
		return strings.TrimSpace(line), nil
	}
}

func (lr *lineReader) close() { close(lr.done) }

// ask prints the label and reads one answer.
func (s *Session) ask(ctx context.Context, label string) (string, error) {
	s.print(label)
	return s.in.next(ctx)
}

// askUntil asks until parse accepts the answer, at most s.maxAttempts times.
//  1. An input or context error ends the loop immediately.
//  2. A parse error is printed and, while attempts remain, the label is asked again.
//  3. After the last failed attempt ErrTooManyAttempts wraps the final parse error.
func askUntil[T any](ctx context.Context, s *Session, label string, parse func(string) (T, error)) (T, error) {
	var zero T
	var lastErr error
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		line, err := s.ask(ctx, label)
		if err != nil {
			return zero, err
		}
		v, err := parse(line)
		if err == nil {
			return v, nil
		}
		lastErr = err
		if attempt < s.maxAttempts {
			s.printErr(err)
			s.println(msgTryAgain)
		}
	}
	return zero, fmt.Errorf("%w: %w", ErrTooManyAttempts, lastErr)
}
