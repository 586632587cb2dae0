// internal/cli/session.go
//
// Package cli is the terminal front end of the bank. It plays the role an
// HTTP layer would play for a service: read a request (a menu option and the
// answers to its prompts), call the bank, and write a uniform response.
//
//   - session.go: Session lifecycle and the menu loop.
//   - menu.go:    the option table, i.e. which key runs which command.
//   - commands.go: one function per option.
//   - prompt.go:  line input and the bounded retry loop.
//   - output.go:  every piece of text printed back to the customer.
//
// Re-asking after bad input is owned here, with a maximum number of attempts
// and context cancellation; the bank and the CPF validator never prompt.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"bankcli/internal/bank"
	"bankcli/internal/export"
	"bankcli/internal/platform/logger"
)

// DefaultMaxAttempts is how many times a prompt is asked before giving up.
const DefaultMaxAttempts = 3

// Session is one interactive run over an input and an output stream.
type Session struct {
	bank        *bank.Bank
	src         io.Reader
	in          *lineReader
	out         io.Writer
	log         *slog.Logger
	maxAttempts int
	format      export.Format
	commands    []command
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger for rejected operations and session events.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithMaxAttempts sets how many times a prompt re-asks after invalid input.
// Values below 1 are ignored.
func WithMaxAttempts(n int) Option {
	return func(s *Session) {
		if n >= 1 {
			s.maxAttempts = n
		}
	}
}

// WithExportFormat sets the document format of the export option.
func WithExportFormat(f export.Format) Option {
	return func(s *Session) {
		if f != "" {
			s.format = f
		}
	}
}

// NewSession wires a session; nothing is read until Run.
func NewSession(b *bank.Bank, in io.Reader, out io.Writer, opts ...Option) *Session {
	s := &Session{
		bank:        b,
		src:         in,
		out:         out,
		log:         logger.Discard(),
		maxAttempts: DefaultMaxAttempts,
		format:      export.FormatJSON,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(logger.Component("cli"))
	s.commands = s.routes()
	return s
}

// Run shows the menu and executes options until the customer exits or the
// input ends (both return nil), or ctx is cancelled (returns ctx.Err()).
// Errors of a single option are printed and the menu is shown again.
func (s *Session) Run(ctx context.Context) error {
	s.in = newLineReader(s.src)
	defer s.in.close()

	s.log.Info("session started")
	for {
		s.print(s.menu())
		choice, err := s.in.next(ctx)
		if err != nil {
			return s.finish(err)
		}

		cmd, ok := s.lookup(choice)
		if !ok {
			s.println(msgInvalidOption)
			continue
		}
		if cmd.exit {
			s.println(msgGoodbye)
			return s.finish(nil)
		}

		s.println(cmd.title)
		if err := cmd.run(ctx); err != nil {
			if isTerminal(err) {
				return s.finish(err)
			}
			s.log.Warn("operation rejected", logger.Operation(cmd.key), logger.Error(err))
			s.printErr(err)
		}
	}
}

// finish maps end of input to a clean exit.
func (s *Session) finish(err error) error {
	if errors.Is(err, io.EOF) {
		err = nil
	}
	s.log.Info("session finished", logger.Error(err))
	return err
}

// isTerminal reports errors that end the session instead of the option.
func isTerminal(err error) bool {
	return errors.Is(err, io.EOF) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}

func (s *Session) print(a ...any) {
	_, _ = fmt.Fprint(s.out, a...)
}

func (s *Session) println(a ...any) {
	_, _ = fmt.Fprintln(s.out, a...)
}

func (s *Session) printErr(err error) {
	_, _ = fmt.Fprintf(s.out, "Erro: %v\n", err)
}
