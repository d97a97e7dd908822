// Package shell runs the interactive question session. Input validation
// lives here; the decision engine accepts any integer.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/danielpatrickdp/quantum-decision/internal/answer"
	"github.com/danielpatrickdp/quantum-decision/internal/decision"
)

var (
	// ErrNoInput is returned when input ends before all questions are answered.
	ErrNoInput = errors.New("input ended before all questions were answered")
	// ErrTooManyAttempts is returned when a question receives no acceptable answer.
	ErrTooManyAttempts = errors.New("too many invalid answers")
)

// #region shell-config
// ShellConfig controls answer validation.
type ShellConfig struct {
	Strict      bool // reject integers outside {0,1,2}
	MaxAttempts int  // tries per question; <= 0 means unlimited
}

// DefaultShellConfig re-prompts up to three times and only accepts 0, 1 or 2.
func DefaultShellConfig() ShellConfig {
	return ShellConfig{
		Strict:      true,
		MaxAttempts: 3,
	}
}

// #endregion shell-config

// #region shell
// Shell reads answers from in and writes prompts and results to out.
type Shell struct {
	in     *bufio.Scanner
	out    io.Writer
	config ShellConfig
}

// New creates a shell over the given streams.
func New(in io.Reader, out io.Writer, config ShellConfig) *Shell {
	return &Shell{
		in:     bufio.NewScanner(in),
		out:    out,
		config: config,
	}
}

// Collect asks all five questions and returns the answers.
func (s *Shell) Collect() (answer.Vector, error) {
	var v answer.Vector
	for i, q := range Questions {
		a, err := s.ask(i+1, q)
		if err != nil {
			return answer.Vector{}, fmt.Errorf("question %d: %w", i+1, err)
		}
		v[i] = a
	}
	return v, nil
}

// Report prints the message lines for an outcome.
func (s *Shell) Report(o decision.Outcome) error {
	for _, line := range Messages(o) {
		if _, err := fmt.Fprintln(s.out, line); err != nil {
			return fmt.Errorf("write result: %w", err)
		}
	}
	return nil
}

func (s *Shell) ask(num int, question string) (answer.Answer, error) {
	for attempt := 1; ; attempt++ {
		fmt.Fprintf(s.out, "Question %d: %s %s", num, question, answerHint)

		if !s.in.Scan() {
			if err := s.in.Err(); err != nil {
				return 0, fmt.Errorf("read answer: %w", err)
			}
			return 0, ErrNoInput
		}

		a, err := answer.Parse(s.in.Text())
		switch {
		case err != nil:
			fmt.Fprintln(s.out, "Please enter a number: 0, 1 or 2.")
		case s.config.Strict && !a.Valid():
			fmt.Fprintf(s.out, "%d is out of range. Please enter 0, 1 or 2.\n", int(a))
		default:
			return a, nil
		}

		if s.config.MaxAttempts > 0 && attempt >= s.config.MaxAttempts {
			return 0, ErrTooManyAttempts
		}
	}
}

// #endregion shell
