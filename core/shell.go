package core

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/abiosoft/readline"
	"github.com/fatih/color"
	"github.com/josephlewis42/batchsh/core/config"
	"github.com/josephlewis42/batchsh/core/dispatch"
)

const (
	DefaultPrompt   = "> "
	DefaultExitWord = "exit"
)

var errorColor = color.New(color.FgRed, color.Bold)

// LineReader reads operator input, *readline.Instance implements it.
type LineReader interface {
	SetPrompt(prompt string)
	Readline() (string, error)
}

// Shell reads lines and hands them to the engine until the exit word or the
// end of input.
type Shell struct {
	Reader LineReader
	Engine *dispatch.Engine

	Prompt   string
	ExitWord string

	// Errors receives dispatch errors.
	Errors io.Writer
	// Color enables colored error output.
	Color bool
}

// NewShell creates a shell with the prompt and exit word from the
// configuration.
func NewShell(reader LineReader, engine *dispatch.Engine, cfg *config.Configuration) *Shell {
	shell := &Shell{
		Reader:   reader,
		Engine:   engine,
		Prompt:   DefaultPrompt,
		ExitWord: DefaultExitWord,
		Errors:   os.Stderr,
	}
	if cfg != nil {
		shell.Prompt = cfg.Prompt
		shell.ExitWord = cfg.ExitWord
	}
	return shell
}

// NewReadline creates a line editor over the given streams.
func NewReadline(stdin io.Reader, stdout, stderr io.Writer) (*readline.Instance, error) {
	cfg := &readline.Config{
		Stdin:  readline.NewCancelableStdin(stdin),
		Stdout: stdout,
		Stderr: stderr,
	}

	if err := cfg.Init(); err != nil {
		return nil, err
	}

	return readline.NewEx(cfg)
}

// Run processes input until the exit word or io.EOF. Errors from a single
// line are reported and the loop moves on to the next one.
func (s *Shell) Run(ctx context.Context) error {
	for {
		s.Reader.SetPrompt(s.Prompt)
		line, err := s.Reader.Readline()

		switch {
		case err == io.EOF:
			return nil // Input closed, quit.

		case err == readline.ErrInterrupt:
			continue

		case err != nil:
			return err

		case line == s.ExitWord:
			return nil

		case strings.TrimSpace(line) == "":
			continue // empty line

		default:
			if err := s.Engine.DispatchLine(ctx, line); err != nil {
				s.printError(err)
			}
		}
	}
}

func (s *Shell) printError(err error) {
	if s.Color {
		errorColor.Fprintf(s.Errors, "batchsh: %v\n", err)
		return
	}
	fmt.Fprintf(s.Errors, "batchsh: %v\n", err)
}
