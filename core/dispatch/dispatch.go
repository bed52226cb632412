// Package dispatch executes operator command lines.
//
// A line runs in one of three modes chosen by its first token:
//
//	<program> [args...]   run the program and wait for it
//	SERIAL <url>          fetch a list of commands and run them in order
//	PARALLEL <url>        fetch a list of commands, start them all, then
//	                      wait for them in reverse order
//
// Every command writes a "Running:" line when it starts and an "Exit code:"
// line once it has been reaped.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/josephlewis42/batchsh/core/fetch"
	"github.com/josephlewis42/batchsh/core/proc"
	"github.com/josephlewis42/batchsh/core/shell"
)

const (
	KeywordSerial   = "SERIAL"
	KeywordParallel = "PARALLEL"
)

// ErrMissingURL is returned for a SERIAL or PARALLEL line without a URL.
var ErrMissingURL = errors.New("missing URL")

// Command is a tokenized command line, the first token is a keyword or the
// program to run.
type Command []string

func (c Command) String() string {
	return strings.Join(c, " ")
}

// Launcher starts and reaps processes, *proc.Launcher implements it.
type Launcher interface {
	Spawn(argv []string) (proc.Handle, error)
	Wait(handle proc.Handle) (proc.ExitStatus, error)
}

// Fetcher opens remote batches, *fetch.Fetcher implements it.
type Fetcher interface {
	Open(ctx context.Context, endpoint fetch.Endpoint) (*fetch.Stream, error)
}

// Engine runs commands and reports their progress to Out. It is not safe for
// concurrent use, parallelism only comes from the spawned processes.
type Engine struct {
	Out      io.Writer
	Launcher Launcher
	Fetcher  Fetcher

	// Log receives diagnostics, it is never used for command progress.
	Log *log.Logger
	// Verbose adds batch tracing to the diagnostics.
	Verbose bool
}

// New creates an engine, a nil logger discards diagnostics.
func New(out io.Writer, launcher Launcher, fetcher Fetcher, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Engine{
		Out:      out,
		Launcher: launcher,
		Fetcher:  fetcher,
		Log:      logger,
	}
}

// DispatchLine tokenizes the line and dispatches it.
func (e *Engine) DispatchLine(ctx context.Context, line string) error {
	return e.Dispatch(ctx, shell.Split(line))
}

// Dispatch runs the command in the mode selected by its first token. Blank
// and comment commands do nothing.
func (e *Engine) Dispatch(ctx context.Context, cmd Command) error {
	if len(cmd) == 0 {
		return nil
	}

	switch cmd[0] {
	case KeywordSerial, KeywordParallel:
		if len(cmd) < 2 {
			return fmt.Errorf("%s: %w", cmd[0], ErrMissingURL)
		}
		if cmd[0] == KeywordSerial {
			return e.RunSerial(ctx, cmd[1])
		}
		return e.RunParallel(ctx, cmd[1])

	default:
		e.RunPlain(cmd)
		return nil
	}
}

// RunPlain runs a single command and waits for it.
func (e *Engine) RunPlain(cmd Command) {
	if len(cmd) == 0 || shell.IsComment(cmd) {
		return
	}

	e.announce(cmd)
	e.report(e.wait(e.spawn(cmd)))
}

// RunSerial runs each command of the remote batch as RunPlain would, in the
// order they arrive.
func (e *Engine) RunSerial(ctx context.Context, url string) error {
	b, err := e.openBatch(ctx, KeywordSerial, url)
	if err != nil {
		return err
	}
	defer b.Close()

	for b.stream.Next() {
		line := b.stream.Text()
		if line == "" {
			continue
		}
		cmd := Command(shell.Split(line))
		if len(cmd) == 0 || shell.IsComment(cmd) {
			continue
		}

		b.count++
		e.RunPlain(cmd)
	}

	return b.finish()
}

// RunParallel starts every command of the remote batch without waiting, then
// reaps them last to first once the batch has been read.
func (e *Engine) RunParallel(ctx context.Context, url string) error {
	b, err := e.openBatch(ctx, KeywordParallel, url)
	if err != nil {
		return err
	}
	defer b.Close()

	var jobs []job
	for b.stream.Next() {
		line := b.stream.Text()
		if line == "" {
			continue
		}
		cmd := Command(shell.Split(line))
		if len(cmd) == 0 || shell.IsComment(cmd) {
			continue
		}

		b.count++
		e.announce(cmd)
		jobs = append(jobs, e.spawn(cmd))
	}
	b.Close()

	for i := len(jobs) - 1; i >= 0; i-- {
		e.report(e.wait(jobs[i]))
	}

	return b.finish()
}

// job is a spawned command, or one that failed to spawn.
type job struct {
	cmd    Command
	handle proc.Handle
	err    error
}

func (e *Engine) spawn(cmd Command) job {
	handle, err := e.Launcher.Spawn(cmd)
	if err != nil {
		e.Log.Printf("%v", err)
	}
	return job{cmd: cmd, handle: handle, err: err}
}

func (e *Engine) wait(j job) proc.ExitStatus {
	if j.err != nil {
		return proc.ExecFailed
	}

	status, err := e.Launcher.Wait(j.handle)
	if err != nil {
		e.Log.Printf("%s: %v", j.cmd[0], err)
	}
	return status
}

func (e *Engine) announce(cmd Command) {
	fmt.Fprintf(e.Out, "Running: %s\n", cmd)
}

func (e *Engine) report(status proc.ExitStatus) {
	fmt.Fprintf(e.Out, "Exit code: %d\n", int(status))
}
