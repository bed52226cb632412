// Package proc spawns external programs and collects their exit status.
package proc

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"
)

var (
	ErrEmptyArgv     = errors.New("empty argument list")
	ErrExec          = errors.New("exec failed")
	ErrUnknownHandle = errors.New("unknown or already reaped process")
)

// Handle identifies one spawned process, it is the process id.
type Handle int

// Launcher starts processes and reaps them. Every handle returned by Spawn
// must be passed to Wait exactly once.
type Launcher struct {
	// Standard streams of the children, nil streams inherit the ones of the
	// current process.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Env holds extra KEY=value pairs appended to the current environment.
	Env []string
	// Dir is the working directory of children, empty means the current one.
	Dir string

	mu      sync.Mutex
	running map[Handle]*exec.Cmd
}

func orFile(w io.Writer, f *os.File) io.Writer {
	if w == nil {
		return f
	}
	return w
}

// Spawn starts argv[0], looked up on the PATH, with the remaining arguments.
// It does not wait for the process.
func (l *Launcher) Spawn(argv []string) (Handle, error) {
	if len(argv) == 0 {
		return 0, ErrEmptyArgv
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = os.Stdin
	if l.Stdin != nil {
		cmd.Stdin = l.Stdin
	}
	cmd.Stdout = orFile(l.Stdout, os.Stdout)
	cmd.Stderr = orFile(l.Stderr, os.Stderr)
	cmd.Dir = l.Dir
	if len(l.Env) > 0 {
		cmd.Env = append(os.Environ(), l.Env...)
	}

	if err := cmd.Start(); err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrExec, argv[0], err)
	}

	handle := Handle(cmd.Process.Pid)

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.running == nil {
		l.running = make(map[Handle]*exec.Cmd)
	}
	l.running[handle] = cmd

	return handle, nil
}

// Wait blocks until the process exits and returns its status. The handle is
// consumed.
func (l *Launcher) Wait(handle Handle) (ExitStatus, error) {
	l.mu.Lock()
	cmd, ok := l.running[handle]
	delete(l.running, handle)
	l.mu.Unlock()

	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownHandle, handle)
	}

	// A non-zero exit is reported through the status, not an error.
	err := cmd.Wait()
	if cmd.ProcessState == nil {
		return 0, err
	}
	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return statusOf(cmd.ProcessState), err
	}
	return statusOf(cmd.ProcessState), nil
}

// Running returns the number of spawned processes that haven't been reaped.
func (l *Launcher) Running() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.running)
}
