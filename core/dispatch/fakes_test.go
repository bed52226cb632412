package dispatch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/josephlewis42/batchsh/core/fetch"
	"github.com/josephlewis42/batchsh/core/proc"
)

// fakeLauncher records spawn and wait calls instead of running processes.
type fakeLauncher struct {
	// statuses maps a space joined command line to its exit status.
	statuses map[string]proc.ExitStatus
	// missing lists programs that fail to spawn.
	missing map[string]bool

	next    proc.Handle
	running map[proc.Handle]string
	events  []string
}

func newFakeLauncher() *fakeLauncher {
	return &fakeLauncher{
		statuses: make(map[string]proc.ExitStatus),
		missing:  make(map[string]bool),
		next:     100,
		running:  make(map[proc.Handle]string),
	}
}

func (f *fakeLauncher) Spawn(argv []string) (proc.Handle, error) {
	line := strings.Join(argv, " ")
	if f.missing[argv[0]] {
		f.events = append(f.events, "fail "+line)
		return 0, fmt.Errorf("%w: %s: executable file not found in $PATH", proc.ErrExec, argv[0])
	}

	f.next++
	f.running[f.next] = line
	f.events = append(f.events, "spawn "+line)
	return f.next, nil
}

func (f *fakeLauncher) Wait(handle proc.Handle) (proc.ExitStatus, error) {
	line, ok := f.running[handle]
	if !ok {
		return 0, proc.ErrUnknownHandle
	}
	delete(f.running, handle)
	f.events = append(f.events, "wait "+line)
	return f.statuses[line], nil
}

// fakeFetcher serves canned raw HTTP responses by URL path.
type fakeFetcher struct {
	responses map[string]string
	err       error
	opened    []fetch.Endpoint
	// readErr, if set, is returned after the response body is consumed.
	readErr error
}

func (f *fakeFetcher) Open(ctx context.Context, endpoint fetch.Endpoint) (*fetch.Stream, error) {
	f.opened = append(f.opened, endpoint)
	if f.err != nil {
		return nil, f.err
	}

	response, ok := f.responses[endpoint.Path]
	if !ok {
		response = "HTTP/1.1 404 Not Found\r\n\r\n"
	}

	var r io.Reader = strings.NewReader(response)
	if f.readErr != nil {
		r = io.MultiReader(r, &errReader{f.readErr})
	}
	return fetch.NewStream(io.NopCloser(r)), nil
}

type errReader struct{ err error }

func (e *errReader) Read([]byte) (int, error) {
	return 0, e.err
}

var errReset = errors.New("connection reset by peer")

func httpOK(body string) string {
	return "HTTP/1.1 200 OK\r\nContent-Type: text/plain\r\nConnection: close\r\n\r\n" + body
}
