// Package fetch retrieves remote command batches over plain HTTP/1.1.
//
// The client is deliberately minimal: it writes a GET request by hand and reads
// the raw response line by line. Status codes, redirects and chunked transfer
// encoding are not interpreted.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"time"

	"github.com/juju/ratelimit"
)

// ErrConnect wraps failures to connect to or send a request to a server.
var ErrConnect = errors.New("connection failed")

// ContextDialer opens network connections, *net.Dialer implements it.
type ContextDialer interface {
	DialContext(ctx context.Context, network, address string) (net.Conn, error)
}

// Fetcher opens line streams to remote endpoints.
type Fetcher struct {
	// Port overrides the endpoint port when non-zero.
	Port int
	// DialTimeout bounds connection setup, zero means no timeout.
	DialTimeout time.Duration
	// RateLimit caps the response read rate in bytes per second, zero means
	// unlimited.
	RateLimit int64
	// Dialer opens the connection, if nil a net.Dialer is used.
	Dialer ContextDialer
}

func (f *Fetcher) dialer() ContextDialer {
	if f.Dialer != nil {
		return f.Dialer
	}
	return &net.Dialer{Timeout: f.DialTimeout}
}

// Open connects to the endpoint and issues a GET for its path. The returned
// stream starts at the first line of the response, callers are expected to
// SkipHeaders before reading the body.
func (f *Fetcher) Open(ctx context.Context, endpoint Endpoint) (*Stream, error) {
	if f.Port != 0 {
		endpoint.Port = f.Port
	}

	conn, err := f.dialer().DialContext(ctx, "tcp", endpoint.Address())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnect, err)
	}

	if err := WriteRequest(conn, endpoint); err != nil {
		conn.Close()
		return nil, fmt.Errorf("%w: %v", ErrConnect, err)
	}

	if f.RateLimit <= 0 {
		return NewStream(conn), nil
	}

	bucket := ratelimit.NewBucketWithRate(float64(f.RateLimit), f.RateLimit)
	return NewStream(&readCloser{
		Reader: ratelimit.Reader(conn, bucket),
		Closer: conn,
	}), nil
}

// WriteRequest writes the GET request for the endpoint.
func WriteRequest(w io.Writer, endpoint Endpoint) error {
	_, err := fmt.Fprintf(w, "GET %s HTTP/1.1\r\nHost: %s\r\nConnection: Close\r\n\r\n", endpoint.Path, endpoint.Host)
	return err
}

type readCloser struct {
	io.Reader
	io.Closer
}
